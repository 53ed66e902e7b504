package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/ionut-t/folio/internal/config"
	"github.com/ionut-t/folio/internal/i18n"
	"github.com/ionut-t/folio/internal/keymap"
	"github.com/ionut-t/folio/internal/leader"
	"github.com/ionut-t/folio/internal/menu"
	"github.com/ionut-t/folio/internal/termmenu"
	"github.com/ionut-t/folio/internal/version"
	"github.com/ionut-t/folio/pkg/clipboard"
	"github.com/ionut-t/folio/pkg/utils"
	"github.com/ionut-t/folio/tui/menubar"
	"github.com/ionut-t/folio/tui/prompt"
	"github.com/ionut-t/folio/ui/help"
	"github.com/ionut-t/folio/ui/markdown"
	"go.uber.org/zap"
)

// Options configure the viewer.
type Options struct {
	// Files are opened at startup, one window each.
	Files  []string
	Logger *zap.Logger

	// Copy writes to the clipboard. Defaults to the system clipboard.
	Copy func(string) error
	// Markdown creates the renderer of each ebook window.
	Markdown func() *markdown.Renderer
}

type model struct {
	width, height int
	view          view
	previousView  view
	logger        *zap.Logger

	menus           *menu.Menus
	copy            func(string) error
	systemClipboard bool
	newRenderer     func() *markdown.Renderer
	// startMenu is the menu bar of the start page.
	startMenu *termmenu.Menu

	windows []*window
	current int

	recent      recentFiles
	startCursor int

	defaultZoom   menu.Zoom
	defaultLayout menu.Layout

	leaderMgr *leader.Manager
	menubar   menubar.Model

	prompt         prompt.Model
	isPromptActive bool
	zoomApply      func(menu.Zoom)
	gotoWindow     *window
	saveAsWindow   *window

	dialog       string
	help         help.Model
	notification string

	files []string
}

func New(opts Options) model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	newRenderer := opts.Markdown
	if newRenderer == nil {
		newRenderer = markdown.New
	}

	m := model{
		view:        viewStart,
		logger:      logger,
		copy:        opts.Copy,
		newRenderer: newRenderer,
		menubar:     menubar.New(),
		help:        help.New(),
		files:       opts.Files,
		leaderMgr:   leader.NewManager(LeaderKeyTimeout, config.GetLeaderKey()),
	}

	if m.copy == nil {
		m.copy = clipboard.Write
		m.systemClipboard = true
	}

	m.reloadConfig()

	return m
}

// reloadConfig rebuilds the menu service and every menu bar from the
// current configuration.
func (m *model) reloadConfig() {
	flags := config.Permissions()
	if version.ShowDebugMenu() || config.DebugMenu() {
		flags |= menu.FlagDebug
	}

	if m.systemClipboard && !clipboard.Available() {
		flags &^= menu.FlagNeedsClipboard
	}

	m.menus = menu.New(menu.Options{
		Native:     termmenu.Factory{},
		Translator: i18n.New(config.GetLanguage()),
		Flags:      flags,
		Copy:       m.copy,
		Logger:     m.logger,
	})

	m.defaultZoom = config.GetDefaultZoom()
	m.defaultLayout = config.GetDefaultLayout()
	m.leaderMgr.SetLeaderKey(config.GetLeaderKey())

	m.startMenu = m.buildLive(menu.FlavorDocument)
	for _, w := range m.windows {
		w.live = m.buildLive(w.flavor())
	}

	m.menubar.SetBar(m.liveMenu())
	m.logger.Info("menus built", zap.Uint32("flags", uint32(flags)), zap.Int("windows", len(m.windows)))
}

func (m *model) buildLive(f menu.Flavor) *termmenu.Menu {
	live, err := m.menus.BuildMenu(f)
	if err != nil {
		return &termmenu.Menu{}
	}
	return live.(*termmenu.Menu)
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("folio")}
	for _, path := range m.files {
		cmds = append(cmds, openDocument(path))
	}
	return tea.Batch(cmds...)
}

func (m *model) currentWindow() *window {
	if m.view == viewStart || len(m.windows) == 0 {
		return nil
	}
	return m.windows[m.current]
}

// windowByID returns the open window with the given identifier.
func (m *model) windowByID(id string) *window {
	owner, err := uuid.Parse(id)
	if err != nil {
		return nil
	}

	for _, w := range m.windows {
		if w.id == owner {
			return w
		}
	}
	return nil
}

// liveMenu returns the menu bar of the current window or of the start page.
func (m *model) liveMenu() *termmenu.Menu {
	if w := m.currentWindow(); w != nil {
		return w.live
	}
	return m.startMenu
}

// syncMenu brings the current menu bar up to date with its window.
func (m *model) syncMenu() {
	if w := m.currentWindow(); w != nil {
		m.menus.UpdateMenu(m.host(w), w.live)
		return
	}
	m.menus.UpdateMenu(&startHost{m: m}, m.startMenu)
}

func (m *model) openBar(index int) {
	m.syncMenu()
	m.menubar.SetBar(m.liveMenu())
	m.menubar.OpenBar(index)
}

func (m *model) openPrompt(action prompt.Action, initial string) tea.Cmd {
	m.prompt = prompt.New(action, initial)
	m.prompt.SetSize(m.width, m.height)
	m.isPromptActive = true
	return m.prompt.Init()
}

func (m *model) closePrompt() {
	m.isPromptActive = false
	m.zoomApply = nil
	m.gotoWindow = nil
	m.saveAsWindow = nil
}

func (m *model) showHelp() {
	if m.view != viewHelp {
		m.previousView = m.view
	}
	m.view = viewHelp
	m.help.SetContent(m.renderHelp())
}

func (m *model) addWindow(w *window) {
	m.windows = append(m.windows, w)
	m.current = len(m.windows) - 1
	m.view = viewDocument
	m.recent = m.recent.add(w.doc.Path)
	m.sizeWindow(w)
	m.menubar.SetBar(m.liveMenu())
}

func (m *model) closeWindow(w *window) {
	for i, other := range m.windows {
		if other != w {
			continue
		}

		m.windows = append(m.windows[:i], m.windows[i+1:]...)
		if m.current >= len(m.windows) {
			m.current = max(len(m.windows)-1, 0)
		}
		break
	}

	if len(m.windows) == 0 {
		m.view = viewStart
	}

	m.menubar.SetBar(m.liveMenu())
}

func (m *model) switchWindow(delta int) {
	if len(m.windows) < 2 {
		return
	}

	m.current = (m.current + delta + len(m.windows)) % len(m.windows)
	m.menubar.SetBar(m.liveMenu())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.updateSize()
		m.menubar.SetSize(msg.Width, msg.Height)
		m.prompt.SetSize(msg.Width, msg.Height)
		m.help.SetSize(msg.Width, msg.Height)
		m.help.SetContent(m.renderHelp())

		return m, nil

	case ConfigChangedMsg:
		m.reloadConfig()
		return m, m.successNotification("Configuration reloaded")

	case utils.ClearMsg:
		m.notification = ""
		return m, nil

	case leader.TimeoutMsg:
		if m.leaderMgr.Expired(msg) && m.canOpenMenus() {
			m.openBar(0)
		}
		return m, nil

	case documentOpenedMsg:
		live := m.buildLive(msg.doc.Flavor)
		m.addWindow(newWindow(msg.doc, live, m.newRenderer(), m.defaultZoom, m.defaultLayout))
		m.logger.Info("document opened", zap.String("path", msg.doc.Path), zap.Stringer("flavor", msg.doc.Flavor))
		return m, nil

	case documentFailedMsg:
		m.logger.Warn("open document", zap.String("path", msg.path), zap.Error(msg.err))
		return m, m.errorNotification(msg.err)

	case printedMsg:
		if msg.err != nil {
			return m, m.errorNotification(msg.err)
		}
		return m, m.successNotification("Sent to printer")

	case savedMsg:
		if msg.err != nil {
			return m, m.errorNotification(msg.err)
		}
		return m, m.successNotification("Saved a copy to " + utils.ShortenPath(msg.path, 40))

	case menubar.SelectedMsg:
		return m.handleMenuSelection(msg)

	case menubar.ClosedMsg:
		return m, nil

	case prompt.SubmittedMsg:
		return m.handlePromptSubmit(msg)

	case prompt.CancelMsg:
		m.closePrompt()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.isPromptActive {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) canOpenMenus() bool {
	return !m.isPromptActive && m.dialog == "" && m.view != viewHelp && !m.menubar.IsOpen()
}

// runCommand runs a command picked from the menu bar or a shortcut.
func (m *model) runCommand(id menu.CommandID) tea.Cmd {
	w := m.currentWindow()
	if w == nil {
		return m.execute(nil, id)
	}

	h := m.host(w)
	cmd := m.execute(h, id)
	return tea.Batch(cmd, h.batch())
}

func (m model) handleMenuSelection(msg menubar.SelectedMsg) (tea.Model, tea.Cmd) {
	if msg.Popup == nil {
		return m, m.runCommand(msg.ID)
	}

	if msg.Popup.Start {
		h := &startHost{m: &m}
		if err := m.menus.HandleContextCommand(h, msg.Popup, msg.ID); err != nil {
			return m, m.errorNotification(err)
		}
		return m, h.batch()
	}

	// the window may have been closed while the popup was open
	w := m.windowByID(msg.Popup.Owner)
	if w == nil {
		return m, nil
	}

	h := m.host(w)
	if err := m.menus.HandleContextCommand(h, msg.Popup, msg.ID); err != nil {
		return m, m.errorNotification(err)
	}

	switch msg.ID {
	case menu.IDCopyLinkTarget, menu.IDCopyComment:
		return m, tea.Batch(h.batch(), m.successNotification("Copied to clipboard"))
	}

	return m, h.batch()
}

func (m model) handlePromptSubmit(msg prompt.SubmittedMsg) (tea.Model, tea.Cmd) {
	apply, gotoWindow, saveAsWindow := m.zoomApply, m.gotoWindow, m.saveAsWindow
	m.closePrompt()

	switch msg.Action {
	case prompt.CustomZoomAction:
		z, err := prompt.ParseZoomInput(msg.Value)
		if err != nil {
			return m, m.errorNotification(err)
		}
		if apply != nil {
			apply(z)
		}

	case prompt.GotoPageAction:
		page, err := prompt.ParsePage(msg.Value)
		if err != nil {
			return m, m.errorNotification(err)
		}
		if gotoWindow != nil {
			gotoWindow.gotoPage(page)
		}

	case prompt.OpenFileAction:
		path, err := expandPath(msg.Value)
		if err != nil {
			return m, m.errorNotification(err)
		}
		return m, openDocument(path)

	case prompt.SaveAsAction:
		path, err := expandPath(msg.Value)
		if err != nil {
			return m, m.errorNotification(err)
		}
		if saveAsWindow != nil {
			return m, saveAs(saveAsWindow.doc.Path, path)
		}
	}

	return m, nil
}

func (m model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keymap.Quit) {
		return m, tea.Quit
	}

	if m.isPromptActive {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	if m.menubar.IsOpen() {
		var cmd tea.Cmd
		m.menubar, cmd = m.menubar.Update(msg)
		return m, cmd
	}

	if m.dialog != "" {
		if key.Matches(msg, keymap.Cancel, keymap.Close, keymap.Submit) {
			m.dialog = ""
		}
		return m, nil
	}

	if m.view == viewHelp {
		if key.Matches(msg, keymap.Cancel, keymap.Close, keymap.Help) {
			m.view = m.previousView
			return m, nil
		}

		model, cmd := m.help.Update(msg)
		m.help = model.(help.Model)
		return m, cmd
	}

	if m.leaderMgr.IsActive() {
		m.menubar.SetBar(m.liveMenu())
		if i, ok := m.leaderMgr.Resolve(msg.String(), m.menubar.IndexOfAccessKey); ok {
			m.openBar(i)
		}
		return m, nil
	}

	if m.leaderMgr.IsLeaderKey(msg.String()) {
		_, cmd := m.leaderMgr.HandleKey(msg.String())
		return m, cmd
	}

	w := m.currentWindow()

	switch {
	case key.Matches(msg, keymap.MenuBar):
		m.openBar(0)
		return m, nil

	case key.Matches(msg, keymap.ContextMenu):
		return m, m.contextMenuAtCursor()

	case key.Matches(msg, keymap.NextTab):
		m.switchWindow(1)
		return m, nil

	case key.Matches(msg, keymap.PrevTab):
		m.switchWindow(-1)
		return m, nil

	case key.Matches(msg, keymap.Cancel):
		if w != nil && w.fullscreen {
			w.fullscreen = false
			m.updateSize()
		}
		return m, nil

	case w != nil && key.Matches(msg, zoomIn, zoomOut):
		m.stepZoom(w, key.Matches(msg, zoomIn))
		return m, nil
	}

	if id, ok := shortcutFor(msg); ok {
		if !m.enabled(id) {
			if w == nil && id == menu.IDClose {
				return m, tea.Quit
			}
			return m, nil
		}
		return m, m.runCommand(id)
	}

	if w == nil {
		return m.handleStartKeys(msg)
	}

	switch {
	case key.Matches(msg, keymap.Up):
		if w.cursor == 0 {
			w.scroll(-1)
		}
		w.moveCursor(-1)
	case key.Matches(msg, keymap.Down):
		if w.cursor == w.viewport.Height-1 {
			w.scroll(1)
		}
		w.moveCursor(1)
	case key.Matches(msg, keymap.Select):
		w.selectLine(w.cursor)
	}

	return m, nil
}

func (m model) handleStartKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keymap.Up):
		m.startCursor = max(m.startCursor-1, 0)
	case key.Matches(msg, keymap.Down):
		m.startCursor = min(m.startCursor+1, max(len(m.recent)-1, 0))
	case key.Matches(msg, keymap.Submit):
		if m.startCursor < len(m.recent) {
			return m, openDocument(m.recent[m.startCursor].Path)
		}
	}

	return m, nil
}

func (m *model) stepZoom(w *window, in bool) {
	state := w.state()
	if !state.DocumentLoaded {
		return
	}

	current := 100.0
	if !state.Zoom.IsVirtual() {
		current = state.Zoom.Percent
	}

	m.host(w).ZoomTo(menu.Percent(menu.NextZoomStep(current, in)))
}

// contextMenuAtCursor opens the context menu where the keyboard cursor is.
func (m *model) contextMenuAtCursor() tea.Cmd {
	if w := m.currentWindow(); w != nil {
		return m.contextMenu(w.tocWidth()+1, m.bodyTop()+w.cursor)
	}
	return m.contextMenu(2, m.bodyTop()+startHeaderRows+m.startCursor)
}

func (m *model) contextMenu(x, y int) tea.Cmd {
	var err error

	if w := m.currentWindow(); w != nil {
		err = m.menus.OnContextMenu(m.host(w), x, y)
	} else {
		err = m.menus.OnAboutContextMenu(&startHost{m: m}, x, y)
	}

	if err != nil {
		return m.errorNotification(err)
	}
	return nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.isPromptActive {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	if m.menubar.IsOpen() {
		var cmd tea.Cmd
		m.menubar, cmd = m.menubar.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if m.dialog != "" {
		m.dialog = ""
		return m, nil
	}

	if m.view == viewHelp {
		model, cmd := m.help.Update(msg)
		m.help = model.(help.Model)
		return m, cmd
	}

	w := m.currentWindow()

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if w != nil {
			lines := 3
			if msg.Button == tea.MouseButtonWheelUp {
				lines = -3
			}
			w.scroll(lines)
		}

	case tea.MouseButtonRight:
		return m, m.contextMenu(msg.X, msg.Y)

	case tea.MouseButtonLeft:
		if m.showsChrome() && msg.Y == 0 {
			m.menubar.SetBar(m.liveMenu())
			if i, ok := m.menubar.TitleAt(msg.X); ok {
				m.openBar(i)
			}
			return m, nil
		}

		row := msg.Y - m.bodyTop()
		if w != nil {
			if row >= 0 && row < w.viewport.Height {
				w.cursor = row
			}
			return m, nil
		}

		if i := row - startHeaderRows; i >= 0 && i < len(m.recent) {
			m.startCursor = i
		}
	}

	return m, nil
}
