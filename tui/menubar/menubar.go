// Package menubar renders terminal menus: the menu bar with its dropdowns,
// and context popups.
package menubar

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/folio/internal/menu"
	"github.com/ionut-t/folio/internal/termmenu"
	"github.com/ionut-t/folio/pkg/utils"
	"github.com/ionut-t/folio/ui/overlay"
	"github.com/ionut-t/folio/ui/styles"
)

// SelectedMsg reports an activated command. Popup is set when the command
// came from a context menu.
type SelectedMsg struct {
	ID    menu.CommandID
	Popup *menu.Popup
}

// ClosedMsg is sent when the menus close without a selection.
type ClosedMsg struct{}

type mode int

const (
	modeClosed mode = iota
	modeBar
	modePopup
)

// level is one open dropdown.
type level struct {
	menu   *termmenu.Menu
	cursor int
	x, y   int
}

type Model struct {
	bar   *termmenu.Menu
	popup *menu.Popup
	open  int
	stack []level
	mode  mode

	width, height int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetBar replaces the menu bar. Open dropdowns are closed.
func (m *Model) SetBar(bar *termmenu.Menu) {
	m.bar = bar
	if m.mode == modeBar {
		m.Close()
	}
}

// IsOpen reports whether a dropdown or popup is displayed.
func (m Model) IsOpen() bool {
	return m.mode != modeClosed
}

// Close hides every open menu.
func (m *Model) Close() {
	m.mode = modeClosed
	m.stack = nil
	m.popup = nil
}

// OpenBar opens the dropdown of the top-level entry at index.
func (m *Model) OpenBar(index int) {
	if m.bar == nil || index < 0 || index >= m.bar.Len() {
		return
	}

	entry := m.bar.Entries()[index]
	if entry.Menu() == nil {
		return
	}

	m.mode = modeBar
	m.popup = nil
	m.open = index
	m.stack = []level{{menu: entry.Menu(), x: m.titleOffset(index), y: 1, cursor: firstSelectable(entry.Menu())}}
}

// ShowPopup displays p.Menu at p.X, p.Y. It fails when the menu is not a
// terminal menu or is larger than the screen.
func (m *Model) ShowPopup(p *menu.Popup) error {
	tm, ok := p.Menu.(*termmenu.Menu)
	if !ok {
		return fmt.Errorf("cannot display %T", p.Menu)
	}

	w, h := boxSize(tm)
	if err := overlay.Fits(m.width, m.height, w, h); err != nil {
		return fmt.Errorf("%dx%d menu on %dx%d screen: %w", w, h, m.width, m.height, err)
	}

	m.mode = modePopup
	m.popup = p
	m.stack = []level{{menu: tm, x: p.X, y: p.Y, cursor: firstSelectable(tm)}}

	return nil
}

// TitleAt returns the index of the menu bar entry under column x.
func (m Model) TitleAt(x int) (int, bool) {
	if m.bar == nil {
		return 0, false
	}

	offset := 0
	for i, entry := range m.bar.Entries() {
		w := lipgloss.Width(styles.MenuBarTitle.Render(entry.Label()))
		if x >= offset && x < offset+w {
			return i, true
		}
		offset += w
	}

	return 0, false
}

// IndexOfAccessKey returns the menu bar entry whose access key is r.
func (m Model) IndexOfAccessKey(r rune) (int, bool) {
	if m.bar == nil {
		return 0, false
	}

	for i, entry := range m.bar.Entries() {
		if entry.AccessKey() == r {
			return i, true
		}
	}

	return 0, false
}

func (m Model) titleOffset(index int) int {
	offset := 0
	for _, entry := range m.bar.Entries()[:index] {
		offset += lipgloss.Width(styles.MenuBarTitle.Render(entry.Label()))
	}
	return offset
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.mode == modeClosed {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) top() *level {
	return &m.stack[len(m.stack)-1]
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	lv := m.top()
	entries := lv.menu.Entries()

	switch msg.String() {
	case "esc":
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
			return m, nil
		}
		m.Close()
		return m, utils.Dispatch(ClosedMsg{})

	case "up", "k", "shift+tab":
		lv.cursor = step(lv.menu, lv.cursor, -1)

	case "down", "j", "tab":
		lv.cursor = step(lv.menu, lv.cursor, 1)

	case "left", "h":
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
		} else if m.mode == modeBar {
			m.OpenBar((m.open - 1 + m.bar.Len()) % m.bar.Len())
		}

	case "right", "l":
		if lv.cursor >= 0 && entries[lv.cursor].Menu() != nil {
			m.openSubmenu(lv.cursor)
		} else if m.mode == modeBar {
			m.OpenBar((m.open + 1) % m.bar.Len())
		}

	case "enter", " ":
		if lv.cursor >= 0 {
			return m.activate(lv.cursor)
		}

	default:
		runes := []rune(msg.String())
		if len(runes) != 1 {
			break
		}
		for i, entry := range entries {
			if entry.AccessKey() == runes[0] && entry.Selectable() {
				lv.cursor = i
				return m.activate(i)
			}
		}
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	for depth := len(m.stack) - 1; depth >= 0; depth-- {
		lv := &m.stack[depth]
		w, h := boxSize(lv.menu)
		x, y := overlay.Offset(m.width, m.height, w, h, overlay.At(lv.x, lv.y))

		if msg.X < x || msg.X >= x+w || msg.Y < y || msg.Y >= y+h {
			continue
		}

		m.stack = m.stack[:depth+1]
		index := msg.Y - y - 1
		if index < 0 || index >= lv.menu.Len() || !lv.menu.Entries()[index].Selectable() {
			return m, nil
		}

		lv.cursor = index
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonRight {
			return m.activate(index)
		}
		return m, nil
	}

	if m.mode == modeBar && msg.Y == 0 {
		if i, ok := m.TitleAt(msg.X); ok {
			m.OpenBar(i)
			return m, nil
		}
	}

	m.Close()
	return m, utils.Dispatch(ClosedMsg{})
}

func (m *Model) openSubmenu(index int) {
	lv := m.top()
	sub := lv.menu.Entries()[index].Menu()
	w, _ := boxSize(lv.menu)

	m.stack = append(m.stack, level{
		menu:   sub,
		x:      lv.x + w - 1,
		y:      lv.y + index,
		cursor: firstSelectable(sub),
	})
}

func (m Model) activate(index int) (Model, tea.Cmd) {
	entry := m.top().menu.Entries()[index]

	if !entry.Selectable() {
		return m, nil
	}

	if entry.Menu() != nil {
		m.openSubmenu(index)
		return m, nil
	}

	msg := SelectedMsg{ID: entry.ID(), Popup: m.popup}
	m.Close()

	return m, utils.Dispatch(msg)
}

// step moves the cursor by delta, skipping separators and wrapping around.
func step(mn *termmenu.Menu, cursor, delta int) int {
	entries := mn.Entries()
	n := len(entries)

	for i := 1; i <= n; i++ {
		next := ((cursor+delta*i)%n + n) % n
		if !entries[next].IsSeparator() {
			return next
		}
	}

	return cursor
}

func firstSelectable(mn *termmenu.Menu) int {
	for i, entry := range mn.Entries() {
		if entry.Selectable() {
			return i
		}
	}
	return -1
}

// BarView renders the menu bar row.
func (m Model) BarView(width int) string {
	if m.bar == nil {
		return styles.MenuBar.Width(width).Render("")
	}

	var sb strings.Builder
	for i, entry := range m.bar.Entries() {
		style := styles.MenuBarTitle
		if m.mode == modeBar && i == m.open {
			style = styles.MenuBarActive
		}
		sb.WriteString(style.Render(renderLabel(entry, lipgloss.NewStyle())))
	}

	return styles.MenuBar.Width(width).Render(sb.String())
}

// View draws the open menus over background.
func (m Model) View(background string) string {
	out := background

	for _, lv := range m.stack {
		out = overlay.Compose(out, m.width, m.height, renderBox(lv), overlay.At(lv.x, lv.y))
	}

	return out
}

func boxSize(mn *termmenu.Menu) (int, int) {
	labelW, accelW := columns(mn)
	// border + check column + label + gap + accelerator + arrow + border
	return 1 + 2 + labelW + 2 + accelW + 2 + 1, mn.Len() + 2
}

func columns(mn *termmenu.Menu) (int, int) {
	labelW, accelW := 0, 0
	for _, entry := range mn.Entries() {
		labelW = max(labelW, lipgloss.Width(entry.Label()))
		accelW = max(accelW, lipgloss.Width(entry.Accelerator()))
	}
	return labelW, accelW
}

func renderBox(lv level) string {
	labelW, accelW := columns(lv.menu)
	innerW := 2 + labelW + 2 + accelW + 2

	rows := make([]string, 0, lv.menu.Len())
	for i, entry := range lv.menu.Entries() {
		if entry.IsSeparator() {
			rows = append(rows, styles.MenuSeparator.Render(strings.Repeat("─", innerW)))
			continue
		}

		style, checkStyle, accelStyle := styles.MenuItem, styles.MenuCheck, styles.MenuAccel
		switch {
		case !entry.Enabled():
			style, checkStyle, accelStyle = styles.MenuDisabled, styles.MenuDisabled, styles.MenuDisabled
		case i == lv.cursor:
			style, checkStyle, accelStyle = styles.MenuCursor, styles.MenuCursor, styles.MenuCursor
		}

		check := "  "
		if entry.Checked() {
			check = "✓ "
		}

		arrow := "  "
		if entry.Menu() != nil {
			arrow = " ›"
		}

		label := renderLabel(entry, style)
		label += style.Render(strings.Repeat(" ", labelW-lipgloss.Width(entry.Label())))

		accel := entry.Accelerator()
		accel = strings.Repeat(" ", accelW-lipgloss.Width(accel)) + accel

		rows = append(rows, checkStyle.Render(check)+label+style.Render("  ")+accelStyle.Render(accel)+style.Render(arrow))
	}

	return styles.MenuBorder.Render(strings.Join(rows, "\n"))
}

// renderLabel renders the label of entry with its access key underlined.
func renderLabel(entry *termmenu.Item, style lipgloss.Style) string {
	label := entry.Label()
	key := entry.AccessKey()
	if key == 0 {
		return style.Render(label)
	}

	runes := []rune(label)
	for i, r := range runes {
		if unicode.ToLower(r) != key {
			continue
		}
		return style.Render(string(runes[:i])) +
			styles.AccessKey(style).Render(string(r)) +
			style.Render(string(runes[i+1:]))
	}

	return style.Render(label)
}
