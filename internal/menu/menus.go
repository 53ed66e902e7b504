package menu

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Options configure a Menus service.
type Options struct {
	Native     Native
	Translator Translator

	// Flags holds what this process grants: FlagDebug in debug and
	// pre-release builds plus the permitted FlagNeeds* bits. Permissions
	// left out are denied.
	Flags Flags

	// Copy writes text to the clipboard.
	Copy func(text string) error

	Logger *zap.Logger
}

// Menus builds, refreshes and pops up menus for windows.
type Menus struct {
	builder *Builder
	flags   Flags
	copy    func(string) error
	logger  *zap.Logger
}

func New(opts Options) *Menus {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = func(string) error { return errors.New("clipboard unavailable") }
	}

	return &Menus{
		builder: NewBuilder(opts.Native, opts.Translator).Deny(AllPermissions &^ opts.Flags),
		flags:   opts.Flags & ProcessMask,
		copy:    copyFn,
		logger:  logger,
	}
}

// Flags returns the build flags granted to this process.
func (m *Menus) Flags() Flags {
	return m.flags
}

// Debug reports whether debug menu items are built.
func (m *Menus) Debug() bool {
	return m.flags&FlagDebug != 0
}

// BuildMenu builds the menu bar of a window flavor.
func (m *Menus) BuildMenu(f Flavor) (Container, error) {
	live, err := m.builder.New(MainTable(f), m.flags)
	if err != nil {
		m.logger.Error("build menu", zap.Stringer("flavor", f), zap.Error(err))
		return nil, err
	}

	m.logger.Debug("menu built", zap.Stringer("flavor", f), zap.Int("commands", Count(live)))
	return live, nil
}

// Build builds an arbitrary table with the process flags added to filter.
func (m *Menus) Build(table []Descriptor, filter Flags) (Container, error) {
	return m.builder.New(table, filter|m.flags)
}

// UpdateMenu refreshes live against the window's current state. It runs
// before every display of the menu.
func (m *Menus) UpdateMenu(w Window, live Container) {
	Sync(w.State(), live, w.Flavor())
}

// OnContextMenu builds, refreshes and pops up the context menu for a right
// click at x, y.
func (m *Menus) OnContextMenu(w ContextWindow, x, y int) error {
	hit := w.HitTest(x, y)
	state := w.State()
	filter := m.contextFilter(hit, state)

	popup, err := m.builder.New(ContextTable(w.Flavor()), filter)
	if err != nil {
		m.logger.Error("build context menu", zap.Stringer("flavor", w.Flavor()), zap.Error(err))
		return err
	}

	Sync(state, popup, w.Flavor())

	return m.popup(w, &Popup{Menu: popup, X: x, Y: y, Hit: hit})
}

// OnAboutContextMenu pops up the start page menu for the recent file at
// x, y. Points that hit no recent file are ignored.
func (m *Menus) OnAboutContextMenu(w ContextWindow, x, y int) error {
	if m.flags&FlagNeedsDisk == 0 {
		return nil
	}

	hit := w.HitTest(x, y)
	if hit.Kind != HitRecentFile || hit.Value == "" {
		return nil
	}

	popup, err := m.builder.New(StartContextTable(), m.flags)
	if err != nil {
		m.logger.Error("build start page menu", zap.Error(err))
		return err
	}

	Sync(w.State(), popup, w.Flavor())
	SetChecked(popup, IDPinSelectedDocument, hit.Pinned)

	return m.popup(w, &Popup{Menu: popup, X: x, Y: y, Hit: hit, Start: true})
}

func (m *Menus) popup(w ContextWindow, p *Popup) error {
	if err := w.Popup(p); err != nil {
		m.logger.Warn("popup menu", zap.Int("x", p.X), zap.Int("y", p.Y), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrPopup, err)
	}
	return nil
}

func (m *Menus) contextFilter(hit Hit, s WindowState) Flags {
	filter := m.flags

	switch hit.Kind {
	case HitLink:
		filter |= FlagOnLink
	case HitComment:
		filter |= FlagOnComment
	default:
		filter |= FlagOnPage
	}

	if s.HasSelection {
		filter |= FlagOnSelection
	}

	return filter
}

// HandleContextCommand executes a command picked from p. Commands that need
// the hit captured with the popup are handled here; the rest go to the
// window.
func (m *Menus) HandleContextCommand(w ContextWindow, p *Popup, id CommandID) error {
	m.logger.Debug("context command", zap.Int("id", int(id)), zap.Int("hit", int(p.Hit.Kind)), zap.String("owner", p.Owner))

	switch id {
	case IDCopyLinkTarget, IDCopyComment:
		if p.Hit.Value == "" {
			return nil
		}
		if err := m.copy(p.Hit.Value); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		return nil

	case IDOpenSelectedDocument, IDPinSelectedDocument, IDForgetSelectedDocument:
		rf, ok := w.(RecentFiles)
		if !ok || !p.Start {
			return nil
		}

		switch id {
		case IDOpenSelectedDocument:
			rf.OpenRecent(p.Hit.Value)
		case IDPinSelectedDocument:
			rf.SetPinned(p.Hit.Value, !p.Hit.Pinned)
		case IDForgetSelectedDocument:
			rf.ForgetRecent(p.Hit.Value)
		}
		return nil
	}

	w.Command(id)
	return nil
}

// OnMenuZoom applies the zoom of a zoom range command. The custom command
// prompts for a value instead. id must lie in ZoomRange.
func (m *Menus) OnMenuZoom(w ZoomWindow, id CommandID) {
	z := ZoomFromIdentifier(id)

	if z.Mode == ZoomCustom {
		m.OnMenuCustomZoom(w)
		return
	}

	if !w.State().DocumentLoaded {
		return
	}

	w.ZoomTo(z)
}

// OnMenuCustomZoom asks the window for an explicit zoom and applies it,
// clamped to ZoomMin..ZoomMax.
func (m *Menus) OnMenuCustomZoom(w ZoomWindow) {
	state := w.State()
	if !state.DocumentLoaded {
		return
	}

	w.PromptZoom(state.Zoom, func(z Zoom) {
		if z.Mode == ZoomCustom {
			return
		}
		w.ZoomTo(ClampZoom(z))
	})
}

// OnMenuLayout applies the layout of a layout range command, unless the
// window's rules currently disable it. id must lie in LayoutRange.
func (m *Menus) OnMenuLayout(w LayoutWindow, id CommandID) {
	l := LayoutFromIdentifier(id)
	state := w.State()

	if !state.DocumentLoaded || !rulesFor(w.Flavor()).layout(state, l) {
		return
	}

	w.SetLayout(l)
}
