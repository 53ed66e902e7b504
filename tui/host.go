package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/folio/internal/menu"
	"github.com/ionut-t/folio/tui/prompt"
)

// host exposes a window to the menu service. It is only valid during the
// Update call that created it; callbacks kept beyond that touch the window
// alone.
type host struct {
	m    *model
	w    *window
	cmds []tea.Cmd
}

func (m *model) host(w *window) *host {
	return &host{m: m, w: w}
}

func (h *host) Flavor() menu.Flavor { return h.w.flavor() }

func (h *host) State() menu.WindowState {
	s := h.w.state()
	s.Debug = h.m.menus.Debug()
	return s
}

func (h *host) HitTest(x, y int) menu.Hit {
	return h.w.hitTest(x, y-h.m.bodyTop())
}

func (h *host) Popup(p *menu.Popup) error {
	p.Owner = h.w.id.String()
	return h.m.menubar.ShowPopup(p)
}

func (h *host) Command(id menu.CommandID) {
	cmd := h.m.execute(h, id)
	h.cmds = append(h.cmds, cmd)
}

func (h *host) ZoomTo(z menu.Zoom) {
	h.w.setZoom(z)
}

func (h *host) PromptZoom(current menu.Zoom, apply func(menu.Zoom)) {
	initial := ""
	if !current.IsVirtual() {
		initial = current.String()
	}

	h.m.zoomApply = apply
	h.cmds = append(h.cmds, h.m.openPrompt(prompt.CustomZoomAction, initial))
}

func (h *host) SetLayout(l menu.Layout) {
	h.w.setLayout(l)
}

func (h *host) batch() tea.Cmd {
	return tea.Batch(h.cmds...)
}

// startHost exposes the start page and its recent files to the menu
// service.
type startHost struct {
	m    *model
	cmds []tea.Cmd
}

func (h *startHost) Flavor() menu.Flavor { return menu.FlavorDocument }

func (h *startHost) State() menu.WindowState {
	return menu.WindowState{Zoom: h.m.defaultZoom, Layout: h.m.defaultLayout, Debug: h.m.menus.Debug()}
}

func (h *startHost) HitTest(x, y int) menu.Hit {
	i := y - h.m.bodyTop() - startHeaderRows
	if i < 0 || i >= len(h.m.recent) {
		return menu.Hit{Kind: menu.HitNone}
	}

	rf := h.m.recent[i]
	return menu.Hit{Kind: menu.HitRecentFile, Value: rf.Path, Pinned: rf.Pinned}
}

func (h *startHost) Popup(p *menu.Popup) error {
	return h.m.menubar.ShowPopup(p)
}

func (h *startHost) Command(id menu.CommandID) {
	cmd := h.m.execute(nil, id)
	h.cmds = append(h.cmds, cmd)
}

func (h *startHost) OpenRecent(path string) {
	h.cmds = append(h.cmds, openDocument(path))
}

func (h *startHost) SetPinned(path string, pinned bool) {
	h.m.recent = h.m.recent.pin(path, pinned)
}

func (h *startHost) ForgetRecent(path string) {
	h.m.recent = h.m.recent.forget(path)
	h.m.startCursor = min(h.m.startCursor, max(len(h.m.recent)-1, 0))
}

func (h *startHost) batch() tea.Cmd {
	return tea.Batch(h.cmds...)
}
