package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/folio/internal/menu"
)

// shortcut binds a key to a menu command. The keys match the accelerator
// hints shown in the menus.
type shortcut struct {
	binding key.Binding
	id      menu.CommandID
}

func bind(id menu.CommandID, help string, keys ...string) shortcut {
	return shortcut{
		binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
		id:      id,
	}
}

var shortcuts = []shortcut{
	bind(menu.IDOpen, "open a document", "ctrl+o"),
	bind(menu.IDClose, "close the current document", "q"),
	bind(menu.IDViewSinglePage, "single page layout", "6"),
	bind(menu.IDViewFacing, "facing layout", "7"),
	bind(menu.IDViewBook, "book view layout", "8"),
	bind(menu.IDViewContinuous, "show pages continuously", "c"),
	bind(menu.IDViewFullscreen, "toggle fullscreen", "f"),
	bind(menu.IDViewBookmarks, "toggle the page list", "b"),
	bind(menu.IDViewToolbar, "toggle the toolbar", "t"),
	bind(menu.IDSelectAll, "select all text", "ctrl+a"),
	bind(menu.IDCopySelection, "copy the selection", "y"),
	bind(menu.IDGotoNextPage, "next page", "n", "pgdown"),
	bind(menu.IDGotoPrevPage, "previous page", "p", "pgup"),
	bind(menu.IDGotoFirstPage, "first page", "home"),
	bind(menu.IDGotoLastPage, "last page", "end"),
	bind(menu.IDGotoPage, "go to page", "ctrl+g"),
	bind(menu.IDGotoBack, "back", "["),
	bind(menu.IDGotoForward, "forward", "]"),
	bind(menu.IDZoomFitPage, "fit page", "0"),
	bind(menu.IDZoomActualSize, "actual size", "1"),
	bind(menu.IDZoomFitWidth, "fit width", "2"),
	bind(menu.IDZoomFitContent, "fit content", "3"),
	bind(menu.IDZoomCustom, "custom zoom", "z"),
	bind(menu.IDKeyboardHelp, "toggle help view", "?"),
}

var (
	zoomIn = key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	)

	zoomOut = key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	)
)

// shortcutFor returns the command bound to msg.
func shortcutFor(msg tea.KeyMsg) (menu.CommandID, bool) {
	for _, s := range shortcuts {
		if key.Matches(msg, s.binding) {
			return s.id, true
		}
	}
	return 0, false
}

func shortcutBindings() []key.Binding {
	bindings := make([]key.Binding, len(shortcuts))
	for i, s := range shortcuts {
		bindings[i] = s.binding
	}
	return bindings
}
