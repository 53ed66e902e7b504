package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/ionut-t/folio/internal/keymap"
	"github.com/ionut-t/folio/ui/help"
)

func (m model) renderHelp() string {
	leaderKey := m.leaderMgr.LeaderKey()
	if leaderKey == " " {
		leaderKey = "space"
	}

	return help.Render(m.width,
		help.Section{
			Title: "General (leader: " + leaderKey + ")",
			Bindings: []key.Binding{
				keymap.Quit,
				keymap.Help,
				keymap.MenuBar,
				keymap.ContextMenu,
				keymap.Cancel,
			},
		},
		help.Section{
			Title: "Navigation",
			Bindings: []key.Binding{
				keymap.Up,
				keymap.Down,
				keymap.Select,
				keymap.NextTab,
				keymap.PrevTab,
				keymap.Submit,
				zoomIn,
				zoomOut,
			},
		},
		help.Section{
			Title:    "Menu commands",
			Bindings: shortcutBindings(),
		},
	)
}
