package keymap

import "github.com/charmbracelet/bubbles/key"

var Quit = key.NewBinding(
	key.WithKeys("ctrl+c"),
	key.WithHelp("ctrl+c", "quit"),
)

var Close = key.NewBinding(
	key.WithKeys("q"),
	key.WithHelp("q", "close the current document"),
)

var Help = key.NewBinding(
	key.WithKeys("?"),
	key.WithHelp("?", "toggle help view"),
)

var Cancel = key.NewBinding(
	key.WithKeys("esc"),
	key.WithHelp("esc", "cancel current operation"),
)

var Submit = key.NewBinding(
	key.WithKeys("enter"),
	key.WithHelp("enter", "open the selected document"),
)

var MenuBar = key.NewBinding(
	key.WithKeys("f10"),
	key.WithHelp("f10 / leader", "open the menu bar (leader + access key opens a menu)"),
)

var ContextMenu = key.NewBinding(
	key.WithKeys("m"),
	key.WithHelp("m / right click", "open the context menu at the cursor"),
)

var NextTab = key.NewBinding(
	key.WithKeys("tab"),
	key.WithHelp("tab", "next document"),
)

var PrevTab = key.NewBinding(
	key.WithKeys("shift+tab"),
	key.WithHelp("shift+tab", "previous document"),
)

var Up = key.NewBinding(
	key.WithKeys("up", "k"),
	key.WithHelp("↑ / k", "move up"),
)

var Down = key.NewBinding(
	key.WithKeys("down", "j"),
	key.WithHelp("↓ / j", "move down"),
)

var Left = key.NewBinding(
	key.WithKeys("left", "h"),
	key.WithHelp("← / h", "move left"),
)

var Right = key.NewBinding(
	key.WithKeys("right", "l"),
	key.WithHelp("→ / l", "move right"),
)

var Select = key.NewBinding(
	key.WithKeys("v"),
	key.WithHelp("v", "select the line under the cursor"),
)
