package styles

import "github.com/charmbracelet/lipgloss"

// Menu bar and dropdown styles.
var (
	MenuBar       = Surface0.Foreground(Text.GetForeground())
	MenuBarTitle  = MenuBar.Padding(0, 1)
	MenuBarActive = Highlight.Padding(0, 1)

	MenuBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary.GetForeground()).
			Background(Crust.GetBackground())

	MenuItem      = Text.Background(Crust.GetBackground())
	MenuCursor    = Highlight
	MenuDisabled  = Overlay0.Background(Crust.GetBackground())
	MenuAccel     = Subtext0.Background(Crust.GetBackground())
	MenuSeparator = Overlay0.Background(Crust.GetBackground())
	MenuCheck     = Success.Background(Crust.GetBackground())
)

// AccessKey underlines the access key inside a rendered label.
func AccessKey(s lipgloss.Style) lipgloss.Style {
	return s.Underline(true)
}
