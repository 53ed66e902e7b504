package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/folio/ui/styles"
)

// Info is what the status bar shows about the current window.
type Info struct {
	Name   string
	Flavor string
	Page   int
	Pages  int
	Zoom   string
	Layout string
}

func StatusBarView(info Info, width int) string {
	bg := styles.Surface0.GetBackground()

	separator := styles.Surface0.Render(" | ")

	parts := []string{styles.Primary.Background(bg).Render(info.Name)}

	if info.Flavor != "" {
		parts = append(parts, styles.Subtext0.Background(bg).Render(info.Flavor))
	}

	if info.Pages > 0 {
		parts = append(parts, styles.Accent.Background(bg).Render(fmt.Sprintf("%d / %d", info.Page, info.Pages)))
	}

	if info.Zoom != "" {
		parts = append(parts, styles.Text.Background(bg).Render(info.Zoom))
	}

	if info.Layout != "" {
		parts = append(parts, styles.Text.Background(bg).Render(info.Layout))
	}

	documentInfo := styles.Surface0.Padding(0, 1).Render(strings.Join(parts, separator))

	helpText := styles.Info.Background(bg).PaddingRight(1).Render("? Help")

	displayedInfoWidth := width -
		lipgloss.Width(documentInfo) -
		lipgloss.Width(helpText)

	spaces := styles.Surface0.Render(strings.Repeat(" ", max(0, displayedInfoWidth)))

	return styles.Surface0.Width(width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Right,
			documentInfo,
			spaces,
			helpText,
		),
	)
}
