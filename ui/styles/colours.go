package styles

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// adaptive picks the same palette entry from the light and dark flavours.
func adaptive(entry func(catppuccin.Flavour) catppuccin.Color) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: entry(catppuccin.Latte).Hex,
		Dark:  entry(catppuccin.Mocha).Hex,
	}
}

func fg(entry func(catppuccin.Flavour) catppuccin.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(adaptive(entry))
}

func bg(entry func(catppuccin.Flavour) catppuccin.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(adaptive(entry))
}

var (
	Base     = fg(catppuccin.Flavour.Base)
	Text     = fg(catppuccin.Flavour.Text)
	Primary  = fg(catppuccin.Flavour.Sapphire)
	Accent   = fg(catppuccin.Flavour.Teal)
	Success  = fg(catppuccin.Flavour.Green)
	Error    = fg(catppuccin.Flavour.Red)
	Warning  = fg(catppuccin.Flavour.Yellow)
	Info     = fg(catppuccin.Flavour.Blue)
	Link     = fg(catppuccin.Flavour.Lavender).Underline(true)
	Subtext0 = fg(catppuccin.Flavour.Subtext0)
	Subtext1 = fg(catppuccin.Flavour.Subtext1)
	Overlay0 = fg(catppuccin.Flavour.Overlay0)
	Overlay1 = fg(catppuccin.Flavour.Overlay1)

	Surface0 = bg(catppuccin.Flavour.Surface0)
	Surface1 = bg(catppuccin.Flavour.Surface1)
	Crust    = bg(catppuccin.Flavour.Crust)

	Highlight = Base.Background(adaptive(catppuccin.Flavour.Sapphire))
)
