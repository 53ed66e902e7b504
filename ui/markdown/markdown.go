package markdown

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

func standardStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}

	return "light"
}

// Renderer renders markdown wrapped to a width. The underlying glamour
// renderer is rebuilt only when the width changes.
type Renderer struct {
	width    int
	renderer *glamour.TermRenderer
	style    string
}

func New() *Renderer {
	return &Renderer{style: standardStyle()}
}

// NewWithStyle returns a renderer using a fixed glamour standard style.
func NewWithStyle(style string) *Renderer {
	return &Renderer{style: style}
}

// Render renders markdown wrapped to width columns.
func (r *Renderer) Render(markdown string, width int) (string, error) {
	if r.renderer == nil || width != r.width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}

		r.renderer = renderer
		r.width = width
	}

	return r.renderer.Render(markdown)
}
