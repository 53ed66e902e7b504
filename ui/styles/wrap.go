package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Wrap breaks the lines of text at word boundaries so none is wider than
// width. Words longer than width are kept whole.
func Wrap(width int, text string) string {
	if width <= 0 {
		return text
	}

	var out []string

	for line := range strings.SplitSeq(text, "\n") {
		if lipgloss.Width(line) <= width {
			out = append(out, line)
			continue
		}

		var current strings.Builder
		for _, word := range strings.Fields(line) {
			if current.Len() > 0 && lipgloss.Width(current.String())+1+lipgloss.Width(word) > width {
				out = append(out, current.String())
				current.Reset()
			}
			if current.Len() > 0 {
				current.WriteString(" ")
			}
			current.WriteString(word)
		}
		out = append(out, current.String())
	}

	return strings.Join(out, "\n")
}
