// Package overlay draws floating boxes over a rendered screen.
package overlay

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ErrDoesNotFit is returned when a box is larger than the screen.
var ErrDoesNotFit = errors.New("does not fit on screen")

// Placement positions a foreground box on the screen.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position

	// Absolute places the top-left corner at X, Y, shifted back inside the
	// screen when the box would cross its right or bottom edge.
	Absolute bool
	X, Y     int
}

// At returns an absolute placement.
func At(x, y int) Placement {
	return Placement{Absolute: true, X: x, Y: y}
}

// Size returns the width and height of a rendered block.
func Size(s string) (int, int) {
	return lipgloss.Width(s), lipgloss.Height(s)
}

// Fits reports whether a box of the given size fits on the screen.
func Fits(screenWidth, screenHeight, width, height int) error {
	if width > screenWidth || height > screenHeight {
		return ErrDoesNotFit
	}
	return nil
}

// Offset resolves p into the top-left corner of a width x height box.
func Offset(screenWidth, screenHeight, width, height int, p Placement) (int, int) {
	var x, y int

	if p.Absolute {
		x, y = p.X, p.Y
	} else {
		x = int(float64(screenWidth-width) * float64(p.Horizontal))
		y = int(float64(screenHeight-height) * float64(p.Vertical))
	}

	x = max(0, min(x, screenWidth-width))
	y = max(0, min(y, screenHeight-height))

	return x, y
}

// Compose draws foreground over background, a width x height screen, and
// keeps the background visible around it.
func Compose(background string, width, height int, foreground string, p Placement) string {
	lines := normalize(background, width, height)
	if foreground == "" {
		return strings.Join(lines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")
	fgWidth, fgHeight := Size(foreground)
	fgWidth = min(fgWidth, width)
	fgHeight = min(fgHeight, height)

	x, y := Offset(width, height, fgWidth, fgHeight, p)

	for row := 0; row < fgHeight; row++ {
		fg := pad(ansi.Truncate(fgLines[row], fgWidth, ""), fgWidth)
		base := lines[y+row]

		lines[y+row] = ansi.Truncate(base, x, "") + fg + ansi.TruncateLeft(base, x+fgWidth, "")
	}

	return strings.Join(lines, "\n")
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(ansi.Truncate(lines[i], width, ""), width)
	}
	return lines
}

func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
