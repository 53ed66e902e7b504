package document

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/ionut-t/folio/internal/menu"
)

var urlPattern = regexp.MustCompile(`https?://[^\s<>()\[\]"']+`)

// HitLine hit-tests column col of a rendered line. Escape sequences in line
// are ignored.
func HitLine(line string, col int) menu.Hit {
	plain := ansi.Strip(line)

	if i := strings.Index(plain, CommentMarker); i >= 0 {
		text := strings.TrimSpace(plain[i+len(CommentMarker):])
		return menu.Hit{Kind: menu.HitComment, Value: text}
	}

	for _, loc := range urlPattern.FindAllStringIndex(plain, -1) {
		start := ansi.StringWidth(plain[:loc[0]])
		end := start + ansi.StringWidth(plain[loc[0]:loc[1]])

		if col >= start && col < end {
			url := strings.TrimRight(plain[loc[0]:loc[1]], ".,;:!?")
			return menu.Hit{Kind: menu.HitLink, Value: url}
		}
	}

	return menu.Hit{Kind: menu.HitPage}
}

// HighlightLinks restyles the URLs of a rendered line with style. Lines
// without links are returned unchanged; lines with links lose their other
// escape sequences.
func HighlightLinks(line string, style func(string) string) string {
	plain := ansi.Strip(line)
	if !urlPattern.MatchString(plain) {
		return line
	}

	return urlPattern.ReplaceAllStringFunc(plain, style)
}
