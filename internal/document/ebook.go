package document

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ionut-t/folio/internal/menu"
)

const ebookCaps = menu.CapFacing | menu.CapCopy

// CommentMarker starts the rendered line of an inline comment.
const CommentMarker = "✎ "

var htmlComment = regexp.MustCompile(`(?s)<!--(.*?)-->`)

func (d *Document) loadText() error {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoDocument, err)
	}

	d.Caps = ebookCaps

	if strings.EqualFold(filepath.Ext(d.Path), ".txt") {
		d.Source = "```\n" + strings.TrimRight(string(data), "\n") + "\n```\n"
		return nil
	}

	d.Source = markComments(string(data))
	return nil
}

// markComments turns HTML comments into quoted lines so they survive
// rendering and can be hit-tested.
func markComments(src string) string {
	return htmlComment.ReplaceAllStringFunc(src, func(c string) string {
		text := strings.Join(strings.Fields(htmlComment.FindStringSubmatch(c)[1]), " ")
		if text == "" {
			return ""
		}
		return "\n> " + CommentMarker + text + "\n"
	})
}
