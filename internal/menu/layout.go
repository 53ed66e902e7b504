package menu

import (
	"fmt"
	"strings"
)

// Layout is a page layout mode.
type Layout int

const (
	LayoutSinglePage Layout = iota
	LayoutFacing
	LayoutBookView
	LayoutContinuous
)

var layouts = [...]Layout{
	LayoutSinglePage,
	LayoutFacing,
	LayoutBookView,
	LayoutContinuous,
}

var _ [0]struct{} = [int(LayoutLast-LayoutFirst+1) - len(layouts)]struct{}{}

// LayoutRange is the layout command range.
var LayoutRange = newRange("layout", LayoutFirst, LayoutLast, layouts[:])

// IdentifierFromLayout returns the command standing for l. Every Layout
// constant has one; anything else panics.
func IdentifierFromLayout(l Layout) CommandID {
	id, ok := LayoutRange.ID(l)
	if !ok {
		panic(fmt.Sprintf("menu: unknown layout %d", int(l)))
	}
	return id
}

// LayoutFromIdentifier is the inverse of IdentifierFromLayout. id must lie in
// LayoutRange.
func LayoutFromIdentifier(id CommandID) Layout {
	return LayoutRange.Value(id)
}

func (l Layout) String() string {
	switch l {
	case LayoutSinglePage:
		return "single page"
	case LayoutFacing:
		return "facing"
	case LayoutBookView:
		return "book view"
	case LayoutContinuous:
		return "continuous"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// ParseLayout accepts the names printed by Layout.String, with dashes or
// underscores in place of spaces.
func ParseLayout(s string) (Layout, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	for _, l := range layouts {
		if l.String() == name {
			return l, nil
		}
	}

	switch name {
	case "single":
		return LayoutSinglePage, nil
	case "book":
		return LayoutBookView, nil
	}

	return 0, fmt.Errorf("invalid layout %q", s)
}
