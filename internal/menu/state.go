package menu

import "fmt"

// Flavor is the kind of window a menu belongs to.
type Flavor int

const (
	FlavorDocument Flavor = iota
	FlavorEbook
)

func (f Flavor) String() string {
	switch f {
	case FlavorDocument:
		return "document"
	case FlavorEbook:
		return "ebook"
	default:
		return fmt.Sprintf("flavor(%d)", int(f))
	}
}

// ParseFlavor is the inverse of Flavor.String.
func ParseFlavor(s string) (Flavor, error) {
	switch s {
	case "document", "doc":
		return FlavorDocument, nil
	case "ebook":
		return FlavorEbook, nil
	}
	return 0, fmt.Errorf("invalid flavor %q", s)
}

// Capabilities describe what the loaded document supports.
type Capabilities uint8

const (
	// CapContinuous allows pages to scroll continuously.
	CapContinuous Capabilities = 1 << iota
	// CapFacing allows two pages side by side.
	CapFacing
	CapPrint
	CapCopy
	CapToc
)

// WindowState is a read-only snapshot of a window, built fresh for every
// synchronization pass.
type WindowState struct {
	Zoom           Zoom
	Layout         Layout
	DocumentLoaded bool
	Caps           Capabilities

	// Debug is true in debug and pre-release builds.
	Debug bool

	Page      int
	PageCount int

	CanGoBack    bool
	CanGoForward bool
	HasSelection bool

	TocVisible     bool
	ToolbarVisible bool
	Fullscreen     bool
	HighlightLinks bool
}

// Can reports whether every capability in c is present.
func (s WindowState) Can(c Capabilities) bool {
	return s.DocumentLoaded && s.Caps&c == c
}
