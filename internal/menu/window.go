package menu

// HitKind describes what lies under a screen point.
type HitKind int

const (
	HitNone HitKind = iota
	HitPage
	HitLink
	HitComment
	HitRecentFile
)

// Hit is the result of hit-testing a window at a screen point.
type Hit struct {
	Kind HitKind
	// Value is the link target, comment text or recent file path.
	Value string
	// Pinned is set for a pinned recent file.
	Pinned bool
}

// Window is the state accessor every menu operation needs.
type Window interface {
	Flavor() Flavor
	State() WindowState
}

// ContextWindow can display popup menus and execute commands.
type ContextWindow interface {
	Window
	HitTest(x, y int) Hit
	// Popup displays p anchored at p.X, p.Y. The selected command, if any,
	// comes back through Menus.HandleContextCommand.
	Popup(p *Popup) error
	Command(id CommandID)
}

// RecentFiles is implemented by windows showing the start page.
type RecentFiles interface {
	OpenRecent(path string)
	SetPinned(path string, pinned bool)
	ForgetRecent(path string)
}

// ZoomWindow can change its zoom.
type ZoomWindow interface {
	Window
	ZoomTo(z Zoom)
	// PromptZoom asks for an explicit zoom starting from current and calls
	// apply once the user confirms. Cancelling never calls apply.
	PromptZoom(current Zoom, apply func(Zoom))
}

// LayoutWindow can change its layout.
type LayoutWindow interface {
	Window
	SetLayout(l Layout)
}

// Popup is a transient menu built for one right click.
type Popup struct {
	Menu Container
	X, Y int
	Hit  Hit
	// Start is set for the start page menu.
	Start bool
	// Owner identifies the window that opened the popup. Selections are
	// routed back to it.
	Owner string
}
