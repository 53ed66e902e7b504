package menu

// Native creates empty platform menus.
type Native interface {
	NewMenu() (Container, error)
}

// Container is a live, platform-owned menu.
type Container interface {
	AppendItem(id CommandID, title string) error
	AppendSeparator() error
	AppendSubmenu(title string, sub Container) error
	Items() []Item
}

// Item is one entry of a live Container. Separators and submenu parents
// report a zero ID.
type Item interface {
	ID() CommandID
	Title() string
	IsSeparator() bool
	// Submenu returns nil for anything but a submenu parent.
	Submenu() Container
	Checked() bool
	SetChecked(bool)
	Enabled() bool
	SetEnabled(bool)
}

// Walk calls fn for every item reachable from c, depth first, in menu order.
func Walk(c Container, fn func(Item)) {
	for _, it := range c.Items() {
		fn(it)
		if s := it.Submenu(); s != nil {
			Walk(s, fn)
		}
	}
}

// Find returns the first item with the given command identifier.
func Find(c Container, id CommandID) (Item, bool) {
	var found Item
	Walk(c, func(it Item) {
		if found == nil && it.ID() == id {
			found = it
		}
	})
	return found, found != nil
}

// SetChecked sets the checked state of the item with the given identifier,
// if present.
func SetChecked(c Container, id CommandID, checked bool) {
	if it, ok := Find(c, id); ok {
		it.SetChecked(checked)
	}
}

// SetEnabled sets the enabled state of the item with the given identifier,
// if present.
func SetEnabled(c Container, id CommandID, enabled bool) {
	if it, ok := Find(c, id); ok {
		it.SetEnabled(enabled)
	}
}

// Count returns the number of command items in c and its submenus.
func Count(c Container) int {
	n := 0
	Walk(c, func(it Item) {
		if it.ID() != 0 {
			n++
		}
	})
	return n
}
