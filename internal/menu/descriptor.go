package menu

// Separator is the title of a separator descriptor.
const Separator = "-----"

// Descriptor is one immutable entry of a menu definition table.
type Descriptor struct {
	// Title is a reference resolved by the Translator. An '&' marks the
	// access key and a '\t' separates the accelerator hint.
	Title   string
	ID      CommandID
	Flags   Flags
	Submenu []Descriptor
}

func (d Descriptor) IsSeparator() bool {
	return d.Title == Separator
}

// IsSubmenu reports whether d is the parent of a nested table.
func (d Descriptor) IsSubmenu() bool {
	return d.ID == 0 && d.Submenu != nil
}
