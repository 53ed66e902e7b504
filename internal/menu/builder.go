package menu

import "fmt"

// Translator resolves a title reference to its display string.
type Translator interface {
	Translate(title string) string
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(string) string

func (f TranslatorFunc) Translate(title string) string {
	return f(title)
}

// Builder turns definition tables into live menus.
type Builder struct {
	native Native
	tr     Translator
	denied Flags
}

// NewBuilder creates a builder. A nil translator leaves titles untouched.
func NewBuilder(native Native, tr Translator) *Builder {
	return &Builder{native: native, tr: tr}
}

// Deny makes b skip every descriptor needing one of the given permissions,
// whatever the filter.
func (b *Builder) Deny(perms Flags) *Builder {
	b.denied = perms & AllPermissions
	return b
}

// Build appends every descriptor of table included under filter to c, in
// table order, and returns c. Excluded descriptors are never added.
// Submenus are built recursively with the same filter. On error c is left
// partially populated and must be discarded.
func (b *Builder) Build(table []Descriptor, c Container, filter Flags) (Container, error) {
	for _, d := range table {
		if d.Flags&b.denied != 0 || !Included(d.Flags, filter) {
			continue
		}

		switch {
		case d.IsSeparator():
			if err := c.AppendSeparator(); err != nil {
				return nil, fmt.Errorf("%w: append separator: %w", ErrNativeMenu, err)
			}

		case d.IsSubmenu():
			sub, err := b.native.NewMenu()
			if err != nil {
				return nil, fmt.Errorf("%w: create submenu %q: %w", ErrNativeMenu, d.Title, err)
			}

			if _, err := b.Build(d.Submenu, sub, filter); err != nil {
				return nil, err
			}

			if err := c.AppendSubmenu(b.title(d), sub); err != nil {
				return nil, fmt.Errorf("%w: append submenu %q: %w", ErrNativeMenu, d.Title, err)
			}

		default:
			if err := c.AppendItem(d.ID, b.title(d)); err != nil {
				return nil, fmt.Errorf("%w: append item %d: %w", ErrNativeMenu, d.ID, err)
			}
		}
	}

	return c, nil
}

// New creates an empty native menu and builds table into it.
func (b *Builder) New(table []Descriptor, filter Flags) (Container, error) {
	root, err := b.native.NewMenu()
	if err != nil {
		return nil, fmt.Errorf("%w: create menu: %w", ErrNativeMenu, err)
	}

	return b.Build(table, root, filter)
}

func (b *Builder) title(d Descriptor) string {
	if b.tr == nil || d.Flags&FlagNoTranslate != 0 {
		return d.Title
	}
	return b.tr.Translate(d.Title)
}
