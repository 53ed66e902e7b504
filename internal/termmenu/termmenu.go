// Package termmenu is the terminal implementation of the native menu
// primitives used by package menu.
package termmenu

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ionut-t/folio/internal/menu"
)

// ErrMenuFull is returned when a menu already holds Factory.MaxItems items.
var ErrMenuFull = errors.New("menu is full")

// Factory creates terminal menus. It implements menu.Native.
type Factory struct {
	// MaxItems caps the number of entries per menu. Zero means no limit.
	MaxItems int
}

func (f Factory) NewMenu() (menu.Container, error) {
	return &Menu{limit: f.MaxItems}, nil
}

// Menu is a terminal menu container.
type Menu struct {
	items []*Item
	limit int
}

// Item is one entry of a Menu.
type Item struct {
	id       menu.CommandID
	title    string
	sep      bool
	sub      *Menu
	checked  bool
	disabled bool
}

func (m *Menu) append(it *Item) error {
	if m.limit > 0 && len(m.items) >= m.limit {
		return ErrMenuFull
	}
	m.items = append(m.items, it)
	return nil
}

func (m *Menu) AppendItem(id menu.CommandID, title string) error {
	return m.append(&Item{id: id, title: title})
}

func (m *Menu) AppendSeparator() error {
	return m.append(&Item{sep: true})
}

func (m *Menu) AppendSubmenu(title string, sub menu.Container) error {
	s, ok := sub.(*Menu)
	if !ok {
		return fmt.Errorf("termmenu: cannot attach %T as submenu", sub)
	}
	return m.append(&Item{title: title, sub: s})
}

func (m *Menu) Items() []menu.Item {
	out := make([]menu.Item, len(m.items))
	for i, it := range m.items {
		out[i] = it
	}
	return out
}

// Entries returns the concrete items for rendering.
func (m *Menu) Entries() []*Item {
	return m.items
}

// Len returns the number of entries, separators included.
func (m *Menu) Len() int {
	return len(m.items)
}

func (it *Item) ID() menu.CommandID { return it.id }
func (it *Item) Title() string      { return it.title }
func (it *Item) IsSeparator() bool  { return it.sep }
func (it *Item) Checked() bool      { return it.checked }
func (it *Item) SetChecked(v bool)  { it.checked = v }
func (it *Item) Enabled() bool      { return !it.disabled }
func (it *Item) SetEnabled(v bool)  { it.disabled = !v }

func (it *Item) Submenu() menu.Container {
	if it.sub == nil {
		return nil
	}
	return it.sub
}

// Menu returns the submenu of a submenu parent, or nil.
func (it *Item) Menu() *Menu {
	return it.sub
}

// Label returns the title without access key markers and accelerator hint.
func (it *Item) Label() string {
	label, _ := splitTitle(it.title)
	return label
}

// Accelerator returns the keyboard hint after the tab in the title.
func (it *Item) Accelerator() string {
	_, accel := splitTitle(it.title)
	return accel
}

// AccessKey returns the lower-cased rune marked with '&', or zero.
func (it *Item) AccessKey() rune {
	text, _, _ := strings.Cut(it.title, "\t")
	runes := []rune(text)

	for i := 0; i < len(runes)-1; i++ {
		if runes[i] != '&' {
			continue
		}
		if runes[i+1] == '&' {
			i++
			continue
		}
		return unicode.ToLower(runes[i+1])
	}

	return 0
}

// Selectable reports whether the item can be activated.
func (it *Item) Selectable() bool {
	return !it.sep && !it.disabled
}

func splitTitle(title string) (string, string) {
	text, accel, _ := strings.Cut(title, "\t")

	var sb strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '&' && i+1 < len(runes) {
			i++
		}
		sb.WriteRune(runes[i])
	}

	return sb.String(), accel
}
