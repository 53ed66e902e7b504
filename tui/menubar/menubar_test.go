package menubar

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/ionut-t/folio/internal/menu"
	"github.com/ionut-t/folio/internal/termmenu"
	"github.com/ionut-t/folio/ui/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBar = []menu.Descriptor{
	{Title: "&File", Submenu: []menu.Descriptor{
		{Title: "&Open\tCtrl+O", ID: menu.IDOpen},
		{Title: menu.Separator},
		{Title: "E&xit", ID: menu.IDExit},
	}},
	{Title: "&View", Submenu: []menu.Descriptor{
		{Title: "&Facing", ID: menu.IDViewFacing},
		{Title: "&More", Submenu: []menu.Descriptor{
			{Title: "&Toolbar", ID: menu.IDViewToolbar},
		}},
	}},
}

func build(t *testing.T, table []menu.Descriptor) *termmenu.Menu {
	t.Helper()

	c, err := menu.NewBuilder(termmenu.Factory{}, nil).New(table, 0)
	require.NoError(t, err)

	return c.(*termmenu.Menu)
}

func newModel(t *testing.T) Model {
	m := New()
	m.SetSize(80, 24)
	m.SetBar(build(t, testBar))
	return m
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) (Model, tea.Msg) {
	var msg tea.Msg
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(keyPress(k))
		if cmd != nil {
			msg = cmd()
		}
	}
	return m, msg
}

func TestClosedIgnoresInput(t *testing.T) {
	m := newModel(t)

	m, msg := press(m, "enter")

	assert.False(t, m.IsOpen())
	assert.Nil(t, msg)
}

func TestSelectWithArrows(t *testing.T) {
	m := newModel(t)
	m.OpenBar(0)
	require.True(t, m.IsOpen())

	m, msg := press(m, "down", "enter")

	assert.Equal(t, SelectedMsg{ID: menu.IDExit}, msg)
	assert.False(t, m.IsOpen())
}

func TestCursorWraps(t *testing.T) {
	m := newModel(t)
	m.OpenBar(0)

	m, msg := press(m, "up", "enter")

	assert.Equal(t, SelectedMsg{ID: menu.IDExit}, msg)
	assert.False(t, m.IsOpen())
}

func TestSelectWithAccessKey(t *testing.T) {
	m := newModel(t)
	m.OpenBar(0)

	_, msg := press(m, "x")

	assert.Equal(t, SelectedMsg{ID: menu.IDExit}, msg)
}

func TestDisabledItemIgnored(t *testing.T) {
	bar := build(t, testBar)
	menu.SetEnabled(bar, menu.IDExit, false)

	m := New()
	m.SetSize(80, 24)
	m.SetBar(bar)
	m.OpenBar(0)

	m, msg := press(m, "x")
	assert.Nil(t, msg)
	assert.True(t, m.IsOpen())

	// the cursor stops on disabled items but cannot activate them
	m, msg = press(m, "down", "enter")
	assert.Nil(t, msg)
	assert.True(t, m.IsOpen())
}

func TestSwitchMenus(t *testing.T) {
	m := newModel(t)
	m.OpenBar(0)

	m, _ = press(m, "right")
	assert.Equal(t, 1, m.open)

	m, _ = press(m, "right")
	assert.Equal(t, 0, m.open)

	m, _ = press(m, "left")
	assert.Equal(t, 1, m.open)
}

func TestSubmenu(t *testing.T) {
	m := newModel(t)
	m.OpenBar(1)

	m, _ = press(m, "down", "right")
	require.Len(t, m.stack, 2)

	m, _ = press(m, "esc")
	require.Len(t, m.stack, 1)
	assert.True(t, m.IsOpen())

	m, msg := press(m, "enter", "enter")
	assert.Equal(t, SelectedMsg{ID: menu.IDViewToolbar}, msg)
	assert.False(t, m.IsOpen())
}

func TestEscapeCloses(t *testing.T) {
	m := newModel(t)
	m.OpenBar(0)

	m, msg := press(m, "esc")

	assert.Equal(t, ClosedMsg{}, msg)
	assert.False(t, m.IsOpen())
}

func TestOpenBarOutOfRange(t *testing.T) {
	m := newModel(t)

	m.OpenBar(5)
	assert.False(t, m.IsOpen())

	m.OpenBar(-1)
	assert.False(t, m.IsOpen())
}

func TestShowPopup(t *testing.T) {
	m := newModel(t)
	p := &menu.Popup{Menu: build(t, testBar[0].Submenu), X: 2, Y: 2}

	require.NoError(t, m.ShowPopup(p))
	assert.True(t, m.IsOpen())

	_, msg := press(m, "enter")
	assert.Equal(t, SelectedMsg{ID: menu.IDOpen, Popup: p}, msg)
}

func TestShowPopupTooLarge(t *testing.T) {
	m := newModel(t)
	m.SetSize(10, 3)

	err := m.ShowPopup(&menu.Popup{Menu: build(t, testBar[0].Submenu)})

	require.Error(t, err)
	assert.True(t, errors.Is(err, overlay.ErrDoesNotFit))
	assert.False(t, m.IsOpen())
}

type otherMenu struct{ menu.Container }

func TestShowPopupForeignMenu(t *testing.T) {
	m := newModel(t)

	err := m.ShowPopup(&menu.Popup{Menu: otherMenu{}})

	require.Error(t, err)
	assert.False(t, m.IsOpen())
}

func TestMouse(t *testing.T) {
	m := newModel(t)
	p := &menu.Popup{Menu: build(t, testBar[0].Submenu), X: 2, Y: 2}
	require.NoError(t, m.ShowPopup(p))

	// border row
	m, cmd := m.Update(tea.MouseMsg{X: 5, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.True(t, m.IsOpen())

	// separator row
	m, cmd = m.Update(tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)

	m, cmd = m.Update(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	require.NotNil(t, cmd)
	assert.Equal(t, SelectedMsg{ID: menu.IDOpen, Popup: p}, cmd())
	assert.False(t, m.IsOpen())
}

func TestMouseOutsideCloses(t *testing.T) {
	m := newModel(t)
	require.NoError(t, m.ShowPopup(&menu.Popup{Menu: build(t, testBar[0].Submenu), X: 2, Y: 2}))

	m, cmd := m.Update(tea.MouseMsg{X: 60, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	require.NotNil(t, cmd)
	assert.Equal(t, ClosedMsg{}, cmd())
	assert.False(t, m.IsOpen())
}

func TestMouseOnBar(t *testing.T) {
	m := newModel(t)
	m.OpenBar(0)

	m, cmd := m.Update(tea.MouseMsg{X: 7, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.open)
}

func TestTitleAt(t *testing.T) {
	m := newModel(t)

	i, ok := m.TitleAt(0)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	// " File " is six cells wide
	i, ok = m.TitleAt(6)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = m.TitleAt(50)
	assert.False(t, ok)
}

func TestIndexOfAccessKey(t *testing.T) {
	m := newModel(t)

	i, ok := m.IndexOfAccessKey('v')
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = m.IndexOfAccessKey('q')
	assert.False(t, ok)
}

func TestView(t *testing.T) {
	bar := build(t, testBar)
	menu.SetChecked(bar, menu.IDViewFacing, true)

	m := New()
	m.SetSize(80, 24)
	m.SetBar(bar)

	assert.Contains(t, ansi.Strip(m.BarView(80)), "File  View")

	m.OpenBar(1)
	view := ansi.Strip(m.View(strings.Repeat("\n", 23)))

	assert.Contains(t, view, "✓ Facing")
	assert.Regexp(t, `More\s+›`, view)
	assert.NotContains(t, view, "&")
}

func TestViewAccelerator(t *testing.T) {
	m := newModel(t)
	m.OpenBar(0)

	view := ansi.Strip(m.View(""))

	assert.Contains(t, view, "Open  Ctrl+O")
	assert.Contains(t, view, "Exit")
}
