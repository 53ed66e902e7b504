package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/ionut-t/folio/internal/document"
	"github.com/ionut-t/folio/internal/menu"
	"github.com/ionut-t/folio/tui/menubar"
	"github.com/ionut-t/folio/tui/prompt"
	"github.com/ionut-t/folio/ui/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func longMarkdown() string {
	var sb strings.Builder
	sb.WriteString("<!-- remember this -->\n\nSee https://example.com/docs for details.\n\n")
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&sb, "Paragraph %d.\n\n", i)
	}
	return sb.String()
}

func newTestModel(t *testing.T) (model, *[]string) {
	t.Helper()

	copied := &[]string{}
	m := New(Options{
		Copy: func(s string) error {
			*copied = append(*copied, s)
			return nil
		},
		Markdown: func() *markdown.Renderer {
			return markdown.NewWithStyle("notty")
		},
	})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(model), copied
}

// send feeds msg and every message produced by the resulting commands back
// into the model. Batches are expanded; commands that do not return quickly,
// like ticks, are dropped.
func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()

	queue := []tea.Msg{msg}
	for len(queue) > 0 && len(queue) < 100 {
		next, cmd := m.Update(queue[0])
		m = next.(model)
		queue = append(queue[1:], run(cmd)...)
	}

	return m
}

func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(50 * time.Millisecond):
		return nil
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, run(c)...)
		}
		return out
	case documentOpenedMsg, documentFailedMsg, savedMsg,
		menubar.SelectedMsg, prompt.SubmittedMsg, prompt.CancelMsg:
		return []tea.Msg{msg}
	default:
		return nil
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "f10":
		return tea.KeyMsg{Type: tea.KeyF10}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		m = send(t, m, keyMsg(k))
	}
	return m
}

func openDoc(t *testing.T, m model, path string) model {
	t.Helper()

	doc, err := document.Open(path)
	require.NoError(t, err)

	return send(t, m, documentOpenedMsg{doc: doc})
}

func TestStartPage(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, viewStart, m.view)
	assert.Nil(t, m.currentWindow())

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Recent documents")
	assert.Contains(t, view, "File")
	assert.Contains(t, view, "No recent documents")
}

func TestResizeBeforeAnyPrompt(t *testing.T) {
	m := New(Options{Markdown: func() *markdown.Renderer { return markdown.NewWithStyle("notty") }})

	var next tea.Model
	require.NotPanics(t, func() {
		next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	})
	assert.Equal(t, 100, next.(model).width)

	require.NotPanics(t, func() {
		next, _ = next.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	})
	assert.Contains(t, ansi.Strip(next.View()), "Recent documents")
}

func TestPromptSurvivesResize(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", longMarkdown()))

	m = press(t, m, "z")
	require.True(t, m.isPromptActive)

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, m.isPromptActive)
	assert.Contains(t, ansi.Strip(m.View()), "Custom zoom")
}

func TestOpenDocument(t *testing.T) {
	m, _ := newTestModel(t)
	path := writeDoc(t, "notes.md", longMarkdown())

	m = openDoc(t, m, path)

	require.NotNil(t, m.currentWindow())
	assert.Equal(t, viewDocument, m.view)
	assert.Equal(t, menu.FlavorEbook, m.currentWindow().flavor())
	assert.Equal(t, recentFiles{{Path: path}}, m.recent)
	assert.Contains(t, ansi.Strip(m.View()), "notes.md")
}

func TestOpenFailure(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, openDocument(filepath.Join(t.TempDir(), "missing.md"))())

	assert.Nil(t, m.currentWindow())
	assert.NotEmpty(t, m.notification)
}

func TestShortcuts(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", longMarkdown()))
	w := m.currentWindow()

	m = press(t, m, "2")
	assert.Equal(t, menu.FitWidth, w.zoom)

	m = press(t, m, "7")
	assert.Equal(t, menu.LayoutFacing, w.layout)

	// not offered for reflowed documents
	m = press(t, m, "c")
	assert.Equal(t, menu.LayoutFacing, w.layout)

	m = press(t, m, "6", "n")
	assert.Equal(t, 2, w.page)

	// first page is not in the ebook menus
	m = press(t, m, "home")
	assert.Equal(t, 2, w.page)

	m = press(t, m, "p")
	assert.Equal(t, 1, w.page)

	m = press(t, m, "+")
	assert.Equal(t, menu.Percent(125), w.zoom)

	m = press(t, m, "t")
	assert.False(t, w.toolbar)
	assert.Equal(t, 1, m.bodyTop())
}

func TestMenuBar(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", longMarkdown()))
	w := m.currentWindow()

	m = press(t, m, "f10")
	require.True(t, m.menubar.IsOpen())

	// File, View, Go To, Zoom
	m = press(t, m, "l", "l", "l", "a")
	assert.False(t, m.menubar.IsOpen())
	assert.Equal(t, menu.ActualSize, w.zoom)
}

func TestMenuBarSynced(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", longMarkdown()))

	m = press(t, m, "2", "f10")

	it, ok := menu.Find(m.currentWindow().live, menu.IDZoomFitWidth)
	require.True(t, ok)
	assert.True(t, it.Checked())

	it, ok = menu.Find(m.currentWindow().live, menu.IDGotoPrevPage)
	require.True(t, ok)
	assert.False(t, it.Enabled())
}

func TestLeaderKey(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", longMarkdown()))
	w := m.currentWindow()

	// the leader tick is never delivered here
	next, cmd := m.Update(keyMsg("space"))
	require.NotNil(t, cmd)
	m = next.(model)
	require.True(t, m.leaderMgr.IsActive())

	m = press(t, m, "z")
	require.True(t, m.menubar.IsOpen())

	m = press(t, m, "w")
	assert.Equal(t, menu.FitWidth, w.zoom)
}

func TestCustomZoom(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", longMarkdown()))
	w := m.currentWindow()

	m = press(t, m, "z")
	require.True(t, m.isPromptActive)
	assert.Equal(t, prompt.CustomZoomAction, m.prompt.Action())

	m = send(t, m, prompt.SubmittedMsg{Action: prompt.CustomZoomAction, Value: "9000"})

	assert.False(t, m.isPromptActive)
	assert.Equal(t, menu.Percent(menu.ZoomMax), w.zoom)
}

func TestCustomZoomCancelled(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", longMarkdown()))
	w := m.currentWindow()

	m = press(t, m, "z", "esc")

	assert.False(t, m.isPromptActive)
	assert.Nil(t, m.zoomApply)
	assert.Equal(t, menu.FitPage, w.zoom)
}

func TestGotoPagePrompt(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", longMarkdown()))
	w := m.currentWindow()
	require.Greater(t, w.pages, 2)

	m.gotoWindow = w
	m = send(t, m, prompt.SubmittedMsg{Action: prompt.GotoPageAction, Value: "3"})

	assert.Nil(t, m.gotoWindow)
	assert.Equal(t, 3, w.page)
	assert.True(t, w.state().CanGoBack)

	m = send(t, m, prompt.SubmittedMsg{Action: prompt.GotoPageAction, Value: "nope"})
	assert.Equal(t, 3, w.page)
	assert.NotEmpty(t, m.notification)
}

func findRow(t *testing.T, w *window, text string) (int, int) {
	t.Helper()

	for row := 0; row < w.viewport.Height; row++ {
		line, ok := w.lineAt(row)
		if !ok {
			break
		}
		plain := ansi.Strip(line)
		if i := strings.Index(plain, text); i >= 0 {
			return ansi.StringWidth(plain[:i]), row
		}
	}

	t.Fatalf("%q not on screen", text)
	return 0, 0
}

func TestContextMenuOnLink(t *testing.T) {
	m, copied := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", longMarkdown()))
	w := m.currentWindow()

	x, row := findRow(t, w, "https://example.com/docs")

	m = send(t, m, tea.MouseMsg{X: x + 2, Y: m.bodyTop() + row, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	require.True(t, m.menubar.IsOpen())

	m = press(t, m, "enter")

	assert.False(t, m.menubar.IsOpen())
	assert.Equal(t, []string{"https://example.com/docs"}, *copied)
}

func TestContextMenuOnComment(t *testing.T) {
	m, copied := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", longMarkdown()))
	w := m.currentWindow()

	x, row := findRow(t, w, document.CommentMarker)

	m = send(t, m, tea.MouseMsg{X: x, Y: m.bodyTop() + row, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	require.True(t, m.menubar.IsOpen())

	m = press(t, m, "m")

	assert.Equal(t, []string{"remember this"}, *copied)
}

func TestContextMenuForwardsCommands(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", longMarkdown()))
	w := m.currentWindow()
	require.True(t, w.toolbar)

	m = press(t, m, "m")
	require.True(t, m.menubar.IsOpen())

	m = press(t, m, "t")

	assert.False(t, w.toolbar)
}

func TestContextMenuRoutesToOwner(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "first.md", "# first"))
	m = openDoc(t, m, writeDoc(t, "second.md", "# second"))
	first, second := m.windows[0], m.windows[1]
	require.Same(t, second, m.currentWindow())

	m = press(t, m, "m")
	require.True(t, m.menubar.IsOpen())

	// the current tab changes before the selection arrives
	m.current = 0
	m = press(t, m, "t")

	assert.True(t, first.toolbar)
	assert.False(t, second.toolbar)
}

func TestContextMenuOwnerClosed(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", "# notes"))
	w := m.currentWindow()

	m = send(t, m, menubar.SelectedMsg{
		ID:    menu.IDViewToolbar,
		Popup: &menu.Popup{Owner: uuid.NewString()},
	})

	assert.True(t, w.toolbar)
}

func TestSelection(t *testing.T) {
	m, copied := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", longMarkdown()))
	w := m.currentWindow()

	// nothing selected yet
	m = press(t, m, "y")
	assert.Empty(t, *copied)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	require.NotEmpty(t, w.selection)

	m = press(t, m, "y")
	require.Len(t, *copied, 1)
	assert.Contains(t, (*copied)[0], "Paragraph 40.")
}

func TestCloseReturnsToStartPage(t *testing.T) {
	m, _ := newTestModel(t)
	path := writeDoc(t, "notes.md", longMarkdown())
	m = openDoc(t, m, path)

	m = press(t, m, "q")

	assert.Equal(t, viewStart, m.view)
	assert.Empty(t, m.windows)
	assert.Contains(t, ansi.Strip(m.View()), "notes.md")
}

func TestStartPageContextMenu(t *testing.T) {
	m, _ := newTestModel(t)
	first := writeDoc(t, "first.md", "# first")
	second := writeDoc(t, "second.md", "# second")
	m = openDoc(t, m, first)
	m = openDoc(t, m, second)
	m = press(t, m, "q", "q")
	require.Equal(t, viewStart, m.view)
	require.Equal(t, recentFiles{{Path: second}, {Path: first}}, m.recent)

	// pin the second entry
	m = send(t, m, tea.MouseMsg{X: 4, Y: m.bodyTop() + startHeaderRows + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	require.True(t, m.menubar.IsOpen())
	m = press(t, m, "p")
	assert.Equal(t, recentFiles{{Path: first, Pinned: true}, {Path: second}}, m.recent)

	// choosing the pin item of a pinned file unpins it
	m = press(t, m, "m")
	require.True(t, m.menubar.IsOpen())
	m = press(t, m, "p")
	assert.Equal(t, recentFiles{{Path: first}, {Path: second}}, m.recent)

	m = press(t, m, "m", "r")
	assert.Equal(t, recentFiles{{Path: second}}, m.recent)

	m = press(t, m, "m", "o")
	require.NotNil(t, m.currentWindow())
	assert.Equal(t, second, m.currentWindow().doc.Path)
}

func TestStartPageContextMenuMissesEntries(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, tea.MouseMsg{X: 4, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	assert.False(t, m.menubar.IsOpen())
}

func TestTabs(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "first.md", "# first"))
	m = openDoc(t, m, writeDoc(t, "second.md", "# second"))
	require.Equal(t, 1, m.current)

	m = press(t, m, "tab")
	assert.Equal(t, 0, m.current)
	assert.Equal(t, "first.md", m.currentWindow().title())
}

func TestDialogs(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", "# notes"))

	m = send(t, m, menubar.SelectedMsg{ID: menu.IDProperties})
	assert.Contains(t, ansi.Strip(m.View()), "Properties")

	m = press(t, m, "esc")
	assert.Empty(t, m.dialog)

	m = send(t, m, menubar.SelectedMsg{ID: menu.IDAbout})
	assert.Contains(t, ansi.Strip(m.View()), "About folio")
}

func TestHelpView(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "?")
	assert.Equal(t, viewHelp, m.view)
	assert.Contains(t, ansi.Strip(m.View()), "Navigation")

	m = press(t, m, "esc")
	assert.Equal(t, viewStart, m.view)
}

func TestConfigReload(t *testing.T) {
	m, _ := newTestModel(t)
	m = openDoc(t, m, writeDoc(t, "notes.md", "# notes"))
	before := m.currentWindow().live

	m = send(t, m, ConfigChangedMsg{})

	assert.NotSame(t, before, m.currentWindow().live)
	assert.Equal(t, menu.Count(before), menu.Count(m.currentWindow().live))
}
