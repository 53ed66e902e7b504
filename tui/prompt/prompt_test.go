package prompt

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/folio/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseZoomInput(t *testing.T) {
	tests := []struct {
		input   string
		want    menu.Zoom
		wantErr bool
	}{
		{input: "fit width", want: menu.FitWidth},
		{input: "150%", want: menu.Percent(150)},
		{input: " 75 ", want: menu.Percent(75)},
		{input: "9000", want: menu.Percent(9000)},
		{input: "1", want: menu.Percent(1)},
		{input: "0", wantErr: true},
		{input: "-5%", wantErr: true},
		{input: "big", wantErr: true},
		{input: "NaN", wantErr: true},
		{input: "-nan%", wantErr: true},
		{input: "inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseZoomInput(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePage(t *testing.T) {
	n, err := ParsePage(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = ParsePage("0")
	assert.Error(t, err)

	_, err = ParsePage("two")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# notes"), 0o644))

	assert.NoError(t, CustomZoomAction.validate("200%"))
	assert.Error(t, CustomZoomAction.validate(""))
	assert.Error(t, CustomZoomAction.validate("zoom"))

	assert.NoError(t, GotoPageAction.validate("3"))
	assert.Error(t, GotoPageAction.validate("-1"))

	assert.NoError(t, OpenFileAction.validate(path))
	assert.Error(t, OpenFileAction.validate(filepath.Join(dir, "missing.md")))
	assert.Error(t, OpenFileAction.validate(filepath.Join(dir, "image.png")))

	assert.NoError(t, SaveAsAction.validate(filepath.Join(dir, "copy.md")))
	assert.Error(t, SaveAsAction.validate(dir))
	assert.Error(t, SaveAsAction.validate(filepath.Join(dir, "missing", "copy.md")))
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "Custom zoom", CustomZoomAction.title())
	assert.Equal(t, "Go to page", GotoPageAction.title())
	assert.Equal(t, "Open document", OpenFileAction.title())
	assert.Equal(t, "unknown", Action(99).title())
}

func TestEscapeCancels(t *testing.T) {
	m := New(CustomZoomAction, "100%")
	m.SetSize(80, 24)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, CancelMsg{}, cmd())
}

func TestView(t *testing.T) {
	m := New(GotoPageAction, "4")
	m.SetSize(80, 24)
	m.Init()

	view := m.View()
	assert.Contains(t, view, "Go to page")
	assert.Contains(t, view, "Page number")
	assert.Equal(t, GotoPageAction, m.Action())
}

func TestZeroModel(t *testing.T) {
	var m Model

	assert.NotPanics(t, func() { m.SetSize(80, 24) })
	assert.Empty(t, m.View())
}
