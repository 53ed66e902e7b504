package tui

import (
	"testing"

	"github.com/ionut-t/folio/internal/document"
	"github.com/ionut-t/folio/internal/menu"
	"github.com/ionut-t/folio/internal/termmenu"
	"github.com/ionut-t/folio/ui/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagedWindow(pages int, layout menu.Layout) *window {
	doc := &document.Document{
		Path:   "/tmp/manual.pdf",
		Flavor: menu.FlavorDocument,
		Caps:   menu.CapContinuous | menu.CapFacing | menu.CapPrint | menu.CapCopy | menu.CapToc,
		Pages:  pages,
	}
	return newWindow(doc, &termmenu.Menu{}, markdown.NewWithStyle("notty"), menu.FitPage, layout)
}

func TestWindowPaging(t *testing.T) {
	w := pagedWindow(10, menu.LayoutSinglePage)
	require.Equal(t, 1, w.page)

	w.prevPage()
	assert.Equal(t, 1, w.page)

	w.nextPage()
	w.nextPage()
	assert.Equal(t, 3, w.page)
	assert.False(t, w.state().CanGoBack, "sequential paging is not history")

	w.gotoPage(10)
	w.nextPage()
	assert.Equal(t, 10, w.page)

	w.gotoPage(42)
	assert.Equal(t, 10, w.page)
}

func TestWindowHistory(t *testing.T) {
	w := pagedWindow(10, menu.LayoutSinglePage)

	w.gotoPage(5)
	w.gotoPage(8)
	assert.Equal(t, []int{1, 5}, w.back)

	w.goBack()
	assert.Equal(t, 5, w.page)
	assert.True(t, w.state().CanGoForward)

	w.goBack()
	assert.Equal(t, 1, w.page)
	assert.False(t, w.state().CanGoBack)

	w.goForward()
	assert.Equal(t, 5, w.page)

	// a new jump drops the forward history
	w.gotoPage(2)
	assert.False(t, w.state().CanGoForward)

	w.goForward()
	assert.Equal(t, 2, w.page)
}

func TestWindowSpreads(t *testing.T) {
	tests := []struct {
		name   string
		layout menu.Layout
		page   int
		want   int
		spread int
	}{
		{name: "single", layout: menu.LayoutSinglePage, page: 4, want: 4, spread: 1},
		{name: "facing odd", layout: menu.LayoutFacing, page: 3, want: 3, spread: 2},
		{name: "facing even", layout: menu.LayoutFacing, page: 4, want: 3, spread: 2},
		{name: "book first", layout: menu.LayoutBookView, page: 1, want: 1, spread: 1},
		{name: "book odd", layout: menu.LayoutBookView, page: 5, want: 4, spread: 2},
		{name: "book even", layout: menu.LayoutBookView, page: 4, want: 4, spread: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := pagedWindow(10, tt.layout)
			w.gotoPage(tt.page)

			assert.Equal(t, tt.want, w.page)
			assert.Equal(t, tt.spread, w.spread(w.page))
		})
	}
}

func TestWindowFacingNavigation(t *testing.T) {
	w := pagedWindow(5, menu.LayoutFacing)

	w.nextPage()
	assert.Equal(t, 3, w.page)

	w.nextPage()
	assert.Equal(t, 5, w.page)

	w.nextPage()
	assert.Equal(t, 5, w.page)

	w.prevPage()
	assert.Equal(t, 3, w.page)
}

func TestWindowLayoutFallback(t *testing.T) {
	w := pagedWindow(4, menu.LayoutContinuous)
	assert.Equal(t, menu.LayoutContinuous, w.layout)

	w.doc.Caps = menu.CapCopy
	w.setLayout(menu.LayoutFacing)
	assert.Equal(t, menu.LayoutSinglePage, w.layout)

	w.setLayout(menu.LayoutContinuous)
	assert.Equal(t, menu.LayoutSinglePage, w.layout)

	ebook := &document.Document{Path: "notes.md", Flavor: menu.FlavorEbook, Caps: menu.CapFacing | menu.CapCopy}
	e := newWindow(ebook, &termmenu.Menu{}, markdown.NewWithStyle("notty"), menu.FitPage, menu.LayoutBookView)
	assert.Equal(t, menu.LayoutSinglePage, e.layout)

	e.setLayout(menu.LayoutFacing)
	assert.Equal(t, menu.LayoutFacing, e.layout)
}

func TestWindowTextWidth(t *testing.T) {
	tests := []struct {
		zoom      menu.Zoom
		available int
		want      int
	}{
		{zoom: menu.FitPage, available: 120, want: 120},
		{zoom: menu.FitWidth, available: 60, want: 60},
		{zoom: menu.ActualSize, available: 120, want: 80},
		{zoom: menu.ActualSize, available: 50, want: 50},
		{zoom: menu.Percent(100), available: 120, want: 80},
		{zoom: menu.Percent(200), available: 120, want: 40},
		{zoom: menu.Percent(6400), available: 120, want: 20},
		{zoom: menu.Percent(50), available: 120, want: 120},
		{zoom: menu.FitPage, available: 5, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.zoom.String(), func(t *testing.T) {
			w := pagedWindow(1, menu.LayoutSinglePage)
			w.zoom = tt.zoom

			assert.Equal(t, tt.want, w.textWidth(tt.available))
		})
	}
}

func TestWindowState(t *testing.T) {
	w := pagedWindow(3, menu.LayoutFacing)
	w.selection = "text"
	w.toc = true

	s := w.state()

	assert.True(t, s.DocumentLoaded)
	assert.Equal(t, menu.LayoutFacing, s.Layout)
	assert.Equal(t, menu.FitPage, s.Zoom)
	assert.Equal(t, 3, s.PageCount)
	assert.True(t, s.HasSelection)
	assert.True(t, s.TocVisible)
	assert.True(t, s.ToolbarVisible)
	assert.False(t, s.Fullscreen)
}

func TestWindowHitTest(t *testing.T) {
	w := pagedWindow(1, menu.LayoutSinglePage)
	w.lines = []string{
		"plain text",
		"see https://example.com/a.",
		"│ " + document.CommentMarker + "check this",
	}
	w.viewport.Height = 5
	w.toc = true

	width := w.tocWidth()
	require.Equal(t, 14, width)

	assert.Equal(t, menu.HitNone, w.hitTest(3, 0).Kind)
	assert.Equal(t, menu.HitPage, w.hitTest(width+2, 0).Kind)

	hit := w.hitTest(width+6, 1)
	assert.Equal(t, menu.Hit{Kind: menu.HitLink, Value: "https://example.com/a"}, hit)

	hit = w.hitTest(width, 2)
	assert.Equal(t, menu.Hit{Kind: menu.HitComment, Value: "check this"}, hit)

	assert.Equal(t, menu.HitPage, w.hitTest(width, 4).Kind)
}

func TestWindowSelectLine(t *testing.T) {
	w := pagedWindow(1, menu.LayoutSinglePage)
	w.lines = []string{"  first line  ", "second"}
	w.viewport.Height = 3

	w.selectLine(0)
	assert.Equal(t, "first line", w.selection)

	w.selectLine(0)
	assert.Empty(t, w.selection)

	w.selectLine(1)
	assert.Equal(t, "second", w.selection)

	w.selectLine(2)
	assert.Empty(t, w.selection)
}

func TestEbookPagination(t *testing.T) {
	doc, err := document.Open(writeDoc(t, "notes.md", longMarkdown()))
	require.NoError(t, err)

	w := newWindow(doc, &termmenu.Menu{}, markdown.NewWithStyle("notty"), menu.FitPage, menu.LayoutSinglePage)
	w.setSize(60, 10)

	require.Greater(t, w.pages, 5)
	assert.Len(t, w.lines, 10)

	w.nextPage()
	assert.Equal(t, 2, w.page)

	w.setLayout(menu.LayoutFacing)
	assert.Equal(t, 1, w.page)
	assert.Equal(t, 29, w.ebookWidth)
	assert.Len(t, w.lines, 10)

	w.nextPage()
	assert.Equal(t, 3, w.page)
}
