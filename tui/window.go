package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/ionut-t/folio/internal/document"
	"github.com/ionut-t/folio/internal/menu"
	"github.com/ionut-t/folio/internal/termmenu"
	"github.com/ionut-t/folio/ui/markdown"
	"github.com/ionut-t/folio/ui/styles"
)

// window is one open document with its own menu bar.
type window struct {
	id   uuid.UUID
	doc  *document.Document
	live *termmenu.Menu
	md   *markdown.Renderer

	zoom   menu.Zoom
	layout menu.Layout

	// page is the first page shown, counting from 1.
	page  int
	pages int

	back, forward []int

	toolbar        bool
	fullscreen     bool
	toc            bool
	highlightLinks bool

	selection string
	// cursor is the body row used for keyboard context menus and selection.
	cursor int

	viewport viewport.Model
	lines    []string

	// ebook lines rendered at ebookWidth
	ebook      []string
	ebookWidth int

	// pageStarts holds the first line of every page in continuous layout.
	pageStarts []int

	err error

	width, height int
}

func newWindow(doc *document.Document, live *termmenu.Menu, md *markdown.Renderer, zoom menu.Zoom, layout menu.Layout) *window {
	w := &window{
		id:       uuid.New(),
		doc:      doc,
		live:     live,
		md:       md,
		zoom:     zoom,
		layout:   menu.LayoutSinglePage,
		page:     1,
		pages:    doc.Pages,
		toolbar:  true,
		viewport: viewport.New(0, 0),
	}

	w.setLayout(layout)

	return w
}

func (w *window) flavor() menu.Flavor {
	return w.doc.Flavor
}

func (w *window) title() string {
	return w.doc.Name()
}

func (w *window) state() menu.WindowState {
	return menu.WindowState{
		Zoom:           w.zoom,
		Layout:         w.layout,
		DocumentLoaded: w.doc != nil,
		Caps:           w.doc.Caps,
		Page:           w.page,
		PageCount:      w.pages,
		CanGoBack:      len(w.back) > 0,
		CanGoForward:   len(w.forward) > 0,
		HasSelection:   w.selection != "",
		TocVisible:     w.toc,
		ToolbarVisible: w.toolbar,
		Fullscreen:     w.fullscreen,
		HighlightLinks: w.highlightLinks,
	}
}

func (w *window) setSize(width, height int) {
	w.width = width
	w.height = height
	w.render()
}

func (w *window) setZoom(z menu.Zoom) {
	w.zoom = z
	w.render()
}

// setLayout switches layouts the document supports; others fall back to
// single page.
func (w *window) setLayout(l menu.Layout) {
	switch l {
	case menu.LayoutFacing, menu.LayoutBookView:
		if w.doc.Caps&menu.CapFacing == 0 || (l == menu.LayoutBookView && w.flavor() == menu.FlavorEbook) {
			l = menu.LayoutSinglePage
		}
	case menu.LayoutContinuous:
		if w.doc.Caps&menu.CapContinuous == 0 {
			l = menu.LayoutSinglePage
		}
	}

	w.layout = l
	w.page = w.alignPage(w.page)
	w.render()
}

// alignPage returns the first page of the spread containing page.
func (w *window) alignPage(page int) int {
	page = max(1, page)

	switch w.layout {
	case menu.LayoutFacing:
		return page - (page-1)%2
	case menu.LayoutBookView:
		if page == 1 {
			return 1
		}
		return page - page%2
	}

	return page
}

// spread returns the number of pages shown side by side at page.
func (w *window) spread(page int) int {
	switch w.layout {
	case menu.LayoutFacing:
		return 2
	case menu.LayoutBookView:
		if page == 1 {
			return 1
		}
		return 2
	}
	return 1
}

func (w *window) nextPage() {
	if next := w.page + w.spread(w.page); next <= w.pages {
		w.showPage(next)
	}
}

func (w *window) prevPage() {
	if w.page > 1 {
		w.showPage(w.alignPage(w.page - 1))
	}
}

// gotoPage jumps to page and records the jump for back navigation.
func (w *window) gotoPage(page int) {
	page = w.alignPage(min(max(page, 1), max(w.pages, 1)))
	if page == w.page {
		return
	}

	w.back = append(w.back, w.page)
	w.forward = nil
	w.showPage(page)
}

func (w *window) goBack() {
	if len(w.back) == 0 {
		return
	}

	page := w.back[len(w.back)-1]
	w.back = w.back[:len(w.back)-1]
	w.forward = append(w.forward, w.page)
	w.showPage(page)
}

func (w *window) goForward() {
	if len(w.forward) == 0 {
		return
	}

	page := w.forward[len(w.forward)-1]
	w.forward = w.forward[:len(w.forward)-1]
	w.back = append(w.back, w.page)
	w.showPage(page)
}

func (w *window) showPage(page int) {
	w.page = w.alignPage(page)

	if w.layout == menu.LayoutContinuous && w.page-1 < len(w.pageStarts) {
		w.viewport.SetYOffset(w.pageStarts[w.page-1])
		return
	}

	w.render()
}

// scroll moves the viewport. In continuous layout the current page follows.
func (w *window) scroll(lines int) {
	if lines > 0 {
		w.viewport.ScrollDown(lines)
	} else {
		w.viewport.ScrollUp(-lines)
	}

	if w.layout != menu.LayoutContinuous {
		return
	}

	for i, start := range w.pageStarts {
		if start <= w.viewport.YOffset {
			w.page = i + 1
		}
	}
}

func (w *window) moveCursor(delta int) {
	w.cursor = min(max(w.cursor+delta, 0), max(w.viewport.Height-1, 0))
}

func (w *window) tocWidth() int {
	if w.toc && w.doc.Caps&menu.CapToc != 0 {
		return 14
	}
	return 0
}

// textWidth is the number of columns a page of text is wrapped to.
func (w *window) textWidth(available int) int {
	const (
		baseColumns = 80
		minColumns  = 20
	)

	available = max(available, minColumns)

	switch w.zoom.Mode {
	case menu.ZoomExplicit:
		columns := int(baseColumns * 100 / w.zoom.Percent)
		return min(max(columns, minColumns), available)
	case menu.ZoomActualSize:
		return min(baseColumns, available)
	}

	return available
}

func (w *window) render() {
	if w.width <= 0 || w.height <= 0 {
		return
	}

	w.viewport.Width = w.width - w.tocWidth()
	w.viewport.Height = w.height
	w.pageStarts = nil
	w.err = nil

	if w.flavor() == menu.FlavorEbook {
		w.renderEbook()
	} else {
		w.renderDocument()
	}

	lines := w.lines
	if w.highlightLinks {
		link := func(s string) string { return styles.Link.Render(s) }
		lines = make([]string, len(w.lines))
		for i, line := range w.lines {
			lines[i] = document.HighlightLinks(line, link)
		}
	}

	w.viewport.SetContent(strings.Join(lines, "\n"))
	w.cursor = min(w.cursor, max(w.viewport.Height-1, 0))
}

func (w *window) renderEbook() {
	available := w.viewport.Width
	spread := w.spread(w.page)
	columnWidth := w.textWidth((available - (spread-1)*2) / spread)

	if w.ebook == nil || columnWidth != w.ebookWidth {
		out, err := w.md.Render(w.doc.Source, columnWidth)
		if err != nil {
			w.err = err
			out = w.doc.Source
		}
		w.ebook = strings.Split(strings.TrimRight(out, "\n"), "\n")
		w.ebookWidth = columnWidth
	}

	perPage := max(w.viewport.Height, 1)
	w.pages = max(1, (len(w.ebook)+perPage-1)/perPage)
	w.page = w.alignPage(min(w.page, w.pages))

	columns := make([]string, 0, spread)
	for p := w.page; p < w.page+spread && p <= w.pages; p++ {
		start := (p - 1) * perPage
		end := min(start+perPage, len(w.ebook))
		columns = append(columns, lipgloss.NewStyle().Width(columnWidth).Render(strings.Join(w.ebook[start:end], "\n")))
	}

	w.lines = strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, interleave(columns, "  ")...), "\n")
	w.viewport.SetYOffset(0)
}

func (w *window) renderDocument() {
	available := w.viewport.Width

	if w.layout == menu.LayoutContinuous {
		width := w.textWidth(available)
		w.lines = nil
		for p := 1; p <= w.pages; p++ {
			w.pageStarts = append(w.pageStarts, len(w.lines))
			w.lines = append(w.lines, strings.Split(w.pageBlock(p, width), "\n")...)
		}

		if w.page-1 < len(w.pageStarts) {
			w.viewport.SetContent(strings.Join(w.lines, "\n"))
			w.viewport.SetYOffset(w.pageStarts[w.page-1])
		}
		return
	}

	spread := w.spread(w.page)
	width := w.textWidth((available - (spread-1)*2) / spread)

	columns := make([]string, 0, spread)
	for p := w.page; p < w.page+spread && p <= w.pages; p++ {
		columns = append(columns, lipgloss.NewStyle().Width(width).Render(w.pageBlock(p, width)))
	}

	w.lines = strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, interleave(columns, "  ")...), "\n")
	w.viewport.SetYOffset(0)
}

// pageBlock renders the heading and text of one PDF page.
func (w *window) pageBlock(page, width int) string {
	heading := styles.Overlay1.Render(fmt.Sprintf("── page %d ", page) + strings.Repeat("─", max(0, width-12)))

	text, err := w.doc.PageText(page)
	if err != nil {
		w.err = err
		return heading + "\n" + styles.Error.Render(err.Error()) + "\n"
	}

	if strings.TrimSpace(text) == "" {
		text = styles.Subtext0.Render("(no text on this page)")
	}

	return heading + "\n" + styles.Wrap(width, text) + "\n"
}

func interleave(columns []string, gap string) []string {
	out := make([]string, 0, 2*len(columns))
	for i, c := range columns {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, c)
	}
	return out
}

// lineAt returns the content line shown at body row y, if any.
func (w *window) lineAt(y int) (string, bool) {
	i := w.viewport.YOffset + y
	if y < 0 || y >= w.viewport.Height || i < 0 || i >= len(w.lines) {
		return "", false
	}
	return w.lines[i], true
}

// hitTest hit-tests body coordinates.
func (w *window) hitTest(x, y int) menu.Hit {
	x -= w.tocWidth()
	if x < 0 {
		return menu.Hit{Kind: menu.HitNone}
	}

	line, ok := w.lineAt(y)
	if !ok {
		return menu.Hit{Kind: menu.HitPage}
	}

	return document.HitLine(line, x)
}

// selectLine selects the text of body row y; selecting it again clears the
// selection.
func (w *window) selectLine(y int) {
	line, ok := w.lineAt(y)
	if !ok {
		w.selection = ""
		return
	}

	text := strings.TrimSpace(ansi.Strip(line))
	if text == w.selection {
		text = ""
	}
	w.selection = text
}

func (w *window) selectAll() {
	var sb strings.Builder

	switch w.flavor() {
	case menu.FlavorEbook:
		sb.WriteString(w.doc.Source)
	default:
		for p := 1; p <= w.pages; p++ {
			text, err := w.doc.PageText(p)
			if err != nil {
				continue
			}
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}

	w.selection = strings.TrimSpace(sb.String())
}

func (w *window) view() string {
	body := w.viewport.View()

	if w.cursor >= 0 && w.selection != "" {
		rows := strings.Split(body, "\n")
		if line, ok := w.lineAt(w.cursor); ok && strings.TrimSpace(ansi.Strip(line)) == w.selection && w.cursor < len(rows) {
			rows[w.cursor] = styles.Highlight.Render(ansi.Strip(rows[w.cursor]))
		}
		body = strings.Join(rows, "\n")
	}

	if width := w.tocWidth(); width > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, w.renderToc(width), body)
	}

	return body
}

func (w *window) renderToc(width int) string {
	rows := make([]string, 0, w.height)

	first := max(0, min(w.page-1-w.height/2, w.pages-w.height))
	for p := first + 1; p <= w.pages && len(rows) < w.height; p++ {
		style := styles.Subtext0
		if p >= w.page && p < w.page+w.spread(w.page) {
			style = styles.Primary.Bold(true)
		}
		rows = append(rows, style.Render(fmt.Sprintf(" Page %d", p)))
	}

	return lipgloss.NewStyle().
		Width(width-1).
		Height(w.height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(styles.Overlay0.GetForeground()).
		Render(strings.Join(rows, "\n"))
}
