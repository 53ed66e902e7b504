package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/folio/internal/config"
	"github.com/ionut-t/folio/internal/document"
	"github.com/ionut-t/folio/internal/version"
	"github.com/ionut-t/folio/pkg/utils"
	"github.com/ionut-t/folio/ui/overlay"
	statusbar "github.com/ionut-t/folio/ui/status-bar"
	"github.com/ionut-t/folio/ui/styles"
)

// chrome returns the rows taken above and below the body of w.
func chrome(w *window) (top, bottom int) {
	switch {
	case w == nil:
		return 1, 1
	case w.fullscreen:
		return 0, 0
	case w.toolbar:
		return 2, 1
	}
	return 1, 1
}

func (m *model) showsChrome() bool {
	w := m.currentWindow()
	return w == nil || !w.fullscreen
}

// bodyTop is the screen row of the first body line.
func (m *model) bodyTop() int {
	top, _ := chrome(m.currentWindow())
	return top
}

func (m *model) sizeWindow(w *window) {
	top, bottom := chrome(w)
	w.setSize(m.width, max(m.height-top-bottom, 1))
}

func (m *model) updateSize() {
	for _, w := range m.windows {
		m.sizeWindow(w)
	}
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.isPromptActive {
		return m.prompt.View()
	}

	if m.view == viewHelp {
		return m.help.View()
	}

	screen := m.renderScreen()

	if m.dialog != "" {
		screen = overlay.Compose(screen, m.width, m.height, m.dialog, overlay.Placement{
			Horizontal: lipgloss.Center,
			Vertical:   lipgloss.Center,
		})
	}

	if m.menubar.IsOpen() {
		screen = m.menubar.View(screen)
	}

	return screen
}

func (m *model) renderScreen() string {
	w := m.currentWindow()
	top, bottom := chrome(w)
	height := max(m.height-top-bottom, 1)

	rows := make([]string, 0, 4)

	if m.showsChrome() {
		rows = append(rows, m.menubar.BarView(m.width))
	}

	if w != nil && top == 2 {
		rows = append(rows, m.renderToolbar(w))
	}

	var body string
	if w != nil {
		body = w.view()
	} else {
		body = m.renderStart()
	}

	rows = append(rows, lipgloss.NewStyle().
		Width(m.width).
		MaxWidth(m.width).
		Height(height).
		MaxHeight(height).
		Render(body))

	if bottom > 0 {
		rows = append(rows, m.renderStatusBar(w))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *model) renderToolbar(w *window) string {
	bg := styles.Surface0.GetBackground()

	var tabs strings.Builder
	for _, other := range m.windows {
		style := styles.Surface1.Foreground(styles.Subtext1.GetForeground()).Padding(0, 1)
		if other == w {
			style = styles.Highlight.Padding(0, 1)
		}
		tabs.WriteString(style.Render(other.title()))
	}

	controls := styles.Text.Background(bg).Render(fmt.Sprintf(" ◀ p  %d / %d  n ▶   - %s +   %s ",
		w.page, w.pages, w.zoom, w.layout))

	spaces := styles.Surface0.Render(strings.Repeat(" ", max(0, m.width-lipgloss.Width(tabs.String())-lipgloss.Width(controls))))

	return styles.Surface0.Width(m.width).MaxWidth(m.width).Render(tabs.String() + spaces + controls)
}

func (m *model) renderStatusBar(w *window) string {
	if m.notification != "" {
		return lipgloss.NewStyle().Width(m.width).MaxWidth(m.width).Padding(0, 1).Render(m.notification)
	}

	if w == nil {
		return statusbar.StatusBarView(statusbar.Info{Name: "folio"}, m.width)
	}

	if w.err != nil {
		return styles.Error.Width(m.width).MaxWidth(m.width).Padding(0, 1).Render(w.err.Error())
	}

	return statusbar.StatusBarView(statusbar.Info{
		Name:   w.title(),
		Flavor: w.flavor().String(),
		Page:   w.page,
		Pages:  w.pages,
		Zoom:   w.zoom.String(),
		Layout: w.layout.String(),
	}, m.width)
}

func (m *model) renderStart() string {
	rows := []string{
		styles.Primary.Bold(true).Render("folio") + " " + styles.Subtext0.Render(version.Version()),
		styles.Subtext1.Render("Recent documents"),
		"",
	}

	if len(m.recent) == 0 {
		rows = append(rows, styles.Subtext0.Render("No recent documents. Press ctrl+o to open one."))
	}

	for i, rf := range m.recent {
		marker := "  "
		if rf.Pinned {
			marker = "● "
		}

		line := marker + utils.ShortenPath(rf.Path, max(m.width-4, 1))
		if i == m.startCursor {
			rows = append(rows, styles.Highlight.Render(line))
		} else {
			rows = append(rows, styles.Text.Render(line))
		}
	}

	return strings.Join(rows, "\n")
}

func dialogBox(title string, lines []string) string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Primary.Bold(true).MarginBottom(1).Render(title),
		strings.Join(lines, "\n"),
		styles.Overlay1.MarginTop(1).Render("Press esc to close"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Primary.GetForeground()).
		Padding(1, 2).
		Render(content)
}

func renderProperties(doc *document.Document) string {
	props := doc.Properties()

	width := 0
	for _, p := range props {
		width = max(width, lipgloss.Width(p.Name))
	}

	lines := make([]string, 0, len(props))
	for _, p := range props {
		name := styles.Subtext0.Render(p.Name + strings.Repeat(" ", width-lipgloss.Width(p.Name)))
		lines = append(lines, name+"  "+styles.Text.Render(utils.ShortenPath(p.Value, 50)))
	}

	return dialogBox("Properties", lines)
}

func (m *model) renderAbout() string {
	return dialogBox("About folio", []string{
		styles.Text.Render("Version:    " + version.Version()),
		styles.Text.Render("Commit:     " + version.Commit()),
		styles.Text.Render("Built:      " + version.Date()),
		styles.Text.Render("Language:   " + config.GetLanguage()),
		styles.Text.Render("Debug menu: " + toggleStatus(m.menus.Debug())),
	})
}
