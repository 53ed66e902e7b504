// Package help renders the keyboard shortcut reference.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/folio/ui/styles"
)

// Section is a titled group of bindings.
type Section struct {
	Title    string
	Bindings []key.Binding
}

type Model struct {
	viewport viewport.Model
}

func New() Model {
	return Model{
		viewport: viewport.New(0, 0),
	}
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = max(height-1, 0)
}

func (m *Model) SetContent(helpText string) {
	m.viewport.SetContent(lipgloss.NewStyle().Padding(1, 1).Render(helpText))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp

	return m, cmd
}

func (m Model) View() string {
	footer := styles.Overlay1.PaddingLeft(2).Render("↑/↓ scroll • esc close")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

// Render renders every section one after the other.
func Render(width int, sections ...Section) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		title := styles.Primary.Bold(true).PaddingLeft(1).Render(s.Title)
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, title, RenderHelpView(width, s.Bindings)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderHelpView renders enabled key bindings with their descriptions, the
// descriptions aligned in one column.
func RenderHelpView(width int, keys []key.Binding) string {
	var sb strings.Builder

	enabled := make([]key.Binding, 0, len(keys))
	keyWidth := 0

	for _, binding := range keys {
		if !binding.Enabled() {
			continue
		}

		enabled = append(enabled, binding)
		keyWidth = max(keyWidth, lipgloss.Width(binding.Help().Key))
	}

	for _, binding := range enabled {
		keyText := binding.Help().Key
		gap := strings.Repeat(" ", keyWidth-lipgloss.Width(keyText)+2)
		indent := strings.Repeat(" ", 2+keyWidth+2)

		desc := strings.Split(binding.Help().Desc, "\n")
		for i, line := range desc {
			desc[i] = styles.Text.Render(strings.TrimSpace(line))
		}

		sb.WriteString("• ")
		sb.WriteString(styles.Info.Render(keyText))
		sb.WriteString(gap)
		sb.WriteString(strings.Join(desc, "\n"+indent))
		sb.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(width).Padding(1, 1).Render(strings.Trim(sb.String(), "\n"))
}
