package prompt

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/folio/internal/document"
	"github.com/ionut-t/folio/internal/menu"
	"github.com/ionut-t/folio/pkg/utils"
	"github.com/ionut-t/folio/ui/styles"
	"github.com/mitchellh/go-homedir"
)

// SubmittedMsg carries the confirmed value of a prompt.
type SubmittedMsg struct {
	Action Action
	Value  string
}

type CancelMsg struct{}

type Action int

const (
	CustomZoomAction Action = iota
	GotoPageAction
	OpenFileAction
	SaveAsAction
)

func (a Action) prompt() string {
	switch a {
	case CustomZoomAction:
		return "Zoom"
	case GotoPageAction:
		return "Page"
	case OpenFileAction, SaveAsAction:
		return "File"
	default:
		return "unknown"
	}
}

func (a Action) title() string {
	switch a {
	case CustomZoomAction:
		return "Custom zoom"
	case GotoPageAction:
		return "Go to page"
	case OpenFileAction:
		return "Open document"
	case SaveAsAction:
		return "Save a copy"
	default:
		return "unknown"
	}
}

func (a Action) description() string {
	switch a {
	case CustomZoomAction:
		return fmt.Sprintf("A percentage between %v%% and %v%%, or fit page, fit width, fit content, actual size", menu.ZoomMin, menu.ZoomMax)
	case GotoPageAction:
		return "Page number"
	case OpenFileAction:
		return "Path to a PDF, Markdown or text file"
	case SaveAsAction:
		return "Destination path"
	default:
		return ""
	}
}

func (a Action) validate(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("value cannot be empty")
	}

	switch a {
	case CustomZoomAction:
		_, err := ParseZoomInput(value)
		return err

	case GotoPageAction:
		_, err := ParsePage(value)
		return err

	case OpenFileAction:
		path, err := homedir.Expand(value)
		if err != nil {
			return err
		}
		if _, err := document.FlavorOf(path); err != nil {
			return err
		}
		if _, err := os.Stat(path); err != nil {
			return errors.New("file does not exist")
		}

	case SaveAsAction:
		path, err := homedir.Expand(value)
		if err != nil {
			return err
		}
		info, err := os.Stat(filepath.Dir(path))
		if err != nil || !info.IsDir() {
			return errors.New("directory does not exist")
		}
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return errors.New("path is a directory")
		}
	}

	return nil
}

var zoomSuggestions = []string{
	"fit page", "fit width", "fit content", "actual size",
	"50%", "100%", "125%", "150%", "200%", "400%",
}

type Model struct {
	width, height int
	form          *huh.Form
	action        Action
}

// New creates a prompt for action pre-filled with initial.
func New(action Action, initial string) Model {
	value := initial

	input := huh.NewInput().
		Key("value").
		Title(action.title()).
		Description(action.description()).
		Prompt(action.prompt() + ": ").
		Value(&value).
		Validate(action.validate)

	if action == CustomZoomAction {
		input.Suggestions(zoomSuggestions)
	}

	form := huh.NewForm(huh.NewGroup(input)).
		WithTheme(styles.PromptTheme()).
		WithShowHelp(false)

	return Model{
		form:   form,
		action: action,
	}
}

// SetSize resizes the prompt. The zero Model only records the size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	if m.form == nil {
		return
	}

	m.form = m.form.WithWidth(min(width-4, 60))

	// the form sizes its fields only on a WindowSizeMsg
	f, _ := m.form.Update(tea.WindowSizeMsg{Width: width, Height: height})
	if form, ok := f.(*huh.Form); ok {
		m.form = form
	}
}

func (m Model) Action() Action {
	return m.action
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		return m, utils.Dispatch(CancelMsg{})
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, utils.Dispatch(SubmittedMsg{
			Action: m.action,
			Value:  strings.TrimSpace(m.form.GetString("value")),
		})
	case huh.StateAborted:
		return m, utils.Dispatch(CancelMsg{})
	}

	return m, cmd
}

func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Primary.GetForeground()).
		Padding(1, 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		border.Render(m.form.View()),
	)
}

// ParseZoomInput reads a custom zoom. Named zooms are accepted as well as
// any positive percentage; out of range percentages are left for the
// caller to clamp.
func ParseZoomInput(s string) (menu.Zoom, error) {
	if z, err := menu.ParseZoom(s); err == nil {
		return z, nil
	}

	p, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return menu.Zoom{}, fmt.Errorf("invalid zoom %q", s)
	}

	return menu.Percent(p), nil
}

// ParsePage reads a one-based page number.
func ParsePage(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid page %q", s)
	}
	return n, nil
}
