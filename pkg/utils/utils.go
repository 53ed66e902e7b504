package utils

import (
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mitchellh/go-homedir"
)

type ClearMsg struct{}

// ClearAfter returns a command that triggers a notification clear after a specified duration.
func ClearAfter(duration time.Duration) tea.Cmd {
	return tea.Tick(
		duration,
		func(t time.Time) tea.Msg {
			return ClearMsg{}
		},
	)
}

func Dispatch(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// ShortenPath replaces the home directory with "~" and drops leading
// directories until path fits in width runes.
func ShortenPath(path string, width int) string {
	if home, err := homedir.Dir(); err == nil && home != "" {
		if rel, err := filepath.Rel(home, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = filepath.Join("~", rel)
		}
	}

	if width <= 0 || len([]rune(path)) <= width {
		return path
	}

	parts := strings.Split(path, string(filepath.Separator))
	for len(parts) > 1 {
		parts = parts[1:]
		short := "…" + string(filepath.Separator) + strings.Join(parts, string(filepath.Separator))
		if len([]rune(short)) <= width {
			return short
		}
	}

	runes := []rune(parts[0])
	if width < 2 {
		return string(runes[len(runes)-width:])
	}
	return "…" + string(runes[len(runes)-width+1:])
}
