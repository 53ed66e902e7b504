package utils

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestClearAfter(t *testing.T) {
	t.Parallel()

	cmd := ClearAfter(time.Millisecond)
	if cmd == nil {
		t.Fatal("ClearAfter() returned nil, expected tea.Cmd")
	}

	if _, ok := cmd().(ClearMsg); !ok {
		t.Errorf("expected ClearMsg, got %T", cmd())
	}
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	type ping struct{ n int }

	msg := Dispatch(ping{n: 3})()
	if got, ok := msg.(ping); !ok || got.n != 3 {
		t.Errorf("Dispatch() produced %#v, expected ping{n: 3}", msg)
	}

	var _ tea.Cmd = Dispatch(nil)
}

func TestShortenPath(t *testing.T) {
	t.Setenv("HOME", "/home/reader")

	tests := []struct {
		name     string
		path     string
		width    int
		expected string
	}{
		{name: "home replaced", path: "/home/reader/docs/a.pdf", width: 0, expected: "~/docs/a.pdf"},
		{name: "fits", path: "/srv/books/a.pdf", width: 40, expected: "/srv/books/a.pdf"},
		{name: "leading directories dropped", path: "/srv/library/books/a.pdf", width: 14, expected: "…/books/a.pdf"},
		{name: "file name cut", path: "/srv/a-very-long-name.pdf", width: 8, expected: "…ame.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortenPath(tt.path, tt.width); got != tt.expected {
				t.Errorf("ShortenPath(%q, %d) = %q, expected %q", tt.path, tt.width, got, tt.expected)
			}
		})
	}
}
