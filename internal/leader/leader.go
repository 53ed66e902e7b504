// Package leader tracks the leader key that opens the menu bar.
//
// Pressing the leader followed by an access key opens that menu directly.
// When no second key arrives before the timeout the whole bar opens on its
// first menu.
package leader

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TimeoutMsg is sent when the wait for the second key expires.
type TimeoutMsg struct {
	Time time.Time
	seq  int
}

type State int

const (
	StateNone State = iota
	// StateWaiting means the leader was pressed and the next key picks a menu.
	StateWaiting
)

// Manager handles leader key state transitions.
type Manager struct {
	state   State
	timeout time.Duration
	key     string
	// seq tells timeouts of earlier presses apart from the current one.
	seq int
}

func NewManager(timeout time.Duration, key string) *Manager {
	if key == "" {
		key = " "
	}

	return &Manager{
		timeout: timeout,
		key:     key,
	}
}

// HandleKey starts waiting when key is the leader.
func (m *Manager) HandleKey(key string) (State, tea.Cmd) {
	if m.state == StateNone && key == m.key {
		m.state = StateWaiting
		m.seq++
		return StateWaiting, m.startTimeout(m.seq)
	}

	return m.state, nil
}

// Resolve consumes the key pressed after the leader and returns the menu
// index whose access key it is. The manager is reset either way.
func (m *Manager) Resolve(key string, lookup func(rune) (int, bool)) (int, bool) {
	m.Reset()

	runes := []rune(key)
	if len(runes) != 1 {
		return 0, false
	}

	return lookup(runes[0])
}

// Expired reports whether msg ends the current wait. Stale timeouts are
// ignored. An expired wait resets the manager.
func (m *Manager) Expired(msg TimeoutMsg) bool {
	if m.state != StateWaiting || msg.seq != m.seq {
		return false
	}

	m.Reset()
	return true
}

func (m *Manager) Reset() {
	m.state = StateNone
}

func (m *Manager) IsActive() bool {
	return m.state != StateNone
}

func (m *Manager) SetLeaderKey(key string) {
	if key == "" {
		key = " "
	}

	m.key = key
}

func (m *Manager) LeaderKey() string {
	return m.key
}

func (m *Manager) IsLeaderKey(key string) bool {
	return key == m.key
}

func (m *Manager) startTimeout(seq int) tea.Cmd {
	return tea.Tick(m.timeout, func(t time.Time) tea.Msg {
		return TimeoutMsg{Time: t, seq: seq}
	})
}
