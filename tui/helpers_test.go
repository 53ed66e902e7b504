package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentFiles(t *testing.T) {
	var r recentFiles

	r = r.add("a").add("b").add("c")
	assert.Equal(t, recentFiles{{Path: "c"}, {Path: "b"}, {Path: "a"}}, r)

	r = r.add("a")
	assert.Equal(t, recentFiles{{Path: "a"}, {Path: "c"}, {Path: "b"}}, r)

	r = r.pin("b", true)
	assert.Equal(t, recentFiles{{Path: "b", Pinned: true}, {Path: "a"}, {Path: "c"}}, r)

	// opening a pinned file keeps it pinned
	r = r.add("c").add("b")
	assert.Equal(t, recentFiles{{Path: "b", Pinned: true}, {Path: "c"}, {Path: "a"}}, r)

	r = r.pin("c", true)
	assert.Equal(t, recentFiles{{Path: "c", Pinned: true}, {Path: "b", Pinned: true}, {Path: "a"}}, r)

	r = r.pin("b", false)
	assert.Equal(t, recentFiles{{Path: "c", Pinned: true}, {Path: "b"}, {Path: "a"}}, r)

	assert.Equal(t, r, r.pin("missing", true))
	assert.Equal(t, r, r.pin("a", false))

	r = r.forget("b")
	assert.Equal(t, recentFiles{{Path: "c", Pinned: true}, {Path: "a"}}, r)
	assert.Equal(t, -1, r.index("b"))
}

func TestToggleStatus(t *testing.T) {
	assert.Equal(t, "ON", toggleStatus(true))
	assert.Equal(t, "OFF", toggleStatus(false))
}

func TestShortcutFor(t *testing.T) {
	for _, s := range shortcuts {
		id, ok := shortcutFor(keyMsg(s.binding.Keys()[0]))
		if s.binding.Keys()[0] == "home" || len([]rune(s.binding.Keys()[0])) == 1 {
			assert.True(t, ok, s.binding.Help().Desc)
			assert.Equal(t, s.id, id, s.binding.Help().Desc)
		}
	}

	_, ok := shortcutFor(keyMsg("x"))
	assert.False(t, ok)
}
