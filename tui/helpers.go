package tui

import (
	"strings"

	"github.com/mitchellh/go-homedir"
)

// toggleStatus returns "ON" or "OFF" based on boolean value
func toggleStatus(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}

// recentFile is a start page entry.
type recentFile struct {
	Path   string
	Pinned bool
}

// recentFiles lists pinned files first, then the most recently opened.
type recentFiles []recentFile

func (r recentFiles) index(path string) int {
	for i, rf := range r {
		if rf.Path == path {
			return i
		}
	}
	return -1
}

// add moves path to the top of the unpinned files.
func (r recentFiles) add(path string) recentFiles {
	pinned := false
	if i := r.index(path); i >= 0 {
		pinned = r[i].Pinned
		r = r.forget(path)
	}

	return r.insert(recentFile{Path: path, Pinned: pinned})
}

func (r recentFiles) pin(path string, pinned bool) recentFiles {
	i := r.index(path)
	if i < 0 || r[i].Pinned == pinned {
		return r
	}

	return r.forget(path).insert(recentFile{Path: path, Pinned: pinned})
}

func (r recentFiles) forget(path string) recentFiles {
	out := make(recentFiles, 0, len(r))
	for _, rf := range r {
		if rf.Path != path {
			out = append(out, rf)
		}
	}
	return out
}

// insert puts rf first among the entries with the same pin state.
func (r recentFiles) insert(rf recentFile) recentFiles {
	at := 0
	if !rf.Pinned {
		for at < len(r) && r[at].Pinned {
			at++
		}
	}

	out := make(recentFiles, 0, len(r)+1)
	out = append(out, r[:at]...)
	out = append(out, rf)
	return append(out, r[at:]...)
}

func expandPath(path string) (string, error) {
	return homedir.Expand(strings.TrimSpace(path))
}
