package tui

import "time"

// view represents different view states in the application
type view int

const (
	viewStart view = iota
	viewDocument
	viewHelp
)

// Timeout and duration constants
const (
	LeaderKeyTimeout     = 500 * time.Millisecond
	NotificationDuration = 2 * time.Second
)

// startHeaderRows is the number of start page rows above the recent files.
const startHeaderRows = 3
