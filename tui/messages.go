package tui

import "github.com/ionut-t/folio/internal/document"

// ConfigChangedMsg is sent when the configuration file changes on disk.
type ConfigChangedMsg struct{}

// Document loading messages
type documentOpenedMsg struct {
	doc *document.Document
}

type documentFailedMsg struct {
	path string
	err  error
}

// Background command results
type printedMsg struct {
	path string
	err  error
}

type savedMsg struct {
	path string
	err  error
}
