package menu

import "errors"

var (
	// ErrNativeMenu wraps failures reported by the native menu primitives.
	ErrNativeMenu = errors.New("native menu failure")

	// ErrPopup wraps failures to display a popup menu.
	ErrPopup = errors.New("popup menu failure")
)
