package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("no clipboard utility available")

// Available reports whether the system clipboard can be used.
func Available() bool {
	return !clipboard.Unsupported
}

func Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}

	return clipboard.WriteAll(text)
}

func Read() (string, error) {
	if !Available() {
		return "", ErrUnavailable
	}

	text, err := clipboard.ReadAll()

	if err != nil {
		return "", err
	}

	return text, nil
}
