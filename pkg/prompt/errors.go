package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoOptions is returned when the catalog offers nothing to pick.
	ErrNoOptions = errors.New("prompt: catalog is empty")
)
