package script

import "errors"

// Errors for script operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrNoBus is returned by editor.on when the state has no event bus.
	ErrNoBus = errors.New("no event bus")
)
