package input

import "errors"

// ErrInvalidInput indicates an event whose text was entirely filtered away.
var ErrInvalidInput = errors.New("invalid input")
