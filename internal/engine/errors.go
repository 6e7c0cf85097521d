package engine

import (
	"errors"

	"github.com/dshills/keyline/internal/engine/buffer"
)

// Errors returned by engine operations.
var (
	// ErrOutOfRange indicates a position outside the document.
	ErrOutOfRange = buffer.ErrOutOfRange

	// ErrRangeInvalid indicates a range whose start comes after its end.
	ErrRangeInvalid = buffer.ErrRangeInvalid

	// ErrAllocationFailed indicates storage could not be grown. The edit
	// that hit it was not applied.
	ErrAllocationFailed = buffer.ErrAllocationFailed

	// ErrLastLine indicates an erase that would leave the document empty of lines.
	ErrLastLine = buffer.ErrLastLine

	// ErrReadOnly indicates an operation was attempted on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")
)
