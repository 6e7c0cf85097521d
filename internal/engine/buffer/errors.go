package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by buffer operations.
var (
	// ErrOutOfRange indicates an offset, count, or position outside the valid range.
	ErrOutOfRange = errors.New("out of range")

	// ErrRangeInvalid indicates a range whose start comes after its end.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrAllocationFailed indicates the backing storage could not be grown.
	ErrAllocationFailed = errors.New("allocation failed")

	// ErrNewline indicates an attempt to store a '\n' byte inside a Line.
	ErrNewline = errors.New("newline byte inside line")

	// ErrLastLine indicates an erase that would leave the document without lines.
	ErrLastLine = fmt.Errorf("%w: cannot erase the last remaining line", ErrOutOfRange)
)

func outOfRange(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOutOfRange, fmt.Sprintf(format, args...))
}
