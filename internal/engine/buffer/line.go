package buffer

import "bytes"

// LineMinCapacity is the smallest capacity a Line ever holds.
const LineMinCapacity = 8

// Line is a growable byte sequence holding the content of one line,
// without its line break.
type Line struct {
	buf vector[byte]
}

// NewLine creates a line holding a copy of b.
// b must not contain '\n'.
func NewLine(b []byte) (*Line, error) {
	if bytes.IndexByte(b, '\n') >= 0 {
		return nil, ErrNewline
	}
	buf, err := newVector[byte](LineMinCapacity, len(b))
	if err != nil {
		return nil, err
	}
	l := &Line{buf: buf}
	// Capacity was sized for b, so this cannot reallocate.
	if err := l.buf.insert(0, b...); err != nil {
		return nil, err
	}
	return l, nil
}

// newEmptyLine returns a line at minimum capacity.
func newEmptyLine() *Line {
	return &Line{buf: vector[byte]{data: make([]byte, 0, LineMinCapacity), min: LineMinCapacity}}
}

// Len returns the number of bytes in the line.
func (l *Line) Len() int {
	return l.buf.len()
}

// Cap returns the current capacity of the line's storage.
func (l *Line) Cap() int {
	return l.buf.capacity()
}

// Bytes returns the line content.
// The slice aliases internal storage and is valid until the next mutation;
// callers must not modify it.
func (l *Line) Bytes() []byte {
	return l.buf.data
}

// String returns the line content as a string.
func (l *Line) String() string {
	return string(l.buf.data)
}

// Insert inserts b at offset, shifting the following bytes right.
// offset must be in [0, Len()].
func (l *Line) Insert(offset int, b []byte) error {
	if offset < 0 || offset > l.Len() {
		return outOfRange("insert offset %d, line length %d", offset, l.Len())
	}
	if bytes.IndexByte(b, '\n') >= 0 {
		return ErrNewline
	}
	return l.buf.insert(offset, b...)
}

// InsertRepeat inserts n copies of c at offset.
func (l *Line) InsertRepeat(offset int, c byte, n int) error {
	if offset < 0 || offset > l.Len() {
		return outOfRange("insert offset %d, line length %d", offset, l.Len())
	}
	if n < 0 {
		return outOfRange("negative repeat count %d", n)
	}
	if c == '\n' {
		return ErrNewline
	}
	return l.buf.insertFill(offset, n, c)
}

// Append adds b at the end of the line.
func (l *Line) Append(b []byte) error {
	return l.Insert(l.Len(), b)
}

// Erase removes count bytes starting at offset, shifting the tail left.
// offset+count must not exceed Len().
func (l *Line) Erase(offset, count int) error {
	if offset < 0 || count < 0 || offset > l.Len() || count > l.Len()-offset {
		return outOfRange("erase %d bytes at %d, line length %d", count, offset, l.Len())
	}
	l.buf.erase(offset, count)
	return nil
}

// Clone returns an independent copy of the line.
func (l *Line) Clone() (*Line, error) {
	return NewLine(l.buf.data)
}
