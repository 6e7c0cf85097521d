package buffer

import (
	"bytes"
	"iter"
)

// DocumentMinCapacity is the smallest line capacity a Document ever holds.
const DocumentMinCapacity = 64

// Document is an ordered collection of lines. It always holds at least one
// line; a new document holds a single empty line.
type Document struct {
	lines vector[*Line]
}

// NewDocument creates a document with one empty line.
func NewDocument() *Document {
	data := make([]*Line, 1, DocumentMinCapacity)
	data[0] = newEmptyLine()
	return &Document{lines: vector[*Line]{data: data, min: DocumentMinCapacity}}
}

// NewDocumentFromBytes creates a document from flat text with '\n' line
// breaks. A trailing '\n' produces a final empty line and a '\r' directly
// before a '\n' is dropped.
func NewDocumentFromBytes(text []byte) (*Document, error) {
	n := bytes.Count(text, []byte{'\n'}) + 1
	lines, err := newVector[*Line](DocumentMinCapacity, n)
	if err != nil {
		return nil, err
	}
	for len(lines.data) < n {
		seg := text
		if i := bytes.IndexByte(text, '\n'); i >= 0 {
			seg, text = text[:i], text[i+1:]
			seg = bytes.TrimSuffix(seg, []byte{'\r'})
		} else {
			text = nil
		}
		l, err := NewLine(seg)
		if err != nil {
			return nil, err
		}
		if err := lines.insert(len(lines.data), l); err != nil {
			return nil, err
		}
	}
	return &Document{lines: lines}, nil
}

// Len returns the number of lines. It is always at least 1.
func (d *Document) Len() int {
	return d.lines.len()
}

// Cap returns the current line capacity.
func (d *Document) Cap() int {
	return d.lines.capacity()
}

// Line returns line i, or nil if i is out of range.
func (d *Document) Line(i int) *Line {
	if i < 0 || i >= d.Len() {
		return nil
	}
	return d.lines.data[i]
}

// LineLen returns the length of line i, or 0 if i is out of range.
func (d *Document) LineLen(i int) int {
	if l := d.Line(i); l != nil {
		return l.Len()
	}
	return 0
}

// InsertLines inserts n empty lines before index at.
// at must be in [0, Len()]; at == Len() appends.
func (d *Document) InsertLines(n, at int) error {
	if at < 0 || at > d.Len() {
		return outOfRange("insert lines at %d, document has %d lines", at, d.Len())
	}
	if n < 0 {
		return outOfRange("negative line count %d", n)
	}
	if n == 0 {
		return nil
	}
	// Reserve first so a failed growth leaves the document untouched.
	if err := d.lines.reserve(n); err != nil {
		return err
	}
	fresh := make([]*Line, n)
	for i := range fresh {
		fresh[i] = newEmptyLine()
	}
	return d.lines.insert(at, fresh...)
}

// EraseLines removes n lines starting at index at.
// The document must keep at least one line.
func (d *Document) EraseLines(n, at int) error {
	if at < 0 || n < 0 || at > d.Len() || n > d.Len()-at {
		return outOfRange("erase %d lines at %d, document has %d lines", n, at, d.Len())
	}
	if n == d.Len() {
		return ErrLastLine
	}
	d.lines.erase(at, n)
	return nil
}

// SetLine replaces line i with l.
func (d *Document) SetLine(i int, l *Line) error {
	if i < 0 || i >= d.Len() {
		return outOfRange("set line %d, document has %d lines", i, d.Len())
	}
	if l == nil {
		l = newEmptyLine()
	}
	d.lines.data[i] = l
	return nil
}

// Validate reports whether p addresses an existing position.
func (d *Document) Validate(p Point) error {
	if p.Line < 0 || p.Line >= d.Len() {
		return outOfRange("line %d, document has %d lines", p.Line, d.Len())
	}
	if p.Column < 0 || p.Column > d.lines.data[p.Line].Len() {
		return outOfRange("column %d, line %d has length %d", p.Column, p.Line, d.lines.data[p.Line].Len())
	}
	return nil
}

// Clamp returns the nearest valid position to p.
func (d *Document) Clamp(p Point) Point {
	p.Line = min(max(p.Line, 0), d.Len()-1)
	p.Column = min(max(p.Column, 0), d.lines.data[p.Line].Len())
	return p
}

// End returns the position after the last byte of the last line.
func (d *Document) End() Point {
	last := d.Len() - 1
	return Point{Line: last, Column: d.lines.data[last].Len()}
}

// Size returns the number of bytes the document serializes to, counting
// one '\n' between consecutive lines.
func (d *Document) Size() int {
	n := d.Len() - 1
	for _, l := range d.lines.data {
		n += l.Len()
	}
	return n
}

// Lines iterates over lines [from, to) with their contents. The range is
// clipped to the document. Yielded slices alias line storage and must not
// be retained across mutations.
func (d *Document) Lines(from, to int) iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		from = max(from, 0)
		to = min(to, d.Len())
		for i := from; i < to; i++ {
			if !yield(i, d.lines.data[i].Bytes()) {
				return
			}
		}
	}
}

// Bytes serializes the document with a '\n' between consecutive lines.
func (d *Document) Bytes() []byte {
	out := make([]byte, 0, d.Size())
	for i, l := range d.lines.data {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, l.Bytes()...)
	}
	return out
}
