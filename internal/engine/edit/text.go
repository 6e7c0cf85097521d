package edit

import (
	"bytes"
	"fmt"

	"github.com/dshills/keyline/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Printable byte range kept by Clean.
const (
	printableMin = ' '
	printableMax = '~'
)

// Clean returns the bytes of b that can be stored in a document: printable
// ASCII and '\n'. Everything else, tabs included, is dropped. The result
// never aliases b.
func Clean(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c >= printableMin && c <= printableMax || c == '\n' {
			out = append(out, c)
		}
	}
	return out
}

// InsertText inserts text at p and returns the position just after the last
// inserted byte. Each '\n' in text splits the line: the part of the original
// line after p ends up behind the last inserted segment.
func InsertText(doc *buffer.Document, p Point, text []byte) (Point, error) {
	if err := doc.Validate(p); err != nil {
		return p, err
	}
	if len(text) == 0 {
		return p, nil
	}

	segs := bytes.Split(text, []byte{'\n'})
	line := doc.Line(p.Line)
	if len(segs) == 1 {
		if err := line.Insert(p.Column, text); err != nil {
			return p, err
		}
		return Point{Line: p.Line, Column: p.Column + len(text)}, nil
	}

	// Build every affected line before touching the document.
	k := len(segs) - 1
	head := line.Bytes()[:p.Column]
	tail := line.Bytes()[p.Column:]
	fresh := make([]*buffer.Line, len(segs))
	var err error
	if fresh[0], err = joinLine(head, segs[0]); err != nil {
		return p, err
	}
	for i := 1; i < k; i++ {
		if fresh[i], err = buffer.NewLine(segs[i]); err != nil {
			return p, err
		}
	}
	if fresh[k], err = joinLine(segs[k], tail); err != nil {
		return p, err
	}

	if err := doc.InsertLines(k, p.Line+1); err != nil {
		return p, err
	}
	for i, l := range fresh {
		// Indices were just created; SetLine cannot fail.
		_ = doc.SetLine(p.Line+i, l)
	}
	return Point{Line: p.Line + k, Column: len(segs[k])}, nil
}

// EraseRange removes the bytes between begin and end. On different lines,
// the remainder of end's line is joined onto begin's line and the lines in
// between are removed.
func EraseRange(doc *buffer.Document, begin, end Point) error {
	r := buffer.Range{Start: begin, End: end}
	if err := checkRange(doc, r); err != nil {
		return err
	}
	if r.IsSingleLine() {
		return doc.Line(begin.Line).Erase(begin.Column, end.Column-begin.Column)
	}

	merged, err := joinLine(doc.Line(begin.Line).Bytes()[:begin.Column], doc.Line(end.Line).Bytes()[end.Column:])
	if err != nil {
		return err
	}
	_ = doc.SetLine(begin.Line, merged)
	// begin.Line survives, so this never empties the document.
	return doc.EraseLines(end.Line-begin.Line, begin.Line+1)
}

// ExtractRange returns a copy of the bytes between begin and end with a
// '\n' for every line boundary crossed.
func ExtractRange(doc *buffer.Document, begin, end Point) ([]byte, error) {
	r := buffer.Range{Start: begin, End: end}
	if err := checkRange(doc, r); err != nil {
		return nil, err
	}
	if r.IsSingleLine() {
		return bytes.Clone(doc.Line(begin.Line).Bytes()[begin.Column:end.Column]), nil
	}

	n := end.Column - begin.Column
	for i := begin.Line; i < end.Line; i++ {
		n += doc.LineLen(i) + 1
	}
	out := make([]byte, 0, n)
	out = append(out, doc.Line(begin.Line).Bytes()[begin.Column:]...)
	for i := begin.Line + 1; i < end.Line; i++ {
		out = append(out, '\n')
		out = append(out, doc.Line(i).Bytes()...)
	}
	out = append(out, '\n')
	out = append(out, doc.Line(end.Line).Bytes()[:end.Column]...)
	return out, nil
}

// IndentLines inserts n spaces at the start of every line in [first, last].
func IndentLines(doc *buffer.Document, first, last, n int) error {
	if first < 0 || last >= doc.Len() || first > last {
		return fmt.Errorf("%w: indent lines %d..%d, document has %d lines", buffer.ErrOutOfRange, first, last, doc.Len())
	}
	if n <= 0 {
		return nil
	}

	fresh := make([]*buffer.Line, 0, last-first+1)
	for i := first; i <= last; i++ {
		l, err := doc.Line(i).Clone()
		if err != nil {
			return err
		}
		if err := l.InsertRepeat(0, ' ', n); err != nil {
			return err
		}
		fresh = append(fresh, l)
	}
	for i, l := range fresh {
		_ = doc.SetLine(first+i, l)
	}
	return nil
}

// DedentLine removes up to n leading spaces from line i, stopping at the
// first byte that is not a space. It returns the number removed.
func DedentLine(doc *buffer.Document, i, n int) (int, error) {
	line := doc.Line(i)
	if line == nil {
		return 0, fmt.Errorf("%w: dedent line %d, document has %d lines", buffer.ErrOutOfRange, i, doc.Len())
	}
	b := line.Bytes()
	limit := min(max(n, 0), len(b))
	spaces := 0
	for spaces < limit && b[spaces] == ' ' {
		spaces++
	}
	if err := line.Erase(0, spaces); err != nil {
		return 0, err
	}
	return spaces, nil
}

func checkRange(doc *buffer.Document, r buffer.Range) error {
	if err := doc.Validate(r.Start); err != nil {
		return err
	}
	if err := doc.Validate(r.End); err != nil {
		return err
	}
	if !r.IsValid() {
		return fmt.Errorf("%w: %s after %s", buffer.ErrRangeInvalid, r.Start, r.End)
	}
	return nil
}

// joinLine builds a new line holding a followed by b.
func joinLine(a, b []byte) (*buffer.Line, error) {
	l, err := buffer.NewLine(a)
	if err != nil {
		return nil, err
	}
	if err := l.Append(b); err != nil {
		return nil, err
	}
	return l, nil
}
