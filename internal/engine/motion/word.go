package motion

import "github.com/dshills/keyline/internal/engine/buffer"

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Lines is the read-only view of a document that motions need.
// *buffer.Document satisfies it.
type Lines interface {
	Len() int
	LineLen(i int) int
	Line(i int) *buffer.Line
}

// IsWordByte reports whether c is part of a word.
func IsWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// NextWordBoundary returns the first delimiter following a run of word
// bytes, scanning forward from p. At the end of a line the scan starts at
// the beginning of the next one. Leading delimiters are skipped. If no
// delimiter follows the run, the result is the end of the line. At the end
// of the document p is returned unchanged.
func NextWordBoundary(text Lines, p Point) Point {
	p = clamp(text, p)
	if p.Column >= text.LineLen(p.Line) {
		if p.Line+1 >= text.Len() {
			return docEnd(text)
		}
		p = Point{Line: p.Line + 1}
	}

	line := text.Line(p.Line).Bytes()
	seen := false
	for ; p.Column < len(line); p.Column++ {
		if IsWordByte(line[p.Column]) {
			seen = true
		} else if seen {
			break
		}
	}
	return p
}

// PrevWordBoundary mirrors NextWordBoundary backward: it returns the
// position just after the delimiter that precedes the word run before p.
// At column 0 the scan starts at the end of the previous line. At (0,0) the
// result is (0,0).
func PrevWordBoundary(text Lines, p Point) Point {
	p = clamp(text, p)
	if p.Column <= 0 {
		if p.Line <= 0 {
			return Point{}
		}
		p = Point{Line: p.Line - 1, Column: text.LineLen(p.Line - 1)}
	}

	line := text.Line(p.Line).Bytes()
	seen := false
	col := p.Column - 1
	for ; col >= 0; col-- {
		if IsWordByte(line[col]) {
			seen = true
		} else if seen {
			break
		}
	}
	return Point{Line: p.Line, Column: col + 1}
}

func docEnd(text Lines) Point {
	last := text.Len() - 1
	return Point{Line: last, Column: text.LineLen(last)}
}

// clamp forces p into the document so motions never index out of range.
func clamp(text Lines, p Point) Point {
	p.Line = min(max(p.Line, 0), text.Len()-1)
	p.Column = min(max(p.Column, 0), text.LineLen(p.Line))
	return p
}
