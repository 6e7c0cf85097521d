package motion

// Direction identifies a caret motion bound to a navigation key.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
	DirHome
	DirEnd
	DirDocStart
	DirDocEnd
)

var directionNames = [...]string{
	DirLeft:     "left",
	DirRight:    "right",
	DirUp:       "up",
	DirDown:     "down",
	DirHome:     "home",
	DirEnd:      "end",
	DirDocStart: "doc-start",
	DirDocEnd:   "doc-end",
}

// String returns the direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// IsVertical reports whether the direction keeps the preferred column.
func (d Direction) IsVertical() bool {
	return d == DirUp || d == DirDown
}

// Apply moves p in direction d. colMax is the preferred column; the
// returned column is the preferred column after the motion. With word set,
// left and right move by word boundary.
func Apply(text Lines, d Direction, p Point, colMax int, word bool) (Point, int) {
	switch d {
	case DirLeft:
		if word {
			p = WordLeft(text, p)
		} else {
			p = Left(text, p)
		}
		return p, p.Column
	case DirRight:
		if word {
			p = WordRight(text, p)
		} else {
			p = Right(text, p)
		}
		return p, p.Column
	case DirUp:
		return Up(text, p, colMax)
	case DirDown:
		return Down(text, p, colMax)
	case DirHome:
		p = Home(text, p)
		return p, p.Column
	case DirEnd:
		p = End(text, p)
		return p, p.Column
	case DirDocStart:
		return DocStart(), 0
	case DirDocEnd:
		p = DocEnd(text)
		return p, p.Column
	default:
		return clamp(text, p), colMax
	}
}

// Left moves one byte left, wrapping to the end of the previous line.
func Left(text Lines, p Point) Point {
	p = clamp(text, p)
	switch {
	case p.Column > 0:
		p.Column--
	case p.Line > 0:
		p.Line--
		p.Column = text.LineLen(p.Line)
	}
	return p
}

// Right moves one byte right, wrapping to the start of the next line.
func Right(text Lines, p Point) Point {
	p = clamp(text, p)
	switch {
	case p.Column < text.LineLen(p.Line):
		p.Column++
	case p.Line+1 < text.Len():
		p = Point{Line: p.Line + 1}
	}
	return p
}

// Up moves to the previous line at the preferred column, clamped to the
// line length. On the first line it moves to (0,0) and resets the preferred
// column.
func Up(text Lines, p Point, colMax int) (Point, int) {
	p = clamp(text, p)
	if p.Line == 0 {
		return Point{}, 0
	}
	p.Line--
	return vertical(text, p, colMax), colMax
}

// Down moves to the next line at the preferred column, clamped to the line
// length. On the last line it moves to the end of the document and resets
// the preferred column.
func Down(text Lines, p Point, colMax int) (Point, int) {
	p = clamp(text, p)
	if p.Line+1 >= text.Len() {
		p = DocEnd(text)
		return p, p.Column
	}
	p.Line++
	return vertical(text, p, colMax), colMax
}

func vertical(text Lines, p Point, colMax int) Point {
	p.Column = min(max(p.Column, colMax), text.LineLen(p.Line))
	return p
}

// Home moves to the start of the line.
func Home(text Lines, p Point) Point {
	p = clamp(text, p)
	p.Column = 0
	return p
}

// End moves to the end of the line.
func End(text Lines, p Point) Point {
	p = clamp(text, p)
	p.Column = text.LineLen(p.Line)
	return p
}

// WordLeft moves to the previous word boundary.
func WordLeft(text Lines, p Point) Point {
	return PrevWordBoundary(text, p)
}

// WordRight moves to the next word boundary.
func WordRight(text Lines, p Point) Point {
	return NextWordBoundary(text, p)
}

// DocStart returns the first position of the document.
func DocStart() Point {
	return Point{}
}

// DocEnd returns the position after the last byte of the document.
func DocEnd(text Lines) Point {
	return docEnd(text)
}
