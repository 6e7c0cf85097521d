package input

import "github.com/dshills/keyline/internal/engine"

// ScrollConfig scales and orients wheel steps.
type ScrollConfig struct {
	XMultiplier int
	YMultiplier int
	InvertX     bool
	InvertY     bool
}

// DefaultScroll returns four columns per horizontal step and one line per
// vertical step.
func DefaultScroll() ScrollConfig {
	return ScrollConfig{XMultiplier: 4, YMultiplier: 1}
}

// Lines is the document shape the viewport maps screen cells onto.
type Lines interface {
	LineCount() int
	LineLen(line int) int
}

// Viewport is the window of the document shown on screen. Cols includes
// the line number gutter.
type Viewport struct {
	FirstLine   int
	FirstColumn int
	Cols        int
	Rows        int
}

// GutterWidth returns the cells taken by line numbers for a document of
// lineCount lines: one per digit of the largest number plus a separator.
func GutterWidth(lineCount int) int {
	digits := 1
	for n := lineCount; n >= 10; n /= 10 {
		digits++
	}
	return digits + 1
}

// Resize sets the screen size. Negative sizes become zero.
func (v *Viewport) Resize(cols, rows int) {
	v.Cols = max(cols, 0)
	v.Rows = max(rows, 0)
}

// TextCols returns the cells available for text after the gutter.
func (v *Viewport) TextCols(lineCount int) int {
	return max(v.Cols-GutterWidth(lineCount), 0)
}

// Scroll moves the viewport by wheel steps. Positive dy scrolls towards the
// start of the document and positive dx to the right. The top line stays
// within the document and the first column stays at or above zero. It
// reports whether the viewport moved.
func (v *Viewport) Scroll(dx, dy, lineCount int, cfg ScrollConfig) bool {
	dx *= max(cfg.XMultiplier, 1)
	dy *= max(cfg.YMultiplier, 1)
	if cfg.InvertX {
		dx = -dx
	}
	if cfg.InvertY {
		dy = -dy
	}

	first, col := v.FirstLine, v.FirstColumn
	v.FirstLine = min(max(v.FirstLine-dy, 0), max(lineCount-1, 0))
	v.FirstColumn = max(v.FirstColumn+dx, 0)
	return first != v.FirstLine || col != v.FirstColumn
}

// Autoscroll moves the viewport the least amount that brings caret on
// screen. It reports whether the viewport moved.
func (v *Viewport) Autoscroll(caret engine.Point, lineCount int) bool {
	first, col := v.FirstLine, v.FirstColumn
	clampBetween(&v.FirstLine, caret.Line, max(v.Rows-1, 0))
	clampBetween(&v.FirstColumn, caret.Column, max(v.Cols-1-GutterWidth(lineCount), 0))
	return first != v.FirstLine || col != v.FirstColumn
}

// clampBetween adjusts the window start x so that l lies in [x, x+n].
func clampBetween(x *int, l, n int) {
	if *x > l {
		*x = l
	} else if l > *x+n {
		*x = l - n
	}
}

// ScreenToPoint maps a screen cell to the nearest document position.
// Cells in the gutter map to column zero of their line.
func (v *Viewport) ScreenToPoint(x, y int, text Lines) engine.Point {
	n := text.LineCount()
	gutter := GutterWidth(n)

	x = max(x, 0)
	y = max(y, 0)
	if x < gutter {
		x = 0
	} else {
		x -= gutter
	}

	p := engine.Point{Line: y + v.FirstLine, Column: x + v.FirstColumn}
	p.Line = min(p.Line, n-1)
	p.Column = min(p.Column, text.LineLen(p.Line))
	return p
}

// PointToScreen maps a document position to a screen cell. visible is false
// when the position is scrolled out of view.
func (v *Viewport) PointToScreen(p engine.Point, lineCount int) (x, y int, visible bool) {
	gutter := GutterWidth(lineCount)
	x = p.Column - v.FirstColumn + gutter
	y = p.Line - v.FirstLine
	visible = p.Column >= v.FirstColumn && x < v.Cols && y >= 0 && y < v.Rows
	return x, y, visible
}
