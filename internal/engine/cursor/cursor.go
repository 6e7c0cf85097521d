package cursor

import "github.com/dshills/keyline/internal/engine/buffer"

// Mode describes how the selection is currently being extended.
type Mode uint8

const (
	// ModeIdle means no selection is being extended.
	ModeIdle Mode = iota
	// ModeMouseSelecting means a mouse button is held down.
	ModeMouseSelecting
	// ModeShiftSelecting means keyboard navigation extends the selection.
	ModeShiftSelecting
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeMouseSelecting:
		return "mouse-selecting"
	case ModeShiftSelecting:
		return "shift-selecting"
	default:
		return "unknown"
	}
}

// Cursor is the caret plus selection state of a document.
// The zero value is a caret at (0,0) with no selection.
type Cursor struct {
	pos    Point // caret
	sel    Point // anchor
	begin  Point
	end    Point
	colMax int

	mouseSelecting bool
	shiftSelecting bool
}

// New returns a cursor at (0,0).
func New() *Cursor {
	return &Cursor{}
}

// Pos returns the caret position.
func (c *Cursor) Pos() Point { return c.pos }

// Anchor returns the selection anchor.
func (c *Cursor) Anchor() Point { return c.sel }

// Bounds returns the normalized selection bounds, begin <= end.
func (c *Cursor) Bounds() (begin, end Point) { return c.begin, c.end }

// Range returns the normalized selection bounds as a range.
func (c *Cursor) Range() Range { return Range{Start: c.begin, End: c.end} }

// HasSelection reports whether the selection covers at least one position.
func (c *Cursor) HasSelection() bool { return c.begin != c.end }

// IsSelecting reports whether a selection is being extended.
func (c *Cursor) IsSelecting() bool { return c.mouseSelecting || c.shiftSelecting }

// Mode returns the current selection mode.
func (c *Cursor) Mode() Mode {
	switch {
	case c.mouseSelecting:
		return ModeMouseSelecting
	case c.shiftSelecting:
		return ModeShiftSelecting
	default:
		return ModeIdle
	}
}

// Selection returns a snapshot of the anchor and caret.
func (c *Cursor) Selection() Selection {
	return Selection{Anchor: c.sel, Head: c.pos}
}

// ColMax returns the preferred column for vertical motion.
func (c *Cursor) ColMax() int { return c.colMax }

// SetColMax sets the preferred column for vertical motion.
func (c *Cursor) SetColMax(col int) { c.colMax = max(col, 0) }

// SetPos moves the caret without touching the anchor or the bounds.
// Call UpdateSelection afterwards if a selection is live.
func (c *Cursor) SetPos(p Point) { c.pos = p }

// SetAnchor moves the anchor without touching the caret or the bounds.
func (c *Cursor) SetAnchor(p Point) { c.sel = p }

// UpdateSelection recomputes the bounds from the caret and anchor.
func (c *Cursor) UpdateSelection() {
	r := c.Selection().Range()
	c.begin, c.end = r.Start, r.End
}

// StopSelecting returns to ModeIdle and collapses the selection onto the
// caret.
func (c *Cursor) StopSelecting() {
	c.mouseSelecting = false
	c.shiftSelecting = false
	c.sel = c.pos
	c.begin = c.pos
	c.end = c.pos
}

// MoveTo places the caret at p, drops any selection and resets the
// preferred column.
func (c *Cursor) MoveTo(p Point) {
	c.pos = p
	c.colMax = p.Column
	c.StopSelecting()
}

// Select sets the anchor and caret and recomputes the bounds. The mode is
// left unchanged.
func (c *Cursor) Select(anchor, head Point) {
	c.sel = anchor
	c.pos = head
	c.colMax = head.Column
	c.UpdateSelection()
}

// SelectAll selects the whole document, leaving the caret at its end.
func (c *Cursor) SelectAll(doc *buffer.Document) {
	c.Select(Point{}, doc.End())
}

// StartShiftSelection enters ModeShiftSelecting. The anchor is placed at
// the caret unless a keyboard selection is already being extended.
func (c *Cursor) StartShiftSelection() {
	if c.shiftSelecting {
		return
	}
	c.shiftSelecting = true
	c.sel = c.pos
	c.UpdateSelection()
}

// ContinueSelection marks an existing selection as keyboard-extended so a
// following motion keeps its anchor.
func (c *Cursor) ContinueSelection() {
	if c.HasSelection() {
		c.shiftSelecting = true
	}
}

// Settle finishes a keyboard action: the bounds follow the caret while
// selecting, and an empty selection leaves ModeShiftSelecting.
func (c *Cursor) Settle() {
	if c.IsSelecting() {
		c.UpdateSelection()
	}
	if !c.HasSelection() {
		c.shiftSelecting = false
	}
}

// MouseDown starts a mouse selection at p.
func (c *Cursor) MouseDown(p Point) {
	c.shiftSelecting = false
	c.mouseSelecting = true
	c.pos = p
	c.sel = p
	c.colMax = p.Column
	c.UpdateSelection()
}

// MouseDrag moves the caret to p while a mouse selection is in progress.
// It reports whether the cursor changed.
func (c *Cursor) MouseDrag(p Point) bool {
	if !c.mouseSelecting || p == c.pos {
		return false
	}
	c.pos = p
	c.colMax = p.Column
	c.UpdateSelection()
	return true
}

// MouseUp ends a mouse selection, keeping whatever was selected.
func (c *Cursor) MouseUp() {
	c.mouseSelecting = false
}

// Clamp forces the caret, anchor and bounds into the document.
func (c *Cursor) Clamp(doc *buffer.Document) {
	c.pos = doc.Clamp(c.pos)
	c.sel = doc.Clamp(c.sel)
	c.begin = doc.Clamp(c.begin)
	c.end = doc.Clamp(c.end)
}

// Reset returns the cursor to (0,0) with no selection.
func (c *Cursor) Reset() {
	*c = Cursor{}
}
