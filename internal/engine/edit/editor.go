package edit

import (
	"github.com/dshills/keyline/internal/engine/buffer"
	"github.com/dshills/keyline/internal/engine/cursor"
	"github.com/dshills/keyline/internal/engine/motion"
)

// DefaultTabSize is the indent width used when none is configured.
const DefaultTabSize = 4

// Clipboard transfers flat text in and out of the editor.
type Clipboard interface {
	Get() ([]byte, error)
	Set(text []byte) error
}

// Editor applies key-level operations to a document and its cursor.
// It is not safe for concurrent use.
type Editor struct {
	doc     *buffer.Document
	cur     *cursor.Cursor
	tabSize int
	rev     uint64 // bumped on every change to doc
}

// NewEditor creates an editor over doc and cur.
// A tabSize below 1 selects DefaultTabSize.
func NewEditor(doc *buffer.Document, cur *cursor.Cursor, tabSize int) *Editor {
	e := &Editor{doc: doc, cur: cur}
	e.SetTabSize(tabSize)
	return e
}

// Document returns the edited document.
func (e *Editor) Document() *buffer.Document { return e.doc }

// Cursor returns the cursor.
func (e *Editor) Cursor() *cursor.Cursor { return e.cur }

// TabSize returns the indent width.
func (e *Editor) TabSize() int { return e.tabSize }

// SetTabSize sets the indent width.
func (e *Editor) SetTabSize(n int) {
	if n < 1 {
		n = DefaultTabSize
	}
	e.tabSize = n
}

// Revision counts the changes made to the document through this editor.
func (e *Editor) Revision() uint64 { return e.rev }

// Reset replaces the document and returns the cursor to (0,0).
func (e *Editor) Reset(doc *buffer.Document) {
	e.doc = doc
	e.cur.Reset()
	e.rev++
}

// InsertText inserts text at p and leaves the caret after it with no
// selection.
func (e *Editor) InsertText(p Point, text []byte) error {
	end, err := InsertText(e.doc, p, text)
	if err != nil {
		return err
	}
	if len(text) > 0 {
		e.rev++
	}
	e.cur.MoveTo(end)
	return nil
}

// EraseRange erases [begin, end) and leaves the caret at begin with no
// selection.
func (e *Editor) EraseRange(begin, end Point) error {
	if err := EraseRange(e.doc, begin, end); err != nil {
		return err
	}
	if !(buffer.Range{Start: begin, End: end}).IsEmpty() {
		e.rev++
	}
	e.cur.MoveTo(e.doc.Clamp(begin))
	return nil
}

// ExtractRange returns the text between begin and end.
func (e *Editor) ExtractRange(begin, end Point) ([]byte, error) {
	return ExtractRange(e.doc, begin, end)
}

// Selected returns the selected text, or nil without a selection.
func (e *Editor) Selected() ([]byte, error) {
	if !e.cur.HasSelection() {
		return nil, nil
	}
	begin, end := e.cur.Bounds()
	return ExtractRange(e.doc, begin, end)
}

// EraseSelection erases the selected text. It reports whether there was
// anything to erase.
func (e *Editor) EraseSelection() (bool, error) {
	if !e.cur.HasSelection() {
		return false, nil
	}
	begin, end := e.cur.Bounds()
	if err := e.EraseRange(begin, end); err != nil {
		return false, err
	}
	return true, nil
}

// Save returns the whole document as flat text.
func (e *Editor) Save() ([]byte, error) {
	return ExtractRange(e.doc, buffer.Point{}, e.doc.End())
}

// TextInput replaces the selection with the cleaned form of text.
// Input that cleans to nothing is ignored.
func (e *Editor) TextInput(text []byte) error {
	text = Clean(text)
	if len(text) == 0 {
		return nil
	}
	return e.replaceSelection(text)
}

// Newline replaces the selection with a line break.
func (e *Editor) Newline() error {
	return e.replaceSelection([]byte{'\n'})
}

func (e *Editor) replaceSelection(text []byte) error {
	if _, err := e.EraseSelection(); err != nil {
		return err
	}
	return e.InsertText(e.cur.Pos(), text)
}

// Backspace erases the selection, or else the byte before the caret,
// joining with the previous line at column 0. With word set it erases back
// to the previous word boundary.
func (e *Editor) Backspace(word bool) error {
	defer e.cur.Settle()
	if erased, err := e.EraseSelection(); erased || err != nil {
		return err
	}

	p := e.cur.Pos()
	var begin Point
	switch {
	case p.IsZero():
		return nil
	case word:
		begin = motion.PrevWordBoundary(e.doc, p)
	case p.Column > 0:
		begin = Point{Line: p.Line, Column: p.Column - 1}
	default:
		begin = Point{Line: p.Line - 1, Column: e.doc.LineLen(p.Line - 1)}
	}
	return e.EraseRange(begin, p)
}

// Delete erases the selection, or else the byte after the caret, joining
// with the next line at the end of a line. With word set it erases forward
// to the next word boundary.
func (e *Editor) Delete(word bool) error {
	defer e.cur.Settle()
	if erased, err := e.EraseSelection(); erased || err != nil {
		return err
	}

	p := e.cur.Pos()
	var end Point
	switch {
	case word:
		end = motion.NextWordBoundary(e.doc, p)
	case p.Column < e.doc.LineLen(p.Line):
		end = Point{Line: p.Line, Column: p.Column + 1}
	case p.Line+1 < e.doc.Len():
		end = Point{Line: p.Line + 1}
	default:
		return nil
	}
	return e.EraseRange(p, end)
}

// Tab indents every selected line, or inserts spaces at the caret when
// nothing is selected.
func (e *Editor) Tab() error {
	defer e.cur.Settle()
	if !e.cur.HasSelection() {
		return e.InsertText(e.cur.Pos(), spaces(e.tabSize))
	}

	begin, end := e.cur.Bounds()
	if err := IndentLines(e.doc, begin.Line, end.Line, e.tabSize); err != nil {
		return err
	}
	e.rev++
	pos, anchor := e.cur.Pos(), e.cur.Anchor()
	pos.Column += e.tabSize
	anchor.Column += e.tabSize
	e.cur.SetPos(pos)
	e.cur.SetAnchor(anchor)
	e.cur.SetColMax(pos.Column)
	e.cur.UpdateSelection()
	return nil
}

// ShiftTab dedents every selected line, or the caret's line when nothing is
// selected. Caret and anchor columns move left with their line's text and
// never past column 0.
func (e *Editor) ShiftTab() error {
	defer e.cur.Settle()
	pos, anchor := e.cur.Pos(), e.cur.Anchor()
	first, last := pos.Line, pos.Line
	selecting := e.cur.HasSelection()
	if selecting {
		begin, end := e.cur.Bounds()
		first, last = begin.Line, end.Line
	}

	for i := first; i <= last; i++ {
		n, err := DedentLine(e.doc, i, e.tabSize)
		if err != nil {
			return err
		}
		if n > 0 {
			e.rev++
		}
		if pos.Line == i {
			pos.Column -= min(pos.Column, n)
		}
		if selecting && anchor.Line == i {
			anchor.Column -= min(anchor.Column, n)
		}
	}

	e.cur.SetPos(pos)
	e.cur.SetColMax(pos.Column)
	if selecting {
		e.cur.SetAnchor(anchor)
		e.cur.UpdateSelection()
	} else {
		e.cur.StopSelecting()
	}
	return nil
}

// Move applies a navigation key. With extend set the selection grows from
// the position the caret had before its first extended move. Without it an
// existing selection is dropped; left and right then place the caret on the
// selection's matching edge instead of moving. With word set, left and
// right move by word.
func (e *Editor) Move(dir motion.Direction, extend, word bool) {
	defer e.cur.Settle()
	begin, end := e.cur.Bounds()
	collapsing := e.cur.HasSelection() && !extend
	e.cur.ContinueSelection()

	if extend {
		e.cur.StartShiftSelection()
	} else {
		e.cur.StopSelecting()
	}

	var p Point
	colMax := e.cur.ColMax()
	switch {
	case collapsing && dir == motion.DirLeft:
		p, colMax = begin, begin.Column
	case collapsing && dir == motion.DirRight:
		p, colMax = end, end.Column
	default:
		p, colMax = motion.Apply(e.doc, dir, e.cur.Pos(), colMax, word)
	}

	e.cur.SetPos(p)
	if extend {
		e.cur.UpdateSelection()
	} else {
		e.cur.StopSelecting()
	}
	e.cur.SetColMax(colMax)
}

// SelectAll selects the whole document.
func (e *Editor) SelectAll() {
	e.cur.SelectAll(e.doc)
}

// Select sets the anchor and caret, clamped into the document.
func (e *Editor) Select(anchor, head Point) {
	e.cur.Select(e.doc.Clamp(anchor), e.doc.Clamp(head))
}

// MoveTo places the caret at p, clamped into the document, with no
// selection.
func (e *Editor) MoveTo(p Point) {
	e.cur.MoveTo(e.doc.Clamp(p))
}

// MouseDown starts a mouse selection at p.
func (e *Editor) MouseDown(p Point) {
	e.cur.MouseDown(e.doc.Clamp(p))
}

// MouseDrag extends a mouse selection to p. It reports whether the cursor
// changed.
func (e *Editor) MouseDrag(p Point) bool {
	return e.cur.MouseDrag(e.doc.Clamp(p))
}

// MouseUp ends a mouse selection.
func (e *Editor) MouseUp() {
	e.cur.MouseUp()
}

// Copy puts the selected text on the clipboard. Without a selection the
// clipboard is left alone.
func (e *Editor) Copy(clip Clipboard) error {
	text, err := e.Selected()
	if err != nil || text == nil {
		return err
	}
	return clip.Set(text)
}

// Cut copies the selection to the clipboard and erases it.
func (e *Editor) Cut(clip Clipboard) error {
	defer e.cur.Settle()
	if err := e.Copy(clip); err != nil {
		return err
	}
	_, err := e.EraseSelection()
	return err
}

// Paste replaces the selection with the cleaned clipboard text.
func (e *Editor) Paste(clip Clipboard) error {
	defer e.cur.Settle()
	text, err := clip.Get()
	if err != nil {
		return err
	}
	return e.TextInput(text)
}

func spaces(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return b
}
