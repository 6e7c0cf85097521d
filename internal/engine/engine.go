package engine

import (
	"fmt"
	"io"
	"sync"

	"github.com/dshills/keyline/internal/engine/buffer"
	"github.com/dshills/keyline/internal/engine/cursor"
	"github.com/dshills/keyline/internal/engine/edit"
	"github.com/dshills/keyline/internal/engine/motion"
)

// Re-export commonly used types for convenience.
type (
	// Point represents a line/column position.
	Point = buffer.Point

	// Range represents a span between two positions.
	Range = buffer.Range

	// Selection is a snapshot of the anchor and caret.
	Selection = cursor.Selection

	// Mode describes how the selection is being extended.
	Mode = cursor.Mode

	// Direction identifies a navigation key.
	Direction = motion.Direction

	// Clipboard transfers flat text in and out of the engine.
	Clipboard = edit.Clipboard
)

// CursorState is a snapshot of the cursor.
type CursorState struct {
	Pos          Point
	Anchor       Point
	Begin        Point
	End          Point
	ColMax       int
	HasSelection bool
	Mode         Mode

	// Selection pairs Anchor with Pos and keeps the drag direction.
	Selection Selection
}

// View is a consistent copy of part of the document taken between edits.
type View struct {
	FirstLine int      // index of Lines[0]
	Lines     [][]byte // copies of the requested lines
	LineCount int      // total lines in the document
	Cursor    CursorState
	Revision  uint64
}

// Engine is the main facade for the text editor engine.
// It combines the document, the cursor and the edit operations into a
// single thread-safe API.
type Engine struct {
	mu sync.RWMutex

	// Core components
	doc *buffer.Document
	cur *cursor.Cursor
	ed  *edit.Editor

	// Configuration
	tabSize  int
	readOnly bool

	// Initialization
	initContent []byte
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{tabSize: DefaultTabSize}

	// Apply options to get configuration
	for _, opt := range opts {
		opt(e)
	}

	doc, err := buffer.NewDocumentFromBytes(e.initContent)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	e.initContent = nil
	e.doc = doc
	e.cur = cursor.New()
	e.ed = edit.NewEditor(doc, e.cur, e.tabSize)
	return e, nil
}

// NewFromReader creates an Engine from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(append(opts, WithContent(content))...)
}

// ============================================================================
// Read Operations
// ============================================================================

// Contents returns the whole document as flat text with '\n' line breaks,
// together with the revision it belongs to.
func (e *Engine) Contents() ([]byte, uint64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	data, err := e.ed.Save()
	return data, e.ed.Revision(), err
}

// Text returns the whole document as a string.
func (e *Engine) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return string(e.doc.Bytes())
}

// Len returns the number of bytes the document serializes to.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Size()
}

// LineCount returns the number of lines. It is always at least 1.
func (e *Engine) LineCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Len()
}

// LineText returns the text of a line, or "" if it does not exist.
func (e *Engine) LineText(line int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if l := e.doc.Line(line); l != nil {
		return l.String()
	}
	return ""
}

// LineLen returns the length of a line in bytes.
func (e *Engine) LineLen(line int) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.LineLen(line)
}

// End returns the position after the last byte of the document.
func (e *Engine) End() Point {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.End()
}

// ExtractRange returns the text between begin and end.
func (e *Engine) ExtractRange(begin, end Point) ([]byte, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ed.ExtractRange(begin, end)
}

// Selected returns the selected text, or nil without a selection.
func (e *Engine) Selected() ([]byte, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ed.Selected()
}

// Cursor returns a snapshot of the cursor.
func (e *Engine) Cursor() CursorState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursorLocked()
}

func (e *Engine) cursorLocked() CursorState {
	begin, end := e.cur.Bounds()
	return CursorState{
		Pos:          e.cur.Pos(),
		Anchor:       e.cur.Anchor(),
		Begin:        begin,
		End:          end,
		ColMax:       e.cur.ColMax(),
		HasSelection: e.cur.HasSelection(),
		Mode:         e.cur.Mode(),
		Selection:    e.cur.Selection(),
	}
}

// View copies lines [from, to) together with the cursor state. The range
// is clipped to the document.
func (e *Engine) View(from, to int) View {
	e.mu.RLock()
	defer e.mu.RUnlock()

	from = max(from, 0)
	v := View{
		FirstLine: from,
		LineCount: e.doc.Len(),
		Cursor:    e.cursorLocked(),
		Revision:  e.ed.Revision(),
	}
	for _, b := range e.doc.Lines(from, to) {
		v.Lines = append(v.Lines, append([]byte(nil), b...))
	}
	return v
}

// Revision returns a counter that changes whenever the document does.
func (e *Engine) Revision() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ed.Revision()
}

// ============================================================================
// Write Operations
// ============================================================================

// mutate runs fn under the write lock unless the engine is read-only.
// The cursor is clamped afterwards so it always addresses the document.
func (e *Engine) mutate(fn func(*edit.Editor) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}
	err := fn(e.ed)
	e.cur.Clamp(e.doc)
	return err
}

// navigate runs fn under the write lock. Navigation is allowed on
// read-only engines.
func (e *Engine) navigate(fn func(*edit.Editor)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.ed)
}

// InsertText inserts text at p, leaving the caret after it.
func (e *Engine) InsertText(p Point, text []byte) error {
	return e.mutate(func(ed *edit.Editor) error { return ed.InsertText(p, text) })
}

// EraseRange erases the text between begin and end, leaving the caret at
// begin.
func (e *Engine) EraseRange(begin, end Point) error {
	return e.mutate(func(ed *edit.Editor) error { return ed.EraseRange(begin, end) })
}

// EraseSelection erases the selected text, if any.
func (e *Engine) EraseSelection() error {
	return e.mutate(func(ed *edit.Editor) error {
		_, err := ed.EraseSelection()
		return err
	})
}

// TextInput replaces the selection with typed text. Bytes other than
// printable ASCII and '\n' are dropped.
func (e *Engine) TextInput(text []byte) error {
	return e.mutate(func(ed *edit.Editor) error { return ed.TextInput(text) })
}

// Newline replaces the selection with a line break.
func (e *Engine) Newline() error {
	return e.mutate((*edit.Editor).Newline)
}

// Backspace erases backward from the caret, or the selection.
func (e *Engine) Backspace(word bool) error {
	return e.mutate(func(ed *edit.Editor) error { return ed.Backspace(word) })
}

// Delete erases forward from the caret, or the selection.
func (e *Engine) Delete(word bool) error {
	return e.mutate(func(ed *edit.Editor) error { return ed.Delete(word) })
}

// Tab indents the selected lines or inserts spaces at the caret.
func (e *Engine) Tab() error {
	return e.mutate((*edit.Editor).Tab)
}

// ShiftTab dedents the selected lines or the caret's line.
func (e *Engine) ShiftTab() error {
	return e.mutate((*edit.Editor).ShiftTab)
}

// Cut moves the selected text to the clipboard.
func (e *Engine) Cut(clip Clipboard) error {
	return e.mutate(func(ed *edit.Editor) error { return ed.Cut(clip) })
}

// Paste replaces the selection with the clipboard text.
func (e *Engine) Paste(clip Clipboard) error {
	return e.mutate(func(ed *edit.Editor) error { return ed.Paste(clip) })
}

// Copy puts the selected text on the clipboard.
func (e *Engine) Copy(clip Clipboard) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ed.Copy(clip)
}

// SetContent replaces the whole document and resets the cursor.
func (e *Engine) SetContent(content []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}
	doc, err := buffer.NewDocumentFromBytes(content)
	if err != nil {
		return err
	}
	e.doc = doc
	e.ed.Reset(doc)
	return nil
}

// ============================================================================
// Navigation and Selection
// ============================================================================

// Move applies a navigation key, optionally extending the selection or
// moving by word.
func (e *Engine) Move(dir Direction, extend, word bool) {
	e.navigate(func(ed *edit.Editor) { ed.Move(dir, extend, word) })
}

// MoveTo places the caret at p with no selection.
func (e *Engine) MoveTo(p Point) {
	e.navigate(func(ed *edit.Editor) { ed.MoveTo(p) })
}

// Select sets the selection anchor and caret.
func (e *Engine) Select(anchor, head Point) {
	e.navigate(func(ed *edit.Editor) { ed.Select(anchor, head) })
}

// SelectAll selects the whole document.
func (e *Engine) SelectAll() {
	e.navigate((*edit.Editor).SelectAll)
}

// MouseDown starts a mouse selection at p.
func (e *Engine) MouseDown(p Point) {
	e.navigate(func(ed *edit.Editor) { ed.MouseDown(p) })
}

// MouseDrag extends a mouse selection to p. It reports whether the cursor
// changed.
func (e *Engine) MouseDrag(p Point) bool {
	var changed bool
	e.navigate(func(ed *edit.Editor) { changed = ed.MouseDrag(p) })
	return changed
}

// MouseUp ends a mouse selection.
func (e *Engine) MouseUp() {
	e.navigate((*edit.Editor).MouseUp)
}

// ============================================================================
// Configuration
// ============================================================================

// TabSize returns the indent width.
func (e *Engine) TabSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tabSize
}

// SetTabSize sets the indent width. Values outside 1..MaxTabSize are
// ignored.
func (e *Engine) SetTabSize(size int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if size > 0 && size <= MaxTabSize {
		e.tabSize = size
		e.ed.SetTabSize(size)
	}
}

// IsReadOnly returns true if the engine is read-only.
func (e *Engine) IsReadOnly() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.readOnly
}
