// Package cursor provides the caret and selection state of the editor.
//
// A Cursor tracks two positions:
//
//   - the caret (Pos): where typing and deletion happen
//   - the anchor (Anchor): the fixed end of an in-progress selection
//
// From these it derives normalized selection bounds (Bounds), ordered so the
// begin is never after the end. The cursor has a selection exactly when the
// bounds differ. A zero-width selection (caret == anchor) is a plain caret.
//
// Selection Modes:
//
// The cursor is in one of three modes, orthogonal to whether a selection
// currently exists:
//
//   - ModeIdle: no selection is being extended
//   - ModeMouseSelecting: a mouse button is held and drags extend the selection
//   - ModeShiftSelecting: keyboard navigation with the extend modifier
//
// Any change to the caret or anchor while a selection is live must be
// followed by UpdateSelection, which recomputes the bounds. StopSelecting
// returns to ModeIdle and collapses the selection onto the caret.
//
// Preferred Column:
//
// ColMax records the column the user intends to be at. Vertical motion
// through shorter lines clamps the caret column but keeps ColMax, so moving
// back onto a longer line restores the original column.
//
// Basic usage:
//
//	c := cursor.New()
//	c.MoveTo(buffer.Point{Line: 1, Column: 4})
//
//	c.StartShiftSelection()
//	c.SetPos(buffer.Point{Line: 0, Column: 2})
//	c.UpdateSelection()
//
//	begin, end := c.Bounds() // (0:2), (1:4)
package cursor
