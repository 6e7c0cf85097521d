// Package engine provides the text editing engine for Keyline.
//
// The engine package is the facade over the editing core. It owns exactly
// one document and one cursor and exposes the operations an input layer
// needs (typing, deletion, navigation, selection, clipboard transfer) along
// with read access for rendering.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: line storage with amortized growth, positions and ranges
//   - cursor: caret, selection anchor and selection mode
//   - motion: pure caret motions and word boundaries
//   - edit: atomic document edits and the key-level operations built on them
//
// # Thread Safety
//
// All Engine operations are safe for concurrent use. A read-write mutex
// serializes writes, so a renderer calling View always sees the state
// between two edits, never the middle of one.
//
// # Basic Usage
//
//	e, _ := engine.New(engine.WithContent([]byte("hello\nworld")))
//
//	e.MoveTo(engine.Point{Line: 0, Column: 5})
//	e.TextInput([]byte(", there"))
//
//	e.Move(motion.DirDown, true, false) // extend selection down
//	e.Backspace(false)                  // erase it
//
//	text, _, _ := e.Contents()
//
// # Errors
//
// Invalid positions return ErrOutOfRange and reversed ranges
// ErrRangeInvalid. When storage cannot grow the edit fails with
// ErrAllocationFailed and nothing is changed. Mutations on a read-only
// engine return ErrReadOnly.
package engine
