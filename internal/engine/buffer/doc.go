// Package buffer provides the line-oriented text storage of the editor engine.
//
// A Document is an ordered, index-addressable sequence of Lines and always
// holds at least one line. Line breaks are structural: a Line never contains
// a '\n' byte, and the text "a\nb" is stored as the two lines "a" and "b".
//
// Both Line and Document are built on a growable vector whose capacity is
// managed with hysteresis. Capacity doubles when the length would exceed 75%
// of it and halves while the length is below 25%, never dropping under a
// per-type floor (8 bytes for a line, 64 entries for a document). This keeps
// a buffer that oscillates around one size from reallocating on every edit.
//
// Basic usage:
//
//	doc, _ := buffer.NewDocumentFromBytes([]byte("hello\nworld"))
//
//	line := doc.Line(0)
//	_ = line.Insert(5, []byte(","))   // "hello,"
//	_ = line.Erase(0, 1)              // "ello,"
//
//	_ = doc.InsertLines(2, 1)         // two empty lines after "ello,"
//	_ = doc.EraseLines(2, 1)
//
// Position Types:
//
//   - Point: line and column, both 0-indexed, column measured in bytes
//   - Range: a pair of Points, Start inclusive and End exclusive
//
// Points are ordered lexicographically: by line first, then by column.
//
// Errors:
//
// Mutations validate their arguments and return ErrOutOfRange rather than
// corrupting state. Growth allocates the new backing array before touching
// existing content, so an ErrAllocationFailed leaves the receiver unchanged.
package buffer
