// Package edit implements the composite operations every user edit reduces
// to.
//
// The package has two layers. The functions InsertText, EraseRange,
// ExtractRange, IndentLines and DedentLine operate on a document alone and
// know nothing about the caret. Editor pairs a document with its cursor and
// builds the key-level operations on top of them: typing, newline,
// backspace and delete, tab and shift-tab, navigation with selection
// handling, and clipboard transfer.
//
// Mutations are atomic. Every allocation an operation needs is made before
// the document is touched, so a returned error (typically
// buffer.ErrAllocationFailed) means the document and cursor are exactly as
// they were before the call.
package edit
