// Package motion computes caret destinations.
//
// Every function here is pure: it reads the document through the Lines
// interface and returns a new position without mutating anything. Selection
// handling lives in the edit package, which decides whether a motion moves
// the caret, extends a selection, or collapses one onto its edge.
//
// Word boundaries treat ASCII letters and digits as word bytes and every
// other byte as a delimiter. Multi-byte sequences are delimiters.
package motion
