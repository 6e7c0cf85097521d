// Package term hosts the editor in a terminal through tcell.
//
// A Terminal turns tcell events into input events and draws an engine
// snapshot: a line-number gutter, the visible slice of each line, the
// selection, the caret, and a one-row status line at the bottom of the
// screen.
//
// Bracketed paste is collected between the paste start and end markers and
// delivered as a single input.PasteEvent. Left button presses, drags and
// releases become input.MouseEvent values; wheel steps become
// input.ScrollEvent values.
package term
