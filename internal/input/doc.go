// Package input translates terminal input into editor operations.
//
// A host converts its native events into the Event types of this package
// and passes them to a Handler, which applies them to an engine, keeps the
// Viewport scrolled to the caret, and reports what changed so the host knows
// whether to publish events and redraw.
//
// Key bindings:
//
//	Enter                    newline
//	Tab / Shift+Tab          indent / dedent (insert spaces without a selection)
//	Backspace / Delete       erase backward / forward (Ctrl: by word)
//	Arrows, Home, End        move (Shift: extend selection, Ctrl: by word)
//	Ctrl+Home / Ctrl+End     document start / end
//	PageUp / PageDown        move one screen
//	Ctrl+A                   select all
//	Ctrl+C / Ctrl+X / Ctrl+V copy / cut / paste
//	Ctrl+S                   save
//	Ctrl+Q                   quit
package input
