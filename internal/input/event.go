package input

import (
	"fmt"
	"unicode"
)

// Event is an input event a Handler understands.
type Event interface {
	isEvent()
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key       Key
	Rune      rune // for KeyRune
	Modifiers Modifier
}

// TextEvent is typed text. Hosts send it for printable keys pressed
// without Ctrl or Alt.
type TextEvent struct {
	Text []byte
}

// PasteEvent is text delivered by the terminal's bracketed paste.
type PasteEvent struct {
	Text []byte
}

// MouseAction is what the left mouse button did.
type MouseAction uint8

const (
	MousePress MouseAction = iota
	MouseMove
	MouseRelease
)

// MouseEvent is a left button action or motion at a screen cell.
type MouseEvent struct {
	X, Y   int
	Action MouseAction
}

// ScrollEvent is a wheel step. Positive DY scrolls up, positive DX scrolls
// right.
type ScrollEvent struct {
	DX, DY int
}

// ResizeEvent reports the new size of the screen in cells.
type ResizeEvent struct {
	Cols, Rows int
}

func (KeyEvent) isEvent()    {}
func (TextEvent) isEvent()   {}
func (PasteEvent) isEvent()  {}
func (MouseEvent) isEvent()  {}
func (ScrollEvent) isEvent() {}
func (ResizeEvent) isEvent() {}

// String returns a canonical representation like "Ctrl+Shift+Left" or "a".
func (e KeyEvent) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// Ctrl returns a Ctrl+r key event.
func Ctrl(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r, Modifiers: ModCtrl}
}

// isCtrlRune reports whether e is Ctrl plus letter r in either case.
func (e KeyEvent) isCtrlRune(r rune) bool {
	return e.Key == KeyRune && e.Modifiers.Has(ModCtrl) && unicode.ToLower(e.Rune) == r
}

func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "press"
	case MouseMove:
		return "move"
	case MouseRelease:
		return "release"
	}
	return fmt.Sprintf("MouseAction(%d)", a)
}
