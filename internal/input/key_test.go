package input

import "testing"

func TestKeyEventString(t *testing.T) {
	tests := []struct {
		ev   KeyEvent
		want string
	}{
		{KeyEvent{Key: KeyRune, Rune: 'a'}, "a"},
		{Ctrl('s'), "Ctrl+s"},
		{KeyEvent{Key: KeyLeft, Modifiers: ModShift | ModCtrl}, "Ctrl+Shift+Left"},
		{KeyEvent{Key: KeyPageDown}, "PageDown"},
		{KeyEvent{Key: Key(999)}, "Key(999)"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsCtrlRune(t *testing.T) {
	if !Ctrl('S').isCtrlRune('s') {
		t.Error("Ctrl+S should match s")
	}
	if (KeyEvent{Key: KeyRune, Rune: 's'}).isCtrlRune('s') {
		t.Error("plain s matched")
	}
	if (KeyEvent{Key: KeyHome, Modifiers: ModCtrl}).isCtrlRune('s') {
		t.Error("Ctrl+Home matched")
	}
}

func TestIsArrowKey(t *testing.T) {
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		if !k.IsArrowKey() {
			t.Errorf("%s is an arrow key", k)
		}
	}
	for _, k := range []Key{KeyHome, KeyRune, KeyEnter} {
		if k.IsArrowKey() {
			t.Errorf("%s is not an arrow key", k)
		}
	}
}

func TestMouseActionString(t *testing.T) {
	if MouseMove.String() != "move" || MouseAction(9).String() != "MouseAction(9)" {
		t.Error("unexpected MouseAction names")
	}
}
