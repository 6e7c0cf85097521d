package term

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyline/internal/input"
)

// convert translates a tcell event. It returns nil for events that are
// ignored or only update conversion state.
func (t *Terminal) convert(ev tcell.Event) input.Event {
	switch e := ev.(type) {
	case *tcell.EventPaste:
		return t.convertPaste(e)
	case *tcell.EventKey:
		if t.pasting {
			t.collectPaste(e)
			return nil
		}
		return convertKey(e)
	case *tcell.EventMouse:
		return t.convertMouse(e)
	case *tcell.EventResize:
		t.mu.Lock()
		t.screen.Sync()
		t.mu.Unlock()
		w, h := e.Size()
		return input.ResizeEvent{Cols: w, Rows: max(h-statusRows, 0)}
	}
	return nil
}

func (t *Terminal) convertPaste(e *tcell.EventPaste) input.Event {
	if e.Start() {
		t.pasting = true
		t.paste = t.paste[:0]
		return nil
	}
	t.pasting = false
	if len(t.paste) == 0 {
		return nil
	}
	text := append([]byte(nil), t.paste...)
	return input.PasteEvent{Text: text}
}

// collectPaste appends the text a key event inside a paste stands for.
func (t *Terminal) collectPaste(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyRune:
		t.paste = utf8.AppendRune(t.paste, e.Rune())
	case tcell.KeyEnter, tcell.KeyLF:
		t.paste = append(t.paste, '\n')
	case tcell.KeyTab:
		t.paste = append(t.paste, '\t')
	}
}

var keys = map[tcell.Key]input.Key{
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBacktab:    input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
}

func convertKey(e *tcell.EventKey) input.Event {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyBacktab {
		mods |= input.ModShift
	}
	if key, ok := keys[k]; ok {
		return input.KeyEvent{Key: key, Modifiers: mods}
	}
	switch {
	case k == tcell.KeyRune:
		return input.KeyEvent{Key: input.KeyRune, Rune: e.Rune(), Modifiers: mods}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := rune('a' + (k - tcell.KeyCtrlA))
		return input.KeyEvent{Key: input.KeyRune, Rune: r, Modifiers: mods | input.ModCtrl}
	}
	return nil
}

func convertMod(m tcell.ModMask) input.Modifier {
	var out input.Modifier
	if m&tcell.ModShift != 0 {
		out |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= input.ModMeta
	}
	return out
}

// convertMouse tracks the left button so motion can be told apart from a
// drag. Wheel steps are reported whatever the button state.
func (t *Terminal) convertMouse(e *tcell.EventMouse) input.Event {
	b := e.Buttons()
	switch {
	case b&tcell.WheelUp != 0:
		return input.ScrollEvent{DY: 1}
	case b&tcell.WheelDown != 0:
		return input.ScrollEvent{DY: -1}
	case b&tcell.WheelLeft != 0:
		return input.ScrollEvent{DX: -1}
	case b&tcell.WheelRight != 0:
		return input.ScrollEvent{DX: 1}
	}

	x, y := e.Position()
	switch {
	case b&tcell.Button1 != 0 && !t.mouseDown:
		t.mouseDown = true
		return input.MouseEvent{X: x, Y: y, Action: input.MousePress}
	case b&tcell.Button1 != 0:
		return input.MouseEvent{X: x, Y: y, Action: input.MouseMove}
	case t.mouseDown:
		t.mouseDown = false
		return input.MouseEvent{X: x, Y: y, Action: input.MouseRelease}
	}
	return nil
}
