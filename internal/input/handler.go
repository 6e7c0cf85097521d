package input

import (
	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/engine/cursor"
	"github.com/dshills/keyline/internal/engine/edit"
	"github.com/dshills/keyline/internal/engine/motion"
)

// Action is a request the Handler cannot carry out itself.
type Action uint8

const (
	ActionNone Action = iota
	ActionSave
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionSave:
		return "save"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// Result reports the effect of one event.
type Result struct {
	Action   Action
	Edited   bool // document content changed
	Moved    bool // caret or selection changed
	Scrolled bool // viewport moved or resized
}

// NeedsRedraw reports whether the screen is stale.
func (r Result) NeedsRedraw() bool {
	return r.Edited || r.Moved || r.Scrolled
}

// Handler applies input events to an engine.
type Handler struct {
	eng    *engine.Engine
	clip   engine.Clipboard
	view   *Viewport
	scroll ScrollConfig
}

// NewHandler creates a handler editing eng and scrolling view.
func NewHandler(eng *engine.Engine, clip engine.Clipboard, view *Viewport, scroll ScrollConfig) *Handler {
	return &Handler{eng: eng, clip: clip, view: view, scroll: scroll}
}

// SetScroll replaces the wheel settings.
func (h *Handler) SetScroll(cfg ScrollConfig) {
	h.scroll = cfg
}

// Viewport returns the viewport the handler scrolls.
func (h *Handler) Viewport() *Viewport {
	return h.view
}

// Handle applies ev. Engine and clipboard errors are returned alongside the
// result; the result is still accurate for whatever did change.
func (h *Handler) Handle(ev Event) (Result, error) {
	cur := h.eng.Cursor()
	rev := h.eng.Revision()
	view := *h.view

	var res Result
	var err error
	switch e := ev.(type) {
	case KeyEvent:
		res.Action, err = h.key(e)
		h.autoscroll()
	case TextEvent:
		err = h.text(e.Text)
		h.autoscroll()
	case PasteEvent:
		err = h.text(e.Text)
		h.autoscroll()
	case MouseEvent:
		h.mouse(e)
	case ScrollEvent:
		h.view.Scroll(e.DX, e.DY, h.eng.LineCount(), h.scroll)
	case ResizeEvent:
		h.view.Resize(e.Cols, e.Rows)
		h.autoscroll()
	}

	res.Edited = h.eng.Revision() != rev
	res.Moved = h.eng.Cursor() != cur
	res.Scrolled = *h.view != view
	return res, err
}

func (h *Handler) autoscroll() {
	h.view.Autoscroll(h.eng.Cursor().Pos, h.eng.LineCount())
}

// text inserts typed or pasted text over the selection.
func (h *Handler) text(b []byte) error {
	if len(edit.Clean(b)) == 0 {
		return ErrInvalidInput
	}
	return h.eng.TextInput(b)
}

func (h *Handler) key(e KeyEvent) (Action, error) {
	ctrl := e.Modifiers.Has(ModCtrl)
	shift := e.Modifiers.Has(ModShift)

	switch {
	case e.isCtrlRune('a'):
		h.eng.SelectAll()
		return ActionNone, nil
	case e.isCtrlRune('c'):
		return ActionNone, h.eng.Copy(h.clip)
	case e.isCtrlRune('x'):
		return ActionNone, h.eng.Cut(h.clip)
	case e.isCtrlRune('v'):
		return ActionNone, h.eng.Paste(h.clip)
	case e.isCtrlRune('s'):
		return ActionSave, nil
	case e.isCtrlRune('q'):
		return ActionQuit, nil
	}

	switch e.Key {
	case KeyEnter:
		return ActionNone, h.eng.Newline()
	case KeyTab:
		if shift {
			return ActionNone, h.eng.ShiftTab()
		}
		return ActionNone, h.eng.Tab()
	case KeyBackspace:
		return ActionNone, h.eng.Backspace(ctrl)
	case KeyDelete:
		return ActionNone, h.eng.Delete(ctrl)
	case KeyLeft:
		h.eng.Move(motion.DirLeft, shift, ctrl)
	case KeyRight:
		h.eng.Move(motion.DirRight, shift, ctrl)
	case KeyUp:
		h.eng.Move(motion.DirUp, shift, false)
	case KeyDown:
		h.eng.Move(motion.DirDown, shift, false)
	case KeyHome:
		if ctrl {
			h.eng.Move(motion.DirDocStart, shift, false)
		} else {
			h.eng.Move(motion.DirHome, shift, false)
		}
	case KeyEnd:
		if ctrl {
			h.eng.Move(motion.DirDocEnd, shift, false)
		} else {
			h.eng.Move(motion.DirEnd, shift, false)
		}
	case KeyPageUp:
		h.page(motion.DirUp, shift)
	case KeyPageDown:
		h.page(motion.DirDown, shift)
	case KeyRune:
		if ctrl || e.Modifiers.Has(ModAlt) {
			return ActionNone, nil
		}
		return ActionNone, h.text([]byte(string(e.Rune)))
	}
	return ActionNone, nil
}

// page moves the caret one screen up or down.
func (h *Handler) page(dir motion.Direction, shift bool) {
	for range max(h.view.Rows-1, 1) {
		h.eng.Move(dir, shift, false)
	}
}

func (h *Handler) mouse(e MouseEvent) {
	switch e.Action {
	case MousePress:
		h.eng.MouseDown(h.view.ScreenToPoint(e.X, e.Y, h.eng))
	case MouseMove:
		if h.eng.Cursor().Mode == cursor.ModeMouseSelecting {
			h.eng.MouseDrag(h.view.ScreenToPoint(e.X, e.Y, h.eng))
		}
	case MouseRelease:
		h.eng.MouseUp()
	}
}
