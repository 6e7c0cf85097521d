package term

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyline/internal/input"
)

// ErrClosed is returned by PollEvent once the screen has been finalized.
var ErrClosed = errors.New("terminal closed")

// Terminal implements the editor host on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	styles Styles
	mu     sync.Mutex

	// Event conversion state, only touched by the polling goroutine.
	pasting   bool
	paste     []byte
	mouseDown bool
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithStyles sets the drawing styles.
func WithStyles(s Styles) Option {
	return func(t *Terminal) {
		t.styles = s
	}
}

// New creates a terminal on the process's controlling tty.
func New(opts ...Option) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, opts...), nil
}

// NewWithScreen creates a terminal on an existing screen, such as a
// tcell simulation screen.
func NewWithScreen(screen tcell.Screen, opts ...Option) *Terminal {
	t := &Terminal{screen: screen, styles: DefaultStyles()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init initializes the screen and enables mouse and bracketed paste.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	t.screen.EnablePaste()
	t.screen.SetStyle(t.styles.Text)
	t.screen.Clear()
	return nil
}

// Fini restores the terminal. PollEvent returns ErrClosed afterwards.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the area available for text and gutter: the whole screen
// minus the status line.
func (t *Terminal) Size() (cols, rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.screen.Size()
	return w, max(h-statusRows, 0)
}

// Post schedules fn to run on the goroutine calling PollEvent. It is the
// way for other goroutines to touch state owned by the event loop.
func (t *Terminal) Post(fn func()) error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(fn))
}

// PollEvent waits for the next event the editor understands. Posted
// functions run here and yield a nil event so the caller can redraw.
func (t *Terminal) PollEvent() (input.Event, error) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil, ErrClosed
		}
		if in, ok := ev.(*tcell.EventInterrupt); ok {
			if fn, ok := in.Data().(func()); ok && fn != nil {
				fn()
			}
			return nil, nil
		}
		if out := t.convert(ev); out != nil {
			return out, nil
		}
	}
}
