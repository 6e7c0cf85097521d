package script

import (
	"context"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/event"
	"github.com/dshills/keyline/internal/event/topic"
)

// DefaultTimeout bounds a single script execution.
const DefaultTimeout = 5 * time.Second

// Editor is the part of the engine scripts can reach.
type Editor interface {
	Text() string
	LineText(line int) string
	LineCount() int
	Cursor() engine.CursorState
	MoveTo(p engine.Point)
	Select(anchor, head engine.Point)
	Selected() ([]byte, error)
	InsertText(p engine.Point, text []byte) error
	EraseRange(begin, end engine.Point) error
	ExtractRange(begin, end engine.Point) ([]byte, error)
	Tab() error
	ShiftTab() error
}

// Bus is the part of the event bus hooks subscribe through.
type Bus interface {
	SubscribeFunc(pattern topic.Topic, fn func(ctx context.Context, ev any) error, opts ...event.SubscriptionOption) (*event.Subscription, error)
	Unsubscribe(s *event.Subscription) error
}

// State is a sandboxed Lua interpreter bound to one editor.
type State struct {
	L *lua.LState

	mu     sync.Mutex
	ed     Editor
	bus    Bus
	hooks  map[string]hook
	closed bool

	timeout time.Duration
	output  func(string)
}

// Option configures a State.
type Option func(*State)

// WithBus enables editor.on hooks on bus.
func WithBus(bus Bus) Option {
	return func(s *State) {
		s.bus = bus
	}
}

// WithTimeout bounds each DoString, DoFile and hook call. Zero disables
// the limit.
func WithTimeout(d time.Duration) Option {
	return func(s *State) {
		if d >= 0 {
			s.timeout = d
		}
	}
}

// WithOutput receives the text of Lua print calls. By default it is
// discarded since the terminal owns stdout.
func WithOutput(fn func(string)) Option {
	return func(s *State) {
		s.output = fn
	}
}

// NewState creates a Lua state exposing ed as the editor table.
func NewState(ed Editor, opts ...Option) *State {
	s := &State{
		ed:      ed,
		hooks:   make(map[string]hook),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(s.L)
	s.L.SetGlobal("print", s.L.NewFunction(s.print))
	s.registerEditor()
	return s
}

// openSafeLibraries opens only the libraries that cannot touch the host.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// DoString executes Lua source.
func (s *State) DoString(code string) error {
	return s.run(func() error { return s.L.DoString(code) })
}

// DoFile executes a Lua file.
func (s *State) DoFile(path string) error {
	return s.run(func() error { return s.L.DoFile(path) })
}

// Close unsubscribes every hook and releases the interpreter.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	for id := range s.hooks {
		s.removeHook(id)
	}
	s.L.Close()
	s.closed = true
	return nil
}

// run executes fn under the lock with the timeout and panic recovery.
func (s *State) run(fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	if s.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.L.SetContext(ctx)
		defer s.L.RemoveContext()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

func (s *State) print(L *lua.LState) int {
	if s.output == nil {
		return 0
	}
	n := L.GetTop()
	line := ""
	for i := 1; i <= n; i++ {
		if i > 1 {
			line += "\t"
		}
		line += L.ToStringMeta(L.Get(i)).String()
	}
	s.output(line)
	return 0
}
