package script

import (
	"context"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyline/internal/event"
	"github.com/dshills/keyline/internal/event/topic"
)

// hook is a Lua function subscribed to a topic pattern.
type hook struct {
	fn  *lua.LFunction
	sub *event.Subscription
}

// Hooks returns the number of active hooks.
func (s *State) Hooks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hooks)
}

// on(topic, fn) -> id
// fn receives a table describing the event.
func (s *State) on(L *lua.LState) int {
	pattern := topic.Topic(L.CheckString(1))
	fn := L.CheckFunction(2)

	if s.bus == nil {
		L.RaiseError("on: %v", ErrNoBus)
		return 0
	}

	var id string
	sub, err := s.bus.SubscribeFunc(pattern, func(ctx context.Context, ev any) error {
		return s.callHook(ctx, id, ev)
	})
	if err != nil {
		L.RaiseError("on: %v", err)
		return 0
	}
	id = sub.ID()
	s.hooks[id] = hook{fn: fn, sub: sub}

	L.Push(lua.LString(id))
	return 1
}

// off(id) -> bool
func (s *State) off(L *lua.LState) int {
	id := L.CheckString(1)
	_, ok := s.hooks[id]
	if ok {
		s.removeHook(id)
	}
	L.Push(lua.LBool(ok))
	return 1
}

// removeHook unsubscribes a hook. The caller holds s.mu or runs inside Lua.
func (s *State) removeHook(id string) {
	h := s.hooks[id]
	delete(s.hooks, id)
	if s.bus != nil && h.sub != nil {
		_ = s.bus.Unsubscribe(h.sub)
	}
}

// callHook runs a hook for an event published on the bus.
func (s *State) callHook(ctx context.Context, id string, ev any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	h, ok := s.hooks[id]
	if !ok {
		return nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	err := s.L.CallByParam(lua.P{Fn: h.fn, NRet: 0, Protect: true}, eventTable(s.L, ev))
	if err != nil {
		return fmt.Errorf("lua hook %s: %w", id, err)
	}
	return nil
}

// eventTable converts a published event to a Lua table with a topic field
// and the payload fields. Positions are 1-based.
func eventTable(L *lua.LState, ev any) *lua.LTable {
	t := L.NewTable()
	if tp, ok := ev.(event.TopicProvider); ok {
		t.RawSetString("topic", lua.LString(tp.EventTopic()))
	}
	if mp, ok := ev.(event.MetadataProvider); ok {
		t.RawSetString("id", lua.LString(mp.EventMetadata().ID))
		t.RawSetString("source", lua.LString(mp.EventMetadata().Source))
	}

	pp, ok := ev.(event.PayloadProvider)
	if !ok {
		return t
	}
	switch p := pp.EventPayload().(type) {
	case event.BufferChanged:
		t.RawSetString("line_count", lua.LNumber(p.LineCount))
		t.RawSetString("revision", lua.LNumber(p.Revision))
	case event.CursorMoved:
		t.RawSetString("line", lua.LNumber(p.Pos.Line+1))
		t.RawSetString("col", lua.LNumber(p.Pos.Column+1))
		t.RawSetString("has_selection", lua.LBool(p.HasSelection))
		if p.HasSelection {
			t.RawSetString("begin_line", lua.LNumber(p.Begin.Line+1))
			t.RawSetString("begin_col", lua.LNumber(p.Begin.Column+1))
			t.RawSetString("end_line", lua.LNumber(p.End.Line+1))
			t.RawSetString("end_col", lua.LNumber(p.End.Column+1))
			t.RawSetString("backward", lua.LBool(p.Selection.IsBackward()))
		}
	case event.BufferSaved:
		t.RawSetString("path", lua.LString(p.Path))
		t.RawSetString("bytes", lua.LNumber(p.Bytes))
	case event.ConfigReloaded:
		t.RawSetString("path", lua.LString(p.Path))
	}
	return t
}
