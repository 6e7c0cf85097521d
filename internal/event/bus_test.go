package event

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/keyline/internal/event/topic"
)

func TestNewEvent(t *testing.T) {
	e := NewEvent(TopicBufferChanged, BufferChanged{LineCount: 3, Revision: 7}, "engine")

	if e.Type != TopicBufferChanged {
		t.Errorf("Type = %q, want %q", e.Type, TopicBufferChanged)
	}
	if e.Metadata.ID == "" {
		t.Error("Metadata.ID is empty")
	}
	if e.Metadata.Timestamp.IsZero() {
		t.Error("Metadata.Timestamp is zero")
	}
	if e.Metadata.Source != "engine" {
		t.Errorf("Source = %q, want engine", e.Metadata.Source)
	}
	if got := e.EventPayload().(BufferChanged).Revision; got != 7 {
		t.Errorf("payload revision = %d, want 7", got)
	}

	other := NewEvent(TopicBufferChanged, BufferChanged{}, "engine")
	if other.Metadata.ID == e.Metadata.ID {
		t.Error("two events share an ID")
	}
}

func TestBusPublishMatching(t *testing.T) {
	bus := NewBus()
	var got []topic.Topic

	record := func(ctx context.Context, ev any) error {
		got = append(got, ev.(TopicProvider).EventTopic())
		return nil
	}
	if _, err := bus.SubscribeFunc("buffer.*", record); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	ctx := context.Background()
	_ = bus.Publish(ctx, NewEvent(TopicBufferChanged, BufferChanged{}, "test"))
	_ = bus.Publish(ctx, NewEvent(TopicCursorMoved, CursorMoved{}, "test"))
	_ = bus.Publish(ctx, NewEvent(TopicBufferSaved, BufferSaved{}, "test"))

	if len(got) != 2 || got[0] != TopicBufferChanged || got[1] != TopicBufferSaved {
		t.Errorf("delivered %v, want [buffer.changed buffer.saved]", got)
	}
}

func TestBusPriorityOrder(t *testing.T) {
	bus := NewBus()
	var order []string

	add := func(name string, p Priority) {
		_, err := bus.SubscribeFunc("**", func(ctx context.Context, ev any) error {
			order = append(order, name)
			return nil
		}, WithPriority(p))
		if err != nil {
			t.Fatalf("Subscribe: %v", err)
		}
	}
	add("low", PriorityLow)
	add("normal-1", PriorityNormal)
	add("critical", PriorityCritical)
	add("normal-2", PriorityNormal)

	_ = bus.Publish(context.Background(), NewEvent(TopicCursorMoved, CursorMoved{}, "test"))

	want := []string{"critical", "normal-1", "normal-2", "low"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestBusHandlerErrorAndPanic(t *testing.T) {
	bus := NewBus()
	boom := errors.New("boom")
	reached := false

	_, _ = bus.SubscribeFunc("buffer.changed", func(ctx context.Context, ev any) error {
		return boom
	}, WithPriority(PriorityCritical))
	_, _ = bus.SubscribeFunc("buffer.changed", func(ctx context.Context, ev any) error {
		panic("bad handler")
	}, WithPriority(PriorityHigh))
	_, _ = bus.SubscribeFunc("buffer.changed", func(ctx context.Context, ev any) error {
		reached = true
		return nil
	})

	err := bus.Publish(context.Background(), NewEvent(TopicBufferChanged, BufferChanged{}, "test"))
	if !errors.Is(err, boom) {
		t.Errorf("error %v does not wrap boom", err)
	}
	if !errors.Is(err, ErrHandlerPanic) {
		t.Errorf("error %v does not report the panic", err)
	}
	var he *HandlerError
	if !errors.As(err, &he) || he.Topic != "buffer.changed" {
		t.Errorf("errors.As HandlerError = %v", he)
	}
	if !reached {
		t.Error("handler after the panicking one did not run")
	}

	stats := bus.Stats()
	if stats.HandlerErrors != 1 || stats.HandlerPanics != 1 || stats.HandlersExecuted != 3 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	sub, err := bus.SubscribeFunc("cursor.moved", func(ctx context.Context, ev any) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	ev := NewEvent(TopicCursorMoved, CursorMoved{}, "test")
	_ = bus.Publish(context.Background(), ev)
	if err := bus.Unsubscribe(sub); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}
	_ = bus.Publish(context.Background(), ev)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if sub.IsActive() {
		t.Error("subscription still active")
	}
	if err := bus.Unsubscribe(sub); !errors.Is(err, ErrSubscriptionNotFound) {
		t.Errorf("second Unsubscribe = %v, want ErrSubscriptionNotFound", err)
	}
	if bus.HasSubscribers(TopicCursorMoved) {
		t.Error("HasSubscribers after unsubscribe")
	}
}

func TestBusOnceAndFilter(t *testing.T) {
	bus := NewBus()
	once, filtered := 0, 0

	_, _ = bus.SubscribeFunc("buffer.changed", func(ctx context.Context, ev any) error {
		once++
		return nil
	}, WithOnce())
	_, _ = bus.SubscribeFunc("buffer.changed", func(ctx context.Context, ev any) error {
		filtered++
		return nil
	}, WithFilter(func(ev any) bool {
		return ev.(Event[BufferChanged]).Payload.LineCount > 1
	}))

	ctx := context.Background()
	_ = bus.Publish(ctx, NewEvent(TopicBufferChanged, BufferChanged{LineCount: 1}, "test"))
	_ = bus.Publish(ctx, NewEvent(TopicBufferChanged, BufferChanged{LineCount: 2}, "test"))

	if once != 1 {
		t.Errorf("once handler ran %d times, want 1", once)
	}
	if filtered != 1 {
		t.Errorf("filtered handler ran %d times, want 1", filtered)
	}
	if n := bus.Stats().ActiveSubscribers; n != 1 {
		t.Errorf("ActiveSubscribers = %d, want 1", n)
	}
}

func TestBusTypedHandler(t *testing.T) {
	bus := NewBus()
	var path string
	_, err := bus.Subscribe(TopicBufferSaved, AsHandler(func(ctx context.Context, e Event[BufferSaved]) error {
		path = e.Payload.Path
		return nil
	}))
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	_ = bus.Publish(context.Background(), NewEvent(TopicBufferSaved, BufferSaved{Path: "a.txt", Bytes: 4}, "app"))
	if path != "a.txt" {
		t.Errorf("path = %q, want a.txt", path)
	}
}

func TestBusInvalidInput(t *testing.T) {
	bus := NewBus()
	ctx := context.Background()

	if _, err := bus.Subscribe("buffer.changed", nil); !errors.Is(err, ErrNilHandler) {
		t.Errorf("nil handler: %v", err)
	}
	if _, err := bus.SubscribeFunc("buffer..changed", func(context.Context, any) error { return nil }); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("bad pattern: %v", err)
	}
	if err := bus.Publish(ctx, "not an event"); !errors.Is(err, ErrInvalidEvent) {
		t.Errorf("untyped publish: %v", err)
	}
	if err := bus.Publish(ctx, NewEvent[any]("buffer.*", nil, "test")); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("wildcard publish: %v", err)
	}
}

func TestBusCanceledContext(t *testing.T) {
	bus := NewBus()
	ran := false
	_, _ = bus.SubscribeFunc("**", func(ctx context.Context, ev any) error {
		ran = true
		return nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := bus.Publish(ctx, NewEvent(TopicConfigReloaded, ConfigReloaded{}, "test"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if ran {
		t.Error("handler ran on a canceled context")
	}
}

func TestPriorityString(t *testing.T) {
	tests := []struct {
		p    Priority
		want string
	}{
		{PriorityCritical, "critical"},
		{PriorityHigh, "high"},
		{PriorityNormal, "normal"},
		{PriorityLow, "low"},
		{150, "normal"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Priority(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
