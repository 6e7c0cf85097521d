package event

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dshills/keyline/internal/event/topic"
)

// Bus is a synchronous publish/subscribe hub.
//
// Publish runs matching handlers in the publisher's goroutine, so a handler
// must not publish to the same bus while holding locks the publisher needs.
type Bus struct {
	mu   sync.RWMutex
	subs []*Subscription
	seq  uint64

	published atomic.Uint64
	executed  atomic.Uint64
	failed    atomic.Uint64
	panicked  atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for events whose topic matches pattern.
func (b *Bus) Subscribe(pattern topic.Topic, h Handler, opts ...SubscriptionOption) (*Subscription, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	if !pattern.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTopic, pattern)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	s := newSubscription(pattern, h, b.seq, opts)
	b.subs = append(b.subs, s)
	slices.SortStableFunc(b.subs, func(x, y *Subscription) int {
		if x.priority != y.priority {
			return int(x.priority) - int(y.priority)
		}
		return compareSeq(x.seq, y.seq)
	})
	return s, nil
}

// SubscribeFunc registers a function handler.
func (b *Bus) SubscribeFunc(pattern topic.Topic, fn func(ctx context.Context, event any) error, opts ...SubscriptionOption) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(pattern, HandlerFunc(fn), opts...)
}

// Unsubscribe removes a subscription.
func (b *Bus) Unsubscribe(s *Subscription) error {
	if s == nil {
		return ErrInvalidSubscription
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	i := slices.Index(b.subs, s)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrSubscriptionNotFound, s.id)
	}
	s.active.Store(false)
	b.subs = slices.Delete(b.subs, i, i+1)
	return nil
}

// Publish delivers event to every matching subscription and returns the
// joined handler errors. event must implement TopicProvider.
func (b *Bus) Publish(ctx context.Context, event any) error {
	tp, ok := event.(TopicProvider)
	if !ok {
		return fmt.Errorf("%w: %T has no topic", ErrInvalidEvent, event)
	}
	t := tp.EventTopic()
	if t == "" || t.IsWildcard() {
		return fmt.Errorf("%w: %q", ErrInvalidTopic, t)
	}
	b.published.Add(1)

	b.mu.RLock()
	targets := make([]*Subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.accepts(t, event) {
			targets = append(targets, s)
		}
	}
	b.mu.RUnlock()

	var errs []error
	for _, s := range targets {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if s.once {
			// A once subscription may race with another publisher.
			if !s.active.CompareAndSwap(true, false) {
				continue
			}
			_ = b.Unsubscribe(s)
		}
		if err := b.deliver(ctx, s, t, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// deliver runs one handler, converting a panic into a PanicError.
func (b *Bus) deliver(ctx context.Context, s *Subscription, t topic.Topic, event any) (err error) {
	b.executed.Add(1)
	s.calls.Add(1)
	defer func() {
		if r := recover(); r != nil {
			b.panicked.Add(1)
			err = &PanicError{SubscriptionID: s.id, Topic: string(t), Value: r}
		}
	}()
	if herr := s.handler.Handle(ctx, event); herr != nil {
		b.failed.Add(1)
		return &HandlerError{SubscriptionID: s.id, Topic: string(t), Err: herr}
	}
	return nil
}

// HasSubscribers reports whether any subscription matches t.
func (b *Bus) HasSubscribers(t topic.Topic) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.subs {
		if t.Matches(s.pattern) {
			return true
		}
	}
	return false
}

// Stats returns a snapshot of bus counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	active := len(b.subs)
	b.mu.RUnlock()
	return Stats{
		EventsPublished:   b.published.Load(),
		HandlersExecuted:  b.executed.Load(),
		HandlerErrors:     b.failed.Load(),
		HandlerPanics:     b.panicked.Load(),
		ActiveSubscribers: active,
	}
}

func compareSeq(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
