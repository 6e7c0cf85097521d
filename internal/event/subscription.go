package event

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/keyline/internal/event/topic"
)

// Subscription represents an active subscription to a topic pattern.
type Subscription struct {
	id       string
	pattern  topic.Topic
	handler  Handler
	priority Priority
	filter   FilterFunc
	once     bool
	seq      uint64

	active atomic.Bool
	calls  atomic.Uint64
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string { return s.id }

// Topic returns the subscribed pattern.
func (s *Subscription) Topic() topic.Topic { return s.pattern }

// Priority returns the handler priority.
func (s *Subscription) Priority() Priority { return s.priority }

// IsActive reports whether the subscription still receives events.
func (s *Subscription) IsActive() bool { return s.active.Load() }

// Calls returns how many times the handler has been invoked.
func (s *Subscription) Calls() uint64 { return s.calls.Load() }

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*Subscription)

// WithPriority sets the handler priority. Lower values run first.
func WithPriority(p Priority) SubscriptionOption {
	return func(s *Subscription) {
		s.priority = p
	}
}

// WithFilter only delivers events for which fn returns true.
func WithFilter(fn FilterFunc) SubscriptionOption {
	return func(s *Subscription) {
		s.filter = fn
	}
}

// WithOnce removes the subscription after its first delivery.
func WithOnce() SubscriptionOption {
	return func(s *Subscription) {
		s.once = true
	}
}

func newSubscription(pattern topic.Topic, h Handler, seq uint64, opts []SubscriptionOption) *Subscription {
	s := &Subscription{
		id:       uuid.NewString(),
		pattern:  pattern,
		handler:  h,
		priority: PriorityNormal,
		seq:      seq,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.active.Store(true)
	return s
}

// accepts reports whether the subscription should receive ev on t.
func (s *Subscription) accepts(t topic.Topic, ev any) bool {
	if !s.active.Load() || !t.Matches(s.pattern) {
		return false
	}
	return s.filter == nil || s.filter(ev)
}
