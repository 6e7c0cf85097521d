package app

import (
	"context"
	"sync"

	"github.com/dshills/keyline/internal/event"
	"github.com/dshills/keyline/internal/event/topic"
)

// Topic patterns the application listens to.
const (
	topicAll    topic.Topic = "**"
	topicBuffer topic.Topic = "buffer.*"
	topicCursor topic.Topic = "cursor.*"
	topicConfig topic.Topic = "config.*"
)

// eventSource is the Source recorded in events the application publishes.
const eventSource = "app"

// subscriptionManager manages event bus subscriptions for the application.
type subscriptionManager struct {
	mu            sync.Mutex
	subscriptions []*event.Subscription
	app           *Application
}

// newSubscriptionManager creates a new subscription manager.
func newSubscriptionManager(app *Application) *subscriptionManager {
	return &subscriptionManager{app: app}
}

// setupSubscriptions registers all event subscriptions.
func (sm *subscriptionManager) setupSubscriptions() error {
	// Anything that changes what is on screen -> redraw
	for _, pattern := range []topic.Topic{topicBuffer, topicCursor, topicConfig} {
		if err := sm.subscribe(pattern, sm.handleRedraw, event.WithPriority(event.PriorityHigh)); err != nil {
			return err
		}
	}

	// Everything -> debug log
	return sm.subscribe(topicAll, sm.handleDebugLog, event.WithPriority(event.PriorityLow))
}

func (sm *subscriptionManager) subscribe(pattern topic.Topic, fn func(context.Context, any) error, opts ...event.SubscriptionOption) error {
	sub, err := sm.app.bus.SubscribeFunc(pattern, fn, opts...)
	if err != nil {
		return err
	}
	sm.mu.Lock()
	sm.subscriptions = append(sm.subscriptions, sub)
	sm.mu.Unlock()
	return nil
}

// cleanup unsubscribes all managed subscriptions.
// Safe to call multiple times.
func (sm *subscriptionManager) cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for _, sub := range sm.subscriptions {
		_ = sm.app.bus.Unsubscribe(sub)
	}
	sm.subscriptions = nil
}

// Event Handlers

// handleRedraw marks the screen stale.
func (sm *subscriptionManager) handleRedraw(_ context.Context, _ any) error {
	sm.app.dirty = true
	return nil
}

// handleDebugLog records every published event at debug level.
func (sm *subscriptionManager) handleDebugLog(_ context.Context, ev any) error {
	log := sm.app.Logger().WithComponent("event")
	if log.Level() > LogLevelDebug {
		return nil
	}
	if tp, ok := ev.(event.TopicProvider); ok {
		log = log.WithField("topic", tp.EventTopic())
	}
	if mp, ok := ev.(event.MetadataProvider); ok {
		log = log.WithField("id", mp.EventMetadata().ID)
	}
	if pp, ok := ev.(event.PayloadProvider); ok {
		log.Debug("published %+v", pp.EventPayload())
		return nil
	}
	log.Debug("published")
	return nil
}

// publish sends ev on the bus. Handler errors are logged and returned.
func (app *Application) publish(ctx context.Context, ev any) error {
	if err := app.bus.Publish(ctx, ev); err != nil {
		app.logComponentError("event", err)
		return err
	}
	return nil
}
