package event

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/uirouter/internal/event/topic"
)

// HandlerFunc handles a delivered event.
type HandlerFunc func(ctx context.Context, event any) error

// Subscription is a registered handler.
type Subscription struct {
	id      string
	pattern topic.Topic
	handler HandlerFunc
	once    bool
	active  atomic.Bool
}

// ID returns the subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Pattern returns the topic pattern.
func (s *Subscription) Pattern() topic.Topic {
	return s.pattern
}

// IsActive reports whether the subscription still receives events.
func (s *Subscription) IsActive() bool {
	return s.active.Load()
}

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*Subscription)

// Once removes the subscription after its first successful delivery.
func Once() SubscriptionOption {
	return func(s *Subscription) {
		s.once = true
	}
}

// Stats reports bus counters.
type Stats struct {
	EventsPublished  uint64
	EventsDelivered  uint64
	HandlerErrors    uint64
	HandlerPanics    uint64
	SubscriptionsNow int
}

// Bus delivers events to subscribers synchronously.
type Bus struct {
	mu   sync.RWMutex
	subs []*Subscription

	paused atomic.Bool

	eventsPublished atomic.Uint64
	eventsDelivered atomic.Uint64
	handlerErrors   atomic.Uint64
	handlerPanics   atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for events whose topic matches pattern.
func (b *Bus) Subscribe(pattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	if !pattern.IsValid() {
		return nil, ErrInvalidTopic
	}

	sub := &Subscription{
		id:      uuid.NewString(),
		pattern: pattern,
		handler: fn,
	}
	for _, opt := range opts {
		opt(sub)
	}
	sub.active.Store(true)

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	return sub, nil
}

// Unsubscribe removes a subscription.
func (b *Bus) Unsubscribe(sub *Subscription) error {
	if sub == nil {
		return ErrSubscriptionNotFound
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s == sub {
			s.active.Store(false)
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Pause temporarily stops event delivery.
// Events published while paused are dropped.
func (b *Bus) Pause() {
	b.paused.Store(true)
}

// Resume restarts event delivery after a pause.
func (b *Bus) Resume() {
	b.paused.Store(false)
}

// Publish delivers event to every matching subscriber before returning.
// Errors and panics from handlers are collected and returned together.
func (b *Bus) Publish(ctx context.Context, event TopicProvider) error {
	if event == nil {
		return ErrInvalidEvent
	}
	t := event.EventTopic()
	if !t.IsValid() {
		return ErrInvalidEvent
	}
	if b.paused.Load() {
		return nil
	}

	b.eventsPublished.Add(1)

	var errs []error
	for _, sub := range b.match(t) {
		if !sub.IsActive() {
			continue
		}
		if err := b.deliver(ctx, sub, t, event); err != nil {
			errs = append(errs, err)
			continue
		}
		b.eventsDelivered.Add(1)
		if sub.once {
			_ = b.Unsubscribe(sub)
		}
	}
	return errors.Join(errs...)
}

func (b *Bus) match(t topic.Topic) []*Subscription {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []*Subscription
	for _, s := range b.subs {
		if t.Matches(s.pattern) {
			out = append(out, s)
		}
	}
	return out
}

func (b *Bus) deliver(ctx context.Context, sub *Subscription, t topic.Topic, event any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.handlerPanics.Add(1)
			err = &PanicError{SubscriptionID: sub.id, Topic: t.String(), Value: r}
		}
	}()

	if herr := sub.handler(ctx, event); herr != nil {
		b.handlerErrors.Add(1)
		return &HandlerError{SubscriptionID: sub.id, Topic: t.String(), Err: herr}
	}
	return nil
}

// Stats returns a snapshot of the bus counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	n := len(b.subs)
	b.mu.RUnlock()

	return Stats{
		EventsPublished:  b.eventsPublished.Load(),
		EventsDelivered:  b.eventsDelivered.Load(),
		HandlerErrors:    b.handlerErrors.Load(),
		HandlerPanics:    b.handlerPanics.Load(),
		SubscriptionsNow: n,
	}
}
