// Package pubsub is the in-process event hub distributing order lifecycle
// events to open subscriptions. Filtering happens per subscription, so two
// subscribers of one topic may receive disjoint event subsets.
package pubsub

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mberkut/dishpatch/internal/domain/model"
)

// Topic names an event channel.
type Topic string

const (
	TopicPendingOrders Topic = "pending-orders"
	TopicCookedOrders  Topic = "cooked-orders"
	TopicOrderUpdates  Topic = "order-updates"
)

// Event is one published order snapshot. OwnerID carries the restaurant
// owner's id so owner-side subscriptions can filter without re-querying.
type Event struct {
	Order   model.Order
	OwnerID int64
}

// Filter decides whether an event reaches a particular subscription.
// A nil filter passes everything.
type Filter func(Event) bool

// Subscription is one open event stream. Its queue is bounded; when a
// consumer falls behind the oldest queued event is dropped so publishers
// never block on a stalled subscriber.
type Subscription struct {
	id     uuid.UUID
	topic  Topic
	filter Filter
	broker *Broker

	mu     sync.Mutex
	closed bool
	events chan Event
}

// Events returns the delivery channel. It is closed when the subscription
// is closed.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Close removes the subscription from its topic and closes the delivery
// channel. Closing twice is a no-op.
func (s *Subscription) Close() {
	s.broker.unsubscribe(s)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.events)
}

func (s *Subscription) deliver(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for {
		select {
		case s.events <- ev:
			return
		default:
		}
		// queue full: drop the oldest event and retry
		select {
		case <-s.events:
		default:
		}
	}
}

// Broker is the process-wide hub. It is constructed explicitly and injected
// wherever events are published or consumed; there is no package-level
// instance.
type Broker struct {
	buffer int

	mu     sync.RWMutex
	closed bool
	topics map[Topic]map[uuid.UUID]*Subscription
}

const defaultBuffer = 16

// NewBroker creates a broker whose subscriptions buffer up to the given
// number of undelivered events each (drop-oldest on overflow). Non-positive
// values fall back to the default of 16.
func NewBroker(buffer int) *Broker {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Broker{
		buffer: buffer,
		topics: make(map[Topic]map[uuid.UUID]*Subscription),
	}
}

// Subscribe registers a new subscription on the topic. Returns nil after
// the broker was closed.
func (b *Broker) Subscribe(topic Topic, filter Filter) *Subscription {
	sub := &Subscription{
		id:     uuid.New(),
		topic:  topic,
		filter: filter,
		broker: b,
		events: make(chan Event, b.buffer),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[uuid.UUID]*Subscription)
		b.topics[topic] = subs
	}
	subs[sub.id] = sub
	return sub
}

// Publish delivers the event to every open subscription on the topic whose
// filter passes. The registry lock is released before any delivery, so a
// slow subscriber queue never blocks subscribe/unsubscribe or other
// publishers.
func (b *Broker) Publish(topic Topic, ev Event) {
	b.mu.RLock()
	subs := make([]*Subscription, 0, len(b.topics[topic]))
	for _, sub := range b.topics[topic] {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	for _, sub := range subs {
		if sub.filter != nil && !sub.filter(ev) {
			continue
		}
		sub.deliver(ev)
	}
}

// Close shuts the broker down and closes every open subscription.
func (b *Broker) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	var all []*Subscription
	for _, subs := range b.topics {
		for _, sub := range subs {
			all = append(all, sub)
		}
	}
	b.topics = make(map[Topic]map[uuid.UUID]*Subscription)
	b.mu.Unlock()

	for _, sub := range all {
		sub.mu.Lock()
		if !sub.closed {
			sub.closed = true
			close(sub.events)
		}
		sub.mu.Unlock()
	}
}

func (b *Broker) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if subs, ok := b.topics[sub.topic]; ok {
		delete(subs, sub.id)
	}
}
