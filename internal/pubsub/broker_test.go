package pubsub

import (
	"testing"
	"time"

	"github.com/mberkut/dishpatch/internal/domain/model"
)

func recvEvent(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		if !ok {
			t.Fatal("subscription channel closed unexpectedly")
		}
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func assertNoEvent(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event for order %d", ev.Order.ID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishReachesMatchingSubscriberOnly(t *testing.T) {
	broker := NewBroker(0)
	defer broker.Close()

	ownerA := broker.Subscribe(TopicPendingOrders, func(ev Event) bool { return ev.OwnerID == 3 })
	ownerB := broker.Subscribe(TopicPendingOrders, func(ev Event) bool { return ev.OwnerID == 7 })

	broker.Publish(TopicPendingOrders, Event{Order: model.Order{ID: 1}, OwnerID: 3})

	ev := recvEvent(t, ownerA)
	if ev.Order.ID != 1 {
		t.Fatalf("expected order 1, got %d", ev.Order.ID)
	}
	assertNoEvent(t, ownerB)
}

func TestNilFilterPassesEverything(t *testing.T) {
	broker := NewBroker(0)
	defer broker.Close()

	sub := broker.Subscribe(TopicCookedOrders, nil)
	broker.Publish(TopicCookedOrders, Event{Order: model.Order{ID: 5}})

	if ev := recvEvent(t, sub); ev.Order.ID != 5 {
		t.Fatalf("expected order 5, got %d", ev.Order.ID)
	}
}

func TestDeliveryIsFIFOPerSubscription(t *testing.T) {
	broker := NewBroker(8)
	defer broker.Close()

	sub := broker.Subscribe(TopicOrderUpdates, nil)
	for i := int64(1); i <= 4; i++ {
		broker.Publish(TopicOrderUpdates, Event{Order: model.Order{ID: i}})
	}
	for i := int64(1); i <= 4; i++ {
		if ev := recvEvent(t, sub); ev.Order.ID != i {
			t.Fatalf("expected order %d, got %d", i, ev.Order.ID)
		}
	}
}

func TestSlowConsumerDropsOldest(t *testing.T) {
	broker := NewBroker(2)
	defer broker.Close()

	sub := broker.Subscribe(TopicOrderUpdates, nil)
	for i := int64(1); i <= 5; i++ {
		broker.Publish(TopicOrderUpdates, Event{Order: model.Order{ID: i}})
	}

	// buffer of 2: only the two newest events survive
	if ev := recvEvent(t, sub); ev.Order.ID != 4 {
		t.Fatalf("expected oldest surviving event 4, got %d", ev.Order.ID)
	}
	if ev := recvEvent(t, sub); ev.Order.ID != 5 {
		t.Fatalf("expected event 5, got %d", ev.Order.ID)
	}
	assertNoEvent(t, sub)
}

func TestCloseStopsDelivery(t *testing.T) {
	broker := NewBroker(0)
	defer broker.Close()

	sub := broker.Subscribe(TopicOrderUpdates, nil)
	sub.Close()

	// delivery to a canceled subscription is a no-op, not a panic
	broker.Publish(TopicOrderUpdates, Event{Order: model.Order{ID: 1}})

	if _, ok := <-sub.Events(); ok {
		t.Fatal("expected closed channel")
	}
	sub.Close() // second close is harmless
}

func TestBrokerCloseClosesSubscriptions(t *testing.T) {
	broker := NewBroker(0)
	sub := broker.Subscribe(TopicPendingOrders, nil)
	broker.Close()

	if _, ok := <-sub.Events(); ok {
		t.Fatal("expected subscription channel to close with broker")
	}
	if broker.Subscribe(TopicPendingOrders, nil) != nil {
		t.Fatal("subscribe after close must return nil")
	}
	broker.Publish(TopicPendingOrders, Event{}) // no-op after close
}

func TestConcurrentPublishAndSubscribe(t *testing.T) {
	broker := NewBroker(64)
	defer broker.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			broker.Publish(TopicOrderUpdates, Event{Order: model.Order{ID: int64(i)}})
		}
	}()

	for i := 0; i < 50; i++ {
		sub := broker.Subscribe(TopicOrderUpdates, nil)
		sub.Close()
	}
	<-done
}
