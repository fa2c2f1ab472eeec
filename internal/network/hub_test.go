package network

import (
	"testing"

	"npc-arena/pkg/api"
)

func TestBroadcaster_SubscribeBroadcast(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Subscribe()
	ch2 := b.Subscribe()

	if b.SubscriberCount() != 2 {
		t.Fatalf("expected 2 subscribers, got %d", b.SubscriberCount())
	}

	b.Broadcast(api.FeedMessage{Type: api.MessageValue, Value: &api.ValueEvent{Value: 3}})

	for i, ch := range []chan api.FeedMessage{ch1, ch2} {
		msg := <-ch
		if msg.Type != api.MessageValue || msg.Value.Value != 3 {
			t.Errorf("subscriber %d got unexpected message %+v", i, msg)
		}
	}

	b.Unsubscribe(ch1)
	if _, ok := <-ch1; ok {
		t.Error("channel must be closed after Unsubscribe")
	}
	// Повторная отписка не паникует
	b.Unsubscribe(ch1)
	if b.SubscriberCount() != 1 {
		t.Errorf("expected 1 subscriber, got %d", b.SubscriberCount())
	}
}

func TestBroadcaster_DropsForSlowClients(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()

	// Переполняем буфер: Broadcast не должен блокироваться
	for i := 0; i < subscriberBuffer+10; i++ {
		b.Broadcast(api.FeedMessage{Type: api.MessageValue, Value: &api.ValueEvent{Value: i}})
	}
	if len(ch) != subscriberBuffer {
		t.Errorf("expected buffer to be full (%d), got %d", subscriberBuffer, len(ch))
	}
}
