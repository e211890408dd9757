package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/portarr/internal/queue"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.Subscribe(EventQueueSnapshot, 10)

	e := QueueSnapshot{
		BaseEvent:  NewBaseEvent(EventQueueSnapshot),
		SnapshotID: "snap-1",
		Entries:    []queue.Entry{{ID: "a", Status: queue.StatusDownloading}},
	}
	bus.Publish(e)

	select {
	case received := <-ch:
		assert.Equal(t, EventQueueSnapshot, received.EventType())
		snap, ok := received.(QueueSnapshot)
		assert.True(t, ok)
		assert.Equal(t, "snap-1", snap.SnapshotID)
		assert.Len(t, snap.Entries, 1)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestBus_TypeFiltering(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.Subscribe(EventDownloadCompleted, 10)

	bus.Publish(QueueSnapshot{BaseEvent: NewBaseEvent(EventQueueSnapshot)})
	bus.Publish(DownloadCompleted{BaseEvent: NewBaseEvent(EventDownloadCompleted), Target: "movie/42"})

	select {
	case received := <-ch:
		assert.Equal(t, EventDownloadCompleted, received.EventType())
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	select {
	case e := <-ch:
		t.Fatalf("unexpected second event: %v", e.EventType())
	default:
	}
}

func TestBus_SubscribeAll(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.SubscribeAll(10)

	bus.Publish(QueueSnapshot{BaseEvent: NewBaseEvent(EventQueueSnapshot)})
	bus.Publish(FeedError{BaseEvent: NewBaseEvent(EventFeedError), Source: "radarr", Err: "boom"})

	types := make([]string, 0, 2)
	timeout := time.After(time.Second)
	for i := 0; i < 2; i++ {
		select {
		case e := <-ch:
			types = append(types, e.EventType())
		case <-timeout:
			t.Fatal("timeout waiting for events")
		}
	}
	assert.Equal(t, []string{EventQueueSnapshot, EventFeedError}, types)
}

func TestBus_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.Subscribe(EventQueueSnapshot, 1)

	bus.Publish(QueueSnapshot{BaseEvent: NewBaseEvent(EventQueueSnapshot), SnapshotID: "first"})
	// Buffer is full; this publish must not block.
	done := make(chan struct{})
	go func() {
		bus.Publish(QueueSnapshot{BaseEvent: NewBaseEvent(EventQueueSnapshot), SnapshotID: "second"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	snap := (<-ch).(QueueSnapshot)
	assert.Equal(t, "first", snap.SnapshotID)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.Subscribe(EventQueueSnapshot, 1)
	bus.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open, "unsubscribed channel should be closed")
}

func TestBus_CloseIdempotent(t *testing.T) {
	bus := NewBus(nil)
	assert.NoError(t, bus.Close())
	assert.NoError(t, bus.Close())

	// Publishing after close is a no-op, not a panic.
	bus.Publish(QueueSnapshot{BaseEvent: NewBaseEvent(EventQueueSnapshot)})
}
