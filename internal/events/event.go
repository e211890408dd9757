// Package events provides the in-process pub/sub bus connecting the queue
// feed to its view consumers.
package events

import (
	"time"

	"github.com/vmunix/portarr/internal/queue"
)

// Event type constants
const (
	EventQueueSnapshot     = "queue.snapshot"
	EventDownloadCompleted = "download.completed"
	EventFeedError         = "feed.error"
)

// Event is the base interface all events implement.
type Event interface {
	EventType() string
	OccurredAt() time.Time
}

// BaseEvent provides common fields for all events.
type BaseEvent struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"occurred_at"`
}

func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// NewBaseEvent creates a BaseEvent with the current timestamp.
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{Type: eventType, Timestamp: time.Now()}
}

// QueueSnapshot is published every time the feed merges a fresh queue poll.
type QueueSnapshot struct {
	BaseEvent
	SnapshotID string        `json:"snapshot_id"`
	Entries    []queue.Entry `json:"entries"`
}

// DownloadCompleted is published when a tracked target's just-completed
// pulse raises.
type DownloadCompleted struct {
	BaseEvent
	Target      string `json:"target"`
	ReleaseName string `json:"release_name"`
}

// FeedError is published when a queue source fails to answer a poll. The
// previous snapshot stays in effect until the next successful poll.
type FeedError struct {
	BaseEvent
	Source string `json:"source"`
	Err    string `json:"error"`
}
