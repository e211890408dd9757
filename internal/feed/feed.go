// Package feed polls download services for their queues and publishes
// merged, identity-tagged snapshots for the view layer to project.
package feed

import (
	"context"
	"time"

	"github.com/vmunix/portarr/internal/queue"
)

// Source supplies the current queue of one download service.
type Source interface {
	// Name identifies the source in entry IDs and error events.
	Name() string
	// Queue returns the service's current queue entries.
	Queue(ctx context.Context) ([]queue.Entry, error)
}

// Snapshot is one merged poll of all sources. The ID is the snapshot's
// identity: consumers memoize derived views against it and recompute only
// when it changes.
type Snapshot struct {
	ID      string        `json:"id"`
	At      time.Time     `json:"at"`
	Entries []queue.Entry `json:"entries"`
}
