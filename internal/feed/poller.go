package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/portarr/internal/events"
	"github.com/vmunix/portarr/internal/queue"
)

// Poller polls all sources at a fixed interval, merges their queues into
// one snapshot and publishes it on the bus. A failing source keeps its
// previous entries out of the snapshot; staleness self-heals on the next
// successful poll.
type Poller struct {
	sources  []Source
	bus      *events.Bus
	interval time.Duration
	logger   *slog.Logger

	mu     sync.RWMutex
	latest Snapshot
}

// NewPoller creates a poller over the given sources.
func NewPoller(sources []Source, bus *events.Bus, interval time.Duration, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		sources:  sources,
		bus:      bus,
		interval: interval,
		logger:   logger.With("component", "feed"),
	}
}

// Latest returns the most recent snapshot. Before the first poll completes
// it is the zero Snapshot (empty ID, no entries).
func (p *Poller) Latest() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest
}

// Run polls at the configured interval until the context is canceled.
// Polls immediately on start.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Poll(ctx)
		}
	}
}

// Poll fetches every source once and publishes the merged snapshot.
// Sources are polled concurrently; per-source failures are reported as
// feed.error events and do not fail the poll.
func (p *Poller) Poll(ctx context.Context) Snapshot {
	start := time.Now()

	results := make([][]queue.Entry, len(p.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range p.sources {
		g.Go(func() error {
			entries, err := src.Queue(gctx)
			if err != nil {
				p.logger.Error("source poll failed", "source", src.Name(), "error", err)
				if p.bus != nil {
					p.bus.Publish(events.FeedError{
						BaseEvent: events.NewBaseEvent(events.EventFeedError),
						Source:    src.Name(),
						Err:       err.Error(),
					})
				}
				return nil
			}
			results[i] = entries
			return nil
		})
	}
	_ = g.Wait()

	var merged []queue.Entry
	for _, entries := range results {
		merged = append(merged, entries...)
	}

	snap := Snapshot{
		ID:      uuid.NewString(),
		At:      time.Now(),
		Entries: merged,
	}

	p.mu.Lock()
	p.latest = snap
	p.mu.Unlock()

	if p.bus != nil {
		p.bus.Publish(events.QueueSnapshot{
			BaseEvent:  events.NewBaseEvent(events.EventQueueSnapshot),
			SnapshotID: snap.ID,
			Entries:    snap.Entries,
		})
	}

	p.logger.Debug("poll complete",
		"sources", len(p.sources),
		"entries", len(merged),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return snap
}
