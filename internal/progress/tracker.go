package progress

import (
	"sync"

	"github.com/vmunix/portarr/internal/queue"
)

// Tracker owns the derived progress view for one target: the memoized
// aggregation plus the completion detector. Consumers create one Tracker per
// observed target and must Dispose it on teardown.
//
// Aggregation is recomputed only when the snapshot identity changes, so
// repeated reads against the same snapshot return an identical view.
type Tracker struct {
	mu       sync.Mutex
	target   queue.Target
	detector *Detector

	snapshotID string
	cached     Aggregated
}

// NewTracker creates a tracker for the given target.
func NewTracker(target queue.Target) *Tracker {
	return &Tracker{target: target, detector: NewDetector()}
}

// Target returns the target this tracker observes.
func (t *Tracker) Target() queue.Target { return t.target }

// Observe projects the snapshot into the target's progress view. snapshotID
// is the feed-assigned identity of the snapshot; passing the same ID twice
// skips matching and aggregation and replays the cached view. The
// JustCompleted flag is always read fresh since the pulse can expire between
// snapshots.
func (t *Tracker) Observe(snapshotID string, entries []queue.Entry) Aggregated {
	t.mu.Lock()
	defer t.mu.Unlock()

	if snapshotID == "" || snapshotID != t.snapshotID {
		matched := t.target.Match(entries)
		t.cached = Aggregate(matched)
		t.snapshotID = snapshotID
		t.detector.Observe(len(matched))
	}

	view := t.cached
	view.JustCompleted = t.detector.JustCompleted()
	return view
}

// Dispose releases the tracker's pending completion timer. Must be called
// when the consumer stops observing the target.
func (t *Tracker) Dispose() {
	t.detector.Dispose()
}
