package progress

import (
	"sync"

	"github.com/vmunix/portarr/internal/queue"
)

// Registry pools one Tracker per observed target so repeated queries for the
// same target share detector state. The optional onCompleted hook fires once
// per completion pulse, on the observation that first sees the flag rise.
//
// The map is keyed by the full Target value: two episode targets with
// different broad-match context match different entry sets and must never
// share a tracker, even though they render the same String().
type Registry struct {
	mu          sync.Mutex
	trackers    map[queue.Target]*registryEntry
	onCompleted func(queue.Target, Aggregated)
}

type registryEntry struct {
	tracker *Tracker
	pulsed  bool
}

// NewRegistry creates an empty registry. onCompleted may be nil.
func NewRegistry(onCompleted func(queue.Target, Aggregated)) *Registry {
	return &Registry{
		trackers:    make(map[queue.Target]*registryEntry),
		onCompleted: onCompleted,
	}
}

// Observe projects the snapshot for the target, creating its tracker on first
// use.
func (r *Registry) Observe(target queue.Target, snapshotID string, entries []queue.Entry) Aggregated {
	r.mu.Lock()
	ent, ok := r.trackers[target]
	if !ok {
		ent = &registryEntry{tracker: NewTracker(target)}
		r.trackers[target] = ent
	}
	r.mu.Unlock()

	view := ent.tracker.Observe(snapshotID, entries)

	r.mu.Lock()
	fire := view.JustCompleted && !ent.pulsed
	ent.pulsed = view.JustCompleted
	r.mu.Unlock()

	if fire && r.onCompleted != nil {
		r.onCompleted(target, view)
	}
	return view
}

// Dispose drops the target's tracker and cancels its pending pulse.
func (r *Registry) Dispose(target queue.Target) {
	r.mu.Lock()
	ent, ok := r.trackers[target]
	delete(r.trackers, target)
	r.mu.Unlock()

	if ok {
		ent.tracker.Dispose()
	}
}

// Close disposes every tracker.
func (r *Registry) Close() {
	r.mu.Lock()
	trackers := r.trackers
	r.trackers = make(map[queue.Target]*registryEntry)
	r.mu.Unlock()

	for _, ent := range trackers {
		ent.tracker.Dispose()
	}
}
