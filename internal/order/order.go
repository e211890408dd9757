// Package order maintains jitter-free display orderings for lists whose
// members appear and disappear between snapshots.
package order

// Next computes the display order for the current snapshot: keys from prev
// that are still active keep their relative order, then keys active but not
// previously known are appended in discovered order. Removing a key never
// reshuffles the survivors, and a new key is never inserted mid-list.
func Next[K comparable](prev []K, active map[K]bool, discovered []K) []K {
	kept := make([]K, 0, len(active))
	seen := make(map[K]bool, len(active))

	for _, k := range prev {
		if active[k] && !seen[k] {
			kept = append(kept, k)
			seen[k] = true
		}
	}

	for _, k := range discovered {
		if active[k] && !seen[k] {
			kept = append(kept, k)
			seen[k] = true
		}
	}

	return kept
}

// Tracker carries the ordering across snapshots for one list consumer.
// It is a presentation aid only and holds no other state.
type Tracker[K comparable] struct {
	prev []K
}

// NewTracker creates an empty tracker.
func NewTracker[K comparable]() *Tracker[K] {
	return &Tracker[K]{}
}

// Observe feeds the keys of the current snapshot in discovered order and
// returns the stable display order.
func (t *Tracker[K]) Observe(discovered []K) []K {
	active := make(map[K]bool, len(discovered))
	for _, k := range discovered {
		active[k] = true
	}
	t.prev = Next(t.prev, active, discovered)

	out := make([]K, len(t.prev))
	copy(out, t.prev)
	return out
}

// Reset discards the remembered ordering, e.g. when the consumer switches
// views.
func (t *Tracker[K]) Reset() {
	t.prev = nil
}
