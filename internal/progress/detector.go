package progress

import (
	"sync"
	"time"
)

// completedPulse is how long the just-completed flag stays visible after the
// last matched entry leaves the queue.
const completedPulse = 2500 * time.Millisecond

// detectorState is the Detector's position in its tiny state machine.
type detectorState int

const (
	stateIdle detectorState = iota
	stateTracking
	stateJustCompleted
)

// Detector watches the matched-entry count for one target and raises a
// bounded just-completed pulse when the count falls from >0 to 0. A new
// transfer appearing inside the pulse window suppresses the flag, so the UI
// never flickers "finished" while the same target is downloading again.
//
// The host must call Dispose when it stops observing the target, otherwise
// a pending pulse timer can fire against discarded state.
type Detector struct {
	mu     sync.Mutex
	state  detectorState
	count  int
	window time.Duration
	timer  *time.Timer
}

// NewDetector creates a detector with the standard pulse window.
func NewDetector() *Detector {
	return newDetector(completedPulse)
}

func newDetector(window time.Duration) *Detector {
	return &Detector{window: window}
}

// Observe feeds the matched-entry count of the current snapshot. Each call
// makes at most one state transition.
func (d *Detector) Observe(count int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if count > 0 {
		// New entries cancel a pending pulse: the completion is stale.
		if d.state == stateJustCompleted {
			d.stopTimer()
		}
		d.state = stateTracking
		d.count = count
		return
	}

	if d.state == stateTracking && d.count > 0 {
		d.state = stateJustCompleted
		d.count = 0
		d.timer = time.AfterFunc(d.window, d.expire)
	}
}

// JustCompleted reports whether the pulse is currently visible.
func (d *Detector) JustCompleted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == stateJustCompleted
}

// Dispose cancels any pending pulse timer. The detector can be observed
// again afterwards; it restarts from idle.
func (d *Detector) Dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopTimer()
	d.state = stateIdle
	d.count = 0
}

func (d *Detector) expire() {
	d.mu.Lock()
	defer d.mu.Unlock()
	// A snapshot with entries may have raced the timer; only clear if the
	// pulse is still showing.
	if d.state == stateJustCompleted {
		d.state = stateIdle
		d.timer = nil
	}
}

// stopTimer must be called with d.mu held.
func (d *Detector) stopTimer() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
