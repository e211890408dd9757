// Package progress reduces matched queue entries into per-target progress
// views and detects just-completed transitions.
package progress

import "github.com/vmunix/portarr/internal/queue"

// Aggregated is the combined progress of all entries matched to one target.
// It is recomputed from scratch on every snapshot and has no identity beyond
// the target it was computed for.
type Aggregated struct {
	IsDownloading bool          `json:"is_downloading"`
	IsPaused      bool          `json:"is_paused"`
	Percent       float64       `json:"percent"` // 0-100
	Speed         int64         `json:"speed_bps"`
	ETA           int64         `json:"eta_seconds"`
	Size          int64         `json:"size_bytes"`
	Downloaded    int64         `json:"downloaded_bytes"`
	ReleaseName   string        `json:"release_name"`
	JustCompleted bool          `json:"just_completed"`
	Entries       []queue.Entry `json:"-"`
}

// Aggregate reduces a matched entry set into one summary. It is pure and
// total: the empty set is valid and yields the zero summary. Apart from
// ReleaseName, which takes the first entry in snapshot order, the reduction
// is order-independent.
func Aggregate(entries []queue.Entry) Aggregated {
	agg := Aggregated{
		IsDownloading: len(entries) > 0,
		Entries:       entries,
	}
	if len(entries) == 0 {
		return agg
	}

	paused := true
	for _, e := range entries {
		agg.Size += e.Size
		agg.Downloaded += e.Downloaded
		agg.Speed += e.Speed
		if e.ETA > agg.ETA {
			agg.ETA = e.ETA
		}
		if e.Status != queue.StatusPaused {
			paused = false
		}
	}
	agg.IsPaused = paused

	// Zero size means the client has not sized the transfer yet, report 0%
	// rather than NaN.
	if agg.Size > 0 {
		agg.Percent = float64(agg.Downloaded) / float64(agg.Size) * 100
		if agg.Percent > 100 {
			agg.Percent = 100
		} else if agg.Percent < 0 {
			agg.Percent = 0
		}
	}

	agg.ReleaseName = entries[0].ReleaseName
	if agg.ReleaseName == "" {
		agg.ReleaseName = entries[0].Title
	}

	return agg
}
