// Package queue models download-client queue snapshots and decides which
// entries belong to a given media target.
package queue

// Status tracks the client-reported state of a queue entry.
type Status string

const (
	StatusQueued      Status = "queued"
	StatusDownloading Status = "downloading"
	StatusPaused      Status = "paused"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
)

// Active returns true if the entry is still in flight.
// Unknown statuses are treated as inactive so a misbehaving feed
// can never leak terminal entries into progress views.
func (s Status) Active() bool {
	switch s {
	case StatusQueued, StatusDownloading, StatusPaused:
		return true
	}
	return false
}

// Entry is one in-flight or recently-finished transfer as reported by a
// download client. Entries are read-only here: the feed replaces whole
// snapshots, this package never mutates one.
type Entry struct {
	ID          string
	ClientID    string
	Title       string
	ReleaseName string
	Status      Status
	Size        int64 // bytes
	Downloaded  int64 // bytes, <= Size when both known
	Speed       int64 // bytes/sec
	ETA         int64 // seconds remaining

	MovieID      *int64
	SeriesID     *int64
	SeasonNumber *int
	EpisodeID    *int64
	SlotID       *int64 // quality slot the transfer fills, if any

	CompleteSeries bool
	SeasonPack     bool
}

// HasMediaIDs reports whether the entry carries any media discriminator
// at all. Entries without IDs can only be attributed by title.
func (e Entry) HasMediaIDs() bool {
	return e.MovieID != nil || e.SeriesID != nil || e.EpisodeID != nil
}
