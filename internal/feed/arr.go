package feed

import (
	"context"
	"fmt"
	"regexp"

	"github.com/vmunix/portarr/internal/queue"
	"github.com/vmunix/portarr/pkg/arr"
)

// completeSeriesRegex spots whole-series bundles by their release name.
// The arr queue API flags full-season packs but has no complete-series
// marker, so a "complete" token without an episode id is the best signal.
var completeSeriesRegex = regexp.MustCompile(`(?i)\bcomplete\b`)

// ArrSource adapts an arr client to the Source interface, translating wire
// records into queue entries.
type ArrSource struct {
	client *arr.Client
}

// NewArrSource wraps an arr client.
func NewArrSource(client *arr.Client) *ArrSource {
	return &ArrSource{client: client}
}

// Name returns the underlying service name.
func (s *ArrSource) Name() string { return s.client.Name() }

// Queue polls the service and converts its records.
func (s *ArrSource) Queue(ctx context.Context) ([]queue.Entry, error) {
	items, err := s.client.Queue(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]queue.Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, s.convert(item))
	}
	return entries, nil
}

func (s *ArrSource) convert(item arr.QueueItem) queue.Entry {
	e := queue.Entry{
		// Record IDs are only unique per service; prefix with the source
		// name so entries stay distinct across merged feeds.
		ID:          fmt.Sprintf("%s-%d", s.client.Name(), item.ID),
		ClientID:    item.DownloadID,
		Title:       item.Title,
		ReleaseName: item.Title,
		Status:      mapStatus(item.Status),
		Size:        item.Size,
		Downloaded:  item.Size - item.Sizeleft,
		ETA:         item.ETASeconds(),

		MovieID:      item.MovieID,
		SeriesID:     item.SeriesID,
		SeasonNumber: item.SeasonNumber,
		EpisodeID:    item.EpisodeID,
	}

	if e.Downloaded < 0 {
		e.Downloaded = 0
	}
	// The queue API reports remaining time, not rate; derive the average
	// rate the remaining transfer implies.
	if e.ETA > 0 {
		e.Speed = item.Sizeleft / e.ETA
	}

	if item.SeriesID != nil {
		e.SeasonPack = item.FullSeason
		if item.EpisodeID == nil && !item.FullSeason && completeSeriesRegex.MatchString(item.Title) {
			e.CompleteSeries = true
		}
	}

	return e
}

// mapStatus translates arr queue statuses. Anything unrecognized passes
// through untouched and fails closed at match time.
func mapStatus(s string) queue.Status {
	switch s {
	case "downloading":
		return queue.StatusDownloading
	case "queued", "delay":
		return queue.StatusQueued
	case "paused":
		return queue.StatusPaused
	case "completed":
		return queue.StatusCompleted
	case "failed":
		return queue.StatusFailed
	default:
		return queue.Status(s)
	}
}
