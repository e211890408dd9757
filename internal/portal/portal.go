// Package portal projects the shared download queue into per-user views by
// cross-referencing queue entries against the user's own request records.
package portal

import (
	"time"

	"github.com/vmunix/portarr/internal/queue"
)

// MediaType is the kind of media a request asks for.
type MediaType string

const (
	MediaMovie   MediaType = "movie"
	MediaSeries  MediaType = "series"
	MediaSeason  MediaType = "season"
	MediaEpisode MediaType = "episode"
)

// Valid returns true for the recognized media types.
func (m MediaType) Valid() bool {
	switch m {
	case MediaMovie, MediaSeries, MediaSeason, MediaEpisode:
		return true
	}
	return false
}

// Request is a user-submitted intent to acquire specific media. Requests are
// read-only to the matching code; the Store owns their persistence.
type Request struct {
	ID           int64
	UserID       int64
	MediaType    MediaType
	Title        string
	MovieID      *int64
	SeriesID     *int64
	SeasonNumber *int
	EpisodeID    *int64
	TMDBID       *int64
	TVDBID       *int64
	CreatedAt    time.Time
}

// Target reinterprets the request as the media target of its variant. A
// request missing the discriminator its variant needs yields the zero
// target, which matches nothing. Slot variants do not apply to requests.
func (r Request) Target() queue.Target {
	switch r.MediaType {
	case MediaMovie:
		if r.MovieID != nil {
			return queue.Movie(*r.MovieID)
		}
	case MediaSeries:
		if r.SeriesID != nil {
			return queue.Series(*r.SeriesID)
		}
	case MediaSeason:
		if r.SeriesID != nil && r.SeasonNumber != nil {
			return queue.Season(*r.SeriesID, *r.SeasonNumber)
		}
	case MediaEpisode:
		if r.EpisodeID != nil {
			return queue.Episode(*r.EpisodeID, r.SeriesID, r.SeasonNumber)
		}
	}
	return queue.Target{}
}

// MediaID returns the request's primary media discriminator, 0 if absent.
func (r Request) MediaID() int64 {
	switch r.MediaType {
	case MediaMovie:
		if r.MovieID != nil {
			return *r.MovieID
		}
	case MediaSeries, MediaSeason:
		if r.SeriesID != nil {
			return *r.SeriesID
		}
	case MediaEpisode:
		if r.EpisodeID != nil {
			return *r.EpisodeID
		}
	}
	return 0
}

// Download is a queue entry enriched with the request it was attributed to.
// It exists only as a computed view, one per matched (entry, request) pair.
type Download struct {
	Entry queue.Entry `json:"entry"`

	RequestID      int64  `json:"request_id"`
	RequestTitle   string `json:"request_title"`
	RequestMediaID int64  `json:"request_media_id"`
	TMDBID         *int64 `json:"tmdb_id,omitempty"`
	TVDBID         *int64 `json:"tvdb_id,omitempty"`
}
