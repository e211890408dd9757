package v1

import (
	"github.com/vmunix/portarr/internal/portal"
	"github.com/vmunix/portarr/internal/progress"
)

const timeFormat = "2006-01-02T15:04:05Z07:00" // RFC 3339

type statusResponse struct {
	Status     string `json:"status"`
	SnapshotID string `json:"snapshot_id,omitempty"`
	SnapshotAt string `json:"snapshot_at,omitempty"`
	QueueSize  int    `json:"queue_size,omitempty"`
}

type progressResponse struct {
	Target string `json:"target"`
	progress.Aggregated
}

type listDownloadsResponse struct {
	Items []portal.Download `json:"items"`
	Total int               `json:"total"`
}

type requestResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	MediaType    string `json:"media_type"`
	Title        string `json:"title"`
	MovieID      *int64 `json:"movie_id,omitempty"`
	SeriesID     *int64 `json:"series_id,omitempty"`
	SeasonNumber *int   `json:"season_number,omitempty"`
	EpisodeID    *int64 `json:"episode_id,omitempty"`
	TMDBID       *int64 `json:"tmdb_id,omitempty"`
	TVDBID       *int64 `json:"tvdb_id,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type listRequestsResponse struct {
	Items  []requestResponse `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

type addRequestRequest struct {
	UserID       int64  `json:"user_id"`
	MediaType    string `json:"media_type"`
	Title        string `json:"title"`
	MovieID      *int64 `json:"movie_id,omitempty"`
	SeriesID     *int64 `json:"series_id,omitempty"`
	SeasonNumber *int   `json:"season_number,omitempty"`
	EpisodeID    *int64 `json:"episode_id,omitempty"`
	TMDBID       *int64 `json:"tmdb_id,omitempty"`
	TVDBID       *int64 `json:"tvdb_id,omitempty"`
}

func requestToResponse(r *portal.Request) requestResponse {
	return requestResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		MediaType:    string(r.MediaType),
		Title:        r.Title,
		MovieID:      r.MovieID,
		SeriesID:     r.SeriesID,
		SeasonNumber: r.SeasonNumber,
		EpisodeID:    r.EpisodeID,
		TMDBID:       r.TMDBID,
		TVDBID:       r.TVDBID,
		CreatedAt:    r.CreatedAt.Format(timeFormat),
	}
}
