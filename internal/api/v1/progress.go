package v1

import (
	"errors"
	"net/http"

	"github.com/vmunix/portarr/internal/queue"
)

var errNoTarget = errors.New("one of movie_id, series_id or episode_id is required")

// getProgress reports the aggregated progress for one media target. The
// target is spelled through query parameters:
//
//	movie_id=42                                movie
//	movie_id=42&slot_id=3                      movie quality slot
//	series_id=7                                whole series
//	series_id=7&season=2                       season
//	episode_id=101[&series_id=7][&season=2]    episode, optional pack context
//	episode_id=101&slot_id=3[...]              episode quality slot
func (s *Server) getProgress(w http.ResponseWriter, r *http.Request) {
	target, err := targetFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_TARGET", err.Error())
		return
	}

	snap := s.feed.Latest()
	view := s.registry.Observe(target, snap.ID, snap.Entries)

	writeJSON(w, http.StatusOK, progressResponse{
		Target:     target.String(),
		Aggregated: view,
	})
}

func targetFromQuery(r *http.Request) (queue.Target, error) {
	var (
		movieID   = queryInt64(r, "movie_id")
		seriesID  = queryInt64(r, "series_id")
		episodeID = queryInt64(r, "episode_id")
		slotID    = queryInt64(r, "slot_id")
		season    *int
	)
	if v := queryInt64(r, "season"); v != nil {
		n := int(*v)
		season = &n
	}

	switch {
	case episodeID != nil && slotID != nil:
		return queue.EpisodeSlot(*episodeID, *slotID, seriesID, season), nil
	case episodeID != nil:
		return queue.Episode(*episodeID, seriesID, season), nil
	case movieID != nil && slotID != nil:
		return queue.MovieSlot(*movieID, *slotID), nil
	case movieID != nil:
		return queue.Movie(*movieID), nil
	case seriesID != nil && season != nil:
		return queue.Season(*seriesID, *season), nil
	case seriesID != nil:
		return queue.Series(*seriesID), nil
	}
	return queue.Target{}, errNoTarget
}
