package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vmunix/portarr/internal/portal"
)

func (s *Server) listRequests(w http.ResponseWriter, r *http.Request) {
	filter := portal.Filter{
		UserID: queryInt64(r, "user_id"),
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
	}
	if v := r.URL.Query().Get("media_type"); v != "" {
		mt := portal.MediaType(v)
		if !mt.Valid() {
			writeError(w, http.StatusBadRequest, "INVALID_TYPE", "media_type must be one of movie, series, season, episode")
			return
		}
		filter.MediaType = &mt
	}

	requests, err := s.requests.List(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	resp := listRequestsResponse{
		Items:  make([]requestResponse, len(requests)),
		Total:  len(requests),
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i := range requests {
		resp.Items[i] = requestToResponse(&requests[i])
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	req, err := s.requests.Get(id)
	if err != nil {
		if errors.Is(err, portal.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Request not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, requestToResponse(req))
}

func (s *Server) addRequest(w http.ResponseWriter, r *http.Request) {
	var body addRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	if body.UserID == 0 {
		writeError(w, http.StatusBadRequest, "MISSING_USER_ID", "user_id is required")
		return
	}

	req := &portal.Request{
		UserID:       body.UserID,
		MediaType:    portal.MediaType(body.MediaType),
		Title:        body.Title,
		MovieID:      body.MovieID,
		SeriesID:     body.SeriesID,
		SeasonNumber: body.SeasonNumber,
		EpisodeID:    body.EpisodeID,
		TMDBID:       body.TMDBID,
		TVDBID:       body.TVDBID,
	}

	if err := s.requests.Add(req); err != nil {
		switch {
		case errors.Is(err, portal.ErrInvalidMediaType):
			writeError(w, http.StatusBadRequest, "INVALID_TYPE", "media_type must be one of movie, series, season, episode")
		case errors.Is(err, portal.ErrMissingDiscriminator):
			writeError(w, http.StatusBadRequest, "MISSING_DISCRIMINATOR", "request lacks the media id its type requires")
		default:
			writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		}
		return
	}

	s.log.Info("request added", "id", req.ID, "user_id", req.UserID, "media_type", req.MediaType)
	writeJSON(w, http.StatusCreated, requestToResponse(req))
}

func (s *Server) deleteRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	if err := s.requests.Delete(id); err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
