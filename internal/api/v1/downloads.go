package v1

import (
	"net/http"

	"github.com/vmunix/portarr/internal/order"
	"github.com/vmunix/portarr/internal/portal"
)

// listDownloads returns the user's active downloads: the latest snapshot
// filtered to entries attributable to the user's requests, in an order that
// stays put across polls.
func (s *Server) listDownloads(w http.ResponseWriter, r *http.Request) {
	userID := queryInt64(r, "user_id")
	if userID == nil {
		writeError(w, http.StatusBadRequest, "MISSING_USER_ID", "user_id is required")
		return
	}

	requests, err := s.requests.List(portal.Filter{UserID: userID})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	snap := s.feed.Latest()
	downloads := portal.Enrich(snap.Entries, requests)

	// Stable display order keyed by queue entry ID.
	byID := make(map[string]portal.Download, len(downloads))
	keys := make([]string, len(downloads))
	for i, d := range downloads {
		byID[d.Entry.ID] = d
		keys[i] = d.Entry.ID
	}

	ordered := s.observeOrder(*userID, keys)

	items := make([]portal.Download, len(ordered))
	for i, k := range ordered {
		items[i] = byID[k]
	}

	writeJSON(w, http.StatusOK, listDownloadsResponse{Items: items, Total: len(items)})
}

// observeOrder advances the user's ordering tracker under the lock, creating
// it on first use.
func (s *Server) observeOrder(userID int64, keys []string) []string {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	t, ok := s.orders[userID]
	if !ok {
		t = order.NewTracker[string]()
		s.orders[userID] = t
	}
	return t.Observe(keys)
}
