package portal

import (
	"github.com/vmunix/portarr/internal/queue"
	"github.com/vmunix/portarr/pkg/title"
)

// Enrich attributes each active queue entry to the first request in the
// given order whose target matches it, and drops entries no request claims:
// a download the user did not ask for must not leak into their view.
//
// One request may claim many entries (a season pack plus per-episode grabs),
// but an entry is attributed to exactly one request. Output preserves
// snapshot order.
func Enrich(entries []queue.Entry, requests []Request) []Download {
	var out []Download
	for _, e := range entries {
		if !e.Status.Active() {
			continue
		}
		req, ok := matchRequest(e, requests)
		if !ok {
			continue
		}
		out = append(out, Download{
			Entry:          e,
			RequestID:      req.ID,
			RequestTitle:   req.Title,
			RequestMediaID: req.MediaID(),
			TMDBID:         req.TMDBID,
			TVDBID:         req.TVDBID,
		})
	}
	return out
}

// matchRequest scans requests in caller order and returns the first match.
// ID-based matching always wins; the fuzzy title fallback only applies to
// entries that carry no media IDs at all, so a mislabeled release can never
// override an exact ID rule.
func matchRequest(e queue.Entry, requests []Request) (Request, bool) {
	for _, r := range requests {
		if r.Target().Matches(e) {
			return r, true
		}
	}

	if e.HasMediaIDs() {
		return Request{}, false
	}

	name := e.ReleaseName
	if name == "" {
		name = e.Title
	}
	for _, r := range requests {
		if title.MatchRelease(name, r.Title).Confidence == title.ConfidenceHigh {
			return r, true
		}
	}
	return Request{}, false
}
