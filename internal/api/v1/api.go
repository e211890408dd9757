// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/vmunix/portarr/internal/events"
	"github.com/vmunix/portarr/internal/feed"
	"github.com/vmunix/portarr/internal/order"
	"github.com/vmunix/portarr/internal/portal"
	"github.com/vmunix/portarr/internal/progress"
	"github.com/vmunix/portarr/internal/queue"
)

// Feed is the snapshot source the API reads from. *feed.Poller satisfies it.
type Feed interface {
	Latest() feed.Snapshot
}

// Server is the v1 API server.
type Server struct {
	requests *portal.Store
	feed     Feed
	registry *progress.Registry
	bus      *events.Bus
	log      *slog.Logger

	ordersMu sync.Mutex
	orders   map[int64]*order.Tracker[string]
}

// New creates a new v1 API server. bus may be nil when no consumer listens
// for completion events.
func New(requests *portal.Store, f Feed, bus *events.Bus, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		requests: requests,
		feed:     f,
		bus:      bus,
		log:      logger.With("component", "api"),
		orders:   make(map[int64]*order.Tracker[string]),
	}
	s.registry = progress.NewRegistry(s.publishCompleted)
	return s
}

// Close releases the pending completion timers.
func (s *Server) Close() {
	s.registry.Close()
}

func (s *Server) publishCompleted(target queue.Target, view progress.Aggregated) {
	s.log.Info("download completed", "target", target.String(), "release", view.ReleaseName)
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.DownloadCompleted{
		BaseEvent:   events.NewBaseEvent(events.EventDownloadCompleted),
		Target:      target.String(),
		ReleaseName: view.ReleaseName,
	})
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Progress
	mux.HandleFunc("GET /api/v1/progress", s.getProgress)

	// Per-user downloads
	mux.HandleFunc("GET /api/v1/downloads", s.listDownloads)

	// Requests
	mux.HandleFunc("GET /api/v1/requests", s.listRequests)
	mux.HandleFunc("GET /api/v1/requests/{id}", s.getRequest)
	mux.HandleFunc("POST /api/v1/requests", s.addRequest)
	mux.HandleFunc("DELETE /api/v1/requests/{id}", s.deleteRequest)

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// queryInt64 extracts an optional int64 from query string, nil when absent
// or malformed.
func queryInt64(r *http.Request, name string) *int64 {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil
	}
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil
	}
	return &i
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.feed.Latest()

	resp := statusResponse{Status: "ok"}
	if snap.ID != "" {
		resp.SnapshotID = snap.ID
		resp.SnapshotAt = snap.At.Format(timeFormat)
		resp.QueueSize = len(snap.Entries)
	} else {
		resp.Status = "waiting for first poll"
	}

	writeJSON(w, http.StatusOK, resp)
}
