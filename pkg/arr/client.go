// Package arr is a minimal client for the queue endpoint of Radarr/Sonarr
// style services (API v3).
package arr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for the arr package.
var (
	// ErrUnavailable is returned when the service cannot be reached.
	ErrUnavailable = errors.New("arr service unavailable")

	// ErrInvalidAPIKey is returned when the service rejects the API key.
	ErrInvalidAPIKey = errors.New("invalid api key")
)

// Client talks to one Radarr or Sonarr instance.
type Client struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a client for the named service.
func NewClient(name, baseURL, apiKey string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		name:    name,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		log:     log.With("component", "arr", "service", name),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Name returns the configured service name.
func (c *Client) Name() string { return c.name }

// QueueItem is one record of the service's download queue.
type QueueItem struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	DownloadID     string `json:"downloadId"`
	DownloadClient string `json:"downloadClient"`
	Protocol       string `json:"protocol"`
	Indexer        string `json:"indexer"`
	Size           int64  `json:"size"`
	Sizeleft       int64  `json:"sizeleft"`
	Timeleft       string `json:"timeleft,omitempty"`

	// Sonarr
	SeriesID     *int64 `json:"seriesId,omitempty"`
	EpisodeID    *int64 `json:"episodeId,omitempty"`
	SeasonNumber *int   `json:"seasonNumber,omitempty"`
	FullSeason   bool   `json:"fullSeason,omitempty"`

	// Radarr
	MovieID *int64 `json:"movieId,omitempty"`
}

// ETASeconds parses the service's "[d.]hh:mm:ss" timeleft into seconds.
// Malformed or absent values yield 0.
func (q QueueItem) ETASeconds() int64 {
	s := q.Timeleft
	if s == "" {
		return 0
	}

	var days int64
	if i := strings.Index(s, "."); i >= 0 {
		days, _ = strconv.ParseInt(s[:i], 10, 64)
		s = s[i+1:]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0
	}
	hours, _ := strconv.ParseInt(parts[0], 10, 64)
	minutes, _ := strconv.ParseInt(parts[1], 10, 64)
	seconds, _ := strconv.ParseInt(parts[2], 10, 64)

	return days*86400 + hours*3600 + minutes*60 + seconds
}

// queueResponse is the paged envelope of GET /api/v3/queue.
type queueResponse struct {
	Page         int         `json:"page"`
	PageSize     int         `json:"pageSize"`
	TotalRecords int         `json:"totalRecords"`
	Records      []QueueItem `json:"records"`
}

// Queue fetches the full download queue, following pagination.
func (c *Client) Queue(ctx context.Context) ([]QueueItem, error) {
	const pageSize = 250

	var all []QueueItem
	for page := 1; ; page++ {
		var resp queueResponse
		path := fmt.Sprintf("/api/v3/queue?page=%d&pageSize=%d", page, pageSize)
		if err := c.doRequest(ctx, path, &resp); err != nil {
			return nil, err
		}

		all = append(all, resp.Records...)
		if len(all) >= resp.TotalRecords || len(resp.Records) == 0 {
			return all, nil
		}
	}
}

func (c *Client) doRequest(ctx context.Context, path string, result any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("api request failed", "path", path, "error", err)
		return ErrUnavailable
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrInvalidAPIKey
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Debug("api unexpected status", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	c.log.Debug("api request complete", "path", path, "duration_ms", time.Since(start).Milliseconds())
	return nil
}
