package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps HTTP calls to the portarr server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new portarr API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) delete(path string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// API response types (mirror server types)

type StatusResponse struct {
	Status     string `json:"status"`
	SnapshotID string `json:"snapshot_id,omitempty"`
	SnapshotAt string `json:"snapshot_at,omitempty"`
	QueueSize  int    `json:"queue_size,omitempty"`
}

type ProgressResponse struct {
	Target        string  `json:"target"`
	IsDownloading bool    `json:"is_downloading"`
	IsPaused      bool    `json:"is_paused"`
	Percent       float64 `json:"percent"`
	Speed         int64   `json:"speed_bps"`
	ETA           int64   `json:"eta_seconds"`
	Size          int64   `json:"size_bytes"`
	Downloaded    int64   `json:"downloaded_bytes"`
	ReleaseName   string  `json:"release_name"`
	JustCompleted bool    `json:"just_completed"`
}

type QueueEntryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ReleaseName string `json:"release_name"`
	Status      string `json:"status"`
	Size        int64  `json:"size"`
	Downloaded  int64  `json:"downloaded"`
	Speed       int64  `json:"speed"`
	ETA         int64  `json:"eta"`
}

type DownloadResponse struct {
	Entry          QueueEntryResponse `json:"entry"`
	RequestID      int64              `json:"request_id"`
	RequestTitle   string             `json:"request_title"`
	RequestMediaID int64              `json:"request_media_id"`
}

type ListDownloadsResponse struct {
	Items []DownloadResponse `json:"items"`
	Total int                `json:"total"`
}

type RequestResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	MediaType    string `json:"media_type"`
	Title        string `json:"title"`
	MovieID      *int64 `json:"movie_id,omitempty"`
	SeriesID     *int64 `json:"series_id,omitempty"`
	SeasonNumber *int   `json:"season_number,omitempty"`
	EpisodeID    *int64 `json:"episode_id,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type ListRequestsResponse struct {
	Items  []RequestResponse `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Progress(params url.Values) (*ProgressResponse, error) {
	var resp ProgressResponse
	if err := c.get("/api/v1/progress?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Downloads(userID int64) (*ListDownloadsResponse, error) {
	var resp ListDownloadsResponse
	if err := c.get(fmt.Sprintf("/api/v1/downloads?user_id=%d", userID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Requests(userID *int64, mediaType string) (*ListRequestsResponse, error) {
	params := url.Values{}
	if userID != nil {
		params.Set("user_id", fmt.Sprintf("%d", *userID))
	}
	if mediaType != "" {
		params.Set("media_type", mediaType)
	}

	path := "/api/v1/requests"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp ListRequestsResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AddRequest(req map[string]any) (*RequestResponse, error) {
	var resp RequestResponse
	if err := c.post("/api/v1/requests", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteRequest(id int64) error {
	return c.delete(fmt.Sprintf("/api/v1/requests/%d", id))
}
