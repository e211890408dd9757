package portal

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Store persists request records. It is the query layer behind the
// read-only request feed the matching code consumes.
type Store struct {
	db *sql.DB
}

// NewStore creates a request store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Filter specifies criteria for listing requests.
type Filter struct {
	UserID    *int64
	MediaType *MediaType
	Limit     int // 0 = no limit
	Offset    int
}

// Add inserts a new request. Sets ID and CreatedAt on the struct.
func (s *Store) Add(r *Request) error {
	if !r.MediaType.Valid() {
		return fmt.Errorf("add request: %w: %q", ErrInvalidMediaType, r.MediaType)
	}
	if r.Target().Kind() == "" {
		return fmt.Errorf("add request: %w", ErrMissingDiscriminator)
	}

	now := time.Now()
	result, err := s.db.Exec(`
		INSERT INTO requests (user_id, media_type, title, movie_id, series_id, season_number, episode_id, tmdb_id, tvdb_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.UserID, r.MediaType, r.Title, r.MovieID, r.SeriesID, r.SeasonNumber, r.EpisodeID, r.TMDBID, r.TVDBID, now,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	r.ID = id
	r.CreatedAt = now
	return nil
}

// Get retrieves a request by ID.
// Returns ErrNotFound if the request does not exist.
func (s *Store) Get(id int64) (*Request, error) {
	r := &Request{}
	err := s.db.QueryRow(`
		SELECT id, user_id, media_type, title, movie_id, series_id, season_number, episode_id, tmdb_id, tvdb_id, created_at
		FROM requests WHERE id = ?`, id,
	).Scan(&r.ID, &r.UserID, &r.MediaType, &r.Title, &r.MovieID, &r.SeriesID, &r.SeasonNumber, &r.EpisodeID, &r.TMDBID, &r.TVDBID, &r.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("get request %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get request %d: %w", id, err)
	}
	return r, nil
}

// List returns requests matching the filter, oldest first. The ordering is
// what makes first-match-wins attribution deterministic: earlier requests
// take precedence.
func (s *Store) List(f Filter) ([]Request, error) {
	var conditions []string
	var args []any

	if f.UserID != nil {
		conditions = append(conditions, "user_id = ?")
		args = append(args, *f.UserID)
	}
	if f.MediaType != nil {
		conditions = append(conditions, "media_type = ?")
		args = append(args, *f.MediaType)
	}

	query := "SELECT id, user_id, media_type, title, movie_id, series_id, season_number, episode_id, tmdb_id, tvdb_id, created_at FROM requests"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []Request
	for rows.Next() {
		var r Request
		if err := rows.Scan(&r.ID, &r.UserID, &r.MediaType, &r.Title, &r.MovieID, &r.SeriesID, &r.SeasonNumber, &r.EpisodeID, &r.TMDBID, &r.TVDBID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests: %w", err)
	}

	return results, nil
}

// Delete removes a request by ID.
// This operation is idempotent - no error is returned if the request does not exist.
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec("DELETE FROM requests WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete request %d: %w", id, err)
	}
	return nil
}
