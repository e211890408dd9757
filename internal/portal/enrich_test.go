package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/portarr/internal/queue"
)

func ptr[T any](v T) *T { return &v }

func movieRequest(id, userID, movieID int64, title string) Request {
	return Request{ID: id, UserID: userID, MediaType: MediaMovie, MovieID: ptr(movieID), Title: title}
}

func TestEnrich_MovieAttribution(t *testing.T) {
	entries := []queue.Entry{
		{ID: "a", MovieID: ptr(int64(42)), Status: queue.StatusDownloading, Downloaded: 10, Size: 100},
		{ID: "b", MovieID: ptr(int64(77)), Status: queue.StatusDownloading},
	}
	requests := []Request{
		movieRequest(1, 9, 42, "Some Movie"),
	}

	out := Enrich(entries, requests)
	require.Len(t, out, 1, "entry b belongs to nobody's request and must not leak")

	assert.Equal(t, "a", out[0].Entry.ID)
	assert.Equal(t, int64(1), out[0].RequestID)
	assert.Equal(t, "Some Movie", out[0].RequestTitle)
	assert.Equal(t, int64(42), out[0].RequestMediaID)
}

func TestEnrich_FirstMatchWins(t *testing.T) {
	// Duplicate requests for the same movie: caller order breaks the tie.
	entries := []queue.Entry{{ID: "a", MovieID: ptr(int64(42)), Status: queue.StatusDownloading}}
	requests := []Request{
		movieRequest(10, 1, 42, "First"),
		movieRequest(20, 2, 42, "Second"),
	}

	out := Enrich(entries, requests)
	require.Len(t, out, 1)
	assert.Equal(t, int64(10), out[0].RequestID)
}

func TestEnrich_OverlappingSeasonAndEpisodeRequests(t *testing.T) {
	// A season pack structurally matches both the season request and the
	// episode request inside it; only the earlier request claims it.
	pack := queue.Entry{ID: "p", SeriesID: ptr(int64(7)), SeasonNumber: ptr(2), SeasonPack: true, Status: queue.StatusDownloading}
	seasonReq := Request{ID: 1, MediaType: MediaSeason, SeriesID: ptr(int64(7)), SeasonNumber: ptr(2), Title: "Show S2"}
	episodeReq := Request{ID: 2, MediaType: MediaEpisode, EpisodeID: ptr(int64(101)), SeriesID: ptr(int64(7)), SeasonNumber: ptr(2), Title: "Show S2E1"}

	out := Enrich([]queue.Entry{pack}, []Request{seasonReq, episodeReq})
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].RequestID)

	out = Enrich([]queue.Entry{pack}, []Request{episodeReq, seasonReq})
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].RequestID, "order decides, not variant")
}

func TestEnrich_OneRequestManyEntries(t *testing.T) {
	seriesReq := Request{ID: 1, MediaType: MediaSeries, SeriesID: ptr(int64(7)), Title: "Show", TMDBID: ptr(int64(5550)), TVDBID: ptr(int64(8881))}
	entries := []queue.Entry{
		{ID: "s1", SeriesID: ptr(int64(7)), CompleteSeries: true, Status: queue.StatusDownloading},
		{ID: "s2", SeriesID: ptr(int64(7)), CompleteSeries: true, Status: queue.StatusQueued},
	}

	out := Enrich(entries, []Request{seriesReq})
	require.Len(t, out, 2)
	for _, d := range out {
		assert.Equal(t, int64(1), d.RequestID)
		assert.Equal(t, int64(5550), *d.TMDBID)
		assert.Equal(t, int64(8881), *d.TVDBID)
	}
}

func TestEnrich_InactiveEntriesExcluded(t *testing.T) {
	entries := []queue.Entry{
		{ID: "done", MovieID: ptr(int64(42)), Status: queue.StatusCompleted},
		{ID: "dead", MovieID: ptr(int64(42)), Status: queue.StatusFailed},
		{ID: "odd", MovieID: ptr(int64(42)), Status: "verifying"},
	}

	out := Enrich(entries, []Request{movieRequest(1, 9, 42, "Some Movie")})
	assert.Empty(t, out)
}

func TestEnrich_TitleFallbackOnlyWithoutIDs(t *testing.T) {
	requests := []Request{movieRequest(1, 9, 42, "Some Movie")}

	// No media IDs at all: a high-confidence title match attributes it.
	anon := queue.Entry{ID: "anon", ReleaseName: "Some.Movie.2024.1080p.WEB-DL", Status: queue.StatusDownloading}
	out := Enrich([]queue.Entry{anon}, requests)
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].RequestID)

	// Same release name but a conflicting movie ID: the ID rule decides
	// and the fallback never runs.
	labeled := anon
	labeled.MovieID = ptr(int64(99))
	assert.Empty(t, Enrich([]queue.Entry{labeled}, requests))

	// Unrelated title stays out.
	noise := queue.Entry{ID: "noise", ReleaseName: "Zebra.Xylophone.2023.720p", Status: queue.StatusDownloading}
	assert.Empty(t, Enrich([]queue.Entry{noise}, requests))
}

func TestEnrich_PreservesSnapshotOrder(t *testing.T) {
	requests := []Request{
		movieRequest(1, 9, 42, "Movie A"),
		movieRequest(2, 9, 77, "Movie B"),
	}
	entries := []queue.Entry{
		{ID: "b1", MovieID: ptr(int64(77)), Status: queue.StatusDownloading},
		{ID: "a1", MovieID: ptr(int64(42)), Status: queue.StatusDownloading},
		{ID: "b2", MovieID: ptr(int64(77)), Status: queue.StatusPaused},
	}

	out := Enrich(entries, requests)
	require.Len(t, out, 3)
	assert.Equal(t, "b1", out[0].Entry.ID)
	assert.Equal(t, "a1", out[1].Entry.ID)
	assert.Equal(t, "b2", out[2].Entry.ID)
}

func TestEnrich_NoRequests(t *testing.T) {
	entries := []queue.Entry{{ID: "a", MovieID: ptr(int64(42)), Status: queue.StatusDownloading}}
	assert.Empty(t, Enrich(entries, nil))
}

func TestRequest_Target_MissingDiscriminator(t *testing.T) {
	// A request without the ID its variant needs matches nothing.
	r := Request{MediaType: MediaMovie, Title: "No ID"}
	assert.Equal(t, queue.TargetKind(""), r.Target().Kind())

	r = Request{MediaType: MediaSeason, SeriesID: ptr(int64(7))} // no season number
	assert.Equal(t, queue.TargetKind(""), r.Target().Kind())
}
