package progress

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/portarr/internal/queue"
)

func TestRegistry_SharesTrackerPerTarget(t *testing.T) {
	reg := NewRegistry(nil)
	defer reg.Close()

	target := queue.Movie(42)
	entries := []queue.Entry{{
		ID:      "a",
		MovieID: ptr(int64(42)),
		Status:  queue.StatusDownloading,
		Size:    1000, Downloaded: 500,
	}}

	first := reg.Observe(target, "snap-1", entries)
	assert.Equal(t, 50.0, first.Percent)

	// Same snapshot replays the memoized view.
	second := reg.Observe(target, "snap-1", nil)
	assert.Equal(t, first.Percent, second.Percent)
}

func TestRegistry_EpisodeContextGetsOwnTracker(t *testing.T) {
	reg := NewRegistry(nil)
	defer reg.Close()

	// A season pack with no per-episode ID: only the episode target carrying
	// series/season context may claim it through the broad branch.
	pack := []queue.Entry{{
		ID:           "a",
		SeriesID:     ptr(int64(7)),
		SeasonNumber: ptr(2),
		SeasonPack:   true,
		Status:       queue.StatusDownloading,
		Size:         1000, Downloaded: 400,
	}}

	withContext := queue.Episode(101, ptr(int64(7)), ptr(2))
	bare := queue.Episode(101, nil, nil)

	broad := reg.Observe(withContext, "snap-1", pack)
	require.True(t, broad.IsDownloading)
	assert.Equal(t, 40.0, broad.Percent)

	// The context-free target renders the same String() but matches a
	// different entry set; it must not inherit the broad tracker's view.
	narrow := reg.Observe(bare, "snap-1", pack)
	assert.False(t, narrow.IsDownloading)
	assert.Zero(t, narrow.Percent)

	// And disposing one must not tear down the other.
	reg.Dispose(bare)
	again := reg.Observe(withContext, "snap-1", nil)
	assert.True(t, again.IsDownloading, "context tracker keeps its memoized view")
}

func TestRegistry_CompletionHookFiresOnce(t *testing.T) {
	var (
		mu    sync.Mutex
		fired []queue.Target
	)
	reg := NewRegistry(func(tg queue.Target, _ Aggregated) {
		mu.Lock()
		fired = append(fired, tg)
		mu.Unlock()
	})
	defer reg.Close()

	target := queue.Movie(7)
	entries := []queue.Entry{{ID: "a", MovieID: ptr(int64(7)), Status: queue.StatusDownloading}}

	reg.Observe(target, "snap-1", entries)
	view := reg.Observe(target, "snap-2", nil)
	require.True(t, view.JustCompleted)

	// Repeated observations inside the pulse window do not re-fire.
	reg.Observe(target, "snap-3", nil)
	reg.Observe(target, "snap-4", nil)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, fired, 1)
	assert.Equal(t, target, fired[0])
}

func TestRegistry_DisposeDropsTracker(t *testing.T) {
	reg := NewRegistry(nil)
	target := queue.Movie(1)

	entries := []queue.Entry{{ID: "a", MovieID: ptr(int64(1)), Status: queue.StatusDownloading}}
	reg.Observe(target, "snap-1", entries)
	reg.Dispose(target)

	// A fresh tracker has no disappearance to report.
	view := reg.Observe(target, "snap-2", nil)
	assert.False(t, view.JustCompleted)
}
