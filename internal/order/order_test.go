package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func keys(ks ...string) map[string]bool {
	m := make(map[string]bool, len(ks))
	for _, k := range ks {
		m[k] = true
	}
	return m
}

func TestNext_RemovalKeepsRelativeOrder(t *testing.T) {
	got := Next([]string{"A", "B", "C"}, keys("A", "C"), []string{"C", "A"})
	assert.Equal(t, []string{"A", "C"}, got)
}

func TestNext_NewKeysAppendInDiscoveredOrder(t *testing.T) {
	got := Next([]string{"A", "C"}, keys("A", "C", "D"), []string{"D", "A", "C"})
	assert.Equal(t, []string{"A", "C", "D"}, got, "new keys go last, never mid-list")

	got = Next([]string{"A"}, keys("A", "B", "D"), []string{"D", "A", "B"})
	assert.Equal(t, []string{"A", "D", "B"}, got, "multiple new keys keep discovery order")
}

func TestNext_EmptyPrev(t *testing.T) {
	got := Next(nil, keys("B", "A"), []string{"B", "A"})
	assert.Equal(t, []string{"B", "A"}, got)
}

func TestNext_AllRemoved(t *testing.T) {
	got := Next([]string{"A", "B"}, map[string]bool{}, nil)
	assert.Empty(t, got)
}

func TestNext_InactiveDiscoveredKeysIgnored(t *testing.T) {
	// Discovery lists can mention keys no longer active by the time the
	// snapshot is processed; they must not reappear.
	got := Next([]string{"A"}, keys("A"), []string{"A", "Z"})
	assert.Equal(t, []string{"A"}, got)
}

func TestTracker_StableAcrossSnapshots(t *testing.T) {
	tr := NewTracker[string]()

	assert.Equal(t, []string{"A", "B", "C"}, tr.Observe([]string{"A", "B", "C"}))

	// B disappears: A and C keep their slots.
	assert.Equal(t, []string{"A", "C"}, tr.Observe([]string{"A", "C"}))

	// D appears: appended after the known keys even though the feed lists
	// it first.
	assert.Equal(t, []string{"A", "C", "D"}, tr.Observe([]string{"D", "A", "C"}))

	// B returns: it lost its old slot and re-enters at the end.
	assert.Equal(t, []string{"A", "C", "D", "B"}, tr.Observe([]string{"B", "D", "A", "C"}))
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker[int]()
	tr.Observe([]int{1, 2, 3})
	tr.Reset()

	assert.Equal(t, []int{3, 1}, tr.Observe([]int{3, 1}), "after reset the feed order wins")
}

func TestTracker_ReturnsCopy(t *testing.T) {
	tr := NewTracker[string]()
	first := tr.Observe([]string{"A", "B"})
	first[0] = "mutated"

	assert.Equal(t, []string{"A", "B"}, tr.Observe([]string{"A", "B"}))
}
