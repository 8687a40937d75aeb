package raptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreTryUpsertTieBreakFirstWriterWins(t *testing.T) {
	s := NewStore()
	s.initOrigin("A")

	installed := s.TryUpsert("B", 100, WithTripID("t1"), WithFromStop("A"), WithSegmentNum(0))
	require.True(t, installed)

	// Equal-cost update from a different predecessor must be a no-op (S5).
	installed = s.TryUpsert("B", 100, WithTripID("t2"), WithFromStop("A"), WithSegmentNum(0))
	assert.False(t, installed)

	label, err := s.Get("B")
	require.NoError(t, err)
	assert.Equal(t, "t1", label.Prior.TripID)

	// A strictly better cost does install.
	installed = s.TryUpsert("B", 90, WithTripID("t2"), WithFromStop("A"), WithSegmentNum(0))
	assert.True(t, installed)
	label, err = s.Get("B")
	require.NoError(t, err)
	assert.Equal(t, "t2", label.Prior.TripID)
	assert.Equal(t, 90.0, label.Best)
}

func TestStoreAppendTripSkipsConsecutiveDuplicates(t *testing.T) {
	s := NewStore()
	s.initOrigin("A")

	s.TryUpsert("B", 10, WithTripID("t1"))
	s.TryUpsert("C", 20, WithTripID("t1"))
	s.TryUpsert("C", 15, WithTripID("t1"))

	label, err := s.Get("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, label.Preceding)
}

func TestStorePrecedingOfExcludesRiddenTrips(t *testing.T) {
	s := NewStore()
	s.initOrigin("A")
	s.TryUpsert("B", 10, WithTripID("t1"))

	pairs := s.PrecedingOf([]string{"B"})
	_, ok := pairs[stopTripPair{Stop: "B", Trip: "t1"}]
	assert.True(t, ok)
}

func TestStoreHasAndLen(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Has("A"))
	s.initOrigin("A")
	assert.True(t, s.Has("A"))
	assert.Equal(t, 1, s.Len())
}
