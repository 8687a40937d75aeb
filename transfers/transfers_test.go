package transfers

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-raptor/feed"
)

func TestProjectionRoundTripDistance(t *testing.T) {
	p := NewAlbersProjection()

	// Two points roughly 1km apart near the projection's center meridian.
	latA, lonA := 39.0, -96.0
	latB, lonB := 39.009, -96.0

	dist := p.Distance(latA, lonA, latB, lonB)
	assert.InDelta(t, 1000.0, dist, 50.0)
}

func TestGenerateWithinRadius(t *testing.T) {
	stops := []feed.Stop{
		{ID: "A", Lat: 39.0, Lon: -96.0},
		{ID: "B", Lat: 39.0005, Lon: -96.0}, // ~55m away
		{ID: "C", Lat: 40.0, Lon: -96.0},    // far away
	}

	got := Generate(stops, NewConfig())

	seen := map[[2]string]feed.Transfer{}
	for _, tr := range got {
		seen[[2]string{tr.FromStopID, tr.ToStopID}] = tr
	}

	_, hasAB := seen[[2]string{"A", "B"}]
	_, hasBA := seen[[2]string{"B", "A"}]
	assert.True(t, hasAB)
	assert.True(t, hasBA)

	_, hasAC := seen[[2]string{"A", "C"}]
	assert.False(t, hasAC)

	for _, tr := range got {
		assert.NotEqual(t, tr.FromStopID, tr.ToStopID)
		assert.Equal(t, feed.TransferWalking, tr.Kind)
		assert.True(t, tr.MinTransferTime > 0)
	}
}

func TestGenerateMinTransferTimeMatchesSpeed(t *testing.T) {
	cfg := NewConfig()
	stops := []feed.Stop{
		{ID: "A", Lat: 39.0, Lon: -96.0},
		{ID: "B", Lat: 39.0009, Lon: -96.0}, // ~100m
	}
	got := Generate(stops, cfg)
	require.Len(t, got, 2)

	dist := cfg.Projection.Distance(39.0, -96.0, 39.0009, -96.0)
	want := dist / cfg.WalkSpeed
	assert.InDelta(t, want, got[0].MinTransferTime, 1e-9)
}

func TestWriteAndReadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transfers.txt")

	rows := []feed.Transfer{
		{FromStopID: "1001", ToStopID: "1002", Kind: feed.TransferWalking, MinTransferTime: 42.3456},
	}
	require.NoError(t, WriteFile(path, rows))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "from_stop_id,to_stop_id,transfer_type,min_transfer_time")
	assert.Contains(t, string(contents), "42.3")

	back, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, "1001", back[0].FromStopID)
	assert.Equal(t, "1002", back[0].ToStopID)
	assert.InDelta(t, 42.3, back[0].MinTransferTime, 0.05)
}

func TestProjectionIsDeterministic(t *testing.T) {
	p := NewAlbersProjection()
	x1, y1 := p.Project(39.5, -98.0)
	x2, y2 := p.Project(39.5, -98.0)
	assert.True(t, math.Abs(x1-x2) < 1e-9)
	assert.True(t, math.Abs(y1-y2) < 1e-9)
}
