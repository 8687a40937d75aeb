package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-raptor/feed"
)

func measuredShape() feed.Shape {
	return feed.Shape{
		ID: "shp1",
		Points: []feed.ShapePoint{
			{Lat: 0, Lon: 0, DistTraveled: 0, HasDist: true},
			{Lat: 0, Lon: 1, DistTraveled: 100, HasDist: true},
			{Lat: 0, Lon: 2, DistTraveled: 200, HasDist: true},
			{Lat: 0, Lon: 3, DistTraveled: 300, HasDist: true},
		},
	}
}

func TestCutWithinMeasuredRange(t *testing.T) {
	shape := measuredShape()
	pts := Cut(shape, 50, 250, Point{0, 0}, Point{2, 0})
	require.True(t, len(pts) >= 2)
	assert.InDelta(t, 0.5, pts[0][0], 1e-9)
	assert.InDelta(t, 2.5, pts[len(pts)-1][0], 1e-9)
}

func TestCutFallsBackToStraightLineWithoutMeasurements(t *testing.T) {
	shape := feed.Shape{ID: "noshape"}
	pts := Cut(shape, 0, 10, Point{0, 0}, Point{1, 1})
	assert.Equal(t, []Point{{0, 0}, {1, 1}}, pts)
}

func TestFeatureEncodesMode(t *testing.T) {
	f := Feature([]Point{{0, 0}, {1, 1}}, "walk", "")
	assert.Equal(t, "walk", f.Properties["mode"])
	_, hasTrip := f.Properties["trip_id"]
	assert.False(t, hasTrip)
}
