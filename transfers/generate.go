package transfers

import (
	"math"

	"github.com/antigravity/transit-raptor/feed"
)

// DefaultWalkSpeed and DefaultRadius match spec §6: 55 units/minute over a
// default 150-unit radius, both expressed in the projection's planar
// units (meters, for the default Albers projection).
const (
	DefaultWalkSpeed = 55.0 / 60.0 // units per second
	DefaultRadius    = 150.0
)

// Config configures Generate. The zero value is not usable; use
// NewConfig for spec defaults.
type Config struct {
	Projection *Projection
	WalkSpeed  float64 // units per second
	Radius     float64 // units
}

// NewConfig returns the spec's default transfer-generation configuration.
func NewConfig() Config {
	return Config{
		Projection: NewAlbersProjection(),
		WalkSpeed:  DefaultWalkSpeed,
		Radius:     DefaultRadius,
	}
}

// Generate emits one type-2 walking transfer row per direction of each
// within-radius stop pair, with min_transfer_time = distance / walk
// speed. Self-transfers are never emitted.
func Generate(stops []feed.Stop, cfg Config) []feed.Transfer {
	proj := cfg.Projection
	if proj == nil {
		proj = NewAlbersProjection()
	}

	type projected struct {
		stop feed.Stop
		x, y float64
	}
	points := make([]projected, len(stops))
	for i, s := range stops {
		x, y := proj.Project(s.Lat, s.Lon)
		points[i] = projected{stop: s, x: x, y: y}
	}

	var out []feed.Transfer
	for i := range points {
		for j := range points {
			if i == j {
				continue
			}
			dx := points[j].x - points[i].x
			dy := points[j].y - points[i].y
			dist := dx*dx + dy*dy
			if dist > cfg.Radius*cfg.Radius {
				continue
			}
			d := math.Sqrt(dist)
			out = append(out, feed.Transfer{
				FromStopID:      points[i].stop.ID,
				ToStopID:        points[j].stop.ID,
				Kind:            feed.TransferWalking,
				MinTransferTime: d / cfg.WalkSpeed,
			})
		}
	}
	return out
}
