// Package geometry reconstructs leg polylines from a shape's
// shape_dist_traveled measurements, with a straight-line fallback when a
// shape or distance measurements are unavailable (spec §4.6/§6).
package geometry

import (
	"log"
	"math"

	"github.com/antigravity/transit-raptor/feed"
	"github.com/antigravity/transit-raptor/transfers"
)

// Point is a [lon, lat] pair, matching GeoJSON coordinate order.
type Point [2]float64

// defaultProjection is the same equal-area projection the transfer
// generator uses, applied here to sanity-check a cut polyline's planar
// length against the shape_dist_traveled span it was cut from (spec §6
// "C6 projects to an equal-area system before cutting"; spec §7's
// self-intersecting-shape anomaly).
var defaultProjection = transfers.NewAlbersProjection()

// Cut returns the portion of shape's polyline between fromDist and
// toDist (inclusive), interpolating the boundary points. It falls back
// to a straight line between fromPt and toPt when shape has fewer than
// two points, when any shape point lacks a distance measurement, when
// fromDist >= toDist, or when fromDist lies beyond the last measured
// point. A toDist beyond the last measured point cuts to the end of the
// shape, and a fromDist before the first one starts at its first point.
// A cut whose projected planar length diverges sharply from the
// requested shape_dist_traveled span — the signature of a
// self-intersecting shape folding back on itself — is logged as a
// warning rather than rejected; the offending trip keeps the points Cut
// already computed (spec §7).
func Cut(shape feed.Shape, fromDist, toDist float64, fromPt, toPt Point) []Point {
	measured := measuredPoints(shape)
	if len(measured) < 2 || fromDist >= toDist {
		return Straight(fromPt, toPt)
	}

	out := cutMeasured(measured, fromDist, toDist)
	if out == nil {
		return Straight(fromPt, toPt)
	}

	if !plausiblePlanarLength(out, toDist-fromDist) {
		log.Printf("geometry: cut of shape %s over [%.1f,%.1f) has an implausible planar length, keeping it anyway", shape.ID, fromDist, toDist)
	}
	return out
}

func cutMeasured(measured []measuredPoint, fromDist, toDist float64) []Point {
	var out []Point
	started := false
	for i := 0; i < len(measured); i++ {
		p := measured[i]
		if !started {
			if p.dist >= fromDist {
				if i > 0 {
					out = append(out, interpolate(measured[i-1], p, fromDist))
				} else {
					out = append(out, Point{p.lon, p.lat})
				}
				started = true
			} else {
				continue
			}
		}
		if p.dist >= toDist {
			out = append(out, interpolate(measured[max(i-1, 0)], p, toDist))
			return out
		}
		out = append(out, Point{p.lon, p.lat})
	}

	if !started {
		return nil
	}
	return out
}

// plausiblePlanarLength projects points into the equal-area plane and
// compares the resulting path length against wantDist, the
// shape_dist_traveled span the cut was requested over. The two are
// measured in different units in general (shape_dist_traveled is
// whatever unit the feed's producer used), so this only catches gross
// divergences — orders of magnitude, not a tight tolerance — the way
// gtfstidy's shape remeasurer flags a shape whose measured distance
// can't be reconciled with its geometry.
func plausiblePlanarLength(points []Point, wantDist float64) bool {
	if wantDist <= 0 || len(points) < 2 {
		return true
	}
	var total float64
	px, py := defaultProjection.Project(points[0][1], points[0][0])
	for _, p := range points[1:] {
		x, y := defaultProjection.Project(p[1], p[0])
		dx, dy := x-px, y-py
		total += math.Sqrt(dx*dx + dy*dy)
		px, py = x, y
	}
	const maxRatio = 1e6 // catches unit mismatches and folded-back shapes, not ordinary noise
	ratio := total / wantDist
	return ratio < maxRatio && ratio > 1/maxRatio
}

type measuredPoint struct {
	lat, lon, dist float64
}

func measuredPoints(shape feed.Shape) []measuredPoint {
	out := make([]measuredPoint, 0, len(shape.Points))
	for _, p := range shape.Points {
		if !p.HasDist {
			return nil
		}
		out = append(out, measuredPoint{lat: p.Lat, lon: p.Lon, dist: p.DistTraveled})
	}
	return out
}

func interpolate(a, b measuredPoint, dist float64) Point {
	if b.dist == a.dist {
		return Point{a.lon, a.lat}
	}
	frac := (dist - a.dist) / (b.dist - a.dist)
	frac = math.Max(0, math.Min(1, frac))
	return Point{
		a.lon + frac*(b.lon-a.lon),
		a.lat + frac*(b.lat-a.lat),
	}
}

// Straight returns the two-point straight-line polyline between from and
// to, used whenever a shape cut cannot be computed.
func Straight(from, to Point) []Point {
	return []Point{from, to}
}
