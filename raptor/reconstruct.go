package raptor

import (
	"github.com/antigravity/transit-raptor/feed"
	"github.com/antigravity/transit-raptor/geometry"
)

// Reconstruct walks the predecessor chain (C6) from destination back to
// the origin and returns an ordered Journey. It fails if destination has
// no installed label.
func Reconstruct(v *feed.View, store *Store, destination StopID) (*Journey, error) {
	destLabel, err := store.Get(destination)
	if err != nil {
		return nil, err
	}
	if destLabel.IsOrigin() {
		return &Journey{}, nil
	}

	var legs []Leg
	cursor := destination
	label := destLabel
	for !label.IsOrigin() {
		seg := label.Prior
		var leg Leg
		if seg.TripID == WalkSentinel {
			leg = Leg{
				Mode:       LegWalk,
				FromStopID: seg.FromStopID,
				ToStopID:   cursor,
			}
			leg.Geometry = toLonLatSlice(geometry.Straight(stopPoint(v, seg.FromStopID), stopPoint(v, cursor)))
		} else {
			leg = Leg{
				Mode:       LegTransit,
				FromStopID: seg.FromStopID,
				ToStopID:   cursor,
				TripID:     seg.TripID,
			}
			var fromDist, toDist float64
			var fromHas, toHas bool
			if st, ok := v.StopTimeAt(seg.TripID, seg.FromStopID); ok {
				leg.BoardTime = st.DepartureTime
				fromDist, fromHas = st.ShapeDistTraveled, st.HasShapeDist
			}
			if st, ok := v.StopTimeAt(seg.TripID, cursor); ok {
				leg.AlightTime = st.ArrivalTime
				toDist, toHas = st.ShapeDistTraveled, st.HasShapeDist
			}
			if fromHas && toHas {
				leg.Geometry = toLonLatSlice(rideGeometry(v, seg.TripID, fromDist, toDist, seg.FromStopID, cursor))
			} else {
				leg.Geometry = toLonLatSlice(geometry.Straight(stopPoint(v, seg.FromStopID), stopPoint(v, cursor)))
			}
		}
		legs = append(legs, leg)

		cursor = seg.FromStopID
		label, err = store.Get(cursor)
		if err != nil {
			return nil, err
		}
	}

	// legs were appended destination-first; reverse into origin-first order.
	for i, j := 0, len(legs)-1; i < j; i, j = i+1, j-1 {
		legs[i], legs[j] = legs[j], legs[i]
	}

	return &Journey{Legs: legs}, nil
}

// stopPoint returns a stop's coordinates as a geometry.Point, [0,0] if the
// stop is unknown to the view (should not happen for a stop that appears
// in a reconstructed leg).
func stopPoint(v *feed.View, stopID StopID) geometry.Point {
	s, _ := v.Stop(stopID)
	return geometry.Point{s.Lon, s.Lat}
}

// rideGeometry cuts a transit leg's polyline from its trip's shape between
// the boarding and alighting shape_dist_traveled offsets, falling back to
// a straight line between the endpoint stops when the trip has no shape
// or the shape has no distance measurements (spec §4.6: "where absent, a
// straight line between endpoints is acceptable"). Reconstruct calls it
// only when both endpoint stop_times carry a shape_dist_traveled offset
// and uses a straight line otherwise.
func rideGeometry(v *feed.View, tripID TripID, fromDist, toDist float64, fromStop, toStop StopID) []geometry.Point {
	fromPt, toPt := stopPoint(v, fromStop), stopPoint(v, toStop)

	trip, ok := v.Trip(tripID)
	if !ok || trip.ShapeID == "" {
		return geometry.Straight(fromPt, toPt)
	}
	shape, ok := v.Shape(trip.ShapeID)
	if !ok {
		return geometry.Straight(fromPt, toPt)
	}
	return geometry.Cut(shape, fromDist, toDist, fromPt, toPt)
}

// toLonLatSlice converts geometry.Points (an array type) to the plain
// [][2]float64 slice Leg.Geometry carries, so the raptor package's public
// type does not itself depend on the geometry package's representation.
func toLonLatSlice(points []geometry.Point) [][2]float64 {
	if points == nil {
		return nil
	}
	out := make([][2]float64, len(points))
	for i, p := range points {
		out[i] = [2]float64(p)
	}
	return out
}
