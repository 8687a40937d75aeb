package raptor

import "github.com/antigravity/transit-raptor/feed"

// extendRides runs the ride-extension pass (C3) for round k over the
// current frontier. It returns true if at least one candidate boarding
// was found (used by the round driver's termination check alongside "no
// new stops installed").
func extendRides(v *feed.View, store *Store, frontier []StopID, depTime float64, k int) bool {
	preceding := store.PrecedingOf(frontier)

	type anchor struct {
		row         feed.StopTime
		timeToReach float64
		preceding   []TripID
	}
	anchors := make(map[TripID]anchor)

	for _, stop := range frontier {
		label := store.MustGet(stop)
		for _, st := range v.StopTimesAtStop(stop) {
			if _, excluded := preceding[stopTripPair{Stop: stop, Trip: st.TripID}]; excluded {
				continue
			}
			cur, ok := anchors[st.TripID]
			if !ok || st.ArrivalTime > cur.row.ArrivalTime {
				anchors[st.TripID] = anchor{
					row:         st,
					timeToReach: label.Best,
					preceding:   label.Preceding,
				}
			}
		}
	}

	if len(anchors) == 0 {
		return false
	}

	for tripID, a := range anchors {
		if a.row.DepartureTime < a.timeToReach+depTime {
			continue
		}
		for _, follow := range v.StopTimesForTrip(tripID) {
			if follow.StopSequence < a.row.StopSequence {
				continue
			}
			newTime := follow.ArrivalTime - depTime
			store.TryUpsert(follow.StopID, newTime,
				WithTripID(tripID),
				WithFromStop(a.row.StopID),
				WithPrecedingOverride(a.preceding),
				WithSegmentNum(2*k),
			)
		}
	}

	return true
}
