package raptor

import (
	"context"

	"github.com/antigravity/transit-raptor/feed"
)

// Result is the outcome of a Search: the finished label store plus
// whether the destination was actually reached. The round driver never
// fails just because the destination is unreachable (spec §4.5); it
// returns the partial store with Warning set instead.
type Result struct {
	Store       *Store
	Destination StopID
	Warning     string
}

// Reached reports whether stop has an installed label in the result.
func (r *Result) Reached(stop StopID) bool {
	return r.Store.Has(stop)
}

// Search runs the round driver (C5): initializes the label store with
// the origin, then alternates the ride-extension pass (C3) and footpath
// pass (C4) for up to maxTransfers+1 rounds, terminating early if a
// round's ride pass installs no new stops. depTime is the requested
// departure time in GTFS seconds-since-midnight; the returned labels are
// time-to-reach values relative to it.
//
// ctx is checked at round boundaries only; a cancelled context returns
// the partial result as of the last completed round, identical in shape
// to a result that terminated naturally.
func Search(ctx context.Context, v *feed.View, origin, destination StopID, depTime float64, maxTransfers int) (*Result, error) {
	if !v.HasStop(origin) {
		return nil, unknownStopError("origin", origin)
	}
	if !v.HasStop(destination) {
		return nil, unknownStopError("destination", destination)
	}

	store := NewStore()
	store.initOrigin(origin)

	frontier := []StopID{origin}
	used := make(map[StopID]struct{})

	for k := 0; k <= maxTransfers; k++ {
		select {
		case <-ctx.Done():
			return finishResult(store, destination), nil
		default:
		}

		before := store.Len()
		found := extendRides(v, store, frontier, depTime, k)
		if !found || store.Len() == before {
			break
		}

		next := extendFootpaths(v, store, store.AllStops(), used, k)
		for _, s := range frontier {
			used[s] = struct{}{}
		}
		// The next frontier is every stop whose label changed this round:
		// the footpath installs plus the stops this round's rides set, so
		// two rides can connect at a shared stop without a walk between.
		frontier = next
		for _, s := range store.AllStops() {
			if l := store.MustGet(s); l.Prior != nil && l.Prior.SegmentNum == 2*k {
				frontier = append(frontier, s)
			}
		}
	}

	return finishResult(store, destination), nil
}

func finishResult(store *Store, destination StopID) *Result {
	res := &Result{Store: store, Destination: destination}
	if !store.Has(destination) {
		res.Warning = "destination not reached within the transfer bound"
	}
	return res
}
