package raptor

import "github.com/antigravity/transit-raptor/feed"

// extendFootpaths runs the footpath pass (C4) for round k. used is the
// set A of stops already used as walk sources in earlier rounds; the
// caller is responsible for growing it with the pre-walk frontier after
// this call returns (spec's A <- A ∪ F, using the frontier that was
// current before this pass ran). Returns the to_stop ids for which an
// install actually occurred; the driver makes them part of the next
// frontier.
func extendFootpaths(v *feed.View, store *Store, reached []StopID, used map[StopID]struct{}, k int) []StopID {
	type candidate struct {
		fromStop StopID
		arrive   float64
	}
	bestByTo := make(map[StopID]candidate)

	for _, from := range reached {
		if _, excluded := used[from]; excluded {
			continue
		}
		label := store.MustGet(from)
		for _, tr := range v.TransfersFrom(from) {
			arrive := label.Best + tr.MinTransferTime
			cur, ok := bestByTo[tr.ToStopID]
			if !ok || arrive < cur.arrive {
				bestByTo[tr.ToStopID] = candidate{fromStop: from, arrive: arrive}
			}
		}
	}

	frontier := make([]StopID, 0, len(bestByTo))
	for to, c := range bestByTo {
		from := store.MustGet(c.fromStop)
		lastTrip := TripID(WalkSentinel)
		if n := len(from.Preceding); n > 0 {
			lastTrip = from.Preceding[n-1]
		}
		// Walks never append to the preceding list (I3): the new label's
		// preceding is the predecessor's own list, unchanged, so it must
		// be passed as an override rather than derived via WithTripID
		// (which would otherwise derive from `to`'s own prior list, if
		// `to` was already reached at a worse cost).
		installed := store.TryUpsert(to, c.arrive,
			WithTripID(lastTrip),
			WithFromStop(c.fromStop),
			WithPrecedingOverride(from.Preceding),
			WithSegmentNum(2*k+1),
		)
		if installed {
			frontier = append(frontier, to)
		}
	}

	return frontier
}
