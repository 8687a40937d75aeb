package feed

import "sort"

// View is the immutable, in-memory feed view (C1). It is built once by a
// loader and then only read: every accessor returns data already indexed
// at construction time so C3's per-round scans never re-derive them.
type View struct {
	stops  map[string]Stop
	routes map[string]Route
	trips  map[string]Trip
	shapes map[string]Shape

	// byTrip holds, per trip, the trip's stop_times sorted ascending by
	// StopSequence — the precondition for C3's "later stops on the same
	// trip" filter (spec §4.1).
	byTrip map[string][]StopTime

	// byStop holds, per stop, every stop_time row at that stop (any
	// trip, unordered) — C3's candidate-boarding scan.
	byStop map[string][]StopTime

	// byStopTime allows C6 to look up a specific (trip, stop) row for
	// boarding/alighting times.
	byStopTime map[stopTripKey]StopTime

	// transfersFrom holds, per origin stop, its outgoing type-2 walking
	// transfers — C4's candidate scan.
	transfersFrom map[string][]Transfer
}

type stopTripKey struct {
	Trip string
	Stop string
}

// NewView builds a View from already-loaded tables, computing the
// indices C3/C4/C6 need. Validate should be called on the result (or on
// the inputs) before using the view in a search; NewView itself performs
// no validation, only indexing, so loaders can choose where to surface
// FeedInvariantViolation errors.
func NewView(stops []Stop, routes []Route, trips []Trip, stopTimes []StopTime, transfers []Transfer, shapes []Shape) *View {
	v := &View{
		stops:         make(map[string]Stop, len(stops)),
		routes:        make(map[string]Route, len(routes)),
		trips:         make(map[string]Trip, len(trips)),
		shapes:        make(map[string]Shape, len(shapes)),
		byTrip:        make(map[string][]StopTime),
		byStop:        make(map[string][]StopTime),
		byStopTime:    make(map[stopTripKey]StopTime, len(stopTimes)),
		transfersFrom: make(map[string][]Transfer),
	}
	for _, s := range stops {
		v.stops[s.ID] = s
	}
	for _, r := range routes {
		v.routes[r.ID] = r
	}
	for _, t := range trips {
		v.trips[t.ID] = t
	}
	for _, sh := range shapes {
		v.shapes[sh.ID] = sh
	}
	for _, st := range stopTimes {
		v.byTrip[st.TripID] = append(v.byTrip[st.TripID], st)
		v.byStop[st.StopID] = append(v.byStop[st.StopID], st)
		v.byStopTime[stopTripKey{Trip: st.TripID, Stop: st.StopID}] = st
	}
	for trip := range v.byTrip {
		rows := v.byTrip[trip]
		sort.Slice(rows, func(i, j int) bool { return rows[i].StopSequence < rows[j].StopSequence })
		v.byTrip[trip] = rows
	}
	for _, tr := range transfers {
		if tr.Kind != TransferWalking || tr.FromStopID == tr.ToStopID {
			continue
		}
		v.transfersFrom[tr.FromStopID] = append(v.transfersFrom[tr.FromStopID], tr)
	}
	return v
}

// HasStop reports whether stop is present in the stops table.
func (v *View) HasStop(stop string) bool {
	_, ok := v.stops[stop]
	return ok
}

// Stop returns the stop row for id.
func (v *View) Stop(id string) (Stop, bool) {
	s, ok := v.stops[id]
	return s, ok
}

// Route returns the route row for id.
func (v *View) Route(id string) (Route, bool) {
	r, ok := v.routes[id]
	return r, ok
}

// Trip returns the trip row for id.
func (v *View) Trip(id string) (Trip, bool) {
	t, ok := v.trips[id]
	return t, ok
}

// Shape returns the shape polyline for id.
func (v *View) Shape(id string) (Shape, bool) {
	sh, ok := v.shapes[id]
	return sh, ok
}

// StopTimesAtStop returns every stop_time row whose StopID is stop, in
// unspecified order. This is C3's candidate-boarding source.
func (v *View) StopTimesAtStop(stop string) []StopTime {
	return v.byStop[stop]
}

// StopTimesForTrip returns trip's stop_times, sorted ascending by
// StopSequence.
func (v *View) StopTimesForTrip(trip string) []StopTime {
	return v.byTrip[trip]
}

// StopTimeAt returns the stop_time row for (trip, stop), used by C6 to
// look up boarding and alighting times for a reconstructed leg.
func (v *View) StopTimeAt(trip, stop string) (StopTime, bool) {
	st, ok := v.byStopTime[stopTripKey{Trip: trip, Stop: stop}]
	return st, ok
}

// TransfersFrom returns stop's outgoing type-2 walking transfers. This is
// C4's candidate scan.
func (v *View) TransfersFrom(stop string) []Transfer {
	return v.transfersFrom[stop]
}

// AllStops returns every stop row in the feed, in unspecified order. Used by preprocessors
// (transfer generation) that need to enumerate the full stop set.
func (v *View) AllStops() []Stop {
	out := make([]Stop, 0, len(v.stops))
	for _, s := range v.stops {
		out = append(out, s)
	}
	return out
}
