package raptor

// Store is the stop-label store (C2): the per-stop best-known arrival
// label plus predecessor chain. Labels are created and updated only
// during a single search; a Store is not safe for concurrent use by
// more than one search.
type Store struct {
	labels map[StopID]Label
}

// NewStore returns an empty label store.
func NewStore() *Store {
	return &Store{labels: make(map[StopID]Label)}
}

// Has reports whether a label exists for s.
func (s *Store) Has(stop StopID) bool {
	_, ok := s.labels[stop]
	return ok
}

// Get returns the current label for s, or ErrLabelNotFound if absent.
func (s *Store) Get(stop StopID) (Label, error) {
	l, ok := s.labels[stop]
	if !ok {
		return Label{}, ErrLabelNotFound
	}
	return l, nil
}

// MustGet panics if s has no label. It exists for call sites that have
// already checked Has, to avoid threading an error through hot loops.
func (s *Store) MustGet(stop StopID) Label {
	l, ok := s.labels[stop]
	if !ok {
		panic("raptor: MustGet on unreached stop " + stop)
	}
	return l
}

// AllStops returns the set of currently-reached stops. Ordering is
// unspecified.
func (s *Store) AllStops() []StopID {
	out := make([]StopID, 0, len(s.labels))
	for id := range s.labels {
		out = append(out, id)
	}
	return out
}

// Len reports the number of reached stops.
func (s *Store) Len() int {
	return len(s.labels)
}

// stopTripPair identifies one (stop, trip) combination appearing in a
// label's preceding list.
type stopTripPair struct {
	Stop StopID
	Trip TripID
}

// PrecedingOf returns, for every stop in stops, the set of (stop, tripID)
// pairs drawn from that stop's preceding list. C3 uses this to exclude
// boarding a trip already ridden on the path leading into the frontier.
func (s *Store) PrecedingOf(stops []StopID) map[stopTripPair]struct{} {
	out := make(map[stopTripPair]struct{})
	for _, stop := range stops {
		l, ok := s.labels[stop]
		if !ok {
			continue
		}
		for _, trip := range l.Preceding {
			out[stopTripPair{Stop: stop, Trip: trip}] = struct{}{}
		}
	}
	return out
}

// upsertOptions carries the optional arguments to TryUpsert. Exactly one
// of PrecedingOverride or TripID normally determines the new preceding
// list; SegmentNum, when non-nil, records the prior segment.
type upsertOptions struct {
	TripID            TripID
	FromStopID        StopID
	PrecedingOverride []TripID
	SegmentNum        *int
}

// UpsertOption configures a TryUpsert call.
type UpsertOption func(*upsertOptions)

// WithTripID sets the trip id used to derive the new preceding list when
// PrecedingOverride is not supplied, and (together with SegmentNum) the
// trip id recorded on the prior segment for a ride.
func WithTripID(trip TripID) UpsertOption {
	return func(o *upsertOptions) { o.TripID = trip }
}

// WithFromStop records the predecessor stop id for the prior segment.
func WithFromStop(stop StopID) UpsertOption {
	return func(o *upsertOptions) { o.FromStopID = stop }
}

// WithPrecedingOverride installs this exact preceding list instead of
// deriving one from WithTripID. Used by footpath relaxation, which
// inherits the predecessor's preceding list unchanged, and by ride
// relaxation, which inherits the anchor's preceding list.
func WithPrecedingOverride(preceding []TripID) UpsertOption {
	return func(o *upsertOptions) { o.PrecedingOverride = append([]TripID(nil), preceding...) }
}

// WithSegmentNum records a prior segment with this segment number. Even
// numbers are rides (TripID taken verbatim); odd numbers are walks
// (TripID forced to WalkSentinel) per spec.
func WithSegmentNum(n int) UpsertOption {
	return func(o *upsertOptions) { o.SegmentNum = &n }
}

// TryUpsert installs a new label for stop if it is unreached, or if t is
// strictly less than its existing best time. Non-strict equality (t ==
// best) is a no-op: the first writer at a given cost wins, which keeps
// the predecessor graph acyclic and the chain stable. Returns whether an
// install occurred.
func (s *Store) TryUpsert(stop StopID, t float64, opts ...UpsertOption) bool {
	var o upsertOptions
	for _, apply := range opts {
		apply(&o)
	}

	existing, reached := s.labels[stop]
	if reached && t >= existing.Best {
		return false
	}

	preceding := o.PrecedingOverride
	if preceding == nil {
		base := existing.Preceding
		if !reached {
			base = nil
		}
		preceding = appendTrip(base, o.TripID)
	}

	var prior *PriorSegment
	if o.SegmentNum != nil {
		trip := o.TripID
		if *o.SegmentNum%2 != 0 {
			trip = WalkSentinel
		}
		prior = &PriorSegment{
			SegmentNum: *o.SegmentNum,
			FromStopID: o.FromStopID,
			TripID:     trip,
		}
	}

	s.labels[stop] = Label{
		StopID:    stop,
		Best:      t,
		Preceding: preceding,
		Prior:     prior,
	}
	return true
}

// appendTrip appends trip to preceding unless it equals the last element
// (invariant I3: no two consecutive equal trip ids). An empty trip id
// (WalkSentinel) is never appended, since walks do not add a ride to the
// preceding list.
func appendTrip(preceding []TripID, trip TripID) []TripID {
	if trip == WalkSentinel {
		return append([]TripID(nil), preceding...)
	}
	if len(preceding) > 0 && preceding[len(preceding)-1] == trip {
		return append([]TripID(nil), preceding...)
	}
	out := make([]TripID, len(preceding), len(preceding)+1)
	copy(out, preceding)
	return append(out, trip)
}

// initOrigin installs the origin label: reached at time 0, empty
// preceding, no prior segment (I4).
func (s *Store) initOrigin(origin StopID) {
	s.labels[origin] = Label{
		StopID:    origin,
		Best:      0,
		Preceding: nil,
		Prior:     nil,
	}
}
