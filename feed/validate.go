package feed

// Validate checks the FeedInvariantViolation conditions spec.md assigns
// to feed-load time: stop_times sorted and monotone per trip, and every
// walking transfer NewView indexed (type 2, not a self-transfer)
// referencing stops that actually exist; other transfer rows are not
// checked. It is meant to run
// once, right after NewView, before any search touches the view.
func Validate(v *View) error {
	for trip, rows := range v.byTrip {
		for i, st := range rows {
			if st.ArrivalTime > st.DepartureTime {
				return invariantf("trip %q stop_sequence %d: arrival_time > departure_time", trip, st.StopSequence)
			}
			if i == 0 {
				continue
			}
			prev := rows[i-1]
			if st.StopSequence <= prev.StopSequence {
				return invariantf("trip %q: stop_sequence not strictly increasing at %d", trip, st.StopSequence)
			}
			if st.ArrivalTime < prev.DepartureTime {
				return invariantf("trip %q: arrival_time at sequence %d precedes departure_time at sequence %d", trip, st.StopSequence, prev.StopSequence)
			}
			if !st.HasStop(v) {
				return invariantf("trip %q stop_sequence %d: references unknown stop %q", trip, st.StopSequence, st.StopID)
			}
		}
	}

	for _, transfers := range v.transfersFrom {
		for _, tr := range transfers {
			if !v.HasStop(tr.FromStopID) {
				return invariantf("transfer references unknown from_stop_id %q", tr.FromStopID)
			}
			if !v.HasStop(tr.ToStopID) {
				return invariantf("transfer references unknown to_stop_id %q", tr.ToStopID)
			}
			if tr.MinTransferTime < 0 {
				return invariantf("transfer %s->%s: negative min_transfer_time", tr.FromStopID, tr.ToStopID)
			}
		}
	}

	return nil
}

// HasStop reports whether st's stop id is present in v. A method on
// StopTime rather than a free function purely to read naturally at the
// Validate call site above.
func (st StopTime) HasStop(v *View) bool {
	return v.HasStop(st.StopID)
}
