package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewIndexesStopTimesSorted(t *testing.T) {
	v := NewView(
		[]Stop{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		nil,
		[]Trip{{ID: "t1"}},
		[]StopTime{
			{TripID: "t1", StopID: "C", StopSequence: 3, ArrivalTime: 300, DepartureTime: 300},
			{TripID: "t1", StopID: "A", StopSequence: 1, ArrivalTime: 100, DepartureTime: 100},
			{TripID: "t1", StopID: "B", StopSequence: 2, ArrivalTime: 200, DepartureTime: 200},
		},
		nil, nil,
	)

	rows := v.StopTimesForTrip("t1")
	require.Len(t, rows, 3)
	assert.Equal(t, "A", rows[0].StopID)
	assert.Equal(t, "B", rows[1].StopID)
	assert.Equal(t, "C", rows[2].StopID)
}

func TestViewTransfersFromOnlyWalkingNonSelf(t *testing.T) {
	v := NewView(
		[]Stop{{ID: "A"}, {ID: "B"}},
		nil, nil, nil,
		[]Transfer{
			{FromStopID: "A", ToStopID: "B", Kind: TransferWalking, MinTransferTime: 30},
			{FromStopID: "A", ToStopID: "A", Kind: TransferWalking, MinTransferTime: 0},
			{FromStopID: "A", ToStopID: "B", Kind: TransferTimed, MinTransferTime: 0},
		},
		nil,
	)

	got := v.TransfersFrom("A")
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].ToStopID)
}

func TestValidateDetectsUnsortedArrivalAfterDeparture(t *testing.T) {
	v := NewView(
		[]Stop{{ID: "A"}, {ID: "B"}},
		nil,
		[]Trip{{ID: "t1"}},
		[]StopTime{
			{TripID: "t1", StopID: "A", StopSequence: 1, ArrivalTime: 100, DepartureTime: 100},
			{TripID: "t1", StopID: "B", StopSequence: 2, ArrivalTime: 50, DepartureTime: 60},
		},
		nil, nil,
	)

	err := Validate(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFeedInvariant)
}

func TestValidateDetectsUnknownTransferStop(t *testing.T) {
	v := NewView(
		[]Stop{{ID: "A"}},
		nil, nil, nil,
		[]Transfer{{FromStopID: "A", ToStopID: "ghost", Kind: TransferWalking, MinTransferTime: 10}},
		nil,
	)

	err := Validate(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFeedInvariant)
}

func TestValidatePassesOnCleanFeed(t *testing.T) {
	v := NewView(
		[]Stop{{ID: "A"}, {ID: "B"}},
		nil,
		[]Trip{{ID: "t1"}},
		[]StopTime{
			{TripID: "t1", StopID: "A", StopSequence: 1, ArrivalTime: 100, DepartureTime: 100},
			{TripID: "t1", StopID: "B", StopSequence: 2, ArrivalTime: 200, DepartureTime: 200},
		},
		[]Transfer{{FromStopID: "A", ToStopID: "B", Kind: TransferWalking, MinTransferTime: 30}},
		nil,
	)

	assert.NoError(t, Validate(v))
}

func TestParseGTFSTimePastMidnight(t *testing.T) {
	secs, err := ParseGTFSTime("25:30:00")
	require.NoError(t, err)
	assert.Equal(t, 25*3600+30*60, int(secs))
}

func TestParseGTFSTimeInvalid(t *testing.T) {
	_, err := ParseGTFSTime("not-a-time")
	assert.Error(t, err)
}
