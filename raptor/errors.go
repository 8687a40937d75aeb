package raptor

import (
	"errors"
	"fmt"
)

// ErrUnknownStop is returned when the requested origin or destination is
// not present in the feed view. It surfaces immediately at the call
// boundary, before any round runs.
var ErrUnknownStop = errors.New("raptor: unknown stop")

// ErrLabelNotFound is returned by Store.Get for a stop with no installed
// label. Callers normally guard with Store.Has first.
var ErrLabelNotFound = errors.New("raptor: no label for stop")

func unknownStopError(which string, stop StopID) error {
	return fmt.Errorf("%w: %s stop %q", ErrUnknownStop, which, stop)
}
