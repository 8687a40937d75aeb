package feed

import (
	"errors"
	"fmt"
)

// ErrFeedInvariant is the sentinel for FeedInvariantViolation conditions
// detected once at feed-load time: unsorted or non-monotone stop_times,
// a walking transfer referencing an unknown stop, or a table file a
// loader cannot open or parse. Missing columns are not checked. It is
// fatal — a
// loader should not hand back a View that failed validation.
var ErrFeedInvariant = errors.New("feed: invariant violation")

func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFeedInvariant, fmt.Sprintf(format, args...))
}
