package twitter

import (
	"fmt"
	"time"
)

// Timespan is the closed interval [Start, End]. Start must not be after End;
// the filters rely on this and do not check it again.
type Timespan struct {
	Start time.Time
	End   time.Time
}

// NewTimespan returns the interval [start, end], or an error wrapping
// ErrInvalidArgument when start is after end.
func NewTimespan(start, end time.Time) (Timespan, error) {
	if start.After(end) {
		return Timespan{}, fmt.Errorf("%w: timespan start %s is after end %s",
			ErrInvalidArgument, start.Format(time.RFC3339Nano), end.Format(time.RFC3339Nano))
	}
	return Timespan{Start: start, End: end}, nil
}

// Contains reports whether t lies within the timespan, bounds included.
func (s Timespan) Contains(t time.Time) bool {
	return !t.Before(s.Start) && !t.After(s.End)
}

// Duration returns End - Start.
func (s Timespan) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

func (s Timespan) String() string {
	return fmt.Sprintf("[%s, %s]", s.Start.Format(time.RFC3339Nano), s.End.Format(time.RFC3339Nano))
}
