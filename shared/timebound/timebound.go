package timebound

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

const epsilon = time.Millisecond

// Now returns a span bracketing the current instant by one epsilon on each
// side, so that two stamps taken around the same event always overlap.
func Now() TimeSpan {
	now := time.Now()
	return timespan.BetweenTimes(now.Add(-1*epsilon), now.Add(epsilon))
}

// TimeBounded marks values stamped with the span in which they were produced.
type TimeBounded interface {
	TimeSpan() TimeSpan
}
