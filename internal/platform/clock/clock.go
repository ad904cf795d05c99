package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns local wall-clock time. Conference schedules are
// local-time data, so no UTC normalization happens here.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
