package shared

import "time"

// Clock abstracts the time source so "is this today" decisions can be fixed
// deterministically in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
