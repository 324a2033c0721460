package notification

import "time"

// Clock supplies creation timestamps. Injected so mapper output is
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// ZoneClock reports the current time in a fixed civil timezone, truncated to
// millisecond precision.
type ZoneClock struct {
	loc *time.Location
}

func NewZoneClock(loc *time.Location) ZoneClock {
	if loc == nil {
		loc = time.UTC
	}
	return ZoneClock{loc: loc}
}

func (c ZoneClock) Now() time.Time {
	return time.Now().In(c.loc).Truncate(time.Millisecond)
}
