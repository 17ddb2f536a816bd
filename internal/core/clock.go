package core

import "time"

// Clock reports monotonic seconds since an arbitrary start.
type Clock interface {
	Now() float64
}

// MonotonicClock is a Clock backed by the runtime's monotonic time source.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock creates a clock that starts at zero now.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the seconds elapsed since the clock was created.
func (c *MonotonicClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
