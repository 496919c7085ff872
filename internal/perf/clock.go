package perf

import "time"

// Clock supplies monotonic readings as offsets from the clock's origin.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock reads the runtime's monotonic clock relative to the moment it
// was created. Wall clock adjustments never affect its readings.
type MonotonicClock struct {
	origin time.Time
}

// NewMonotonicClock creates a clock whose origin is the current instant.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{origin: time.Now()}
}

// Now returns the time elapsed since the clock origin.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.origin)
}

// processClock is shared by timers built without WithClock.
var processClock = NewMonotonicClock()
