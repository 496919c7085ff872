package testutil

import (
	"sync"
	"time"
)

// ScriptedClock returns a fixed sequence of readings, one per Now call.
// Once the script is exhausted the last reading repeats.
type ScriptedClock struct {
	mu       sync.Mutex
	readings []time.Duration
	next     int
}

// NewScriptedClock creates a clock that replays readings in order.
func NewScriptedClock(readings ...time.Duration) *ScriptedClock {
	return &ScriptedClock{readings: readings}
}

// Seconds builds a ScriptedClock from readings expressed in seconds.
func Seconds(readings ...float64) *ScriptedClock {
	ds := make([]time.Duration, len(readings))
	for i, s := range readings {
		ds[i] = time.Duration(s * float64(time.Second))
	}
	return NewScriptedClock(ds...)
}

// Now returns the next scripted reading.
func (c *ScriptedClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.readings) == 0 {
		return 0
	}
	if c.next >= len(c.readings) {
		return c.readings[len(c.readings)-1]
	}
	r := c.readings[c.next]
	c.next++
	return r
}

// Push appends readings to the script.
func (c *ScriptedClock) Push(readings ...time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readings = append(c.readings, readings...)
}
