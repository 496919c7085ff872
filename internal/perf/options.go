package perf

import "maps"

// Option configures a Timer at construction.
type Option func(*Timer)

// WithSink sets the sink LogTime writes to. A nil sink disables logging.
func WithSink(s Sink) Option {
	return func(t *Timer) {
		t.sink = s
	}
}

// WithoutSink disables logging; LogTime then returns ErrNoSinkConfigured.
func WithoutSink() Option {
	return WithSink(nil)
}

// WithBlocks seeds the timer with previously saved blocks. The map is copied.
func WithBlocks(blocks map[string]Block) Option {
	return func(t *Timer) {
		maps.Copy(t.blocks, blocks)
	}
}

// WithClock replaces the monotonic clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(t *Timer) {
		if c != nil {
			t.clock = c
		}
	}
}

// WithObserver registers an observer for saved blocks.
func WithObserver(o Observer) Option {
	return func(t *Timer) {
		if o != nil {
			t.observers = append(t.observers, o)
		}
	}
}
