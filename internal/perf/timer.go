// Package perf provides a manual timer that records named code regions and
// reports them through a pluggable sink.
//
// A Timer tracks a single in-progress region at a time and is not safe for
// concurrent use.
package perf

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// ScopeBlockName is the block Measure and Scope save their region under.
const ScopeBlockName = "ctx_manager"

// State describes the in-progress region of a Timer.
type State int

const (
	// Idle means neither Start nor End is on record.
	Idle State = iota
	// Running means Start was called and End was not.
	Running
	// Stopped means both Start and End are on record.
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Observer is notified after every successful Save.
type Observer interface {
	ObserveBlock(name string, b Block)
}

// Timer measures code regions and keeps the results by name.
type Timer struct {
	start   time.Duration
	end     time.Duration
	started bool
	ended   bool

	blocks    map[string]Block
	sink      Sink
	clock     Clock
	observers []Observer
}

// NewTimer creates an idle timer. Without options it logs to stdout.
func NewTimer(opts ...Option) *Timer {
	t := &Timer{
		blocks: make(map[string]Block),
		sink:   StdoutSink,
		clock:  processClock,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start records the current reading as the region start. Calling it again
// discards the previous start; an earlier end reading stays on record until
// the next End or Reset.
func (t *Timer) Start() {
	t.start = t.clock.Now()
	t.started = true
}

// End records the current reading as the region end.
func (t *Timer) End() error {
	if !t.started {
		return ErrTimerNotStarted
	}
	t.end = t.clock.Now()
	t.ended = true
	return nil
}

// Reset clears the in-progress region. Saved blocks are dropped only when
// clearBlocks is set.
func (t *Timer) Reset(clearBlocks bool) {
	t.start, t.end = 0, 0
	t.started, t.ended = false, false
	if clearBlocks {
		clear(t.blocks)
	}
}

// Save stores the current region under name, replacing any previous block
// with the same name. The in-progress region is left untouched.
func (t *Timer) Save(name string) error {
	switch {
	case name == "":
		return &SaveError{Name: name, Err: ErrEmptyBlockName}
	case !t.started:
		return &SaveError{Name: name, Err: ErrTimerNotStarted}
	case !t.ended:
		return &SaveError{Name: name, Err: ErrTimerNotStopped}
	}

	b := newBlock(t.start, t.end)
	t.blocks[name] = b
	for _, o := range t.observers {
		o.ObserveBlock(name, b)
	}
	return nil
}

// LogTime sends the saved block for name to the sink. A missing sink is
// reported before a missing block.
func (t *Timer) LogTime(name string) error {
	if t.sink == nil {
		return ErrNoSinkConfigured
	}
	b, ok := t.blocks[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSavedBlock, name)
	}
	t.sink(b.Line(name))
	return nil
}

// Block returns the saved block for name.
func (t *Timer) Block(name string) (Block, bool) {
	b, ok := t.blocks[name]
	return b, ok
}

// Blocks returns a copy of all saved blocks.
func (t *Timer) Blocks() map[string]Block {
	return maps.Clone(t.blocks)
}

// Names returns the saved block names in sorted order.
func (t *Timer) Names() []string {
	return slices.Sorted(maps.Keys(t.blocks))
}

// State reports where the in-progress region stands.
func (t *Timer) State() State {
	switch {
	case t.started && t.ended:
		return Stopped
	case t.started:
		return Running
	default:
		return Idle
	}
}
