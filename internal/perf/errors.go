package perf

import (
	"errors"
	"fmt"
)

var (
	// ErrTimerNotStarted is returned when a timer is stopped or saved before Start.
	ErrTimerNotStarted = errors.New("timer was not started, call Start to begin the timer")

	// ErrTimerNotStopped is returned by Save when End has not been called.
	ErrTimerNotStopped = errors.New("timer was not stopped, call End before saving")

	// ErrEmptyBlockName is returned by Save for an empty label.
	ErrEmptyBlockName = errors.New("block name must not be empty")

	// ErrSaveFailed matches every *SaveError via errors.Is.
	ErrSaveFailed = errors.New("error saving timer block")

	// ErrNoSavedBlock is returned by LogTime for a name that was never saved.
	ErrNoSavedBlock = errors.New("no saved timer block, call Save after Start and End")

	// ErrNoSinkConfigured is returned by LogTime when the timer has no sink.
	ErrNoSinkConfigured = errors.New("no sink configured with the timer")
)

// SaveError reports why a block could not be saved.
type SaveError struct {
	Name string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrSaveFailed, e.Name, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSaveFailed.
func (e *SaveError) Is(target error) bool {
	return target == ErrSaveFailed
}
