package perf

import "errors"

// Scope is the guard returned by Enter. Exit closes the region.
type Scope struct {
	t *Timer
}

// Enter starts the timer and returns a guard whose Exit ends the region, saves
// it as ScopeBlockName and logs it.
//
//	s := t.Enter()
//	defer func() { err = errors.Join(err, s.Exit()) }()
func (t *Timer) Enter() *Scope {
	t.Start()
	return &Scope{t: t}
}

// Exit ends the region, saves it under ScopeBlockName and logs it. The first
// failing step stops the sequence and its error is returned unchanged.
func (s *Scope) Exit() error {
	if err := s.t.End(); err != nil {
		return err
	}
	if err := s.t.Save(ScopeBlockName); err != nil {
		return err
	}
	return s.t.LogTime(ScopeBlockName)
}

// Measure times fn as a scope. The region is closed on every exit path,
// including a panic, which is not recovered. An error from fn is returned as
// is when closing succeeds and joined with the closing error otherwise.
func (t *Timer) Measure(fn func() error) (err error) {
	s := t.Enter()
	defer func() {
		exitErr := s.Exit()
		switch {
		case exitErr == nil:
		case err == nil:
			err = exitErr
		default:
			err = errors.Join(err, exitErr)
		}
	}()
	return fn()
}
