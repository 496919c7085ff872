// Package support holds the godog step definitions for the timer features.
package support

import (
	"errors"
	"fmt"

	"github.com/MeKo-Tech/perfmon/internal/perf"
	"github.com/MeKo-Tech/perfmon/internal/testutil"
)

// TestContext holds the state of one scenario.
type TestContext struct {
	Clock    *testutil.ScriptedClock
	Recorder *testutil.LineRecorder
	Timer    *perf.Timer

	LastError error
	BodyError error
	Panicked  bool
}

// NewTestContext creates a context with a recording timer.
func NewTestContext() *TestContext {
	testCtx := &TestContext{}
	testCtx.newRecordingTimer()
	return testCtx
}

func (testCtx *TestContext) newRecordingTimer() {
	testCtx.Clock = testutil.NewScriptedClock()
	testCtx.Recorder = &testutil.LineRecorder{}
	testCtx.Timer = perf.NewTimer(perf.WithClock(testCtx.Clock), perf.WithSink(testCtx.Recorder.Sink))
}

func (testCtx *TestContext) newSilentTimer() {
	testCtx.Clock = testutil.NewScriptedClock()
	testCtx.Recorder = &testutil.LineRecorder{}
	testCtx.Timer = perf.NewTimer(perf.WithClock(testCtx.Clock), perf.WithoutSink())
}

// errorKinds maps the names used in feature files to sentinel errors.
var errorKinds = map[string]error{
	"TimerNotStarted":  perf.ErrTimerNotStarted,
	"SaveFailure":      perf.ErrSaveFailed,
	"NoSavedBlock":     perf.ErrNoSavedBlock,
	"NoSinkConfigured": perf.ErrNoSinkConfigured,
}

func (testCtx *TestContext) expectError(kind string) error {
	want, ok := errorKinds[kind]
	if !ok {
		return fmt.Errorf("unknown error kind %q", kind)
	}
	if testCtx.LastError == nil {
		return fmt.Errorf("expected %s, got no error", kind)
	}
	if !errors.Is(testCtx.LastError, want) {
		return fmt.Errorf("expected %s, got %v", kind, testCtx.LastError)
	}
	return nil
}
