package support

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MeKo-Tech/perfmon/internal/perf"
	"github.com/cucumber/godog"
)

// RegisterSteps registers all timer step definitions.
func (testCtx *TestContext) RegisterSteps(sc *godog.ScenarioContext) {
	testCtx.registerSetupSteps(sc)
	testCtx.registerTimerSteps(sc)
	testCtx.registerScopeSteps(sc)
	testCtx.registerAssertionSteps(sc)
}

func (testCtx *TestContext) registerSetupSteps(sc *godog.ScenarioContext) {
	sc.Step(`^a timer with a recording sink$`, func() error {
		testCtx.newRecordingTimer()
		return nil
	})
	sc.Step(`^a timer without a sink$`, func() error {
		testCtx.newSilentTimer()
		return nil
	})
	sc.Step(`^the clock reads (.+)$`, testCtx.theClockReads)
}

func (testCtx *TestContext) registerTimerSteps(sc *godog.ScenarioContext) {
	sc.Step(`^I start the timer$`, func() error {
		testCtx.Timer.Start()
		return nil
	})
	sc.Step(`^I end the timer$`, func() error {
		testCtx.LastError = testCtx.Timer.End()
		return nil
	})
	sc.Step(`^I save the block "([^"]*)"$`, func(name string) error {
		testCtx.LastError = testCtx.Timer.Save(name)
		return nil
	})
	sc.Step(`^I log the block "([^"]*)"$`, func(name string) error {
		testCtx.LastError = testCtx.Timer.LogTime(name)
		return nil
	})
	sc.Step(`^I reset the timer$`, func() error {
		testCtx.Timer.Reset(false)
		return nil
	})
	sc.Step(`^I reset the timer and clear blocks$`, func() error {
		testCtx.Timer.Reset(true)
		return nil
	})
}

func (testCtx *TestContext) registerScopeSteps(sc *godog.ScenarioContext) {
	sc.Step(`^I time a scope that does nothing$`, func() error {
		testCtx.LastError = testCtx.Timer.Measure(func() error { return nil })
		return nil
	})
	sc.Step(`^I time a scope that fails with "([^"]*)"$`, func(msg string) error {
		testCtx.BodyError = errors.New(msg)
		testCtx.LastError = testCtx.Timer.Measure(func() error { return testCtx.BodyError })
		return nil
	})
	sc.Step(`^I time a scope that panics$`, func() error {
		defer func() {
			if r := recover(); r != nil {
				testCtx.Panicked = true
			}
		}()
		testCtx.LastError = testCtx.Timer.Measure(func() error { panic("scope panic") })
		return nil
	})
}

func (testCtx *TestContext) registerAssertionSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the last error is "([^"]*)"$`, testCtx.expectError)
	sc.Step(`^there is no error$`, func() error {
		if testCtx.LastError != nil {
			return fmt.Errorf("unexpected error: %v", testCtx.LastError)
		}
		return nil
	})
	sc.Step(`^the last error is the scope body error$`, func() error {
		if testCtx.LastError != testCtx.BodyError {
			return fmt.Errorf("expected body error %v unchanged, got %v", testCtx.BodyError, testCtx.LastError)
		}
		return nil
	})
	sc.Step(`^the scope panicked$`, func() error {
		if !testCtx.Panicked {
			return errors.New("expected the scope to panic")
		}
		return nil
	})
	sc.Step(`^the timer is (idle|running|stopped)$`, func(state string) error {
		if got := testCtx.Timer.State().String(); got != state {
			return fmt.Errorf("expected timer to be %s, got %s", state, got)
		}
		return nil
	})
	sc.Step(`^(\d+) blocks? (?:is|are) saved$`, func(n int) error {
		if got := len(testCtx.Timer.Blocks()); got != n {
			return fmt.Errorf("expected %d saved blocks, got %d", n, got)
		}
		return nil
	})
	sc.Step(`^block "([^"]*)" is saved$`, func(name string) error {
		if _, ok := testCtx.Timer.Block(name); !ok {
			return fmt.Errorf("block %q was not saved", name)
		}
		return nil
	})
	sc.Step(`^block "([^"]*)" has start ([\d.]+), end ([\d.]+) and elapsed ([\d.]+)$`, testCtx.blockHas)
	sc.Step(`^the sink received (\d+) lines?$`, func(n int) error {
		if got := len(testCtx.Recorder.Lines()); got != n {
			return fmt.Errorf("expected %d sink lines, got %d: %q", n, got, testCtx.Recorder.Lines())
		}
		return nil
	})
	sc.Step(`^the sink received "([^"]*)"$`, func(line string) error {
		if got := testCtx.Recorder.Last(); got != line {
			return fmt.Errorf("expected sink line %q, got %q", line, got)
		}
		return nil
	})
}

func (testCtx *TestContext) theClockReads(list string) error {
	for _, field := range strings.Split(list, ",") {
		d, err := parseSeconds(strings.TrimSpace(field))
		if err != nil {
			return err
		}
		testCtx.Clock.Push(d)
	}
	return nil
}

func (testCtx *TestContext) blockHas(name, start, end, elapsed string) error {
	b, ok := testCtx.Timer.Block(name)
	if !ok {
		return fmt.Errorf("block %q was not saved", name)
	}

	want := make([]time.Duration, 0, 3)
	for _, s := range []string{start, end, elapsed} {
		d, err := parseSeconds(s)
		if err != nil {
			return err
		}
		want = append(want, d)
	}

	got := perf.Block{Start: want[0], End: want[1], Elapsed: want[2]}
	if b != got {
		return fmt.Errorf("block %q = %+v, want %+v", name, b, got)
	}
	return nil
}

func parseSeconds(s string) (time.Duration, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds value %q: %w", s, err)
	}
	return time.Duration(f * float64(time.Second)), nil
}
