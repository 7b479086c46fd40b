package testmgr

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsrinivas/ninja-test/internal/sink"
	"github.com/vsrinivas/ninja-test/internal/testerror"
	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
)

type testEnv struct {
	logger   *logrus.Logger
	recorder *sink.Recorder
}

func newTestEnv() *testEnv {
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	return &testEnv{logger: logger, recorder: &sink.Recorder{}}
}

func (e *testEnv) Logger() *logrus.Logger {
	return e.logger
}

func (e *testEnv) Sink() core.Sink {
	return e.recorder
}

// Mirrors the fatal assertion form of the public API.
func assertTrue(t *TestCase, condition bool, description string) {
	if !t.Check(condition, "testcase_test.go", 1, description) {
		t.AddAssertionFailure()
		t.StopExecution()
	}
}

func TestCheck(t *testing.T) {
	env := newTestEnv()
	tc := New("Check.Soft", env, Hooks{})

	assert.True(t, tc.Check(true, "a.go", 1, "ok"))
	assert.False(t, tc.Failed())
	assert.Empty(t, env.recorder.Failures)

	assert.False(t, tc.Check(false, "a.go", 2, "x == y"))
	assert.True(t, tc.Failed())
	assert.Equal(t, 0, tc.AssertionFailures())

	// The flag never resets.
	assert.True(t, tc.Check(true, "a.go", 3, "ok"))
	assert.True(t, tc.Failed())

	require.Len(t, env.recorder.Failures, 1)
	assert.Equal(t, core.Failure{Test: "Check.Soft", File: "a.go", Line: 2, Expression: "x == y"}, env.recorder.Failures[0])
}

func TestLifecycleOrder(t *testing.T) {
	var phases []State
	record := func(tc *TestCase) { phases = append(phases, tc.State()) }

	tc := New("Lifecycle.Order", newTestEnv(), Hooks{SetUp: record, Run: record, TearDown: record})
	assert.Equal(t, StateConstructed, tc.State())

	tc.RunLifecycle()

	assert.Equal(t, []State{StateSetUp, StateRunning, StateTearDown}, phases)
	assert.Equal(t, StateTornDown, tc.State())
	assert.Equal(t, TestCaseStatusPassed, tc.Status())
	assert.False(t, tc.Failed())
	assert.Equal(t, 0, tc.AssertionFailureCount())
}

func TestNilHooks(t *testing.T) {
	tc := New("Lifecycle.Empty", nil, Hooks{})
	tc.RunLifecycle()

	assert.Equal(t, TestCaseStatusPassed, tc.Status())
}

func TestSoftFailuresContinue(t *testing.T) {
	reached := false
	tc := New("Soft.Continue", newTestEnv(), Hooks{
		Run: func(tc *TestCase) {
			tc.Check(1 == 2, "a.go", 1, "1 == 2")
			reached = tc.Check(3 == 3, "a.go", 2, "3 == 3")
		},
	})

	tc.RunLifecycle()

	assert.True(t, reached)
	assert.True(t, tc.Failed())
	assert.Equal(t, 0, tc.AssertionFailureCount())
	assert.Equal(t, TestCaseStatusFailed, tc.Status())
}

func TestFatalAssertionStopsRun(t *testing.T) {
	env := newTestEnv()
	after := false
	teardowns := 0

	tc := New("Fatal.Run", env, Hooks{
		Run: func(tc *TestCase) {
			assertTrue(tc, false, "1 == 2")
			after = true
			tc.Check(false, "a.go", 2, "never")
		},
		TearDown: func(*TestCase) { teardowns++ },
	})

	tc.RunLifecycle()

	assert.False(t, after)
	assert.Equal(t, 1, teardowns)
	assert.True(t, tc.Failed())
	assert.Equal(t, 1, tc.AssertionFailureCount())
	assert.Len(t, env.recorder.Failures, 1)
	assert.NoError(t, tc.Err())
}

func TestFatalAssertionInSetUpSkipsRun(t *testing.T) {
	ran := false
	toreDown := false

	tc := New("Fatal.SetUp", newTestEnv(), Hooks{
		SetUp:    func(tc *TestCase) { assertTrue(tc, false, "setup") },
		Run:      func(*TestCase) { ran = true },
		TearDown: func(*TestCase) { toreDown = true },
	})

	tc.RunLifecycle()

	assert.False(t, ran)
	assert.True(t, toreDown)
	assert.True(t, tc.Failed())
	assert.Equal(t, 1, tc.AssertionFailureCount())
}

func TestSoftFailureInSetUpStillRuns(t *testing.T) {
	ran := false

	tc := New("Soft.SetUp", newTestEnv(), Hooks{
		SetUp: func(tc *TestCase) { tc.Check(false, "a.go", 1, "setup") },
		Run:   func(*TestCase) { ran = true },
	})

	tc.RunLifecycle()

	assert.True(t, ran)
	assert.True(t, tc.Failed())
	assert.Equal(t, 0, tc.AssertionFailureCount())
}

func TestPanicIsError(t *testing.T) {
	toreDown := false

	tc := New("Panic.Run", newTestEnv(), Hooks{
		Run:      func(*TestCase) { panic("boom") },
		TearDown: func(*TestCase) { toreDown = true },
	})

	tc.RunLifecycle()

	assert.True(t, toreDown)
	assert.True(t, tc.Failed())
	assert.Equal(t, TestCaseStatusError, tc.Status())

	var phaseErr *PhaseError
	require.ErrorAs(t, tc.Err(), &phaseErr)
	assert.Equal(t, StateRunning, phaseErr.Phase)

	var panicErr testerror.PanicError
	require.ErrorAs(t, tc.Err(), &panicErr)
	assert.Equal(t, "boom", panicErr.Value())
}

func TestNoFatalFailure(t *testing.T) {
	helper := func(tc *TestCase) {
		assertTrue(tc, false, "inside helper")
	}

	t.Run("helper fails", func(t *testing.T) {
		env := newTestEnv()
		after := false

		tc := New("Composite.Fails", env, Hooks{
			Run: func(tc *TestCase) {
				tc.NoFatalFailure("a.go", 10, "helper(t)", func() { helper(tc) })
				after = true
			},
		})

		tc.RunLifecycle()

		assert.False(t, after)
		assert.True(t, tc.Failed())
		assert.Equal(t, 2, tc.AssertionFailureCount())
		require.Len(t, env.recorder.Failures, 2)
		assert.Equal(t, "inside helper", env.recorder.Failures[0].Expression)
		assert.Equal(t, 10, env.recorder.Failures[1].Line)
		assert.Equal(t, "helper(t)", env.recorder.Failures[1].Expression)
	})

	t.Run("helper passes", func(t *testing.T) {
		after := false

		tc := New("Composite.Passes", newTestEnv(), Hooks{
			Run: func(tc *TestCase) {
				tc.NoFatalFailure("a.go", 10, "helper(t)", func() { tc.Check(false, "a.go", 1, "soft") })
				after = true
			},
		})

		tc.RunLifecycle()

		assert.True(t, after)
		assert.True(t, tc.Failed())
		assert.Equal(t, 0, tc.AssertionFailureCount())
	})

	t.Run("nested", func(t *testing.T) {
		tc := New("Composite.Nested", newTestEnv(), Hooks{
			Run: func(tc *TestCase) {
				tc.NoFatalFailure("a.go", 20, "outer", func() {
					tc.NoFatalFailure("a.go", 21, "inner", func() { helper(tc) })
				})
			},
		})

		tc.RunLifecycle()

		assert.Equal(t, 3, tc.AssertionFailureCount())
	})

	t.Run("helper panics", func(t *testing.T) {
		tc := New("Composite.Panics", newTestEnv(), Hooks{
			Run: func(tc *TestCase) {
				tc.NoFatalFailure("a.go", 10, "helper(t)", func() { panic(errors.New("boom")) })
			},
		})

		tc.RunLifecycle()

		assert.Equal(t, TestCaseStatusError, tc.Status())
		assert.Equal(t, 0, tc.AssertionFailureCount())
		assert.ErrorContains(t, tc.Err(), "panic occurred: boom")
	})
}

func TestCurrent(t *testing.T) {
	first := New("Current.First", nil, Hooks{})
	assert.Same(t, first, Current())

	second := New("Current.Second", nil, Hooks{})
	assert.Same(t, second, Current())
}

func TestRunLifecycleOnce(t *testing.T) {
	runs := 0
	tc := New("Lifecycle.Once", newTestEnv(), Hooks{Run: func(*TestCase) { runs++ }})

	tc.RunLifecycle()
	tc.RunLifecycle()

	assert.Equal(t, 1, runs)
}

func TestLogLines(t *testing.T) {
	tc := New("Logs.Collected", newTestEnv(), Hooks{
		Run: func(tc *TestCase) {
			tc.Logger().Info("hello from the body")
		},
	})

	tc.RunLifecycle()

	lines := tc.LogLines()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "hello from the body")
	assert.Contains(t, lines[len(lines)-1], TestCaseStatusPassed.String())
	assert.Positive(t, tc.RunTime())
}
