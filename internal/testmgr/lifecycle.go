package testmgr

import (
	"sync"
	"time"

	"github.com/vsrinivas/ninja-test/internal/testerror"
)

// Fixture provides the SetUp/TearDown pair shared by a family of test cases.
type Fixture interface {
	SetUp(t *TestCase)
	TearDown(t *TestCase)
}

// BaseFixture is a Fixture with no-op SetUp and TearDown. Embed it to only
// override one of them.
type BaseFixture struct{}

func (BaseFixture) SetUp(*TestCase) {}

func (BaseFixture) TearDown(*TestCase) {}

// RunLifecycle runs SetUp, Run and TearDown. Run is skipped when SetUp was
// stopped by a fatal assertion or panicked; TearDown always runs exactly once.
// A test case can only run once, further calls are ignored.
func (tc *TestCase) RunLifecycle() {
	tc.mu.Lock()
	if tc.state != StateConstructed {
		tc.mu.Unlock()
		tc.suite.Warnf("Test case '%s' was already run, ignoring", tc.name)
		return
	}
	tc.startTime = time.Now()
	tc.mu.Unlock()

	if tc.runPhase(StateSetUp, tc.hooks.SetUp) {
		tc.runPhase(StateRunning, tc.hooks.Run)
	} else {
		tc.suite.Debugf("[%s] SetUp did not complete, skipping Run", tc.id())
	}

	tc.runPhase(StateTearDown, tc.hooks.TearDown)
	tc.close()
}

// Runs a single phase and returns whether it ran to completion.
func (tc *TestCase) runPhase(state State, hook func(*TestCase)) bool {
	tc.setState(state)
	if hook == nil {
		return true
	}

	completed, err := runSupervised(func() { hook(tc) })
	if err != nil {
		tc.markError(state, err)
		return false
	}

	return completed
}

// Used internally to attach a panic to this test case. The first error wins.
func (tc *TestCase) markError(state State, err error) {
	tc.log.WithError(err).Errorf("Panic in %s", state.String())
	if pe, ok := err.(testerror.PanicError); ok {
		tc.log.Debugf("Stack:\n%s", pe.Stack)
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.failed = true
	if tc.err == nil {
		tc.err = &PhaseError{Phase: state, Err: err}
	}
}

// Run f in a separate goroutine so that runtime.Goexit() can be called to
// stop it without affecting the caller. Returns whether f returned normally
// and the panic it raised, if any.
func runSupervised(f func()) (completed bool, err error) {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		err = testerror.RunCatchPanic(func() error {
			f()
			completed = true
			return nil
		})
	}()

	wg.Wait()
	return completed, err
}
