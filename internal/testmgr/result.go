package testmgr

import (
	"time"

	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
)

// Result is the outcome of one registry entry, as seen by the runner.
type Result struct {
	Name              string
	Status            TestCaseStatus
	Failed            bool
	AssertionFailures int
	RunTime           time.Duration
	Err               error
	Reason            string
	LogLines          []string
}

// Result returns the outcome of a test case that finished running.
func (tc *TestCase) Result() Result {
	return Result{
		Name:              tc.Name(),
		Status:            tc.Status(),
		Failed:            tc.Failed(),
		AssertionFailures: tc.AssertionFailures(),
		RunTime:           tc.RunTime(),
		Err:               tc.Err(),
		LogLines:          tc.LogLines(),
	}
}

// ResultFromHandle builds a result for any handle that finished running. Only
// Failed() and AssertionFailureCount() are available for handles that are not
// a *TestCase.
func ResultFromHandle(h core.Handle) Result {
	if tc, ok := h.(*TestCase); ok {
		return tc.Result()
	}

	status := TestCaseStatusPassed
	if h.Failed() || h.AssertionFailureCount() > 0 {
		status = TestCaseStatusFailed
	}

	return Result{
		Name:              h.Name(),
		Status:            status,
		Failed:            h.Failed(),
		AssertionFailures: h.AssertionFailureCount(),
	}
}

// ErrorResult is the outcome of an entry whose factory or lifecycle could not
// be driven at all.
func ErrorResult(name string, err error) Result {
	return Result{
		Name:   name,
		Status: TestCaseStatusError,
		Failed: true,
		Err:    err,
	}
}

// NotRunResult is the outcome of an entry the runner decided not to execute.
func NotRunResult(name string, reason string) Result {
	return Result{
		Name:   name,
		Status: TestCaseStatusNotRun,
		Reason: reason,
	}
}
