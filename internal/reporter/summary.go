package reporter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/vsrinivas/ninja-test/internal/testmgr"
)

type TestSummaryStatus int

const (
	TestStatusOk TestSummaryStatus = iota
	TestStatusFailed
	TestStatusError
)

func (ts TestSummaryStatus) String() string {
	switch ts {
	case TestStatusOk:
		return "OK"
	case TestStatusFailed:
		return "FAILED"
	case TestStatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (ts TestSummaryStatus) StringColor() string {
	switch ts {
	case TestStatusOk:
		return color.GreenString(ts.String())
	case TestStatusFailed:
		return color.RedString(ts.String())
	case TestStatusError:
		return color.New(color.FgRed, color.Bold).Sprint(ts.String())
	default:
		return ts.String()
	}
}

type TestSummary struct {
	total             int
	passed            int
	failed            int
	errored           int
	notRun            int
	assertionFailures int
}

func newSummary(results []testmgr.Result) TestSummary {
	var summary TestSummary

	for _, result := range results {
		summary.total++
		summary.assertionFailures += result.AssertionFailures
		switch result.Status {
		case testmgr.TestCaseStatusPassed:
			summary.passed++
		case testmgr.TestCaseStatusFailed:
			summary.failed++
		case testmgr.TestCaseStatusNotRun:
			summary.notRun++
		case testmgr.TestCaseStatusError:
			summary.errored++
		default:
			panic(fmt.Sprintf("invalid test case status for '%s': %s", result.Name, result.Status))
		}
	}

	return summary
}

func (s TestSummary) Status() TestSummaryStatus {
	if s.errored > 0 {
		return TestStatusError
	}
	if s.failed > 0 {
		return TestStatusFailed
	}
	return TestStatusOk
}

// Number of test cases that failed or errored.
func (s TestSummary) Bad() int {
	return s.failed + s.errored
}

func (s TestSummary) Summary() string {
	var out []string

	if s.failed > 0 {
		out = append(out, fmt.Sprintf("failed: %d", s.failed))
	}
	if s.errored > 0 {
		out = append(out, fmt.Sprintf("errored: %d", s.errored))
	}
	if s.assertionFailures > 0 {
		out = append(out, fmt.Sprintf("assertion failures: %d", s.assertionFailures))
	}
	if s.notRun > 0 {
		out = append(out, fmt.Sprintf("notrun: %d", s.notRun))
	}

	out = append(out, fmt.Sprintf("passed: %d", s.passed))
	out = append(out, fmt.Sprintf("total: %d", s.total))

	return strings.Join(out, "; ")
}
