package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/vsrinivas/ninja-test/internal/testmgr"
)

// Indentation of details printed under a test case title.
const indent = "    "

type TestReporter struct {
	out   io.Writer
	width int
}

// NewTestReporter creates a reporter that prints to stdout, sized to the
// terminal.
func NewTestReporter() *TestReporter {
	return &TestReporter{
		out:   os.Stdout,
		width: termWidth(),
	}
}

func (r *TestReporter) SetOutput(w io.Writer) {
	r.out = w
}

func (r *TestReporter) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// PrintReport prints the details of every failed or errored test case, the
// test cases that were not run, and a one line summary.
func (r *TestReporter) PrintReport(runID string, results []testmgr.Result) {
	summary := newSummary(results)

	var notRun []testmgr.Result
	for _, result := range results {
		if result.Status.NotRun() {
			notRun = append(notRun, result)
			continue
		}

		if !result.Status.IsBad() {
			continue
		}

		printSeparatorWithTitle(r.out, r.width, fmt.Sprintf("%s: %s", result.Status.String(), result.Name))
		if result.Err != nil {
			fmt.Fprintf(r.out, "%serror: %v\n", indent, result.Err)
		}

		if result.AssertionFailures > 0 {
			fmt.Fprintf(r.out, "%sassertion failures: %d\n", indent, result.AssertionFailures)
		}

		if len(result.LogLines) > 0 {
			fmt.Fprintf(r.out, "%scollected logs:\n", indent)
			for _, line := range result.LogLines {
				fmt.Fprintf(r.out, "%s%s\n", indent, r.clean(line))
			}
		}
	}

	if len(notRun) > 0 {
		printSeparatorWithTitle(r.out, r.width, testmgr.TestCaseStatusNotRun.String())
		r.printNotRun(notRun)
	}

	printSeparator(r.out, r.width)
	fmt.Fprintf(r.out, "Run ID: %s\n", runID)
	fmt.Fprintf(r.out, "TEST RESULT: %s. %s\n", summary.Status().StringColor(), summary.Summary())
}

// ExitError returns an error if any test case failed or errored.
func (r *TestReporter) ExitError(results []testmgr.Result) error {
	summary := newSummary(results)

	if bad := summary.Bad(); bad > 0 {
		return fmt.Errorf("test run finished with %d failed test cases", bad)
	}

	return nil
}

// Prints the names of the test cases that were not run, grouped by the reason
// they were skipped. Reasons keep the order in which they first appear.
func (r *TestReporter) printNotRun(results []testmgr.Result) {
	var reasons []string
	names := make(map[string][]string)
	for _, result := range results {
		reason := result.Reason
		if reason == "" {
			reason = "no reason given"
		}

		if _, ok := names[reason]; !ok {
			reasons = append(reasons, reason)
		}
		names[reason] = append(names[reason], result.Name)
	}

	for _, reason := range reasons {
		fmt.Fprintf(r.out, "%s%s:\n", indent, reason)
		for _, line := range simpleWordWrap(strings.Join(names[reason], " "), r.width-2*len(indent)) {
			fmt.Fprintf(r.out, "%s%s%s\n", indent, indent, line)
		}
	}
}

func (r *TestReporter) clean(line string) string {
	if color.NoColor {
		return ansiCleaner.ReplaceAllString(line, "")
	}
	return line
}
