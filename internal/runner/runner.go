package runner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vsrinivas/ninja-test/internal/devops"
	"github.com/vsrinivas/ninja-test/internal/reporter"
	"github.com/vsrinivas/ninja-test/internal/testerror"
	"github.com/vsrinivas/ninja-test/internal/testmgr"
	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
)

type Policy struct {
	// Stop running further test cases once a test case recorded a fatal
	// assertion failure. Soft failures never stop the run.
	StopOnAssertionFailure bool
}

func DefaultPolicy() Policy {
	return Policy{StopOnAssertionFailure: true}
}

// Run is the outcome of running every entry of a suite once.
type Run struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Results   []testmgr.Result
}

// RunAndReport runs all test cases of the suite, prints the report and
// returns an error if any test case failed.
func RunAndReport(suite core.SuiteContext, policy Policy, rep *reporter.TestReporter) error {
	run, err := RunTestCases(suite, policy)
	if err != nil {
		return err
	}

	rep.PrintReport(run.ID.String(), run.Results)

	return rep.ExitError(run.Results)
}

// RunTestCases runs every entry of the suite in registration order.
func RunTestCases(suite core.SuiteContext, policy Policy) (*Run, error) {
	entries := suite.Entries()
	if len(entries) == 0 {
		return nil, fmt.Errorf("no test cases registered in suite '%s'", suite.Name())
	}

	run := &Run{
		ID:        uuid.New(),
		StartTime: time.Now(),
		Results:   make([]testmgr.Result, 0, len(entries)),
	}

	log := suite.Logger().WithField("runId", run.ID.String())
	log.Infof("Running %d test cases", len(entries))

	bail := false
	for i, entry := range entries {
		if bail {
			log.Debugf("%s %s", entry.Name, testmgr.TestCaseStatusNotRun.ColorString())
			run.Results = append(run.Results, testmgr.NotRunResult(entry.Name, "stopped after assertion failure"))
			continue
		}

		var group *devops.Group
		if suite.AzureDevops() {
			group = devops.OpenGroup(entry.Name)
		}

		log.Infof("[%d/%d] %s (started)", i+1, len(entries), entry.Name)
		result := executeTestCase(entry, log)
		run.Results = append(run.Results, result)
		log.Infof("%s %s", entry.Name, result.Status.ColorString())

		if group != nil {
			group.Close()
		}

		// Check if the test case caused a bail condition.
		bail = policy.StopOnAssertionFailure && result.AssertionFailures > 0
		if bail {
			log.Warnf("'%s' hit a fatal assertion failure, not running the remaining test cases", entry.Name)
		}
	}

	run.EndTime = time.Now()
	return run, nil
}

func executeTestCase(entry core.Entry, log logrus.FieldLogger) testmgr.Result {
	var handle core.Handle

	// Factories and lifecycles of hand-written handles are not protected by
	// the test case itself.
	err := testerror.RunCatchPanic(func() error {
		handle = entry.Factory()
		if handle == nil {
			return fmt.Errorf("factory of '%s' returned no test case", entry.Name)
		}

		handle.RunLifecycle()
		return nil
	})

	if err != nil {
		log.WithError(err).Errorf("Failed to run '%s'", entry.Name)
		return testmgr.ErrorResult(entry.Name, err)
	}

	result := testmgr.ResultFromHandle(handle)
	// The registry name is authoritative.
	result.Name = entry.Name
	return result
}
