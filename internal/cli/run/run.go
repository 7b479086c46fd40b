package run

import (
	"github.com/vsrinivas/ninja-test/internal/reporter"
	"github.com/vsrinivas/ninja-test/internal/runner"
	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
)

type Cmd struct {
	KeepGoing bool `short:"k" help:"Keep running the remaining test cases after a fatal assertion failure"`
	Width     int  `short:"w" help:"Width of the final report, defaults to the terminal width"`
}

func (cmd *Cmd) Policy() runner.Policy {
	policy := runner.DefaultPolicy()
	policy.StopOnAssertionFailure = !cmd.KeepGoing
	return policy
}

func (cmd *Cmd) Run(suite core.SuiteContext) error {
	log := suite.Logger()
	log.Infof("Running suite '%s'", suite.Name())

	rep := reporter.NewTestReporter()
	rep.SetWidth(cmd.Width)

	return runner.RunAndReport(suite, cmd.Policy(), rep)
}
