package suite

import (
	"fmt"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/vsrinivas/ninja-test/internal/cli"
	"github.com/vsrinivas/ninja-test/internal/collector"
	"github.com/vsrinivas/ninja-test/internal/devops"
	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
)

type Suite struct {
	name        string
	ctx         *kong.Context
	Log         *logrus.Logger
	azureDevops bool
	registrants []core.TestRegistrant
	registry    *collector.Registry
}

// CreateSuite parses the command line and creates an empty suite.
func CreateSuite(name string) *Suite {
	name = fmt.Sprintf("ninjatest-%s", name)
	ctx, global := cli.ParseCommandLine(name)

	s := newSuite(name, global.Verbosity, global.AzureDevops)
	s.ctx = ctx
	return s
}

func newSuite(name string, level logrus.Level, azureDevops bool) *Suite {
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors: true,
	})

	logger.Infof("Creating suite '%s'", name)

	s := &Suite{
		name:        name,
		Log:         logger,
		azureDevops: azureDevops,
		registry:    collector.NewRegistry(),
	}
	s.registry.SetEnvironment(s)
	return s
}

// Run the suite
func (s *Suite) Run() {
	if s.ctx == nil {
		s.Log.Fatalf("Suite '%s' not initialized", s.name)
	}

	s.Log.Infof("Running suite '%s' - %d test cases collected.", s.name, s.registry.Len())
	s.ctx.BindTo(s, (*core.SuiteContext)(nil))
	s.reportExitStatus(s.ctx.Run())
}

// Adds the test cases of a registrant to the suite
func (s *Suite) AddRegistrant(registrant core.TestRegistrant) {
	if slices.ContainsFunc(s.registrants, func(r core.TestRegistrant) bool {
		return r.Name() == registrant.Name()
	}) {
		s.Log.Fatalf("Registrant '%s' already exists", registrant.Name())
	}

	before := s.registry.Len()
	if err := s.registry.Declare(registrant); err != nil {
		s.Log.WithError(err).Fatalf("Failed to register '%s'", registrant.Name())
	}

	s.Log.Debugf("Registered %d test cases from '%s'", s.registry.Len()-before, registrant.Name())
	s.registrants = append(s.registrants, registrant)
}

// Returns the registry test cases can be declared into directly.
func (s *Suite) Registry() *collector.Registry {
	return s.registry
}

// Returns the name of the suite
func (s *Suite) Name() string {
	return s.name
}

func (s *Suite) Entries() []core.Entry {
	return s.registry.Entries()
}

func (s *Suite) AzureDevops() bool {
	return s.azureDevops
}

func (s *Suite) Logger() *logrus.Logger {
	return s.Log
}

// Failed checks are logged by every test case already. With Azure DevOps
// integration they are also surfaced as pipeline errors.
func (s *Suite) Sink() core.Sink {
	if s.azureDevops {
		return devops.FailureSink{}
	}

	return nil
}
