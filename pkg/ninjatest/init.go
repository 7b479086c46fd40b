// Package ninjatest is a small unit-testing harness.
//
// Test cases are declared into a Registry with Test or TestF and run by a
// runner one at a time. Inside a test case, checks come in two tiers: the
// Expect* functions record a failure and let the body continue, the Assert*
// functions additionally stop the body. TearDown always runs.
package ninjatest

import (
	"github.com/vsrinivas/ninja-test/internal/collector"
	"github.com/vsrinivas/ninja-test/internal/testmgr"
	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
	"github.com/vsrinivas/ninja-test/pkg/ninjatest/suite"
)

// T is the handle of the test case being executed.
type T = testmgr.TestCase

type Fixture = testmgr.Fixture
type BaseFixture = testmgr.BaseFixture

type Registry = collector.Registry
type Registrar = core.TestRegistrar
type Registrant = core.TestRegistrant

type Handle = core.Handle
type Factory = core.Factory
type Entry = core.Entry

type Failure = core.Failure
type Sink = core.Sink

type Suite = suite.Suite

// Creates a new suite with the given name. The command line is parsed
// immediately.
func CreateSuite(name string) *Suite {
	return suite.CreateSuite(name)
}

// Creates an empty registry.
func NewRegistry() *Registry {
	return collector.NewRegistry()
}

// Test declares a test case without a fixture, named `group.name`.
func Test(r Registrar, group, name string, body func(t *T)) {
	collector.Test(r, group, name, body)
}

// TestF declares a test case bound to fixture F, named `fixture.name`. A zero
// F is allocated for every run of the test case.
func TestF[F any, PF collector.FixturePtr[F]](r Registrar, fixture, name string, body func(t *T, f PF)) {
	collector.TestF[F, PF](r, fixture, name, body)
}

// Current returns the test case currently executing. Prefer the handle passed
// to the test body; this is for code that has no access to it.
func Current() *T {
	return testmgr.Current()
}
