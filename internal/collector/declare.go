package collector

import (
	"github.com/vsrinivas/ninja-test/internal/testmgr"
	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
)

// FixturePtr is satisfied by *F when *F implements testmgr.Fixture.
type FixturePtr[F any] interface {
	*F
	testmgr.Fixture
}

// Test declares a test case without a fixture, named `group.name`.
func Test(r core.TestRegistrar, group, name string, body func(t *testmgr.TestCase)) {
	TestF[testmgr.BaseFixture](r, group, name, func(t *testmgr.TestCase, _ *testmgr.BaseFixture) {
		body(t)
	})
}

// TestF declares a test case bound to fixture F, named `fixture.name`. Each
// instance gets a zero F whose SetUp and TearDown surround body.
func TestF[F any, PF FixturePtr[F]](r core.TestRegistrar, fixture, name string, body func(t *testmgr.TestCase, f PF)) {
	fullName := fixture + "." + name

	r.RegisterTestCase(fullName, func(env core.Environment) core.Handle {
		f := PF(new(F))
		return testmgr.New(fullName, env, testmgr.Hooks{
			SetUp:    f.SetUp,
			Run:      func(t *testmgr.TestCase) { body(t, f) },
			TearDown: f.TearDown,
		})
	})
}
