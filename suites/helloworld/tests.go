package helloworld

import (
	"strings"

	"github.com/vsrinivas/ninja-test/pkg/ninjatest"
)

// GreeterFixture gives every test case its own Greeter.
type GreeterFixture struct {
	greeter *Greeter
}

func (f *GreeterFixture) SetUp(t *ninjatest.T) {
	f.greeter = NewGreeter("Hello")
	ninjatest.AssertEQ(t, f.greeter.Count(), 0)
}

func (f *GreeterFixture) TearDown(t *ninjatest.T) {
	t.Logger().Infof("Greeted %d names", f.greeter.Count())
}

// GreeterTests checks the Greeter. All of its test cases pass.
type GreeterTests struct{}

func (GreeterTests) Name() string {
	return "GreeterTests"
}

func (GreeterTests) RegisterTestCases(r ninjatest.Registrar) error {
	ninjatest.TestF[GreeterFixture](r, "GreeterFixture", "GreetsByName", func(t *ninjatest.T, f *GreeterFixture) {
		ninjatest.ExpectEQ(t, f.greeter.Greet("Ada"), "Hello, Ada!")
		ninjatest.ExpectEQ(t, f.greeter.Count(), 1)
	})

	ninjatest.TestF[GreeterFixture](r, "GreeterFixture", "GreetsTheWorld", func(t *ninjatest.T, f *GreeterFixture) {
		ninjatest.ExpectEQ(t, f.greeter.Greet("  "), "Hello, world!")
	})

	ninjatest.TestF[GreeterFixture](r, "GreeterFixture", "FreshPerCase", func(t *ninjatest.T, f *GreeterFixture) {
		// SetUp already asserted the count is zero, so nothing leaked from
		// the cases above.
		f.greeter.Greet("Grace")
		ninjatest.AssertEQ(t, f.greeter.Count(), 1)
	})

	ninjatest.Test(r, "Greeting", "Format", func(t *ninjatest.T) {
		greeting := NewGreeter("Hi").Greet("Linus")
		ninjatest.ExpectTrue(t, strings.HasPrefix(greeting, "Hi, "))
		ninjatest.ExpectTrue(t, strings.HasSuffix(greeting, "!"))
		ninjatest.ExpectGT(t, len(greeting), len("Hi, !"))
	})

	return nil
}

func expectPolite(t *ninjatest.T, greeting string) {
	ninjatest.AssertTrue(t, strings.HasPrefix(greeting, "Hello"))
	ninjatest.ExpectTrue(t, strings.HasSuffix(greeting, "!"))
}

// DemoTests shows how failures behave. Some of its test cases fail on
// purpose.
type DemoTests struct{}

func (DemoTests) Name() string {
	return "DemoTests"
}

func (DemoTests) RegisterTestCases(r ninjatest.Registrar) error {
	// Helpers can issue fatal assertions too. Wrapping the call stops this
	// test case when the helper failed.
	ninjatest.Test(r, "Demo", "CompositeHelper", func(t *ninjatest.T) {
		ninjatest.AssertNoFatalFailure(t, func() { expectPolite(t, NewGreeter("Hello").Greet("Ken")) })
	})

	// A soft failure is recorded and the body continues.
	ninjatest.Test(r, "Demo", "SoftFailure", func(t *ninjatest.T) {
		greeter := NewGreeter("Hey")
		ninjatest.ExpectEQ(t, greeter.Greet("Rob"), "Hello, Rob!")
		t.Logger().Info("This message will be shown in the failure report!")
		ninjatest.ExpectEQ(t, greeter.Count(), 1)
	})

	// A fatal assertion failure stops the body here. By default the runner
	// also stops, so the test cases registered after this one are not run.
	ninjatest.Test(r, "Demo", "FatalFailure", func(t *ninjatest.T) {
		ninjatest.AssertNE(t, NewGreeter("Hello").Greet(""), "Hello, world!")
		t.Logger().Info("This message will never be logged!")
	})

	ninjatest.Test(r, "Demo", "AfterFatalFailure", func(t *ninjatest.T) {
		t.Logger().Info("Only runs with --keep-going")
	})

	return nil
}
