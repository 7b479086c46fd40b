package core

// Handle is the view of a test case instance that a runner needs.
type Handle interface {
	Named

	// Runs SetUp, Run and TearDown in order. TearDown always runs.
	RunLifecycle()

	// Returns whether any check failed.
	Failed() bool

	// Returns the number of fatal assertion failures.
	AssertionFailureCount() int
}

// Factory produces a fresh test case instance every time it is called.
type Factory = func() Handle

// Constructor is a Factory that receives the environment the instance should
// log and report into.
type Constructor = func(env Environment) Handle

// Entry is a single registered test case.
type Entry struct {
	Name    string
	Factory Factory
}
