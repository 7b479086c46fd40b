package core

// Environment provides the collaborators a test case reports into.
type Environment interface {
	LoggerProvider

	// Returns the sink that receives failed checks. May be nil.
	Sink() Sink
}

type SuiteContext interface {
	Named
	Environment

	// Returns all registered test cases in registration order.
	Entries() []Entry

	// Returns whether the suite has Azure DevOps integration enabled
	AzureDevops() bool
}
