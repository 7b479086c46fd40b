package collector

import (
	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
)

// Registry is the ordered catalog of declared test cases. It is built before
// anything runs and only read afterwards.
type Registry struct {
	env     core.Environment
	entries []testCaseMetadata
}

func NewRegistry() *Registry {
	return &Registry{}
}

// SetEnvironment sets the logger and sink that test cases created from this
// registry report into. A nil environment uses the standard logrus logger.
func (r *Registry) SetEnvironment(env core.Environment) {
	r.env = env
}

// Register appends a test case. Names are not deduplicated.
func (r *Registry) Register(factory core.Factory, name string) {
	r.RegisterTestCase(name, func(core.Environment) core.Handle {
		return factory()
	})
}

// RegisterTestCase implements core.TestRegistrar.
func (r *Registry) RegisterTestCase(name string, constructor core.Constructor) {
	r.entries = append(r.entries, testCaseMetadata{
		name:        name,
		constructor: constructor,
	})
}

// Declare registers the test cases of every registrant, in order. A
// registrant that fails to register or declares an invalid name contributes
// nothing and stops the declaration.
func (r *Registry) Declare(registrants ...core.TestRegistrant) error {
	for _, registrant := range registrants {
		testCases, err := collectTestCases(registrant)
		if err != nil {
			return err
		}

		r.entries = append(r.entries, testCases...)
	}

	return nil
}

// Entries returns the registered test cases in registration order. Every call
// of an entry's factory produces a fresh instance.
func (r *Registry) Entries() []core.Entry {
	entries := make([]core.Entry, len(r.entries))
	for i, tc := range r.entries {
		constructor := tc.constructor
		entries[i] = core.Entry{
			Name: tc.name,
			Factory: func() core.Handle {
				return constructor(r.env)
			},
		}
	}

	return entries
}

func (r *Registry) Len() int {
	return len(r.entries)
}
