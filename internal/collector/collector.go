package collector

import (
	"fmt"

	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
)

type testCaseMetadata struct {
	name        string
	constructor core.Constructor
}

// Collects the test cases of a registrant and validates their names. Nothing
// is returned if any name is invalid.
func collectTestCases(r core.TestRegistrant) ([]testCaseMetadata, error) {
	collector := testCaseCollector{
		testCases: make([]testCaseMetadata, 0),
	}

	// Run the registration function to collect the test cases.
	err := r.RegisterTestCases(&collector)
	if err != nil {
		return nil, fmt.Errorf("failed to register test cases of '%s': %w", r.Name(), err)
	}

	for _, testCase := range collector.testCases {
		err := core.ValidateTestCaseName(testCase.name)
		if err != nil {
			return nil, fmt.Errorf("invalid test case in '%s': %w", r.Name(), err)
		}
	}

	return collector.testCases, nil
}

type testCaseCollector struct {
	testCases []testCaseMetadata
}

// RegisterTestCase implements core.TestRegistrar.
func (c *testCaseCollector) RegisterTestCase(name string, constructor core.Constructor) {
	c.testCases = append(c.testCases, testCaseMetadata{
		name:        name,
		constructor: constructor,
	})
}
