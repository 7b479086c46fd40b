package core

import (
	"fmt"
	"regexp"
	"strings"
)

var entityNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

type TestRegistrar interface {
	// Register a test case with the given name. Names are conventionally of
	// the form `Fixture.Case`, where both components are accepted by the
	// regular expression `^[a-zA-Z0-9_]+$`.
	RegisterTestCase(name string, constructor Constructor)
}

// TestRegistrant enumerates a group of test cases. Registrants are handed to
// a registry by an explicit startup routine.
type TestRegistrant interface {
	Named
	RegisterTestCases(r TestRegistrar) error
}

// ValidateEntityName checks a single name component.
func ValidateEntityName(name string, kind string) error {
	if !entityNameRegex.MatchString(name) {
		return fmt.Errorf("%s name '%s' is invalid, it must match %s", kind, name, entityNameRegex.String())
	}

	return nil
}

// ValidateTestCaseName checks a `Fixture.Case` name.
func ValidateTestCaseName(name string) error {
	fixture, testCase, ok := strings.Cut(name, ".")
	if !ok {
		return fmt.Errorf("test case name '%s' is not of the form 'Fixture.Case'", name)
	}

	if err := ValidateEntityName(fixture, "fixture"); err != nil {
		return err
	}

	return ValidateEntityName(testCase, "test case")
}
