package core

import "testing"

func TestValidateTestCaseName(t *testing.T) {
	valid := []string{"Fixture.Case", "a_b.C1", "X.y_z_0"}
	for _, name := range valid {
		if err := ValidateTestCaseName(name); err != nil {
			t.Errorf("expected '%s' to be valid, got %v", name, err)
		}
	}

	invalid := []string{"NoDot", ".Case", "Fixture.", "Fix ture.Case", "Fixture.Ca-se", "A.B.C"}
	for _, name := range invalid {
		if err := ValidateTestCaseName(name); err == nil {
			t.Errorf("expected '%s' to be invalid", name)
		}
	}
}

func TestFailureString(t *testing.T) {
	f := Failure{Test: "A.B", File: "a_test.go", Line: 3, Expression: "x == y"}
	if got := f.String(); got != "a_test.go:3: x == y" {
		t.Errorf("unexpected string: %s", got)
	}
}
