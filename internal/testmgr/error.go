package testmgr

import "fmt"

// PhaseError is attached to a test case when one of its lifecycle phases
// panicked.
type PhaseError struct {
	Phase State
	Err   error
}

func (pe *PhaseError) Error() string {
	return fmt.Sprintf("error in %s: %v", pe.Phase, pe.Err)
}

func (pe *PhaseError) Unwrap() error {
	return pe.Err
}
