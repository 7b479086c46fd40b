package core

import "fmt"

// Failure describes a single failed check.
type Failure struct {
	// Name of the test case that issued the check.
	Test string
	// Source location of the check.
	File string
	Line int
	// Textual rendering of the checked expression.
	Expression string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s:%d: %s", f.File, f.Line, f.Expression)
}

// Sink receives a record for every failed check. Implementations only need to
// write the record somewhere; they must not stop the test.
type Sink interface {
	ReportFailure(Failure)
}
