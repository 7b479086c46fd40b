package testerror

import (
	"fmt"
	"runtime/debug"
)

type PanicError struct {
	any
	Stack []byte
}

func NewPanicError(any any, stack []byte) PanicError {
	return PanicError{
		any:   any,
		Stack: stack,
	}
}

func (pe PanicError) Error() string {
	return fmt.Sprintf("panic occurred: %v", pe.any)
}

// Value returns the value the code panicked with.
func (pe PanicError) Value() any {
	return pe.any
}

// RunCatchPanic calls f and converts a panic into a PanicError carrying the
// stack of the panicking goroutine. A PanicError that is re-panicked is
// returned unchanged.
func RunCatchPanic(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(PanicError); ok {
				err = pe
				return
			}
			err = NewPanicError(r, debug.Stack())
		}
	}()

	return f()
}
