package ninjatest

import (
	"cmp"

	"github.com/vsrinivas/ninja-test/internal/callsite"
)

// Fatal assertions. On failure they record the failure like the matching
// Expect function, count an assertion failure and stop the calling SetUp, Run
// or TearDown. They must be called from the goroutine running the test case.

func fatal(t *T, ok bool) {
	if !ok {
		t.AddAssertionFailure()
		t.StopExecution()
	}
}

func AssertEQ[V comparable](t *T, a, b V) {
	fatal(t, check(t, a == b, "AssertEQ", callsite.OpEqual))
}

func AssertNE[V comparable](t *T, a, b V) {
	fatal(t, check(t, a != b, "AssertNE", callsite.OpNotEqual))
}

func AssertGT[V cmp.Ordered](t *T, a, b V) {
	fatal(t, check(t, a > b, "AssertGT", callsite.OpGreater))
}

func AssertLT[V cmp.Ordered](t *T, a, b V) {
	fatal(t, check(t, a < b, "AssertLT", callsite.OpLess))
}

func AssertGE[V cmp.Ordered](t *T, a, b V) {
	fatal(t, check(t, a >= b, "AssertGE", callsite.OpGreaterOrEqual))
}

func AssertLE[V cmp.Ordered](t *T, a, b V) {
	fatal(t, check(t, a <= b, "AssertLE", callsite.OpLessOrEqual))
}

func AssertTrue(t *T, v bool) {
	fatal(t, check(t, v, "AssertTrue", callsite.OpTrue))
}

func AssertFalse(t *T, v bool) {
	fatal(t, check(t, !v, "AssertFalse", callsite.OpFalse))
}

// AssertNoFatalFailure runs fn, typically a helper issuing its own fatal
// assertions, and stops the caller if fn hit one. The wrapper counts as one
// more assertion failure, reported at its own call site.
func AssertNoFatalFailure(t *T, fn func()) {
	loc := callsite.Caller(1)
	t.NoFatalFailure(loc.File, loc.Line, callsite.Describe(loc, "AssertNoFatalFailure", callsite.OpNoFatalFailure), fn)
}
