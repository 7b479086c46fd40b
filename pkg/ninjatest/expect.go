package ninjatest

import (
	"cmp"

	"github.com/vsrinivas/ninja-test/internal/callsite"
)

// Every exported check calls check directly, so the call site is two frames
// up. The location is only looked up for failing checks.
func check(t *T, condition bool, fn string, op callsite.Op) bool {
	if condition {
		return t.Check(true, "", 0, "")
	}

	loc := callsite.Caller(2)
	return t.Check(false, loc.File, loc.Line, callsite.Describe(loc, fn, op))
}

func ExpectEQ[V comparable](t *T, a, b V) bool {
	return check(t, a == b, "ExpectEQ", callsite.OpEqual)
}

func ExpectNE[V comparable](t *T, a, b V) bool {
	return check(t, a != b, "ExpectNE", callsite.OpNotEqual)
}

func ExpectGT[V cmp.Ordered](t *T, a, b V) bool {
	return check(t, a > b, "ExpectGT", callsite.OpGreater)
}

func ExpectLT[V cmp.Ordered](t *T, a, b V) bool {
	return check(t, a < b, "ExpectLT", callsite.OpLess)
}

func ExpectGE[V cmp.Ordered](t *T, a, b V) bool {
	return check(t, a >= b, "ExpectGE", callsite.OpGreaterOrEqual)
}

func ExpectLE[V cmp.Ordered](t *T, a, b V) bool {
	return check(t, a <= b, "ExpectLE", callsite.OpLessOrEqual)
}

func ExpectTrue(t *T, v bool) bool {
	return check(t, v, "ExpectTrue", callsite.OpTrue)
}

func ExpectFalse(t *T, v bool) bool {
	return check(t, !v, "ExpectFalse", callsite.OpFalse)
}
