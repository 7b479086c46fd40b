package testmgr

import "sync/atomic"

// The test case most recently constructed. Only meaningful while cases run
// one at a time.
var current atomic.Pointer[TestCase]

// Current returns the test case that is currently executing, or nil if none
// was constructed yet.
func Current() *TestCase {
	return current.Load()
}

func setCurrent(tc *TestCase) {
	current.Store(tc)
}
