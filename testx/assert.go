package testx

import (
	"testing"

	"golang.org/x/exp/constraints"
)

func AssertInRange[T constraints.Ordered](t *testing.T, val, lower, upper T) {
	t.Helper()
	if val >= lower && val <= upper {
		return
	}
	t.Fatalf("%v not in range [%v, %v]", val, lower, upper)
}

// AssertPanics fails unless fn panics
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expect panic; got none")
		}
	}()
	fn()
}
