package mathx

import (
	"golang.org/x/exp/constraints"
)

// FloorDiv divides rounding towards negative infinity. b must not be zero.
func FloorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
