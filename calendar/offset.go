package calendar

import (
	"fmt"
	"time"

	"github.com/mazzegi/isoweek/mathx"
)

const day = 24 * time.Hour

// Offset shifts the start of the week by a whole number of days away from Monday.
// An offset of -2 makes weeks start on Saturday, +1 on Tuesday.
type Offset int

// OffsetOf converts d to days, flooring any sub-day remainder.
func OffsetOf(d time.Duration) Offset {
	return Offset(FloorDays(d))
}

// FloorDays returns the whole number of days in d, rounded towards negative infinity.
func FloorDays(d time.Duration) int {
	return int(mathx.FloorDiv(d, day))
}

func (o Offset) Days() int {
	return int(o)
}

func (o Offset) Duration() time.Duration {
	return time.Duration(o) * day
}

func (o Offset) String() string {
	return fmt.Sprintf("%+dd", int(o))
}
