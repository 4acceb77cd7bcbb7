package isoweek

import (
	"fmt"
	"time"
)

// Delta is one element of a sequence passed to AddEach or SubEach: either a whole number of
// units (weeks for Week, days for WeekDate) or a duration, floored to whole days.
type Delta struct {
	units    int
	duration time.Duration
	isDur    bool
}

func Units(n int) Delta {
	return Delta{units: n}
}

func Duration(d time.Duration) Delta {
	return Delta{duration: d, isDur: true}
}

func (d Delta) negate() Delta {
	return Delta{units: -d.units, duration: -d.duration, isDur: d.isDur}
}

func (d Delta) String() string {
	if d.isDur {
		return d.duration.String()
	}
	return fmt.Sprintf("%+d", d.units)
}

func negated(ds []Delta) []Delta {
	nds := make([]Delta, len(ds))
	for i, d := range ds {
		nds[i] = d.negate()
	}
	return nds
}

func eachOf[T any](shift func(Delta) (T, error), ds []Delta) ([]T, error) {
	ts := make([]T, len(ds))
	for i, d := range ds {
		t, err := shift(d)
		if err != nil {
			return nil, fmt.Errorf("delta %d (%s): %w", i, d, err)
		}
		ts[i] = t
	}
	return ts, nil
}
