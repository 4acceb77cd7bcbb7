package isoweek

import (
	"fmt"
	"iter"
)

// Inclusive tells which ends of a range are emitted. The zero value is Both.
type Inclusive int

const (
	Both Inclusive = iota
	Left
	Right
	Neither
)

func (i Inclusive) String() string {
	switch i {
	case Both:
		return "both"
	case Left:
		return "left"
	case Right:
		return "right"
	case Neither:
		return "neither"
	default:
		return fmt.Sprintf("inclusive(%d)", int(i))
	}
}

func ParseInclusive(s string) (Inclusive, error) {
	for _, i := range []Inclusive{Both, Left, Right, Neither} {
		if i.String() == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: inclusive %q, want one of both, left, right, neither", ErrArgument, s)
}

func (i Inclusive) left() bool {
	return i == Both || i == Left
}

func (i Inclusive) right() bool {
	return i == Both || i == Right
}

// Unit is an identifier that can step by whole units.
type Unit[T any] interface {
	Identifier
	Add(n int) (T, error)
	Diff(o T) (int, error)
}

// Range yields the identifiers from start to end, advancing by step units.
// The first value is start, or start+1 if the left end is excluded. The end is emitted only if
// the inclusive mode includes it and a step lands on it.
// The returned sequence is finite and may be iterated any number of times.
func Range[T Unit[T]](start, end T, step int, inclusive Inclusive) (iter.Seq[T], error) {
	if step < 1 {
		return nil, fmt.Errorf("%w: step must be >= 1, found %d", ErrArgument, step)
	}
	if inclusive < Both || inclusive > Neither {
		return nil, fmt.Errorf("%w: unknown %s", ErrArgument, inclusive)
	}
	delta, err := end.Diff(start)
	if err != nil {
		return nil, fmt.Errorf("%w: range: %w", ErrArgument, err)
	}
	if delta < 0 {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrArgument, start, end)
	}
	first, last := 0, delta
	if !inclusive.left() {
		first = 1
	}
	if !inclusive.right() {
		last = delta - 1
	}
	return func(yield func(T) bool) {
		// every value lies between start and end, so Add cannot fail
		for i := first; i <= last; i += step {
			v, _ := start.Add(i)
			if !yield(v) {
				return
			}
		}
	}, nil
}

// RangeStrings is Range yielding the canonical string forms.
func RangeStrings[T Unit[T]](start, end T, step int, inclusive Inclusive) (iter.Seq[string], error) {
	seq, err := Range(start, end, step, inclusive)
	if err != nil {
		return nil, err
	}
	return Strings(seq), nil
}

// Strings maps a sequence of identifiers to their canonical strings.
func Strings[T fmt.Stringer](seq iter.Seq[T]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for t := range seq {
			if !yield(t.String()) {
				return
			}
		}
	}
}

// ahead yields self+step, self+2*step, ... up to self+n, which are n/step values.
// It fails with ErrRange if the last value leaves the years 1 to 9999.
func ahead[T Unit[T]](self T, n, step int) (iter.Seq[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: count must be strictly positive, found %d", ErrArgument, n)
	}
	if step < 1 {
		return nil, fmt.Errorf("%w: step must be >= 1, found %d", ErrArgument, step)
	}
	count := n / step
	if _, err := self.Add(count * step); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		// the last value is in range, so are all before it
		for i := 1; i <= count; i++ {
			v, _ := self.Add(i * step)
			if !yield(v) {
				return
			}
		}
	}, nil
}

func between(v, lower, upper Identifier, inclusive Inclusive) (bool, error) {
	lo, err := Compare(lower, v)
	if err != nil {
		return false, err
	}
	hi, err := Compare(v, upper)
	if err != nil {
		return false, err
	}
	switch inclusive {
	case Both:
		return lo <= 0 && hi <= 0, nil
	case Left:
		return lo <= 0 && hi < 0, nil
	case Right:
		return lo < 0 && hi <= 0, nil
	case Neither:
		return lo < 0 && hi < 0, nil
	default:
		return false, fmt.Errorf("%w: unknown %s", ErrArgument, inclusive)
	}
}
