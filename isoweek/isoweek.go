// Package isoweek provides the immutable identifiers Week ("2023-W01") and WeekDate ("2023-W01-1").
//
// Every identifier carries the Calendar it was created with. The calendar's offset moves the first
// day of the week away from Monday. Identifiers of different calendars never compare or subtract;
// those operations fail with ErrTypeMismatch.
//
//	cal := isoweek.NewCalendar(-2) // weeks start on Saturday
//	w := cal.WeekOf(date.Make(2023, 1, 1))
//	w.String() // "2023-W01"
package isoweek

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mazzegi/isoweek/calendar"
	"github.com/mazzegi/isoweek/pattern"
)

var (
	ErrFormat       = calendar.ErrFormat
	ErrRange        = calendar.ErrRange
	ErrTypeMismatch = calendar.ErrTypeMismatch
	ErrArgument     = calendar.ErrArgument
)

// Calendar is the configuration shared by all identifiers created from it.
type Calendar struct {
	Offset calendar.Offset
}

// Standard is the plain ISO-8601 calendar, weeks start on Monday.
var Standard = Calendar{}

func NewCalendar(offset calendar.Offset) Calendar {
	return Calendar{Offset: offset}
}

// CalendarWithDuration floors d to whole days.
func CalendarWithDuration(d time.Duration) Calendar {
	return Calendar{Offset: calendar.OffsetOf(d)}
}

func (c Calendar) String() string {
	return fmt.Sprintf("calendar(%s)", c.Offset)
}

type Kind int

const (
	KindWeek Kind = 1 + iota
	KindWeekDate
)

func (k Kind) String() string {
	switch k {
	case KindWeek:
		return "week"
	case KindWeekDate:
		return "week-date"
	default:
		return "unknown"
	}
}

// Identifier is what Week and WeekDate have in common.
type Identifier interface {
	Kind() Kind
	Offset() calendar.Offset
	String() string
	fields() []int
}

// Compare orders two identifiers of the same kind and offset. It returns -1, 0 or +1.
func Compare(a, b Identifier) (int, error) {
	if err := compatible(a, b); err != nil {
		return 0, err
	}
	return compareInts(a.fields(), b.fields()), nil
}

func compatible(a, b Identifier) error {
	if a.Kind() != b.Kind() {
		return fmt.Errorf("%w: cannot combine %s %s with %s %s", ErrTypeMismatch, a.Kind(), a, b.Kind(), b)
	}
	if a.Offset() != b.Offset() {
		return fmt.Errorf("%w: cannot combine %s with offsets %s and %s", ErrTypeMismatch, a.Kind(), a.Offset(), b.Offset())
	}
	return nil
}

func formatErr(s string, kinds ...pattern.Kind) error {
	formats := make([]string, len(kinds))
	for i, k := range kinds {
		formats[i] = k.Format()
	}
	return fmt.Errorf("%w: %q does not match %s", ErrFormat, s, strings.Join(formats, " or "))
}

// atoi is only called on substrings already matched as digits
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func compareInts(a, b []int) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
