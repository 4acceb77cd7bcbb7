// Package date provides a day-resolution proleptic Gregorian Date.
// It has no notion of time zones or clock times: a Date is always midnight in a fixed zero-offset zone.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Weekday is the ISO weekday, Monday=1 .. Sunday=7
type Weekday int

const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (wd Weekday) Abbreviate() string {
	switch wd {
	case Monday:
		return "Mon"
	case Tuesday:
		return "Tue"
	case Wednesday:
		return "Wed"
	case Thursday:
		return "Thu"
	case Friday:
		return "Fri"
	case Saturday:
		return "Sat"
	case Sunday:
		return "Sun"
	default:
		return ""
	}
}

var loc = time.FixedZone("default", 0)

// unixEpochOrdinal is the ordinal of 1970-01-01, where 0001-01-01 has ordinal 1
const unixEpochOrdinal = 719163

const secondsPerDay = 24 * 60 * 60

func Today() Date {
	return FromTime(time.Now())
}

// FromTime truncates t to its calendar day, as seen on t's own wall clock.
func FromTime(t time.Time) Date {
	return Date{
		t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc),
	}
}

type Date struct {
	t time.Time
}

func Make(year int, month time.Month, day int) Date {
	return Date{
		t: time.Date(year, month, day, 0, 0, 0, 0, loc),
	}
}

const CanonicalDate = "2006-01-02"

var parseLayouts = []string{
	CanonicalDate,
	time.RFC3339Nano,
	"02.01.2006",
}

func Parse(s string) (Date, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return Date{}, fmt.Errorf("cannot parse %q in any layout of %v", s, parseLayouts)
}

func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("parse %q as date: %v", s, err))
	}
	return d
}

func (d Date) String() string {
	return d.t.Format(CanonicalDate)
}

// Time returns midnight of d in a zero-offset zone
func (d Date) Time() time.Time {
	return d.t
}

// Ordinal returns the number of days since 0000-12-31, so that 0001-01-01 is day 1.
func (d Date) Ordinal() int {
	return int(d.t.Unix()/secondsPerDay) + unixEpochOrdinal
}

func (d Date) Year() int {
	return d.t.Year()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) Day() int {
	return d.t.Day()
}

func (d Date) ISOWeekday() Weekday {
	wd := d.t.Weekday()
	switch wd {
	case time.Sunday:
		return Sunday
	default:
		return Weekday(wd)
	}
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Equal(od Date) bool {
	return d.t.Equal(od.t)
}

func (d Date) Before(od Date) bool {
	return d.t.Before(od.t)
}

func (d Date) After(od Date) bool {
	return d.t.After(od.t)
}

func (d Date) BetweenInclusive(from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

func (d Date) AddDays(days int) Date {
	return FromTime(d.t.AddDate(0, 0, days))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	dt, err := Parse(s)
	if err != nil {
		return fmt.Errorf("parse-date %q: %w", s, err)
	}
	*d = dt
	return nil
}

// DaysBetween returns the signed number of days from "from" to "to".
func DaysBetween(from Date, to Date) int {
	return to.Ordinal() - from.Ordinal()
}
