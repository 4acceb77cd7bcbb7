package isoweek

import (
	"fmt"
	"iter"
	"time"

	"github.com/mazzegi/isoweek/calendar"
	"github.com/mazzegi/isoweek/date"
	"github.com/mazzegi/isoweek/pattern"
)

// WeekDate identifies one day by ISO week and weekday, formatted as "YYYY-WNN-D".
// Weekday 1 is the first day of the calendar's week. The zero value is not a valid week-date.
type WeekDate struct {
	year    int
	week    int
	weekday int
	cal     Calendar
}

func (c Calendar) NewWeekDate(year, week, weekday int) (WeekDate, error) {
	if err := calendar.ValidWeek(year, week); err != nil {
		return WeekDate{}, fmt.Errorf("new week-date: %w", err)
	}
	if err := calendar.ValidWeekday(weekday); err != nil {
		return WeekDate{}, fmt.Errorf("new week-date: %w", err)
	}
	return WeekDate{year: year, week: week, weekday: weekday, cal: c}, nil
}

// ParseWeekDate parses the standard form "YYYY-WNN-D".
func (c Calendar) ParseWeekDate(s string) (WeekDate, error) {
	if !pattern.IsWeekDate(s) {
		return WeekDate{}, formatErr(s, pattern.WeekDate)
	}
	return c.NewWeekDate(atoi(s[0:4]), atoi(s[6:8]), atoi(s[9:10]))
}

// ParseWeekDateCompact parses the compact form "YYYYWNND".
func (c Calendar) ParseWeekDateCompact(s string) (WeekDate, error) {
	if !pattern.IsWeekDateCompact(s) {
		return WeekDate{}, formatErr(s, pattern.WeekDateCompact)
	}
	return c.NewWeekDate(atoi(s[0:4]), atoi(s[5:7]), atoi(s[7:8]))
}

// ParseAnyWeekDate accepts both the standard and the compact form.
func (c Calendar) ParseAnyWeekDate(s string) (WeekDate, error) {
	switch pattern.Classify(s) {
	case pattern.WeekDate:
		return c.ParseWeekDate(s)
	case pattern.WeekDateCompact:
		return c.ParseWeekDateCompact(s)
	default:
		return WeekDate{}, formatErr(s, pattern.WeekDate, pattern.WeekDateCompact)
	}
}

func (c Calendar) MustParseWeekDate(s string) WeekDate {
	wd, err := c.ParseAnyWeekDate(s)
	if err != nil {
		panic(fmt.Sprintf("parse %q as week-date: %v", s, err))
	}
	return wd
}

func (c Calendar) WeekDateOf(d date.Date) WeekDate {
	y, w, wd := calendar.FromDate(d, c.Offset)
	return WeekDate{year: y, week: w, weekday: wd, cal: c}
}

func (c Calendar) WeekDateOfTime(t time.Time) WeekDate {
	return c.WeekDateOf(date.FromTime(t))
}

func NewWeekDate(year, week, weekday int) (WeekDate, error) {
	return Standard.NewWeekDate(year, week, weekday)
}

func ParseWeekDate(s string) (WeekDate, error) {
	return Standard.ParseWeekDate(s)
}

func ParseWeekDateCompact(s string) (WeekDate, error) {
	return Standard.ParseWeekDateCompact(s)
}

func ParseAnyWeekDate(s string) (WeekDate, error) {
	return Standard.ParseAnyWeekDate(s)
}

func MustParseWeekDate(s string) WeekDate {
	return Standard.MustParseWeekDate(s)
}

func WeekDateOf(d date.Date) WeekDate {
	return Standard.WeekDateOf(d)
}

func WeekDateOfTime(t time.Time) WeekDate {
	return Standard.WeekDateOfTime(t)
}

func (wd WeekDate) Kind() Kind {
	return KindWeekDate
}

func (wd WeekDate) Year() int {
	return wd.year
}

func (wd WeekDate) Week() int {
	return wd.week
}

func (wd WeekDate) Weekday() int {
	return wd.weekday
}

func (wd WeekDate) Calendar() Calendar {
	return wd.cal
}

func (wd WeekDate) Offset() calendar.Offset {
	return wd.cal.Offset
}

func (wd WeekDate) IsZero() bool {
	return wd == (WeekDate{})
}

func (wd WeekDate) Quarter() int {
	return wd.ISOWeek().Quarter()
}

// ISOWeek returns the week wd belongs to.
func (wd WeekDate) ISOWeek() Week {
	return Week{year: wd.year, week: wd.week, cal: wd.cal}
}

func (wd WeekDate) Values() (year, week, weekday int) {
	return wd.year, wd.week, wd.weekday
}

func (wd WeekDate) fields() []int {
	return []int{wd.year, wd.week, wd.weekday}
}

func (wd WeekDate) String() string {
	return fmt.Sprintf("%04d-W%02d-%d", wd.year, wd.week, wd.weekday)
}

func (wd WeekDate) Compact() string {
	return fmt.Sprintf("%04dW%02d%d", wd.year, wd.week, wd.weekday)
}

func (wd WeekDate) Date() date.Date {
	return calendar.DateOf(wd.year, wd.week, wd.weekday, wd.cal.Offset)
}

// Time returns midnight of the day.
func (wd WeekDate) Time() time.Time {
	return wd.Date().Time()
}

// Add moves n days, n may be negative. It fails with ErrRange if the result leaves the years 1 to 9999.
func (wd WeekDate) Add(n int) (WeekDate, error) {
	r := wd.cal.WeekDateOf(wd.Date().AddDays(n))
	if err := calendar.ValidYear(r.year); err != nil {
		return WeekDate{}, fmt.Errorf("move %s: %w", wd, err)
	}
	return r, nil
}

// AddDuration moves by d, floored to whole days.
func (wd WeekDate) AddDuration(d time.Duration) (WeekDate, error) {
	return wd.Add(calendar.FloorDays(d))
}

func (wd WeekDate) Sub(n int) (WeekDate, error) {
	return wd.Add(-n)
}

func (wd WeekDate) SubDuration(d time.Duration) (WeekDate, error) {
	return wd.AddDuration(-d)
}

func (wd WeekDate) shift(d Delta) (WeekDate, error) {
	if d.isDur {
		return wd.AddDuration(d.duration)
	}
	return wd.Add(d.units)
}

// AddEach returns one week-date per delta, in the same order. It fails on the first delta leaving the range.
func (wd WeekDate) AddEach(ds ...Delta) ([]WeekDate, error) {
	return eachOf(wd.shift, ds)
}

// SubEach returns one week-date per delta, in the same order.
func (wd WeekDate) SubEach(ds ...Delta) ([]WeekDate, error) {
	return eachOf(wd.shift, negated(ds))
}

// Diff returns the number of days from o to wd.
func (wd WeekDate) Diff(o WeekDate) (int, error) {
	if err := compatible(wd, o); err != nil {
		return 0, err
	}
	return date.DaysBetween(o.Date(), wd.Date()), nil
}

func (wd WeekDate) Next() (WeekDate, error) {
	return wd.Add(1)
}

func (wd WeekDate) Previous() (WeekDate, error) {
	return wd.Add(-1)
}

func (wd WeekDate) Compare(o WeekDate) (int, error) {
	return Compare(wd, o)
}

func (wd WeekDate) Equal(o WeekDate) bool {
	return wd == o
}

func (wd WeekDate) Before(o WeekDate) (bool, error) {
	c, err := wd.Compare(o)
	return c < 0, err
}

func (wd WeekDate) After(o WeekDate) (bool, error) {
	c, err := wd.Compare(o)
	return c > 0, err
}

func (wd WeekDate) Between(lower, upper WeekDate, inclusive Inclusive) (bool, error) {
	return between(wd, lower, upper, inclusive)
}

// Daysout yields wd+step, wd+2*step, ... up to wd+n.
func (wd WeekDate) Daysout(n, step int) (iter.Seq[WeekDate], error) {
	return ahead(wd, n, step)
}

func (wd WeekDate) DaysoutStrings(n, step int) (iter.Seq[string], error) {
	seq, err := wd.Daysout(n, step)
	if err != nil {
		return nil, err
	}
	return Strings(seq), nil
}

func (wd WeekDate) WithYear(year int) (WeekDate, error) {
	return wd.cal.NewWeekDate(year, wd.week, wd.weekday)
}

func (wd WeekDate) WithWeek(week int) (WeekDate, error) {
	return wd.cal.NewWeekDate(wd.year, week, wd.weekday)
}

func (wd WeekDate) WithWeekday(weekday int) (WeekDate, error) {
	return wd.cal.NewWeekDate(wd.year, wd.week, weekday)
}
