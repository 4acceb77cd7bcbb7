package isoweek

import (
	"fmt"
	"iter"
	"time"

	"github.com/mazzegi/isoweek/calendar"
	"github.com/mazzegi/isoweek/date"
	"github.com/mazzegi/isoweek/pattern"
)

// Week identifies one ISO week of a Calendar, formatted as "YYYY-WNN".
// The zero value is not a valid week.
type Week struct {
	year int
	week int
	cal  Calendar
}

func (c Calendar) NewWeek(year, week int) (Week, error) {
	if err := calendar.ValidWeek(year, week); err != nil {
		return Week{}, fmt.Errorf("new week: %w", err)
	}
	return Week{year: year, week: week, cal: c}, nil
}

// ParseWeek parses the standard form "YYYY-WNN".
func (c Calendar) ParseWeek(s string) (Week, error) {
	if !pattern.IsWeek(s) {
		return Week{}, formatErr(s, pattern.Week)
	}
	return c.NewWeek(atoi(s[0:4]), atoi(s[6:8]))
}

// ParseWeekCompact parses the compact form "YYYYWNN".
func (c Calendar) ParseWeekCompact(s string) (Week, error) {
	if !pattern.IsWeekCompact(s) {
		return Week{}, formatErr(s, pattern.WeekCompact)
	}
	return c.NewWeek(atoi(s[0:4]), atoi(s[5:7]))
}

// ParseAnyWeek accepts both the standard and the compact form.
func (c Calendar) ParseAnyWeek(s string) (Week, error) {
	switch pattern.Classify(s) {
	case pattern.Week:
		return c.ParseWeek(s)
	case pattern.WeekCompact:
		return c.ParseWeekCompact(s)
	default:
		return Week{}, formatErr(s, pattern.Week, pattern.WeekCompact)
	}
}

func (c Calendar) MustParseWeek(s string) Week {
	w, err := c.ParseAnyWeek(s)
	if err != nil {
		panic(fmt.Sprintf("parse %q as week: %v", s, err))
	}
	return w
}

// WeekOf returns the week containing d.
func (c Calendar) WeekOf(d date.Date) Week {
	y, w, _ := calendar.FromDate(d, c.Offset)
	return Week{year: y, week: w, cal: c}
}

// WeekOfTime returns the week containing the calendar day of t.
func (c Calendar) WeekOfTime(t time.Time) Week {
	return c.WeekOf(date.FromTime(t))
}

func NewWeek(year, week int) (Week, error) {
	return Standard.NewWeek(year, week)
}

func ParseWeek(s string) (Week, error) {
	return Standard.ParseWeek(s)
}

func ParseWeekCompact(s string) (Week, error) {
	return Standard.ParseWeekCompact(s)
}

func ParseAnyWeek(s string) (Week, error) {
	return Standard.ParseAnyWeek(s)
}

func MustParseWeek(s string) Week {
	return Standard.MustParseWeek(s)
}

func WeekOf(d date.Date) Week {
	return Standard.WeekOf(d)
}

func WeekOfTime(t time.Time) Week {
	return Standard.WeekOfTime(t)
}

func (w Week) Kind() Kind {
	return KindWeek
}

func (w Week) Year() int {
	return w.year
}

func (w Week) Week() int {
	return w.week
}

func (w Week) Calendar() Calendar {
	return w.cal
}

func (w Week) Offset() calendar.Offset {
	return w.cal.Offset
}

func (w Week) IsZero() bool {
	return w == (Week{})
}

// Quarter is 1..4, the last quarter holds weeks 40 to 52 or 53.
func (w Week) Quarter() int {
	return min((w.week-1)/13+1, 4)
}

func (w Week) Values() (year, week int) {
	return w.year, w.week
}

func (w Week) fields() []int {
	return []int{w.year, w.week}
}

func (w Week) String() string {
	return fmt.Sprintf("%04d-W%02d", w.year, w.week)
}

func (w Week) Compact() string {
	return fmt.Sprintf("%04dW%02d", w.year, w.week)
}

func (w Week) first() date.Date {
	return calendar.DateOf(w.year, w.week, 1, w.cal.Offset)
}

// Date returns the weekday-th day of the week, weekday 1 being the first day of the offset week.
func (w Week) Date(weekday int) (date.Date, error) {
	if err := calendar.ValidWeekday(weekday); err != nil {
		return date.Date{}, fmt.Errorf("date of %s: %w", w, err)
	}
	return calendar.DateOf(w.year, w.week, weekday, w.cal.Offset), nil
}

// Nth is Date, named after its position in Days.
func (w Week) Nth(n int) (date.Date, error) {
	return w.Date(n)
}

// Time returns midnight of the weekday-th day.
func (w Week) Time(weekday int) (time.Time, error) {
	d, err := w.Date(weekday)
	if err != nil {
		return time.Time{}, err
	}
	return d.Time(), nil
}

// Days returns the seven dates of the week in order.
func (w Week) Days() []date.Date {
	first := w.first()
	ds := make([]date.Date, 7)
	for i := range ds {
		ds[i] = first.AddDays(i)
	}
	return ds
}

// WeekDate returns the weekday-th day of w as WeekDate.
func (w Week) WeekDate(weekday int) (WeekDate, error) {
	return w.cal.NewWeekDate(w.year, w.week, weekday)
}

// Add moves n weeks, n may be negative. It fails with ErrRange if the result leaves the years 1 to 9999.
func (w Week) Add(n int) (Week, error) {
	return w.landIn(w.first().AddDays(7 * n))
}

// AddDuration moves the first day of w by d, floored to whole days, and returns the week it lands in.
func (w Week) AddDuration(d time.Duration) (Week, error) {
	return w.landIn(w.first().AddDays(calendar.FloorDays(d)))
}

func (w Week) landIn(d date.Date) (Week, error) {
	r := w.cal.WeekOf(d)
	if err := calendar.ValidYear(r.year); err != nil {
		return Week{}, fmt.Errorf("move %s: %w", w, err)
	}
	return r, nil
}

func (w Week) Sub(n int) (Week, error) {
	return w.Add(-n)
}

func (w Week) SubDuration(d time.Duration) (Week, error) {
	return w.AddDuration(-d)
}

func (w Week) shift(d Delta) (Week, error) {
	if d.isDur {
		return w.AddDuration(d.duration)
	}
	return w.Add(d.units)
}

// AddEach returns one week per delta, in the same order. It fails on the first delta leaving the range.
func (w Week) AddEach(ds ...Delta) ([]Week, error) {
	return eachOf(w.shift, ds)
}

// SubEach returns one week per delta, in the same order.
func (w Week) SubEach(ds ...Delta) ([]Week, error) {
	return eachOf(w.shift, negated(ds))
}

// Diff returns the number of weeks from o to w.
func (w Week) Diff(o Week) (int, error) {
	if err := compatible(w, o); err != nil {
		return 0, err
	}
	return date.DaysBetween(o.first(), w.first()) / 7, nil
}

// Next is w.Add(1). It never changes w.
func (w Week) Next() (Week, error) {
	return w.Add(1)
}

func (w Week) Previous() (Week, error) {
	return w.Add(-1)
}

// Compare returns -1, 0 or +1. It fails for weeks of different offsets.
func (w Week) Compare(o Week) (int, error) {
	return Compare(w, o)
}

// Equal reports whether w and o are the same week of the same calendar.
func (w Week) Equal(o Week) bool {
	return w == o
}

func (w Week) Before(o Week) (bool, error) {
	c, err := w.Compare(o)
	return c < 0, err
}

func (w Week) After(o Week) (bool, error) {
	c, err := w.Compare(o)
	return c > 0, err
}

func (w Week) Between(lower, upper Week, inclusive Inclusive) (bool, error) {
	return between(w, lower, upper, inclusive)
}

// Contains reports whether d is one of the seven days of w.
func (w Week) Contains(d date.Date) bool {
	first := w.first()
	return d.BetweenInclusive(first, first.AddDays(6))
}

func (w Week) ContainsTime(t time.Time) bool {
	return w.Contains(date.FromTime(t))
}

// ContainsWeek is true only for the very same week of the same calendar.
func (w Week) ContainsWeek(o Week) bool {
	return w == o
}

// ContainsWeekDate reports whether the day addressed by wd lies within w.
func (w Week) ContainsWeekDate(wd WeekDate) bool {
	return w.Contains(wd.Date())
}

// ContainsString parses s as week or week-date of w's calendar, in standard or compact form.
func (w Week) ContainsString(s string) (bool, error) {
	switch pattern.Classify(s) {
	case pattern.Week, pattern.WeekCompact:
		o, err := w.cal.ParseAnyWeek(s)
		if err != nil {
			return false, err
		}
		return w.ContainsWeek(o), nil
	case pattern.WeekDate, pattern.WeekDateCompact:
		o, err := w.cal.ParseAnyWeekDate(s)
		if err != nil {
			return false, err
		}
		return w.ContainsWeekDate(o), nil
	default:
		return false, formatErr(s, pattern.Week, pattern.WeekCompact, pattern.WeekDate, pattern.WeekDateCompact)
	}
}

// ContainsAll answers Contains for every date, in the same order.
func (w Week) ContainsAll(ds []date.Date) []bool {
	bs := make([]bool, len(ds))
	for i, d := range ds {
		bs[i] = w.Contains(d)
	}
	return bs
}

// ContainsAllStrings answers ContainsString for every string, in the same order.
// It fails on the first string that is no valid week or week-date of w's calendar.
func (w Week) ContainsAllStrings(ss []string) ([]bool, error) {
	bs := make([]bool, len(ss))
	for i, s := range ss {
		b, err := w.ContainsString(s)
		if err != nil {
			return nil, fmt.Errorf("contains [%d]: %w", i, err)
		}
		bs[i] = b
	}
	return bs, nil
}

// ContainsAllWeekDates answers ContainsWeekDate for every week-date, in the same order.
func (w Week) ContainsAllWeekDates(wds []WeekDate) []bool {
	bs := make([]bool, len(wds))
	for i, wd := range wds {
		bs[i] = w.ContainsWeekDate(wd)
	}
	return bs
}

// Weeksout yields the weeks w+step, w+2*step, ... up to w+n.
func (w Week) Weeksout(n, step int) (iter.Seq[Week], error) {
	return ahead(w, n, step)
}

func (w Week) WeeksoutStrings(n, step int) (iter.Seq[string], error) {
	seq, err := w.Weeksout(n, step)
	if err != nil {
		return nil, err
	}
	return Strings(seq), nil
}

func (w Week) WithYear(year int) (Week, error) {
	return w.cal.NewWeek(year, w.week)
}

func (w Week) WithWeek(week int) (Week, error) {
	return w.cal.NewWeek(w.year, week)
}
