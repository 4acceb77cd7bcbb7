// Package series converts whole sequences of dates, times and week strings.
// Every function preserves the order and the length of its input.
package series

import (
	"time"

	"github.com/mazzegi/isoweek/calendar"
	"github.com/mazzegi/isoweek/date"
	"github.com/mazzegi/isoweek/isoweek"
	"github.com/mazzegi/isoweek/pattern"
	"github.com/mazzegi/isoweek/slicesx"
)

func (c Converter) DatesToWeekStrings(ds []date.Date, off calendar.Offset) []string {
	cal := isoweek.NewCalendar(off)
	return mapAll(c, ds, func(d date.Date) string {
		return cal.WeekOf(d).String()
	})
}

func (c Converter) DatesToWeekDateStrings(ds []date.Date, off calendar.Offset) []string {
	cal := isoweek.NewCalendar(off)
	return mapAll(c, ds, func(d date.Date) string {
		return cal.WeekDateOf(d).String()
	})
}

// TimesToWeekStrings uses the calendar day of each time, see date.FromTime.
func (c Converter) TimesToWeekStrings(ts []time.Time, off calendar.Offset) []string {
	return c.DatesToWeekStrings(slicesx.Map(ts, date.FromTime), off)
}

func (c Converter) TimesToWeekDateStrings(ts []time.Time, off calendar.Offset) []string {
	return c.DatesToWeekDateStrings(slicesx.Map(ts, date.FromTime), off)
}

// WeekStringsToDates returns the weekday-th day of every week in ss. All elements must be in the
// standard form "YYYY-WNN"; otherwise the call fails and the error lists every offending position.
func (c Converter) WeekStringsToDates(ss []string, off calendar.Offset, weekday int) ([]date.Date, error) {
	if err := calendar.ValidWeekday(weekday); err != nil {
		return nil, err
	}
	cal := isoweek.NewCalendar(off)
	return convert(c, ss, func(s string) (date.Date, error) {
		w, err := cal.ParseWeek(s)
		if err != nil {
			return date.Date{}, err
		}
		return w.Date(weekday)
	})
}

// WeekDateStringsToDates is WeekStringsToDates for the form "YYYY-WNN-D".
func (c Converter) WeekDateStringsToDates(ss []string, off calendar.Offset) ([]date.Date, error) {
	cal := isoweek.NewCalendar(off)
	return convert(c, ss, func(s string) (date.Date, error) {
		wd, err := cal.ParseWeekDate(s)
		if err != nil {
			return date.Date{}, err
		}
		return wd.Date(), nil
	})
}

// IsWeekSeries checks the format of every element. Calendar validity is not checked,
// so "2023-W99" is reported true.
func (c Converter) IsWeekSeries(ss []string) []bool {
	return mapAll(c, ss, pattern.IsWeek)
}

func (c Converter) IsWeekDateSeries(ss []string) []bool {
	return mapAll(c, ss, pattern.IsWeekDate)
}

func DatesToWeekStrings(ds []date.Date, off calendar.Offset) []string {
	return DefaultConverter.DatesToWeekStrings(ds, off)
}

func DatesToWeekDateStrings(ds []date.Date, off calendar.Offset) []string {
	return DefaultConverter.DatesToWeekDateStrings(ds, off)
}

func TimesToWeekStrings(ts []time.Time, off calendar.Offset) []string {
	return DefaultConverter.TimesToWeekStrings(ts, off)
}

func TimesToWeekDateStrings(ts []time.Time, off calendar.Offset) []string {
	return DefaultConverter.TimesToWeekDateStrings(ts, off)
}

func WeekStringsToDates(ss []string, off calendar.Offset, weekday int) ([]date.Date, error) {
	return DefaultConverter.WeekStringsToDates(ss, off, weekday)
}

func WeekDateStringsToDates(ss []string, off calendar.Offset) ([]date.Date, error) {
	return DefaultConverter.WeekDateStringsToDates(ss, off)
}

func IsWeekSeries(ss []string) []bool {
	return DefaultConverter.IsWeekSeries(ss)
}

func IsWeekDateSeries(ss []string) []bool {
	return DefaultConverter.IsWeekDateSeries(ss)
}

// AllWeeks reports whether every element has the form "YYYY-WNN". It is true for an empty series.
func AllWeeks(ss []string) bool {
	return slicesx.All(ss, pattern.IsWeek)
}

func AllWeekDates(ss []string) bool {
	return slicesx.All(ss, pattern.IsWeekDate)
}
