// Package calendar converts between Gregorian dates and ISO-8601 week dates.
//
// Every conversion takes an Offset. A date d is mapped by shifting it back by the offset, applying the
// plain ISO rule (weeks start on Monday, week 1 contains January 4th) and reporting the result in the
// shifted frame. The inverse adds the offset back.
package calendar

import (
	"fmt"
	"time"

	"github.com/mazzegi/isoweek/date"
	"github.com/mazzegi/isoweek/mathx"
)

var (
	years    = mathx.NewRange(1, 9999)
	weekdays = mathx.NewRange(1, 7)
)

func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// WeeksInYear returns 52 or 53. A year has 53 weeks iff January 1st is a Thursday,
// or it is a leap year and January 1st is a Wednesday.
func WeeksInYear(year int) int {
	jan1 := date.Make(year, time.January, 1).ISOWeekday()
	if jan1 == date.Thursday || (IsLeap(year) && jan1 == date.Wednesday) {
		return 53
	}
	return 52
}

func ValidYear(year int) error {
	if !years.Contains(year) {
		return fmt.Errorf("%w: year %d not in [%d, %d]", ErrRange, year, years.Min, years.Max)
	}
	return nil
}

// ValidWeek checks that year is representable and week exists in it
func ValidWeek(year, week int) error {
	if err := ValidYear(year); err != nil {
		return err
	}
	if n := WeeksInYear(year); week < 1 || week > n {
		return fmt.Errorf("%w: week %d, year %d has only %d weeks", ErrRange, week, year, n)
	}
	return nil
}

func ValidWeekday(weekday int) error {
	if !weekdays.Contains(weekday) {
		return fmt.Errorf("%w: weekday %d not in [%d, %d]", ErrRange, weekday, weekdays.Min, weekdays.Max)
	}
	return nil
}

// WeekOneMonday returns the Monday of ISO week 1 of year, which is the Monday on or before January 4th.
func WeekOneMonday(year int) date.Date {
	jan4 := date.Make(year, time.January, 4)
	return jan4.AddDays(-(int(jan4.ISOWeekday()) - 1))
}

// FromDate returns the ISO year, week and weekday of d in the frame shifted by off.
func FromDate(d date.Date, off Offset) (year, week, weekday int) {
	shifted := d.AddDays(-off.Days())
	weekday = int(shifted.ISOWeekday())
	monday := shifted.AddDays(-(weekday - 1))
	// the week belongs to the year holding its Thursday
	year = monday.AddDays(3).Year()
	week = date.DaysBetween(WeekOneMonday(year), monday)/7 + 1
	return year, week, weekday
}

// ToDate is the inverse of FromDate. It fails with ErrRange for an invalid week or weekday.
func ToDate(year, week, weekday int, off Offset) (date.Date, error) {
	if err := ValidWeek(year, week); err != nil {
		return date.Date{}, err
	}
	if err := ValidWeekday(weekday); err != nil {
		return date.Date{}, err
	}
	return DateOf(year, week, weekday, off), nil
}

// DateOf is ToDate without validation. Weeks and weekdays beyond their ranges roll over into
// the neighbouring weeks and years.
func DateOf(year, week, weekday int, off Offset) date.Date {
	return WeekOneMonday(year).AddDays((week-1)*7 + (weekday - 1) + off.Days())
}
