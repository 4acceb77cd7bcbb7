// Package pattern recognizes the textual shapes of ISO week and ISO week-date identifiers.
//
// Recognition is purely syntactic: "2023-W53" is a well formed week even though 2023 has only 52 weeks.
// Calendar validity is checked by package calendar.
package pattern

import (
	"regexp"
)

var (
	WeekPattern            = regexp.MustCompile(`^\d{4}-W\d{2}$`)
	WeekCompactPattern     = regexp.MustCompile(`^\d{4}W\d{2}$`)
	WeekDatePattern        = regexp.MustCompile(`^\d{4}-W\d{2}-\d$`)
	WeekDateCompactPattern = regexp.MustCompile(`^\d{4}W\d{2}\d$`)
)

// Format strings, as shown in error messages
const (
	WeekFormat            = "YYYY-WNN"
	WeekCompactFormat     = "YYYYWNN"
	WeekDateFormat        = "YYYY-WNN-D"
	WeekDateCompactFormat = "YYYYWNND"
)

type Kind int

const (
	Invalid Kind = iota
	Week
	WeekCompact
	WeekDate
	WeekDateCompact
)

func (k Kind) String() string {
	switch k {
	case Week:
		return "week"
	case WeekCompact:
		return "week-compact"
	case WeekDate:
		return "week-date"
	case WeekDateCompact:
		return "week-date-compact"
	default:
		return "invalid"
	}
}

// Format returns the format string of the kind, e.g. "YYYY-WNN"
func (k Kind) Format() string {
	switch k {
	case Week:
		return WeekFormat
	case WeekCompact:
		return WeekCompactFormat
	case WeekDate:
		return WeekDateFormat
	case WeekDateCompact:
		return WeekDateCompactFormat
	default:
		return ""
	}
}

func (k Kind) IsCompact() bool {
	return k == WeekCompact || k == WeekDateCompact
}

// Classify tells which grammar s belongs to. It never fails, unknown shapes are Invalid.
func Classify(s string) Kind {
	// all four grammars are fixed width
	switch len(s) {
	case 7:
		if WeekCompactPattern.MatchString(s) {
			return WeekCompact
		}
	case 8:
		if WeekPattern.MatchString(s) {
			return Week
		}
		if WeekDateCompactPattern.MatchString(s) {
			return WeekDateCompact
		}
	case 10:
		if WeekDatePattern.MatchString(s) {
			return WeekDate
		}
	}
	return Invalid
}

func IsWeek(s string) bool {
	return WeekPattern.MatchString(s)
}

func IsWeekCompact(s string) bool {
	return WeekCompactPattern.MatchString(s)
}

func IsWeekDate(s string) bool {
	return WeekDatePattern.MatchString(s)
}

func IsWeekDateCompact(s string) bool {
	return WeekDateCompactPattern.MatchString(s)
}

// IsAnyWeek accepts standard and compact week strings
func IsAnyWeek(s string) bool {
	k := Classify(s)
	return k == Week || k == WeekCompact
}

// IsAnyWeekDate accepts standard and compact week-date strings
func IsAnyWeekDate(s string) bool {
	k := Classify(s)
	return k == WeekDate || k == WeekDateCompact
}

// Expand turns a compact string into its standard form. It returns false if s is not compact.
func Expand(s string) (string, bool) {
	switch Classify(s) {
	case WeekCompact:
		return s[:4] + "-" + s[4:], true
	case WeekDateCompact:
		return s[:4] + "-" + s[4:7] + "-" + s[7:], true
	default:
		return "", false
	}
}
