package calendar

import "errors"

// Error classes. Every error returned by the calendar and isoweek packages wraps one of them.
var (
	// ErrFormat: a string does not match its grammar
	ErrFormat = errors.New("invalid format")
	// ErrRange: a well-formed value encodes an impossible year, week or weekday
	ErrRange = errors.New("out of range")
	// ErrTypeMismatch: identifiers of different kinds or offsets were combined
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrArgument: an operation parameter is invalid, e.g. a non-positive step
	ErrArgument = errors.New("invalid argument")
)
