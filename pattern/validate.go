package pattern

import (
	"fmt"

	"github.com/go-playground/validator"
)

// Struct tags registered by RegisterValidations
const (
	TagWeek            = "isoweek"
	TagWeekCompact     = "isoweek_compact"
	TagWeekDate        = "isoweekdate"
	TagWeekDateCompact = "isoweekdate_compact"
)

// RegisterValidations makes the four grammars available as struct tags on v, e.g.
//
//	type Booking struct {
//		Week string `validate:"required,isoweek"`
//	}
func RegisterValidations(v *validator.Validate) error {
	fncs := map[string]func(string) bool{
		TagWeek:            IsWeek,
		TagWeekCompact:     IsWeekCompact,
		TagWeekDate:        IsWeekDate,
		TagWeekDateCompact: IsWeekDateCompact,
	}
	for tag, fnc := range fncs {
		err := v.RegisterValidation(tag, fieldValidator(fnc))
		if err != nil {
			return fmt.Errorf("register %q: %w", tag, err)
		}
	}
	return nil
}

// NewValidator returns a validator with all tags registered
func NewValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		return nil, err
	}
	return v, nil
}

func fieldValidator(match func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return match(fl.Field().String())
	}
}
