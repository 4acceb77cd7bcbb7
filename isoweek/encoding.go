package isoweek

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Encoded forms are the canonical strings. Decoding keeps the receiver's calendar,
// so decode into a value created from the intended Calendar.

func (w Week) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w *Week) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	pw, err := w.cal.ParseAnyWeek(s)
	if err != nil {
		return fmt.Errorf("parse-week %q: %w", s, err)
	}
	*w = pw
	return nil
}

func (w Week) Value() (driver.Value, error) {
	return w.String(), nil
}

func (w *Week) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return fmt.Errorf("scan week: %w", err)
	}
	pw, err := w.cal.ParseAnyWeek(s)
	if err != nil {
		return fmt.Errorf("scan week: %w", err)
	}
	*w = pw
	return nil
}

func (wd WeekDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(wd.String())
}

func (wd *WeekDate) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	pwd, err := wd.cal.ParseAnyWeekDate(s)
	if err != nil {
		return fmt.Errorf("parse-week-date %q: %w", s, err)
	}
	*wd = pwd
	return nil
}

func (wd WeekDate) Value() (driver.Value, error) {
	return wd.String(), nil
}

func (wd *WeekDate) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return fmt.Errorf("scan week-date: %w", err)
	}
	pwd, err := wd.cal.ParseAnyWeekDate(s)
	if err != nil {
		return fmt.Errorf("scan week-date: %w", err)
	}
	*wd = pwd
	return nil
}

func scanString(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("%w: cannot scan %T", ErrFormat, src)
	}
}
