package config

import (
	"fmt"
	"runtime"

	"github.com/go-playground/validator"
	"github.com/mazzegi/isoweek/calendar"
	"github.com/mazzegi/isoweek/isoweek"
	"github.com/mazzegi/isoweek/series"
)

// Keys read by Resolve
const (
	KeyOffset    = "ISOWEEK_OFFSET"
	KeyWeekday   = "ISOWEEK_WEEKDAY"
	KeyInclusive = "ISOWEEK_INCLUSIVE"
	KeyWorkers   = "ISOWEEK_WORKERS"
)

// Config holds the resolved settings of the isoweek command.
type Config struct {
	// Offset in days, the first day of the week is Monday plus Offset
	Offset    int    `validate:"min=-366,max=366"`
	Weekday   int    `validate:"min=1,max=7"`
	Inclusive string `validate:"oneof=both left right neither"`
	Workers   int    `validate:"min=1,max=1024"`
}

func Default() Config {
	return Config{
		Offset:    0,
		Weekday:   1,
		Inclusive: isoweek.Both.String(),
		Workers:   runtime.GOMAXPROCS(0),
	}
}

var validate = validator.New()

// Resolve reads the known keys from env on top of Default and validates the result.
func Resolve(env Env) (Config, error) {
	cfg := Default()
	ints := []struct {
		key string
		dst *int
	}{
		{KeyOffset, &cfg.Offset},
		{KeyWeekday, &cfg.Weekday},
		{KeyWorkers, &cfg.Workers},
	}
	for _, i := range ints {
		n, ok, err := env.Int(i.key)
		if err != nil {
			return Config{}, fmt.Errorf("resolve config: %w", err)
		}
		if ok {
			*i.dst = n
		}
	}
	cfg.Inclusive = env.StringOrDefault(KeyInclusive, cfg.Inclusive)
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("resolve config: %w", err)
	}
	return cfg, nil
}

func (cfg Config) Calendar() isoweek.Calendar {
	return isoweek.NewCalendar(calendar.Offset(cfg.Offset))
}

func (cfg Config) InclusiveMode() (isoweek.Inclusive, error) {
	return isoweek.ParseInclusive(cfg.Inclusive)
}

func (cfg Config) Converter() series.Converter {
	return series.Converter{
		Workers:   cfg.Workers,
		ChunkSize: series.DefaultConverter.ChunkSize,
	}
}

func (cfg Config) String() string {
	return fmt.Sprintf("offset=%s weekday=%d inclusive=%s workers=%d",
		calendar.Offset(cfg.Offset), cfg.Weekday, cfg.Inclusive, cfg.Workers)
}
