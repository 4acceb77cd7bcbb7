package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mazzegi/isoweek/calendar"
	"github.com/mazzegi/isoweek/date"
	"github.com/mazzegi/isoweek/errorx"
	"github.com/mazzegi/isoweek/isoweek"
	"github.com/mazzegi/isoweek/pattern"
	"github.com/mazzegi/isoweek/slicesx"
	"github.com/spf13/cobra"
)

func printLines(w io.Writer, ss []string) {
	for _, s := range ss {
		fmt.Fprintln(w, s)
	}
}

// dates parses args as dates, no args means today
func dates(args []string) ([]date.Date, error) {
	if len(args) == 0 {
		return []date.Date{date.Today()}, nil
	}
	eg := errorx.NewGroup()
	ds := make([]date.Date, len(args))
	for i, arg := range args {
		d, err := date.Parse(arg)
		eg.Append(err)
		ds[i] = d
	}
	return ds, eg.Error()
}

func (a *app) weekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week [date...]",
		Short: "Print the week of each date, today by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dates(args)
			if err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), a.cfg.Converter().DatesToWeekStrings(ds, a.cfg.Calendar().Offset))
			return nil
		},
	}
}

func (a *app) weekDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekdate [date...]",
		Short: "Print the week-date of each date, today by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dates(args)
			if err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), a.cfg.Converter().DatesToWeekDateStrings(ds, a.cfg.Calendar().Offset))
			return nil
		},
	}
}

func (a *app) dateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date <week|week-date>...",
		Short: "Print the date of weeks and week-dates",
		Long: `Print the date of every argument. Weeks are resolved to the day given by --weekday,
week-dates to their own day. Standard and compact forms are accepted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := a.cfg.Calendar()
			eg := errorx.NewGroup()
			var out []string
			for _, arg := range args {
				d, err := a.dateOf(cal, arg)
				if err != nil {
					eg.Append(err)
					continue
				}
				out = append(out, d.String())
			}
			if !eg.IsEmpty() {
				return eg.Error()
			}
			printLines(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&a.weekday, "weekday", 1, "day of the week used for weeks, 1 is the first day")
	return cmd
}

func (a *app) dateOf(cal isoweek.Calendar, s string) (date.Date, error) {
	if pattern.IsAnyWeekDate(s) {
		wd, err := cal.ParseAnyWeekDate(s)
		if err != nil {
			return date.Date{}, err
		}
		return wd.Date(), nil
	}
	w, err := cal.ParseAnyWeek(s)
	if err != nil {
		return date.Date{}, err
	}
	return w.Date(a.cfg.Weekday)
}

func (a *app) rangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range <start> <end>",
		Short: "Print all weeks or week-dates from start to end",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inclusive, err := a.cfg.InclusiveMode()
			if err != nil {
				return err
			}
			cal := a.cfg.Calendar()
			var lines []string
			if pattern.IsAnyWeekDate(args[0]) {
				lines, err = rangeLines(cal.ParseAnyWeekDate, args, a.step, inclusive)
			} else {
				lines, err = rangeLines(cal.ParseAnyWeek, args, a.step, inclusive)
			}
			if err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), lines)
			return nil
		},
	}
	cmd.Flags().IntVar(&a.step, "step", 1, "distance between two emitted values")
	cmd.Flags().StringVar(&a.inclusive, "inclusive", "both", "emitted ends: both, left, right or neither")
	return cmd
}

func rangeLines[T isoweek.Unit[T]](parse func(string) (T, error), args []string, step int, inclusive isoweek.Inclusive) ([]string, error) {
	start, err := parse(args[0])
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := parse(args[1])
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	seq, err := isoweek.RangeStrings(start, end, step, inclusive)
	if err != nil {
		return nil, err
	}
	var lines []string
	for s := range seq {
		lines = append(lines, s)
	}
	return lines, nil
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <week|week-date>",
		Short: "Describe a week or week-date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := a.cfg.Calendar()
			var w isoweek.Week
			var lines []string
			if pattern.IsAnyWeekDate(args[0]) {
				wd, err := cal.ParseAnyWeekDate(args[0])
				if err != nil {
					return err
				}
				w = wd.ISOWeek()
				lines = append(lines,
					fmt.Sprintf("week-date %s (%s)", wd, wd.Compact()),
					fmt.Sprintf("date      %s, the %s day of %s", wd.Date(), humanize.Ordinal(wd.Weekday()), w),
				)
			} else {
				var err error
				w, err = cal.ParseAnyWeek(args[0])
				if err != nil {
					return err
				}
			}
			days := w.Days()
			lines = append(lines,
				fmt.Sprintf("week      %s (%s)", w, w.Compact()),
				fmt.Sprintf("position  the %s week of %d, quarter %d", humanize.Ordinal(w.Week()), w.Year(), w.Quarter()),
				fmt.Sprintf("year      %d has %d weeks", w.Year(), calendar.WeeksInYear(w.Year())),
				fmt.Sprintf("days      %s (%s) .. %s (%s)",
					days[0], days[0].ISOWeekday().Abbreviate(), days[6], days[6].ISOWeekday().Abbreviate()),
				fmt.Sprintf("offset    %s", w.Offset()),
			)
			printLines(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <string>...",
		Short: "Classify strings as week or week-date format",
		Long: `Print the format of every argument. Only the format is checked, so "2023-W99" is a valid week format.
The command fails if any argument matches no format.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				k := pattern.Classify(arg)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, k)
			}
			invalid := slicesx.Filter(args, func(s string) bool {
				return pattern.Classify(s) == pattern.Invalid
			})
			if len(invalid) > 0 {
				return fmt.Errorf("%w: %s", calendar.ErrFormat, strings.Join(invalid, ", "))
			}
			return nil
		},
	}
}
