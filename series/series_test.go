package series

import (
	"strings"
	"testing"
	"time"

	"github.com/mazzegi/isoweek/calendar"
	"github.com/mazzegi/isoweek/date"
	"github.com/mazzegi/isoweek/isoweek"
	"github.com/mazzegi/isoweek/testx"
)

// every day from 2019-12-01 on, spanning two year boundaries and the 53-week year 2020
func days(n int) []date.Date {
	start := date.Make(2019, time.December, 1)
	ds := make([]date.Date, n)
	for i := range ds {
		ds[i] = start.AddDays(i)
	}
	return ds
}

func converters() []Converter {
	return []Converter{
		DefaultConverter,
		{Workers: 1, ChunkSize: 1},
		{Workers: 4, ChunkSize: 7},
		{Workers: 3, ChunkSize: 100},
		{},
	}
}

func TestDatesMatchScalar(t *testing.T) {
	tx := testx.NewTx(t)
	ds := days(800)
	for _, off := range []calendar.Offset{0, 1, -2} {
		cal := isoweek.NewCalendar(off)
		for _, c := range converters() {
			ws := c.DatesToWeekStrings(ds, off)
			wds := c.DatesToWeekDateStrings(ds, off)
			tx.AssertEqual(len(ds), len(ws))
			tx.AssertEqual(len(ds), len(wds))
			for i, d := range ds {
				tx.AssertEqual(cal.WeekOf(d).String(), ws[i])
				tx.AssertEqual(cal.WeekDateOf(d).String(), wds[i])
			}

			back, err := c.WeekDateStringsToDates(wds, off)
			tx.AssertNoErr(err)
			tx.AssertEqual(ds, back)
		}
	}
}

func TestTimes(t *testing.T) {
	tx := testx.NewTx(t)
	ts := []time.Time{
		time.Date(2023, 1, 1, 23, 59, 0, 0, time.UTC),
		time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 12, 31, 12, 0, 0, 0, time.UTC),
	}
	tx.AssertEqual([]string{"2022-W52", "2023-W01", "2020-W53"}, TimesToWeekStrings(ts, 0))
	tx.AssertEqual([]string{"2022-W52-7", "2023-W01-1", "2020-W53-4"}, TimesToWeekDateStrings(ts, 0))
	tx.AssertEqual([]string{"2023-W01-2", "2023-W01-3", "2020-W53-6"}, TimesToWeekDateStrings(ts, -2))
}

func TestEmpty(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertEqual([]string{}, DatesToWeekStrings(nil, 0))
	tx.AssertEqual([]bool{}, IsWeekSeries([]string{}))
	ds, err := WeekStringsToDates(nil, 0, 1)
	tx.AssertNoErr(err)
	tx.AssertEqual([]date.Date{}, ds)
	tx.AssertEqual(true, AllWeeks(nil))
}

func TestWeekStringsToDates(t *testing.T) {
	tx := testx.NewTx(t)
	ss := []string{"2023-W01", "2020-W53", "2023-W52"}

	ds, err := WeekStringsToDates(ss, 0, 1)
	tx.AssertNoErr(err)
	tx.AssertEqual([]date.Date{
		date.MustParse("2023-01-02"),
		date.MustParse("2020-12-28"),
		date.MustParse("25.12.2023"),
	}, ds)

	ds, err = WeekStringsToDates(ss, 1, 7)
	tx.AssertNoErr(err)
	tx.AssertEqual([]date.Date{
		date.Make(2023, time.January, 9),
		date.Make(2021, time.January, 4),
		date.Make(2024, time.January, 1),
	}, ds)

	_, err = WeekStringsToDates(ss, 0, 8)
	tx.AssertErrIs(err, calendar.ErrRange)
}

func TestConversionErrors(t *testing.T) {
	tx := testx.NewTx(t)
	ss := []string{"2023-W01", "2023W02", "2023-W53", "2023-W04", "x"}
	for _, c := range converters() {
		_, err := c.WeekStringsToDates(ss, 0, 1)
		tx.AssertErrIs(err, calendar.ErrFormat)
		tx.AssertErrIs(err, calendar.ErrRange)
		lines := strings.Split(err.Error(), "\n")
		tx.AssertEqual(3, len(lines))
		tx.AssertTrue(strings.HasPrefix(lines[0], "series[1]: "), "line 0: %s", lines[0])
		tx.AssertTrue(strings.HasPrefix(lines[1], "series[2]: "), "line 1: %s", lines[1])
		tx.AssertTrue(strings.HasPrefix(lines[2], "series[4]: "), "line 2: %s", lines[2])
	}

	_, err := WeekDateStringsToDates([]string{"2023-W01-1", "2023-W01-9"}, 0)
	tx.AssertErrIs(err, calendar.ErrRange)
}

func TestIsSeries(t *testing.T) {
	tx := testx.NewTx(t)
	ss := []string{"2023-W01", "2023-W01-1", "2023W01", "2023-W99", "", "20x3-W01"}
	for _, c := range converters() {
		tx.AssertEqual([]bool{true, false, false, true, false, false}, c.IsWeekSeries(ss))
		tx.AssertEqual([]bool{false, true, false, false, false, false}, c.IsWeekDateSeries(ss))
	}
	tx.AssertEqual(false, AllWeeks(ss))
	tx.AssertEqual(true, AllWeeks([]string{"2023-W01", "2024-W10"}))
	tx.AssertEqual(true, AllWeekDates([]string{"2023-W01-7"}))
	tx.AssertEqual(false, AllWeekDates([]string{"2023-W01-7", "2023-W01"}))
}

func TestMapAllKeepsOrder(t *testing.T) {
	tx := testx.NewTx(t)
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}
	for _, c := range converters() {
		out := mapAll(c, in, func(n int) int { return 2 * n })
		tx.AssertEqual(len(in), len(out))
		for i, n := range out {
			tx.AssertEqual(2*i, n)
		}
	}
}
