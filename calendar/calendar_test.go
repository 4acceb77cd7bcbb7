package calendar

import (
	"testing"
	"time"

	"github.com/mazzegi/isoweek/date"
	"github.com/mazzegi/isoweek/testx"
)

func TestWeeksInYear(t *testing.T) {
	tx := testx.NewTx(t)
	type test struct {
		year int
		want int
	}
	tests := []test{
		{year: 2015, want: 53},
		{year: 2019, want: 52},
		{year: 2020, want: 53},
		{year: 2021, want: 52},
		{year: 2022, want: 52},
		{year: 2023, want: 52},
		{year: 2026, want: 53},
		{year: 2032, want: 53},
	}
	testx.RunTestsParallel(tx, tests, func(tx *testx.Tx, test test) {
		tx.AssertEqual(test.want, WeeksInYear(test.year))
	})
}

// p(y) is the weekday of December 31st; a year has 53 weeks iff p(y)==4 or p(y-1)==3
func TestWeeksInYearAgreesWithDecemberRule(t *testing.T) {
	tx := testx.NewTx(t)
	p := func(y int) int {
		return (y + y/4 - y/100 + y/400) % 7
	}
	for year := 2; year <= 2400; year++ {
		want := 52
		if p(year) == 4 || p(year-1) == 3 {
			want = 53
		}
		tx.AssertTrue(WeeksInYear(year) == want, "year %d: want %d weeks, have %d", year, want, WeeksInYear(year))
		// December 28th is always in the last week
		_, w, _ := FromDate(date.Make(year, 12, 28), 0)
		tx.AssertEqual(want, w)
	}
}

func TestValidWeek(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertNoErr(ValidWeek(2020, 53))
	tx.AssertNoErr(ValidWeek(2023, 52))
	tx.AssertNoErr(ValidWeek(1, 1))
	tx.AssertNoErr(ValidWeek(9999, 52))
	tx.AssertErrIs(ValidWeek(2023, 53), ErrRange)
	tx.AssertErrIs(ValidWeek(2023, 0), ErrRange)
	tx.AssertErrIs(ValidWeek(0, 1), ErrRange)
	tx.AssertErrIs(ValidWeek(10000, 1), ErrRange)
	tx.AssertNoErr(ValidWeekday(1))
	tx.AssertNoErr(ValidWeekday(7))
	tx.AssertErrIs(ValidWeekday(0), ErrRange)
	tx.AssertErrIs(ValidWeekday(8), ErrRange)
}

func TestToDate(t *testing.T) {
	tx := testx.NewTx(t)
	type test struct {
		year, week, weekday int
		off                 Offset
		want                date.Date
	}
	tests := []test{
		{year: 2024, week: 9, weekday: 1, want: date.Make(2024, 2, 26)},
		{year: 2024, week: 1, weekday: 3, want: date.Make(2024, 1, 3)},
		{year: 2023, week: 52, weekday: 2, want: date.Make(2023, 12, 26)},
		{year: 2024, week: 26, weekday: 1, want: date.Make(2024, 6, 24)},
		{year: 2024, week: 52, weekday: 1, want: date.Make(2024, 12, 23)},
		{year: 2025, week: 1, weekday: 1, want: date.Make(2024, 12, 30)},
		{year: 2025, week: 1, weekday: 5, want: date.Make(2025, 1, 3)},
		{year: 2025, week: 2, weekday: 3, want: date.Make(2025, 1, 8)},
		{year: 2020, week: 53, weekday: 7, want: date.Make(2021, 1, 3)},
		{year: 2023, week: 1, weekday: 1, off: 1, want: date.Make(2023, 1, 3)},
		{year: 2023, week: 1, weekday: 1, off: -2, want: date.Make(2022, 12, 31)},
	}
	testx.RunTestsParallel(tx, tests, func(tx *testx.Tx, test test) {
		res, err := ToDate(test.year, test.week, test.weekday, test.off)
		tx.AssertNoErr(err)
		tx.AssertEqual(test.want, res)
	})

	_, err := ToDate(2023, 53, 1, 0)
	tx.AssertErrIs(err, ErrRange)
	_, err = ToDate(2023, 1, 8, 0)
	tx.AssertErrIs(err, ErrRange)
	// unchecked form rolls over
	tx.AssertEqual(date.Make(2024, 1, 1), DateOf(2023, 53, 1, 0))
	tx.AssertEqual(date.Make(2023, 1, 9), DateOf(2023, 1, 8, 0))
}

func TestFromDate(t *testing.T) {
	tx := testx.NewTx(t)
	type test struct {
		in                              date.Date
		off                             Offset
		wantYear, wantWeek, wantWeekday int
	}
	tests := []test{
		{in: date.Make(2023, 1, 1), wantYear: 2022, wantWeek: 52, wantWeekday: 7},
		{in: date.Make(2023, 1, 2), wantYear: 2023, wantWeek: 1, wantWeekday: 1},
		{in: date.Make(2023, 1, 1), off: -2, wantYear: 2023, wantWeek: 1, wantWeekday: 2},
		{in: date.Make(2023, 1, 2), off: 1, wantYear: 2022, wantWeek: 52, wantWeekday: 7},
		{in: date.Make(2021, 1, 3), wantYear: 2020, wantWeek: 53, wantWeekday: 7},
		{in: date.Make(2024, 12, 30), wantYear: 2025, wantWeek: 1, wantWeekday: 1},
		{in: date.Make(1, 1, 1), wantYear: 1, wantWeek: 1, wantWeekday: 1},
	}
	testx.RunTestsParallel(tx, tests, func(tx *testx.Tx, test test) {
		y, w, wd := FromDate(test.in, test.off)
		tx.AssertEqual([]int{test.wantYear, test.wantWeek, test.wantWeekday}, []int{y, w, wd})
	})
}

func TestFromDateAgreesWithTimeISOWeek(t *testing.T) {
	tx := testx.NewTx(t)
	d := date.Make(1999, 12, 1)
	for i := 0; i < 12*366; i++ {
		y, w, wd := FromDate(d, 0)
		ty, tw := d.Time().ISOWeek()
		tx.AssertTrue(y == ty && w == tw, "%s: want %d-W%02d, have %d-W%02d", d, ty, tw, y, w)
		tx.AssertEqual(int(d.ISOWeekday()), wd)
		d = d.AddDays(1)
	}
}

func TestRoundTrip(t *testing.T) {
	tx := testx.NewTx(t)
	for _, off := range []Offset{-13, -6, -2, 0, 1, 3, 7, 10} {
		d := date.Make(2019, 12, 20)
		for i := 0; i < 800; i++ {
			y, w, wd := FromDate(d, off)
			testx.AssertInRange(t, w, 1, WeeksInYear(y))
			testx.AssertInRange(t, wd, 1, 7)
			back, err := ToDate(y, w, wd, off)
			tx.AssertNoErr(err)
			tx.AssertTrue(back.Equal(d), "offset %s: %s -> %04d-W%02d-%d -> %s", off, d, y, w, wd, back)
			d = d.AddDays(1)
		}
	}
}

func TestOffsetOf(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertEqual(Offset(0), OffsetOf(0))
	tx.AssertEqual(Offset(2), OffsetOf(48*time.Hour))
	tx.AssertEqual(Offset(1), OffsetOf(47*time.Hour))
	tx.AssertEqual(Offset(-1), OffsetOf(-time.Hour))
	tx.AssertEqual(Offset(-2), OffsetOf(-48*time.Hour))
	tx.AssertEqual(-48*time.Hour, Offset(-2).Duration())
	tx.AssertEqual("-2d", Offset(-2).String())
	tx.AssertEqual("+0d", Offset(0).String())
}
