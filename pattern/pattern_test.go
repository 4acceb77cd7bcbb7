package pattern

import (
	"testing"

	"github.com/mazzegi/isoweek/testx"
)

func TestClassify(t *testing.T) {
	tx := testx.NewTx(t)
	type test struct {
		in   string
		want Kind
	}
	tests := []test{
		{in: "2023-W01", want: Week},
		{in: "2023W01", want: WeekCompact},
		{in: "2023-W01-1", want: WeekDate},
		{in: "2023W011", want: WeekDateCompact},
		// syntactically fine, calendar-invalid
		{in: "2023-W53", want: Week},
		{in: "2023-W99-9", want: WeekDate},
		{in: "0000W00", want: WeekCompact},
		{in: "", want: Invalid},
		{in: "2023-W1", want: Invalid},
		{in: "2023-w01", want: Invalid},
		{in: "23-W01", want: Invalid},
		{in: "2023-W01-", want: Invalid},
		{in: "2023-W01-12", want: Invalid},
		{in: "2023_W01", want: Invalid},
		{in: "２023-W01", want: Invalid},
		{in: " 2023-W01", want: Invalid},
		{in: "2023-W01\n", want: Invalid},
	}
	testx.RunTestsParallel(tx, tests, func(tx *testx.Tx, test test) {
		tx.AssertEqual(test.want, Classify(test.in))
	})
}

func TestPredicates(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertEqual(true, IsWeek("2023-W01"))
	tx.AssertEqual(false, IsWeek("2023W01"))
	tx.AssertEqual(true, IsWeekCompact("2023W01"))
	tx.AssertEqual(true, IsWeekDate("2023-W01-7"))
	tx.AssertEqual(false, IsWeekDate("2023-W01"))
	tx.AssertEqual(true, IsWeekDateCompact("2023W017"))
	tx.AssertEqual(true, IsAnyWeek("2023W01"))
	tx.AssertEqual(true, IsAnyWeek("2023-W01"))
	tx.AssertEqual(false, IsAnyWeek("2023-W01-1"))
	tx.AssertEqual(true, IsAnyWeekDate("2023W011"))
	tx.AssertEqual(false, IsAnyWeekDate("2023W01"))
}

func TestExpand(t *testing.T) {
	tx := testx.NewTx(t)
	type test struct {
		in     string
		want   string
		wantOK bool
	}
	tests := []test{
		{in: "2023W01", want: "2023-W01", wantOK: true},
		{in: "2023W015", want: "2023-W01-5", wantOK: true},
		{in: "2023-W01", want: "", wantOK: false},
		{in: "foo", want: "", wantOK: false},
	}
	testx.RunTestsParallel(tx, tests, func(tx *testx.Tx, test test) {
		res, ok := Expand(test.in)
		tx.AssertEqual(test.wantOK, ok)
		tx.AssertEqual(test.want, res)
		if ok {
			tx.AssertEqual(false, Classify(res).IsCompact())
		}
	})
}

func TestKindFormat(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertEqual("YYYY-WNN", Week.Format())
	tx.AssertEqual("YYYYWNND", WeekDateCompact.Format())
	tx.AssertEqual("", Invalid.Format())
	tx.AssertEqual("week-date", WeekDate.String())
}
