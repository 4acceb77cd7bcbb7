package slicesx

import (
	"errors"
	"strconv"
	"testing"

	"github.com/mazzegi/isoweek/testx"
)

func TestMap(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertEqual([]string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
	tx.AssertEqual([]string{}, Map([]int{}, strconv.Itoa))
}

func TestMapErr(t *testing.T) {
	tx := testx.NewTx(t)
	vs, errs := MapErr([]string{"1", "x", "3", "y"}, strconv.Atoi)
	tx.AssertEqual([]int{1, 0, 3, 0}, vs)
	tx.AssertEqual(2, len(errs))
	tx.AssertTrue(errors.Is(errs[1], strconv.ErrSyntax), "position 1: %v", errs[1])
	tx.AssertTrue(errors.Is(errs[3], strconv.ErrSyntax), "position 3: %v", errs[3])

	vs, errs = MapErr([]string{"4"}, strconv.Atoi)
	tx.AssertEqual([]int{4}, vs)
	tx.AssertEqual(0, len(errs))
}

func TestFilterAll(t *testing.T) {
	tx := testx.NewTx(t)
	even := func(n int) bool { return n%2 == 0 }
	tx.AssertEqual([]int{2, 4}, Filter([]int{1, 2, 3, 4}, even))
	tx.AssertEqual(false, All([]int{2, 3}, even))
	tx.AssertEqual(true, All([]int{2, 4}, even))
	tx.AssertEqual(true, All([]int{}, even))
}
