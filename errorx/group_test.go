package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mazzegi/isoweek/testx"
)

var (
	errA = errors.New("a")
	errB = errors.New("b")
)

func TestGroup(t *testing.T) {
	tx := testx.NewTx(t)
	g := NewGroup(nil, nil)
	tx.AssertEqual(true, g.IsEmpty())
	tx.AssertNoErr(g.Error())

	g.Append(fmt.Errorf("first: %w", errA), nil, errB)
	tx.AssertEqual(2, g.Len())
	err := g.Error()
	tx.AssertErrIs(err, errA)
	tx.AssertErrIs(err, errB)
	tx.AssertEqual("first: a\nb", err.Error())

	g.Append(errors.New("c"))
	tx.AssertEqual("first: a\nb", err.Error())
}
