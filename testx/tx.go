package testx

import (
	"errors"
	"reflect"
	"testing"
)

func NewTx(t *testing.T) *Tx {
	return &Tx{t: t}
}

// Tx bundles assertions bound to one *testing.T
type Tx struct {
	t *testing.T
}

func (tx *Tx) T() *testing.T {
	return tx.t
}

func (tx *Tx) AssertEqual(want, have any) {
	tx.t.Helper()
	if reflect.DeepEqual(want, have) {
		return
	}
	tx.t.Fatalf("want %v, have %v", want, have)
}

func (tx *Tx) AssertTrue(cond bool, format string, args ...any) {
	tx.t.Helper()
	if cond {
		return
	}
	tx.t.Fatalf(format, args...)
}

func (tx *Tx) AssertNoErr(err error) {
	tx.t.Helper()
	if err == nil {
		return
	}
	tx.t.Fatalf("error is not-nil but: %v", err)
}

func (tx *Tx) AssertErr(err error) {
	tx.t.Helper()
	if err != nil {
		return
	}
	tx.t.Fatalf("expect err; got none")
}

// AssertErrIs fails unless err matches target via errors.Is
func (tx *Tx) AssertErrIs(err error, target error) {
	tx.t.Helper()
	if err == nil {
		tx.t.Fatalf("expect err %q; got none", target)
	}
	if errors.Is(err, target) {
		return
	}
	tx.t.Fatalf("expect err %q; got %v", target, err)
}
