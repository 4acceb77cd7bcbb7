package errorx

import (
	"strings"
)

// Group collects errors, nil errors are dropped.
type Group struct {
	errs []error
}

func NewGroup(errs ...error) *Group {
	g := &Group{}
	g.Append(errs...)
	return g
}

func (g *Group) Append(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		g.errs = append(g.errs, err)
	}
}

// Error returns nil for an empty group. Otherwise the result matches every collected error with errors.Is
// and prints one line per error.
func (g *Group) Error() error {
	if len(g.errs) == 0 {
		return nil
	}
	return &groupError{errs: append([]error(nil), g.errs...)}
}

func (g *Group) IsEmpty() bool {
	return len(g.errs) == 0
}

func (g *Group) Len() int {
	return len(g.errs)
}

type groupError struct {
	errs []error
}

func (e *groupError) Error() string {
	sl := make([]string, len(e.errs))
	for i, err := range e.errs {
		sl[i] = err.Error()
	}
	return strings.Join(sl, "\n")
}

func (e *groupError) Unwrap() []error {
	return e.errs
}
