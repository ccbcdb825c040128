package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArgument reports an empty required value or a nil callback.
	ErrMissingArgument = errors.New("missing required argument")
	// ErrInvalidState reports a call that conflicts with the action or shape
	// already configured.
	ErrInvalidState = errors.New("invalid configuration state")
)

// Error describes a rejected builder call.
type Error struct {
	// Op is the builder method that failed (e.g. "Button.Navigate").
	Op string
	// Arg names the offending argument, or the conflicting setting for
	// ErrInvalidState.
	Arg string
	// Err is ErrMissingArgument or ErrInvalidState.
	Err error
}

func (e *Error) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("builder: %s: %v: %s", e.Op, e.Err, e.Arg)
	}
	return fmt.Sprintf("builder: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// latch records the first failure of a builder tree. Nested builders share
// the latch of the builder that created them.
type latch struct {
	err error
}

func (l *latch) failed() bool {
	return l.err != nil
}

func (l *latch) missing(op, arg string) {
	l.fail(&Error{Op: op, Arg: arg, Err: ErrMissingArgument})
}

func (l *latch) conflict(op, reason string) {
	l.fail(&Error{Op: op, Arg: reason, Err: ErrInvalidState})
}

func (l *latch) fail(err error) {
	if l.err == nil {
		l.err = err
	}
}

// enabled resolves the optional trailing condition accepted by several
// setters. No condition means true.
func enabled(cond []bool) bool {
	for _, c := range cond {
		if !c {
			return false
		}
	}
	return true
}
