// Package convert holds the pieces every converter shares: the single error
// kind returned by a failed conversion and the capability interfaces the
// format registry is built from.
package convert

import "fmt"

// Error is the only error kind a conversion returns. Msg says which step
// failed; Err is the underlying cause, whose text is embedded in Error().
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns an *Error for a failed step. It returns nil when err is nil so
// it can wrap a call result directly.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Msg: msg, Err: err}
}

// Errorf returns an *Error without an underlying cause.
func Errorf(format string, args ...interface{}) error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}
