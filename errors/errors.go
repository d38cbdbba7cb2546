// Package errors provides formatted error values that remember their cause.
//
// The message is built with fmt.Sprintf semantics. The first argument that is an
// error is the wrapped cause, returned by Unwrap.
package errors

import (
	"fmt"
)

type err struct {
	msg  string
	args []interface{}
}

func (err err) Error() string {
	return fmt.Sprintf(err.msg, err.args...)
}

func (err err) Unwrap() error {
	for _, arg := range err.args {
		if wrapped, ok := arg.(error); ok {
			return wrapped
		}
	}
	return nil
}

// New returns an error formatted from msg and args.
func New(msg string, args ...interface{}) error {
	return err{msg, args}
}
