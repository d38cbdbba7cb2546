package errors_test

import (
	stderrors "errors"
	"io"
	"testing"

	"github.com/brunokim/wamgen/errors"
)

func TestNew(t *testing.T) {
	err := errors.New("clause #%d: %v", 2, io.ErrUnexpectedEOF)
	if got, want := err.Error(), "clause #2: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("errors.Is(%v, io.ErrUnexpectedEOF) = false", err)
	}
}

func TestNew_noCause(t *testing.T) {
	err := errors.New("bad functor %q", "f/x")
	if cause := stderrors.Unwrap(err); cause != nil {
		t.Errorf("Unwrap() = %v, want nil", cause)
	}
}
