package triad

import (
	"fmt"

	"github.com/pkg/errors"
)

// CapturedFailure is a value representation of a failure intercepted at
// an Outcome evaluation boundary. It preserves the original panic
// value, its message, and whether that value was itself an error.
type CapturedFailure struct {
	value any
	cause error
}

// NewCapturedFailure builds the value an Evaluate call produces for the
// given panic value. Exposed so callers and tests can construct
// expected results.
func NewCapturedFailure(v any) CapturedFailure {
	return capture(v)
}

func capture(v any) CapturedFailure {
	f := CapturedFailure{value: v}
	if err, ok := v.(error); ok {
		f.cause = errors.WithStack(err)
	} else {
		f.cause = errors.Errorf("%v", v)
	}
	return f
}

// Value returns the original panic value, untouched.
func (f CapturedFailure) Value() any {
	return f.value
}

// IsError reports whether the panic value was itself an error.
func (f CapturedFailure) IsError() bool {
	_, ok := f.value.(error)
	return ok
}

// Message is the failure's human-readable message.
func (f CapturedFailure) Message() string {
	if err, ok := f.value.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", f.value)
}

func (f CapturedFailure) Error() string {
	return f.Message()
}

// Unwrap exposes the stack-annotated cause for errors.Is/As chains.
func (f CapturedFailure) Unwrap() error {
	return f.cause
}

func (f CapturedFailure) String() string {
	return fmt.Sprintf("CapturedFailure(%s)", f.Message())
}
