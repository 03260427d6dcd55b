package runtime

import "fmt"

// RuntimeErrorKind names a contract-violation category. Coercion failures
// never surface as errors; only contract violations do: out-of-range
// formatting arguments, wrong-kind projections, division by zero in exact
// arithmetic.
type RuntimeErrorKind string

const (
	ErrRange        RuntimeErrorKind = "RangeError"
	ErrTypeMismatch RuntimeErrorKind = "TypeMismatchError"
	ErrDivideByZero RuntimeErrorKind = "DivideByZeroError"
)

// RuntimeError is the typed error surfaced on contract violations. It is
// fatal to the calling operation and never retried locally.
type RuntimeError struct {
	ErrKind RuntimeErrorKind
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrKind, e.Message)
}

// Is supports errors.Is matching against a bare kind-only RuntimeError.
func (e *RuntimeError) Is(target error) bool {
	other, ok := target.(*RuntimeError)
	if !ok {
		return false
	}
	return other.Message == "" && other.ErrKind == e.ErrKind
}

func NewRangeError(format string, args ...any) *RuntimeError {
	return &RuntimeError{ErrKind: ErrRange, Message: fmt.Sprintf(format, args...)}
}

func NewTypeMismatchError(format string, args ...any) *RuntimeError {
	return &RuntimeError{ErrKind: ErrTypeMismatch, Message: fmt.Sprintf(format, args...)}
}

func NewDivideByZeroError() *RuntimeError {
	return &RuntimeError{ErrKind: ErrDivideByZero, Message: "division by zero"}
}

func newTypeMismatchError(want Kind, got Value) *RuntimeError {
	gotKind := "nil"
	if got != nil {
		gotKind = got.Kind().String()
	}
	return NewTypeMismatchError("expected %s, got %s", want, gotKind)
}

func newIndexRangeError(index, length int) *RuntimeError {
	return NewRangeError("index %d out of bounds for length %d", index, length)
}
