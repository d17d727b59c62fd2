package growth

import (
	"errors"
	"fmt"
)

// Domain errors for growth operations.
var (
	// ErrDivision indicates a zero divisor (doubling interval or reference mass).
	ErrDivision = errors.New("growth: division by zero")

	// ErrInvalidInput indicates a non-numeric, non-finite or out-of-domain argument.
	ErrInvalidInput = errors.New("growth: invalid input")

	// ErrOutOfRange indicates a result that no longer fits in a float64.
	ErrOutOfRange = errors.New("growth: result exceeds float64 range")
)

// Error wraps a domain error with the operation that produced it.
type Error struct {
	Op     string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Op, e.Err, e.Detail)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func opError(op string, err error, format string, args ...any) error {
	return &Error{Op: op, Detail: fmt.Sprintf(format, args...), Err: err}
}
