package escape

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPoint indicates a point with a NaN or infinite component.
	ErrInvalidPoint = errors.New("escape: invalid point (NaN or Inf detected)")

	// ErrInvalidBudget indicates a non-positive iteration budget.
	ErrInvalidBudget = errors.New("escape: iteration budget must be positive")
)

// ParamError wraps a validation failure with the rejected input.
type ParamError struct {
	C       complex128
	Budget  int
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s (c=%v, budget=%d)", e.Wrapped.Error(), e.C, e.Budget)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
