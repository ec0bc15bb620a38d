package units

import (
	"errors"
	"fmt"
)

// Domain errors for quantity handling.
var (
	// ErrDimensionMismatch indicates a quantity whose dimension is
	// incompatible with where it is being used.
	ErrDimensionMismatch = errors.New("units: dimension mismatch")

	// ErrUnknownUnit indicates an unrecognized unit symbol.
	ErrUnknownUnit = errors.New("units: unknown unit")
)

// MismatchError reports the expected and supplied dimensions of a
// failed conversion. It unwraps to ErrDimensionMismatch.
type MismatchError struct {
	Expected Dimension
	Got      Dimension
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("units: dimension mismatch: expected %s, got %s", e.Expected, e.Got)
}

func (e *MismatchError) Unwrap() error {
	return ErrDimensionMismatch
}
