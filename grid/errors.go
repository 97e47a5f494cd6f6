// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
//
// Every message is prefixed with "grid: ..." so it greps cleanly in logs.
// Call sites attach context with fmt.Errorf("%s: %w", op, ErrX); callers
// branch with errors.Is only.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a grid dimension is < 1.
	ErrInvalidDimensions = errors.New("grid: dimension must be >= 1")

	// ErrOutOfRange indicates a row, column or flat index outside the grid.
	// Public accessors return it instead of panicking.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrEmptyInput classifies a blank size string (INPUT_EMPTY).
	ErrEmptyInput = errors.New("grid: size is empty")

	// ErrInvalidSize classifies a size string that is not an integer or lies
	// outside the accepted bounds (INPUT_INVALID_RANGE_OR_FORMAT).
	ErrInvalidSize = errors.New("grid: size is not a number within bounds")

	// ErrDimensionMismatch indicates a value slice whose length is not N².
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNilGrid indicates a nil *Grid was passed where a grid is required.
	ErrNilGrid = errors.New("grid: nil grid")
)

// gridErrorf wraps err with an operation tag, e.g. "Generate: grid: ...".
func gridErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
