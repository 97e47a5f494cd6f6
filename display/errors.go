// SPDX-License-Identifier: MIT

package display

import "errors"

var (
	// ErrNoMatrix is returned by Validate when the adapter has no grid yet
	// (NO_MATRIX_FOR_TRANSPOSE). Transpose itself stays a silent no-op.
	ErrNoMatrix = errors.New("display: no matrix available")

	// ErrOutOfRange indicates a display position outside [0, ItemCount()).
	ErrOutOfRange = errors.New("display: position out of range")
)
