// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Single source of truth for turning user text into a grid dimension.
//  - Return the classification sentinels (ErrEmptyInput, ErrInvalidSize)
//    wrapped with the offending value so UIs can pick a message via errors.Is.
//
// Note:
//  - Validators are pure and allocate nothing beyond the error value.

package grid

import (
	"fmt"
	"strconv"
	"strings"
)

const methodParseSize = "ParseSize"

// ParseSize validates s as a grid dimension with MinSize < n <= MaxSize.
//
// Errors:
//   - ErrEmptyInput when s is blank (whitespace only counts as blank).
//   - ErrInvalidSize when s is not a base-10 integer or is out of bounds.
func ParseSize(s string) (int, error) {
	return ParseSizeWithin(s, MinSize, MaxSize)
}

// ParseSizeWithin is ParseSize with explicit bounds: lo < n <= hi.
func ParseSizeWithin(s string, lo, hi int) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, gridErrorf(methodParseSize, ErrEmptyInput)
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%s(%q): %w", methodParseSize, trimmed, ErrInvalidSize)
	}
	if n <= lo || n > hi {
		return 0, fmt.Errorf("%s(%d): want %d < n <= %d: %w", methodParseSize, n, lo, hi, ErrInvalidSize)
	}

	return n, nil
}

// ValidateNotNil ensures the grid reference is non-nil.
func ValidateNotNil(g *Grid) error {
	if g == nil {
		return gridErrorf("ValidateNotNil", ErrNilGrid)
	}

	return nil
}
