// SPDX-License-Identifier: MIT

// Package grid - Grid storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold an N×N grid in one flat slice with the explicit index formula row*N + col.
//   - Guarantee safety at the public surface: At/Set/Value return errors instead of panicking.
//   - Keep len(data) == N*N for the whole lifetime of a Grid (no resize).
//
// Complexity quicksheet:
//   - New: O(N²) zero-init; At/Set/Value: O(1); Clone/Values: O(N²).

package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxFromValues = "FromValues"
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxValue      = "Value"
	ctxRow        = "Row"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Grid is a square row-major grid of ints.
//   - n is the dimension N.
//   - data holds N*N values, offset = row*n + col.
//   - id identifies this grid instance for log correlation.
type Grid struct {
	n    int
	data []int
	id   uuid.UUID
}

var _ fmt.Stringer = (*Grid)(nil)

// New creates an n×n zero grid.
//
// Errors:
//   - ErrInvalidDimensions when n < 1.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(n int) (*Grid, error) {
	if n < 1 {
		return nil, gridErrorf(ctxNew, ErrInvalidDimensions)
	}

	return &Grid{n: n, data: make([]int, n*n), id: uuid.New()}, nil
}

// FromValues creates an n×n grid holding a copy of values (row-major).
// The caller keeps ownership of values.
//
// Errors:
//   - ErrInvalidDimensions when n < 1.
//   - ErrDimensionMismatch when len(values) != n*n.
func FromValues(n int, values []int) (*Grid, error) {
	if n < 1 {
		return nil, gridErrorf(ctxFromValues, ErrInvalidDimensions)
	}
	if len(values) != n*n {
		return nil, fmt.Errorf("%s: len=%d, want %d: %w", ctxFromValues, len(values), n*n, ErrDimensionMismatch)
	}
	data := make([]int, len(values))
	copy(data, values)

	return &Grid{n: n, data: data, id: uuid.New()}, nil
}

// Size returns the dimension N.
func (g *Grid) Size() int { return g.n }

// Len returns the number of cells, always N².
func (g *Grid) Len() int { return len(g.data) }

// ID returns the identifier assigned when the grid was created.
// Clones share the ID of their source.
func (g *Grid) ID() string { return g.id.String() }

// Offset converts (row, col) into a flat row-major index.
func (g *Grid) Offset(row, col int) (int, error) {
	if row < 0 || row >= g.n || col < 0 || col >= g.n {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxAt, row, col, ErrOutOfRange)
	}

	return row*g.n + col, nil
}

// Coords converts a flat index back into (row, col).
func (g *Grid) Coords(i int) (row, col int, err error) {
	if i < 0 || i >= len(g.data) {
		return 0, 0, fmt.Errorf("%s(%d): %w", ctxValue, i, ErrOutOfRange)
	}

	return i / g.n, i % g.n, nil
}

// At returns the value at (row, col).
func (g *Grid) At(row, col int) (int, error) {
	idx, err := g.Offset(row, col)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// Set assigns v at (row, col).
func (g *Grid) Set(row, col, v int) error {
	if row < 0 || row >= g.n || col < 0 || col >= g.n {
		return fmt.Errorf("%s(%d,%d): %w", ctxSet, row, col, ErrOutOfRange)
	}
	g.data[row*g.n+col] = v

	return nil
}

// Value returns the value stored at flat index i.
func (g *Grid) Value(i int) (int, error) {
	if i < 0 || i >= len(g.data) {
		return 0, fmt.Errorf("%s(%d): %w", ctxValue, i, ErrOutOfRange)
	}

	return g.data[i], nil
}

// Values returns a row-major copy of the grid contents.
func (g *Grid) Values() []int {
	out := make([]int, len(g.data))
	copy(out, g.data)

	return out
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) ([]int, error) {
	if r < 0 || r >= g.n {
		return nil, fmt.Errorf("%s(%d): %w", ctxRow, r, ErrOutOfRange)
	}
	out := make([]int, g.n)
	copy(out, g.data[r*g.n:(r+1)*g.n])

	return out, nil
}

// Clone returns a deep copy that shares nothing but the ID.
func (g *Grid) Clone() *Grid {
	data := make([]int, len(g.data))
	copy(data, g.data)

	return &Grid{n: g.n, data: data, id: g.id}
}

// Equal reports whether g and other have the same dimension and values.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.n != other.n {
		return false
	}
	for i := range g.data {
		if g.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line: "[1, 2]\n[3, 4]\n".
func (g *Grid) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < g.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < g.n; j++ {
			sb.WriteString(strconv.Itoa(g.data[i*g.n+j]))
			if j < g.n-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
