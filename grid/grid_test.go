// Package grid_test contains unit tests for Grid storage and accessors.
package grid_test

import (
	"testing"

	"github.com/katalvlaran/transgrid/grid"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimensions ensures that New rejects non-positive dimensions.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := grid.New(0)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = grid.New(-3)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

// TestNewShape verifies Size and Len for every supported dimension.
func TestNewShape(t *testing.T) {
	for n := 1; n <= grid.MaxSize; n++ {
		g, err := grid.New(n)
		require.NoError(t, err)
		require.Equal(t, n, g.Size())
		require.Equal(t, n*n, g.Len())
		require.NotEmpty(t, g.ID())
	}
}

// TestFromValues checks copying semantics and length validation.
func TestFromValues(t *testing.T) {
	src := []int{1, 2, 3, 4}
	g, err := grid.FromValues(2, src)
	require.NoError(t, err)

	src[0] = 42 // caller keeps ownership
	v, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = grid.FromValues(2, []int{1, 2, 3})
	require.ErrorIs(t, err, grid.ErrDimensionMismatch)

	_, err = grid.FromValues(0, nil)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

// TestAtSetOutOfRange ensures accessors return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)

	_, err = g.At(-1, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)

	_, err = g.At(0, 2)
	require.ErrorIs(t, err, grid.ErrOutOfRange)

	err = g.Set(2, 0, 7)
	require.ErrorIs(t, err, grid.ErrOutOfRange)

	_, err = g.Value(4)
	require.ErrorIs(t, err, grid.ErrOutOfRange)

	_, err = g.Row(2)
	require.ErrorIs(t, err, grid.ErrOutOfRange)

	_, _, err = g.Coords(-1)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestRowMajorLayout validates that (row, col) maps to row*N + col.
func TestRowMajorLayout(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)

	require.NoError(t, g.Set(1, 2, 9))
	v, err := g.Value(1*3 + 2)
	require.NoError(t, err)
	require.Equal(t, 9, v)

	off, err := g.Offset(2, 1)
	require.NoError(t, err)
	require.Equal(t, 7, off)

	row, col, err := g.Coords(7)
	require.NoError(t, err)
	require.Equal(t, 2, row)
	require.Equal(t, 1, col)

	r1, err := g.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 9}, r1)
}

// TestCloneIndependence ensures Clone returns a deep copy with the same ID.
func TestCloneIndependence(t *testing.T) {
	g, err := grid.FromValues(2, []int{1, 2, 3, 4})
	require.NoError(t, err)

	c := g.Clone()
	require.Equal(t, g.ID(), c.ID())
	require.True(t, g.Equal(c))

	require.NoError(t, c.Set(0, 0, 5))
	v, _ := g.At(0, 0)
	require.Equal(t, 1, v)
	require.False(t, g.Equal(c))
}

// TestValuesIsCopy ensures Values does not expose the backing slice.
func TestValuesIsCopy(t *testing.T) {
	g, err := grid.FromValues(2, []int{1, 2, 3, 4})
	require.NoError(t, err)

	vals := g.Values()
	vals[3] = 0
	v, _ := g.Value(3)
	require.Equal(t, 4, v)
}

// TestEqualNil covers the nil branches of Equal.
func TestEqualNil(t *testing.T) {
	var a, b *grid.Grid
	require.True(t, a.Equal(b))

	g, err := grid.New(1)
	require.NoError(t, err)
	require.False(t, g.Equal(nil))
}

// TestStringOutput checks that String formats one bracketed row per line.
func TestStringOutput(t *testing.T) {
	g, err := grid.FromValues(2, []int{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", g.String())
}
