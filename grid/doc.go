// SPDX-License-Identifier: MIT

// Package grid is the matrix store behind transgrid: a square N×N grid of
// small integers kept as one flat row-major slice.
//
// The package provides:
//
//   - Grid: dimension N plus N² ints, offset = row*N + col.
//   - Generate: fills a fresh Grid with uniform values in [0, bound).
//     Randomness is injected through functional options (WithSeed/WithRand).
//   - ParseSize / ParseSizeWithin: validate user text into a dimension and
//     classify failures as ErrEmptyInput or ErrInvalidSize.
//   - Transpose: in-place cycle-following permutation reporting every swap
//     to an optional callback; Transposed returns a copy built with the
//     direct row/col formula and serves as the reference.
//
// Errors are package sentinels and must be matched with errors.Is.
// Nothing in this package panics on user input; option constructors panic
// on nonsensical parameters (programmer error).
//
// Quick ASCII example (N=2):
//
//	[a, b]    transpose    [a, c]
//	[c, d]   ----------->  [b, d]
package grid
