// SPDX-License-Identifier: MIT

// Package display maps a grid.Grid onto visual cells and drives the
// transpose animation.
//
// Display positions equal storage positions (row-major), so cell p shows
// grid value p and sits at row p/N, column p%N of an N-column layout.
//
// Transpose permutes the underlying grid in place and emits, in order:
//
//   - one KindMoved notification per swap performed by the cycle walk,
//   - exactly one KindRangeChanged notification covering all N² cells.
//
// Listeners are plain functions registered with WithListener; the same
// notifications are also returned to the caller so a UI can replay them as
// animation frames.
package display
