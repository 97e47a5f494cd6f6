// SPDX-License-Identifier: MIT

// Package transgrid draws an N×N grid of random numbers and transposes it in
// place, one swap at a time.
//
// What is inside?
//
//	grid/              — the matrix store: flat row-major ints, generation,
//	                     size validation, cycle-following transpose
//	display/           — display adapter: row-major cell binding, move and
//	                     range-changed notifications
//	internal/screen/   — two-state home-screen controller driven by events
//	internal/tui/      — bubbletea front end with animated moves
//	internal/config/   — YAML configuration
//	internal/logging/  — zap logger construction
//	cmd/transgrid/     — cobra CLI (interactive screen, generate, transpose)
//
// Quick ASCII example (N=3, cycles of the transpose permutation):
//
//	 0 1 2        0 3 6        (1 3) (2 6) (5 7)
//	 3 4 5  --->  1 4 7        0, 4 and 8 stay put
//	 6 7 8        2 5 8
//
//	go install github.com/katalvlaran/transgrid/cmd/transgrid@latest
package transgrid
