// SPDX-License-Identifier: MIT
// Package grid: random content generation.
//
// Contract:
//   - n ≥ 1 (else ErrInvalidDimensions). Callers that accept user input run
//     ParseSize first, which enforces the tighter 1 < n ≤ 10 window.
//   - Produces n² independent draws from [0, bound) in row-major order.
//   - No side effects beyond the returned Grid.
//
// Determinism:
//   - Shape is always deterministic; content is deterministic only under
//     WithSeed/WithRand (fixed draw order: index 0 → n²-1).

package grid

const methodGenerate = "Generate"

// Generate returns a new n×n grid filled with uniform random values.
// Complexity: O(n²).
func Generate(n int, opts ...Option) (*Grid, error) {
	g, err := New(n)
	if err != nil {
		return nil, gridErrorf(methodGenerate, err)
	}

	cfg := newGenConfig(opts...)
	for i := range g.data {
		g.data[i] = cfg.intn(cfg.bound)
	}

	return g, nil
}
