// SPDX-License-Identifier: MIT

// Package grid - transpose kernels.
//
// Purpose:
//   - TransposeInPlace permutes the flat slice so that the value at
//     row*N + col ends at col*N + row, without a second buffer.
//   - Transposed builds a fresh grid with the direct row/col formula; it is the
//     reference TransposeInPlace is checked against.
//
// Permutation:
//   - For 0 < i < N²-1 the target of i is (i*N) mod (N²-1), because
//     (r*N + c)*N = r*N² + c*N ≡ c*N + r (mod N²-1).
//   - Indices 0 and N²-1 are fixed points and are never touched.
//
// Cycle walk:
//   - Each cycle is entered at its smallest unvisited index s. Position s acts as
//     the carry slot: swap(s, p(cur)) drops the carried value on its target and
//     picks up the displaced one, until the cycle closes back on s.
//   - A cycle of length L costs exactly L-1 swaps, the minimum for a permutation.
//
// Complexity:
//   - Time O(N²), Space O(N²) bits for the visited set.

package grid

// SwapFunc observes one swap of flat indices from ↔ to during TransposeInPlace.
// The value that was at from now sits at to.
type SwapFunc func(from, to int)

// TransposeInPlace transposes g and reports every swap to onSwap (may be nil).
// It returns the number of swaps performed. N=1 is a no-op.
func (g *Grid) TransposeInPlace(onSwap SwapFunc) int {
	last := len(g.data) - 1 // modulus N²-1; also the last fixed point
	if last < 2 {
		return 0
	}

	visited := make([]bool, len(g.data))
	swaps := 0
	var start, next int
	for start = 1; start < last; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		for next = g.transposeTarget(start, last); next != start; next = g.transposeTarget(next, last) {
			g.data[start], g.data[next] = g.data[next], g.data[start]
			visited[next] = true
			swaps++
			if onSwap != nil {
				onSwap(start, next)
			}
		}
	}

	return swaps
}

// transposeTarget returns p(i) = i*N mod (N²-1) for 0 < i < N²-1.
func (g *Grid) transposeTarget(i, modulus int) int {
	return (i * g.n) % modulus
}

// Transposed returns a new grid equal to gᵀ. g is not modified.
// The copy keeps g's ID.
// Complexity: O(N²).
func (g *Grid) Transposed() *Grid {
	res := &Grid{n: g.n, data: make([]int, len(g.data)), id: g.id}
	var i, j, base int
	for i = 0; i < g.n; i++ {
		base = i * g.n
		for j = 0; j < g.n; j++ {
			res.data[j*g.n+i] = g.data[base+j]
		}
	}

	return res
}

// Cycles returns the non-trivial cycles of the transpose permutation for an
// n×n grid, each listed from its smallest index in visiting order.
// Useful for diagnostics; the move count of TransposeInPlace is
// Σ(len(cycle)-1) over the result.
func Cycles(n int) ([][]int, error) {
	if n < 1 {
		return nil, gridErrorf("Cycles", ErrInvalidDimensions)
	}
	last := n*n - 1
	if last < 2 {
		return nil, nil
	}

	visited := make([]bool, n*n)
	var out [][]int
	for start := 1; start < last; start++ {
		if visited[start] {
			continue
		}
		cycle := []int{start}
		visited[start] = true
		for next := (start * n) % last; next != start; next = (next * n) % last {
			cycle = append(cycle, next)
			visited[next] = true
		}
		if len(cycle) > 1 {
			out = append(out, cycle)
		}
	}

	return out, nil
}
