// Package tour - chromosome decoders shared by the problem formulations.
//
// This file contains compact, allocation-conscious decoders that operate
// purely on chromosome structure, without depending on weight matrices.
// Provided decoders:
//   - FromRandomKeys: rank order of continuous keys -> visiting order.
//   - FromArcSelection: greedy walk over selected (==1) arcs from city 0.
//   - FromCities: direct float-encoded permutation, rounded to indices.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n log n) for the argsort path, O(n²) for the arc walk; no hidden
//     allocations beyond the returned tour.
//   - Deterministic behavior with clear pre/post-conditions (equal keys are
//     broken by the smaller city index).
package tour

import (
	"math"
	"sort"
)

// ArcIndex maps the ordered city pair (i,j) with i≠j to its flat offset
// inside an arc-selection chromosome of n cities, skipping the diagonal:
//
//	ArcIndex(i,j,n) = i·(n−1) + j − (1 if j>i else 0)
//
// Contract:
//   - i != j, 0 ≤ i < n, 0 ≤ j < n. The result is unspecified otherwise.
//
// Complexity: O(1).
func ArcIndex(i, j, n int) int {
	if j > i {
		return i*(n-1) + j - 1
	}

	return i*(n-1) + j
}

// FromRandomKeys decodes a random-keys chromosome: the tour visits cities
// in ascending order of their keys. Any real-valued key vector decodes to a
// valid permutation by construction, so this decoder cannot fail; ties on
// equal keys are broken by the smaller city index for determinism.
//
// Contract:
//   - keys must be finite; the ordering of NaN keys is unspecified.
//
// Complexity: O(n log n) time, O(n) space.
func FromRandomKeys(keys []float64) []int {
	n := len(keys)
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}
	// Stable sort keeps equal-key cities in index order.
	sort.SliceStable(out, func(a, b int) bool { return keys[out[a]] < keys[out[b]] })

	return out
}

// FromArcSelection decodes an arc-selection (FULL) chromosome by walking the
// selected arcs greedily from city 0: out of each city, follow the first arc
// variable that equals exactly 1.
//
// Steps:
//  1. Verify the chromosome carries at least the n·(n−1) arc variables
//     (trailing auxiliary slots of the relaxed formulation are ignored).
//  2. Walk n cities starting at 0; a stalled walk (no selected arc) or a
//     revisited city means the chromosome encodes no Hamiltonian path.
//
// Contract:
//   - n ≥ 1; len(x) ≥ n·(n−1).
//   - Returned tour is a permutation of [0..n-1] starting at city 0.
//
// Errors: ErrSizeMismatch on a short chromosome, ErrInvalidChromosome when
// the walk stalls or revisits.
//
// Complexity: O(n²) time, O(n) space.
func FromArcSelection(x []float64, n int) ([]int, error) {
	if n <= 0 || len(x) < n*(n-1) {
		return nil, ErrSizeMismatch
	}

	var (
		out     = make([]int, 0, n)
		visited = make([]bool, n)
		cur     = 0 // the walk always starts from city 0
		next    int
		k, j    int
	)
	for k = 0; k < n; k++ {
		if visited[cur] {
			// The selected arcs close a sub-cycle before covering every city.
			return nil, ErrInvalidChromosome
		}
		visited[cur] = true
		out = append(out, cur)
		if k == n-1 {
			break // all cities placed; no outgoing arc needed
		}

		// Follow the unique selected arc out of cur.
		next = -1
		for j = 0; j < n; j++ {
			if j == cur {
				continue
			}
			if x[ArcIndex(cur, j, n)] == 1 {
				next = j
				break
			}
		}
		if next == -1 {
			return nil, ErrInvalidChromosome
		}
		cur = next
	}

	return out, nil
}

// FromCities decodes a direct-permutation (CITIES) chromosome: entry i is the
// index of the i-th visited city, stored as a float64. Entries are rounded to
// the nearest integer and range-checked; the decoder does NOT verify that the
// result is a permutation - that is the constraint evaluator's concern.
//
// Errors: ErrSizeMismatch when len(x) != n, ErrInvalidChromosome for NaN or
// out-of-range entries.
//
// Complexity: O(n) time, O(n) space.
func FromCities(x []float64, n int) ([]int, error) {
	if n <= 0 || len(x) != n {
		return nil, ErrSizeMismatch
	}

	out := make([]int, n)

	var (
		i int
		r float64
	)
	for i = 0; i < n; i++ {
		r = math.Round(x[i])
		// NaN propagates through Round and fails the self-equality test.
		if r != r || r < 0 || r >= float64(n) {
			return nil, ErrInvalidChromosome
		}
		out[i] = int(r)
	}

	return out, nil
}
