// Package tspcs - construction-time validation of TSP-CS instances.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - Row-major scan, first violation wins; O(n²) worst case, no allocations.
package tspcs

import "gonum.org/v1/gonum/mat"

// checkWeights verifies that w is a legal TSP-CS adjacency matrix and
// returns its order n on success.
//
// Contract:
//   - w must be non-nil, square, of order n ≥ 1;
//   - every diagonal entry is exactly zero (no self-loops);
//   - every off-diagonal entry is non-zero (fully connected graph) and not
//     NaN (checked via the self-inequality test x != x).
//
// Errors: ErrSizeMismatch, ErrNotSquare, ErrDiagonalNotZero,
// ErrDisconnectedEdge, ErrInvalidWeight.
//
// Complexity: O(n²) time, O(1) space.
func checkWeights(w mat.Matrix) (int, error) {
	// Stage 1: shape. A dense gonum matrix is rectangular by construction,
	// so the per-row length check collapses to a single Dims comparison.
	if w == nil {
		return 0, ErrSizeMismatch
	}
	nr, nc := w.Dims()
	if nr != nc {
		return 0, ErrNotSquare
	}
	if nr < 1 {
		return 0, ErrSizeMismatch
	}

	// Stage 2: cell scan, row-major, first violation wins.
	var (
		n = nr
		i int
		j int
		x float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = w.At(i, j)
			if i == j {
				if x != 0 {
					return 0, ErrDiagonalNotZero
				}

				continue
			}
			if x == 0 {
				return 0, ErrDisconnectedEdge
			}
			if x != x { // NaN is the only value unequal to itself
				return 0, ErrInvalidWeight
			}
		}
	}

	return n, nil
}
