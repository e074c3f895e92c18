// Package tspcs - the bounded-length best-subsequence search.
//
// This file implements the core algorithm of the formulation: given a cyclic
// tour, find the contiguous run of tour positions whose internal edge length
// fits the budget while maximizing the collected city value. The search is a
// classic two-pointer sliding window: edge weights are non-negative, so the
// window length is monotone in the window size, both cursors only ever move
// forward, and every maximal feasible window for a given left boundary is
// visited before the left boundary advances - linear total work.
//
// Design:
//   - Explicit finite-state loop with two monotone cursors and a by-value
//     window accumulator; no state shared across calls.
//   - Weights are prefetched into a flat buffer to remove interface
//     indirection from the hot loop (fast path for *mat.Dense).
//   - Strict sentinels from errors.go; no fmt.Errorf on the hot path.
package tspcs

import "gonum.org/v1/gonum/mat"

// window is the by-value accumulator of the two-pointer search. l and r are
// monotone cursors over tour positions: they grow without bound and are
// reduced mod n only when indexing, so "l%n == r%n" detects full wraparound.
type window struct {
	l, r   int     // inclusive cyclic boundaries (un-reduced positions)
	value  float64 // sum of values of the cities inside the window
	budget float64 // remaining budget; negative means the window overran
}

// better returns the preferred of two candidate windows: higher value wins,
// and on equal value the larger remaining budget (i.e. the shorter path)
// wins. Exact ties keep the incumbent, so the first-found window is the
// canonical result.
func better(best, cand window) window {
	if cand.value > best.value {
		return cand
	}
	if cand.value == best.value && cand.budget > best.budget {
		return cand
	}

	return best
}

// BestSubsequence finds the value-maximizing contiguous cyclic sub-path of
// tourSeq whose total internal edge length does not exceed maxLength.
//
// The tour is interpreted cyclically (position arithmetic mod n). A window
// [l..r] of tour positions has value = Σ values[tourSeq[p]] and length =
// sum of edge weights between consecutive cities inside it; a single city
// has zero internal length, so the search starts from the window holding
// position 0 alone with the full budget remaining.
//
// Contract:
//   - tourSeq must be a permutation of [0..n-1]; the result is unspecified
//     otherwise (callers guarantee this via the decoder).
//   - weights must be n×n with n == len(values).
//
// Errors: ErrSizeMismatch when len(tourSeq) != n or the shapes disagree.
//
// Complexity: O(n²) for the weight prefetch, O(n) for the search itself;
// O(n²) space for the flat weight buffer.
func BestSubsequence(tourSeq []int, weights mat.Matrix, values []float64, maxLength float64) (SubsequenceResult, error) {
	// Shape guards.
	n := len(values)
	if n == 0 || weights == nil {
		return SubsequenceResult{}, ErrSizeMismatch
	}
	if nr, nc := weights.Dims(); nr != nc || nr != n {
		return SubsequenceResult{}, ErrSizeMismatch
	}
	if len(tourSeq) != n {
		return SubsequenceResult{}, ErrSizeMismatch
	}

	// Prefetch weights into a flat buffer w[i*n+j] ~ At(i,j). For *mat.Dense
	// the raw backing slice already has this layout.
	var w []float64
	if d, ok := weights.(*mat.Dense); ok && d.RawMatrix().Stride == n {
		w = d.RawMatrix().Data
	} else {
		w = make([]float64, n*n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				w[i*n+j] = weights.At(i, j)
			}
		}
	}

	// The window holding tour position 0 alone is the initial incumbent.
	var (
		cur = window{value: values[tourSeq[0]], budget: maxLength}
		// best is updated through better() only on windows that are valid:
		// in-budget and not a full wrap.
		best  = cur
		growR = true // whether the right cursor may keep extending
		moveL = true // whether the outer loop may keep shrinking
	)

	for moveL {
		for growR {
			// Extend by one position: pay the newly traversed edge, collect
			// the newly included city.
			cur.budget -= w[tourSeq[cur.r%n]*n+tourSeq[(cur.r+1)%n]]
			cur.r++
			cur.value += values[tourSeq[cur.r%n]]

			if cur.budget < 0 || cur.l%n == cur.r%n {
				// Over budget, or wrapped to cover all n cities: this window
				// is not a candidate; stop growing for the current l.
				growR = false
			} else {
				best = better(best, cur)
			}
		}

		if cur.l%n == cur.r%n {
			// The window spans all n cities - no shrink can improve on a
			// full cover, which is the unique maximal window.
			moveL = false
		} else {
			// Shrink from the left: release the leftmost edge back into the
			// budget and drop the leftmost city.
			cur.budget += w[tourSeq[cur.l%n]*n+tourSeq[(cur.l+1)%n]]
			cur.value -= values[tourSeq[cur.l%n]]
			cur.l++

			if cur.budget >= 0 {
				growR = true
				best = better(best, cur)
			}
			if cur.l == n {
				moveL = false
			}
		}
	}

	return SubsequenceResult{
		Value:           best.value,
		RemainingBudget: best.budget,
		Start:           best.l % n,
		End:             best.r % n,
	}, nil
}

// BestSubsequence runs the core search against the instance's own weight
// matrix, value vector and budget. See the package-level BestSubsequence for
// the full contract.
func (p *Problem) BestSubsequence(tourSeq []int) (SubsequenceResult, error) {
	return BestSubsequence(tourSeq, p.weights, p.values, p.maxLen)
}
