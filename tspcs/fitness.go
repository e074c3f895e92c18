// Package tspcs - fitness scalarization.
package tspcs

import "math"

// roundScale controls final fitness stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting the
// ordering of genuinely different fitness values.
const roundScale = 1e9

// Fitness decodes the chromosome into a tour, runs the bounded-length
// best-subsequence search and scalarizes the outcome:
//
//	fitness = -(bestValue + (1 - minValue)·n + remainingBudget/maxPathLength)
//
// The negation turns the natural value maximization into the minimization
// the outer engine expects; the (1-minValue)·n term keeps the primary term
// non-negative regardless of the sign and scale of the raw city values; the
// remainingBudget/maxPathLength term is a (0,1]-bounded tie-break bonus that
// nudges the search toward shorter accepted sub-paths without ever
// dominating a genuine value difference.
//
// Pure function of (instance, chromosome); safe for concurrent use.
//
// Errors: decode failures are propagated as-is (tour.ErrSizeMismatch,
// tour.ErrInvalidChromosome); ErrSizeMismatch when the decoded tour length
// disagrees with the city count.
//
// Complexity: decoder cost + O(n²) (see BestSubsequence).
func (p *Problem) Fitness(x []float64) (float64, error) {
	t, err := p.dec.Decode(x, p.n, p.enc)
	if err != nil {
		return 0, err
	}

	res, err := p.BestSubsequence(t)
	if err != nil {
		return 0, err
	}

	f := -(res.Value + (1-p.minVal)*float64(p.n) + res.RemainingBudget/p.maxLen)

	return round1e9(f), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
