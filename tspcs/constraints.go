// Package tspcs - per-encoding feasibility constraints.
//
// Constraint convention (owned by the outer search engine, not redefined
// here): an equality row is satisfied when it equals 0, an inequality row
// when it is ≤ 0. Row layout per encoding matches ConstraintDimensions:
// equality rows first, inequality rows after.
package tspcs

import "github.com/katalvlaran/evoprob/tour"

// Constraints computes the feasibility constraint vector of a chromosome.
//
//   - Full: 2n degree equalities (exactly one selected arc out of and into
//     every city), then (n−1)·(n−2) MTZ subtour-elimination inequalities
//     built from the greedy arc-walk ranks (see rankFromArcs).
//   - Cities: a single equality that is 0 iff the chromosome is a
//     permutation of [0..n-1], 1 otherwise.
//   - RandomKeys: the empty vector - every key vector decodes to a valid
//     permutation by construction.
//
// Pure function of (instance, chromosome); safe for concurrent use.
//
// Errors: ErrSizeMismatch when the chromosome is shorter than its encoding
// prescribes.
//
// Complexity: O(n²) time, O(n) space (Full); O(n) otherwise.
func (p *Problem) Constraints(x []float64) ([]float64, error) {
	switch p.enc {
	case RandomKeys:
		return []float64{}, nil

	case Cities:
		if len(x) != p.n {
			return nil, ErrSizeMismatch
		}
		c := make([]float64, 1)
		if !isPermutation(x, p.n) {
			c[0] = 1
		}

		return c, nil

	case Full:
		return p.fullConstraints(x)

	default:
		return nil, ErrUnsupportedEncoding
	}
}

// fullConstraints evaluates the FULL-encoding constraint families over the
// n·(n−1) arc variables of x (trailing auxiliary slots are ignored).
//
// Complexity: O(n²) time, O(n) space.
func (p *Problem) fullConstraints(x []float64) ([]float64, error) {
	n := p.n
	if len(x) < n*(n-1) {
		return nil, ErrSizeMismatch
	}

	c := make([]float64, 2*n+(n-1)*(n-2))

	// Family 1: degree equalities. Row i sums the outgoing arcs of city i,
	// row i+n the incoming ones; both must select exactly one arc.
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			c[i] += x[tour.ArcIndex(i, j, n)]
			c[i+n] += x[tour.ArcIndex(j, i, n)]
		}
		c[i]--
		c[i+n]--
	}

	// Family 2: MTZ subtour-elimination inequalities over the ranks of the
	// greedy arc walk. Violated whenever the selected arcs would close a
	// sub-cycle not containing the start city.
	u := rankFromArcs(x, n)

	var count int
	for i = 1; i < n; i++ {
		for j = 1; j < n; j++ {
			if i == j {
				continue
			}
			c[2*n+count] = float64(u[i]-u[j]) + float64(n+1)*x[tour.ArcIndex(i, j, n)] - float64(n)
			count++
		}
	}

	return c, nil
}

// rankFromArcs derives the MTZ auxiliary ranks u by greedily walking the
// arc selection from city 0: at each step the walk follows the first arc
// variable out of the current city that equals exactly 1. Without loss of
// generality the tour is anchored at city 0, so u[0] == 1.
//
// The walk is total: when no arc is selected out of the current city the
// walk stays put, mirroring the rank semantics on infeasible chromosomes;
// the degree equalities flag those separately.
//
// Complexity: O(n²) time, O(n) space.
func rankFromArcs(x []float64, n int) []int {
	u := make([]int, n)

	var (
		cur  int
		next int
		i, j int
	)
	for i = 0; i < n; i++ {
		u[cur] = i + 1
		for j = 0; j < n; j++ {
			if j == cur {
				continue
			}
			if x[tour.ArcIndex(cur, j, n)] == 1 {
				next = j
				break
			}
		}
		cur = next
	}

	return u
}

// isPermutation reports whether x is, element for element, a permutation of
// the identity range [0..n-1]: every entry must be an exact integer in range
// and no entry may repeat (multiset equality against 0..n-1).
//
// Complexity: O(n) time, O(n) space.
func isPermutation(x []float64, n int) bool {
	seen := make([]bool, n)

	var (
		i  int
		v  float64
		iv int
	)
	for i = 0; i < n; i++ {
		v = x[i]
		// Range first (also rejects NaN), so the int conversion is safe.
		if !(v >= 0 && v < float64(n)) {
			return false
		}
		iv = int(v)
		if float64(iv) != v {
			return false
		}
		if seen[iv] {
			return false
		}
		seen[iv] = true
	}

	return true
}
