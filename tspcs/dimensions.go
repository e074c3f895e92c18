package tspcs

// Dimensions returns the sizes of the continuous and integer parts of a
// chromosome for n cities under the given encoding:
//
//   - Full:       (n·(n−1)+2, (n−1)·(n−2)) - one relaxed variable per
//     directed arc between distinct cities plus two auxiliary slots, and
//     integer-constrained copies for the subtour-elimination formulation.
//   - RandomKeys: (0, 0) - the whole chromosome is continuous sort keys of
//     length n, accounted for by the engine's base representation.
//   - Cities:     (1, 0) - the chromosome is directly the integer tour; the
//     single continuous slot is a convention of the base representation.
//
// Pure and total: any Encoding outside the closed set yields (0, 0).
//
// Complexity: O(1).
func Dimensions(n int, enc Encoding) (continuous, integer int) {
	switch enc {
	case Full:
		return n*(n-1) + 2, (n - 1) * (n - 2)
	case Cities:
		return 1, 0
	default: // RandomKeys and out-of-set values
		return 0, 0
	}
}

// ConstraintDimensions returns the number of equality and inequality
// constraint rows the outer engine must allocate for n cities under the
// given encoding:
//
//   - Full:       2n equalities (degree rows) and (n−1)·(n−2) inequalities
//     (subtour-elimination rows).
//   - Cities:     one equality (the permutation check).
//   - RandomKeys: none - any key vector decodes to a valid permutation.
//
// Pure and total, mirroring Dimensions.
//
// Complexity: O(1).
func ConstraintDimensions(n int, enc Encoding) (equality, inequality int) {
	switch enc {
	case Full:
		return 2 * n, (n - 1) * (n - 2)
	case Cities:
		return 1, 0
	default:
		return 0, 0
	}
}
