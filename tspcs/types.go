package tspcs

// Encoding is the closed set of chromosome representation schemes understood
// by the TSP-CS formulation. Every component that depends on the encoding
// (Dimensions, the decoder, the constraint evaluator) dispatches on this one
// tagged value, so adding an encoding touches one switch per component.
type Encoding int

const (
	// Full carries one relaxed variable per directed arc between distinct
	// cities, plus auxiliary slots and integer-constrained copies for the
	// subtour-elimination (MTZ) formulation.
	Full Encoding = iota

	// RandomKeys carries one continuous "sort key" per city; the rank order
	// of the keys defines the tour. Constraint-free by construction.
	RandomKeys

	// Cities carries the tour directly: entry i is the i-th visited city.
	Cities
)

// String implements fmt.Stringer with the canonical encoding names.
func (e Encoding) String() string {
	switch e {
	case Full:
		return "FULL"
	case RandomKeys:
		return "RANDOMKEYS"
	case Cities:
		return "CITIES"
	default:
		return "UNKNOWN"
	}
}

// valid reports whether e belongs to the closed encoding set.
func (e Encoding) valid() bool {
	return e == Full || e == RandomKeys || e == Cities
}

// TourDecoder converts a raw chromosome into a tour: a permutation of
// [0..n-1]. Implementations must be deterministic and side-effect free;
// StdDecoder is the stock implementation backed by the tour package.
type TourDecoder interface {
	// Decode returns the tour encoded by x under enc, or an error when the
	// decoding is undefined for the given chromosome.
	Decode(x []float64, n int, enc Encoding) ([]int, error)
}

// SubsequenceResult describes the best bounded-length sub-path found by
// BestSubsequence. Start and End are inclusive tour positions (indices into
// the tour, not city ids); the window runs cyclically from Start to End.
type SubsequenceResult struct {
	// Value is the sum of the per-city values collected by the window.
	Value float64

	// RemainingBudget is MaxPathLength minus the window's total edge length.
	RemainingBudget float64

	// Start is the tour position of the window's first city.
	Start int

	// End is the tour position of the window's last city.
	End int
}
