// Package tspcs - problem construction and read-only accessors.
//
// A Problem is an immutable value: the weight matrix, value vector, budget
// and encoding are fixed and validated at construction, and every evaluation
// entry point is a pure function of (instance, chromosome). This is what
// makes concurrent evaluation by the outer search engine safe without locks.
package tspcs

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Problem is one TSP-CS instance: a fully connected graph of n cities with
// per-edge weights and per-city values, a budget on sub-path length, and the
// chromosome encoding the outer engine evolves against.
type Problem struct {
	weights *mat.Dense // n×n edge weights; owned copy, never mutated
	values  []float64  // per-city values; owned copy, never mutated
	maxLen  float64    // budget on total edge length of an accepted sub-path
	minVal  float64    // min over values, cached once at construction
	enc     Encoding
	dec     TourDecoder
	n       int
}

// New builds a TSP-CS instance from an n×n weight matrix, a length-n value
// vector, a maximum sub-path length and a chromosome encoding. The weight
// matrix and value vector are copied; the caller keeps ownership of its
// inputs. Chromosomes are decoded with StdDecoder.
//
// Errors: ErrUnsupportedEncoding, plus the checkWeights sentinels
// (ErrNotSquare, ErrDiagonalNotZero, ErrDisconnectedEdge, ErrInvalidWeight,
// ErrSizeMismatch) and ErrSizeMismatch when len(values) != n.
//
// Complexity: O(n²) time (validation + copy), O(n²) space.
func New(weights mat.Matrix, values []float64, maxPathLength float64, enc Encoding) (*Problem, error) {
	return NewWithDecoder(weights, values, maxPathLength, enc, StdDecoder{})
}

// NewWithDecoder is New with a caller-supplied TourDecoder, for engines that
// carry their own chromosome bookkeeping. dec must not be nil.
func NewWithDecoder(weights mat.Matrix, values []float64, maxPathLength float64, enc Encoding, dec TourDecoder) (*Problem, error) {
	// Stage 1: encoding must belong to the closed set.
	if !enc.valid() {
		return nil, ErrUnsupportedEncoding
	}
	if dec == nil {
		return nil, ErrSizeMismatch
	}

	// Stage 2: graph validation (shape, diagonal, connectivity, NaN).
	n, err := checkWeights(weights)
	if err != nil {
		return nil, err
	}

	// Stage 3: the value vector must match the matrix order.
	if len(values) != n {
		return nil, ErrSizeMismatch
	}

	// Stage 4: take owned copies and cache the value minimum.
	vals := make([]float64, n)
	copy(vals, values)

	return &Problem{
		weights: mat.DenseCopyOf(weights),
		values:  vals,
		maxLen:  maxPathLength,
		minVal:  floats.Min(vals),
		enc:     enc,
		dec:     dec,
		n:       n,
	}, nil
}

// Default returns the naive 3-city instance: unit off-diagonal weights,
// unit values, budget 1, RANDOMKEYS encoding.
func Default() *Problem {
	p, err := New(
		mat.NewDense(3, 3, []float64{
			0, 1, 1,
			1, 0, 1,
			1, 1, 0,
		}),
		[]float64{1, 1, 1},
		1.0,
		RandomKeys,
	)
	if err != nil {
		// The default instance is valid by construction.
		panic(err)
	}

	return p
}

// NCities returns the number of cities n.
func (p *Problem) NCities() int { return p.n }

// Encoding returns the chromosome encoding of the instance.
func (p *Problem) Encoding() Encoding { return p.enc }

// MaxPathLength returns the budget on total sub-path edge length.
func (p *Problem) MaxPathLength() float64 { return p.maxLen }

// MinValue returns the minimum over the value vector, cached at construction.
func (p *Problem) MinValue() float64 { return p.minVal }

// Weights returns a read-only view of the weight matrix. Callers must not
// mutate it; evaluation correctness relies on instance immutability.
func (p *Problem) Weights() mat.Matrix { return p.weights }

// Values returns an independent copy of the per-city value vector.
//
// Complexity: O(n) time, O(n) space.
func (p *Problem) Values() []float64 {
	out := make([]float64, p.n)
	copy(out, p.values)

	return out
}

// Distance returns the edge weight from city i to city j.
//
// Errors: ErrOutOfRange when either index is outside [0..n-1].
func (p *Problem) Distance(i, j int) (float64, error) {
	if i < 0 || i >= p.n || j < 0 || j >= p.n {
		return 0, ErrOutOfRange
	}

	return p.weights.At(i, j), nil
}
