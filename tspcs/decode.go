package tspcs

import "github.com/katalvlaran/evoprob/tour"

// StdDecoder is the stock TourDecoder backed by the tour package. It is
// stateless; the zero value is ready to use.
type StdDecoder struct{}

// Decode dispatches on the encoding:
//
//   - Full:       greedy walk over the selected (==1) arc variables.
//   - RandomKeys: argsort of the key vector (cannot fail for length n).
//   - Cities:     the chromosome is the tour, rounded and range-checked.
//
// Errors: tour.ErrSizeMismatch, tour.ErrInvalidChromosome,
// ErrUnsupportedEncoding.
func (StdDecoder) Decode(x []float64, n int, enc Encoding) ([]int, error) {
	switch enc {
	case Full:
		return tour.FromArcSelection(x, n)
	case RandomKeys:
		if len(x) != n {
			return nil, tour.ErrSizeMismatch
		}

		return tour.FromRandomKeys(x), nil
	case Cities:
		return tour.FromCities(x, n)
	default:
		return nil, ErrUnsupportedEncoding
	}
}
