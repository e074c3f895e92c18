// Package tour: sentinel error set.
// All decoders MUST return these sentinels and tests MUST check them via
// errors.Is. Panics are reserved for programmer errors in private helpers.

package tour

import "errors"

var (
	// ErrSizeMismatch is returned when a chromosome's length disagrees with
	// the length its encoding prescribes for the given city count.
	ErrSizeMismatch = errors.New("tour: chromosome length does not match the city count")

	// ErrInvalidChromosome is returned when a chromosome of the right length
	// has no well-defined decoding: the arc-selection walk stalls or revisits
	// a city, or a direct city entry is NaN or out of [0..n-1].
	ErrInvalidChromosome = errors.New("tour: chromosome does not decode to a tour")
)
