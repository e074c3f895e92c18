// Package tspcs: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the tspcs
// package. All entry points MUST return these sentinels (or the tour package
// ones they propagate) and tests MUST check them via errors.Is. No function
// panics on user-triggered error conditions.

package tspcs

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tspcs: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape (square/size) -> diagonal -> connectivity -> NaN, scanning row-major;
// the first violation found wins.

var (
	// ErrNotSquare signals that the weight matrix is not square.
	ErrNotSquare = errors.New("tspcs: weight matrix is not square")

	// ErrDiagonalNotZero signals a non-zero entry on the main diagonal
	// (self-loops are not part of a TSP instance).
	ErrDiagonalNotZero = errors.New("tspcs: main diagonal entries must all be zero")

	// ErrDisconnectedEdge signals a zero off-diagonal entry: the graph must
	// be fully connected, so every edge between distinct cities needs a
	// non-zero weight.
	ErrDisconnectedEdge = errors.New("tspcs: weight matrix contains zero off-diagonal entries")

	// ErrInvalidWeight signals a NaN edge weight, detected via the
	// self-inequality test x != x.
	ErrInvalidWeight = errors.New("tspcs: weight matrix contains NaN values")

	// ErrSizeMismatch indicates incompatible sizes between collaborating
	// inputs: values vector vs. matrix order at construction, or a decoded
	// tour whose length disagrees with the city count at evaluation.
	ErrSizeMismatch = errors.New("tspcs: size mismatch")

	// ErrOutOfRange indicates that a city index is outside [0..n-1].
	ErrOutOfRange = errors.New("tspcs: city index out of range")

	// ErrUnsupportedEncoding marks an Encoding value outside the closed
	// Full/RandomKeys/Cities set.
	ErrUnsupportedEncoding = errors.New("tspcs: unsupported chromosome encoding")
)
