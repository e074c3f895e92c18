// Package tour converts raw chromosomes into tours: ordered sequences of
// city indices in which every city of [0..n-1] appears exactly once.
//
// The package understands the three chromosome encodings used by the
// problem formulations in this module:
//
//   - FromRandomKeys - continuous "sort keys", one per city; the rank order
//     of the keys defines the visiting order.
//   - FromArcSelection - one relaxed variable per directed arc between
//     distinct cities; the tour is recovered by greedily following the
//     selected (==1) arcs starting from city 0.
//   - FromCities - the chromosome is directly the tour, stored as floats.
//
// ArcIndex maps an ordered city pair (i,j), i≠j, to its flat offset inside
// an arc-selection chromosome, skipping the diagonal.
//
// All functions are deterministic, side-effect free, and return only the
// sentinel errors declared in errors.go; no panics on user input.
package tour
