// Package evoprob is a library of combinatorial problem formulations meant
// to be plugged, as fitness-evaluation targets, into an external
// evolutionary-search engine.
//
// 🚀 What is evoprob?
//
//	A small, deterministic library that turns candidate chromosomes into
//	scalar fitness values and constraint vectors:
//		• Validation: every problem instance is checked eagerly at construction
//		• Encodings: arc-selection (FULL), random-keys and direct-permutation
//		  chromosomes, decoded through a pluggable TourDecoder
//		• Scoring: pure, lock-free evaluation - safe to call from many
//		  goroutines over the same immutable instance
//
// ✨ Why choose evoprob?
//
//   - Strict sentinels - every failure is a package-level error matched
//     via errors.Is; no panics on user input
//   - Deterministic - identical chromosome and instance always yield the
//     identical fitness and constraint vector
//   - Pure Go - gonum for matrices, nothing else on the hot path
//
// Under the hood, everything is organized under two subpackages:
//
//	tspcs/ - the city-selection travelling salesman problem (TSP-CS):
//	         best bounded-length subsequence search, fitness scalarization
//	         and per-encoding feasibility constraints
//	tour/  - chromosome → tour decoding (random-keys argsort, arc-selection
//	         walk, direct permutation) and arc index arithmetic
//
// Dive into the package docs and examples for usage patterns.
//
//	go get github.com/katalvlaran/evoprob
package evoprob
