// Package tspcs implements the city-selection Travelling Salesman Problem
// (TSP-CS) as a fitness-evaluation target for an external evolutionary
// search engine.
//
// Given a fully connected graph of n cities with per-edge weights, per-city
// values and a travel budget, a candidate chromosome is decoded into a tour
// (a permutation of the cities) and scored by the best contiguous cyclic
// sub-path of that tour whose total edge length fits the budget while
// maximizing the collected city value:
//
//   - BestSubsequence - the core two-pointer sliding-window search over the
//     cyclic tour. Complexity: O(n) after an O(n²) weight prefetch.
//   - (*Problem).Fitness - decodes the chromosome, runs the search and
//     scalarizes the outcome into a single minimization fitness.
//   - (*Problem).Constraints - per-encoding feasibility constraints
//     (degree + subtour-elimination rows for FULL, a permutation check for
//     CITIES, none for RANDOMKEYS).
//
// Problem instances are immutable after construction and validated eagerly;
// all evaluation entry points are pure and safe for concurrent use.
//
// Use this package when an evolutionary engine needs a budgeted
// prize-collecting variant of the TSP as its objective.
package tspcs
