// Package tour maps between the evolutionary search representation and
// concrete closed tours, and evaluates tour length.
//
// The search representation fixes a start city and permutes only the
// remaining cities: an individual is a permutation of indices into the
// ascending "cities to visit" list (all cities except the start). The
// package provides:
//
//   - Encoding — binds a distance matrix to a start city and precomputes
//     the cities-to-visit list.
//   - Decode — permutation → closed tour [start, …, start] of length N+1.
//   - Cost — tour length without materializing the tour (the fitness
//     function; lower is better, no scaling applied).
//   - Validation and comparison helpers for permutations and closed tours.
//
// All functions are deterministic and side-effect free, return sentinel
// errors from types.go, and never panic on user input. Costs are summed in
// a fixed order and rounded to 1e-9 so that identical tours produce
// bit-identical values across platforms.
package tour
