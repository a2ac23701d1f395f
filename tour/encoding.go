// Package tour - encoding between permutations and closed tours.
//
// This file defines Encoding, the object that binds a distance matrix to a
// fixed start city. Permutation positions refer to offsets into the
// ascending cities-to-visit list, so the list order is part of the search
// contract: two runs with the same seed must see identical mappings.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from
//     types.go.
//   - O(n) helpers; the visit list is computed once at construction.
package tour

import "github.com/katalvlaran/evotsp/distmat"

// Encoding binds a distance matrix and a start city to the permutation
// search representation. Immutable after New; safe for concurrent readers.
type Encoding struct {
	m     distmat.Matrix // read-only distance lookup
	n     int            // number of cities (matrix order)
	start int            // fixed start city index
	visit []int          // ascending city indices excluding start; len n-1
}

// New builds an Encoding for the given matrix and start city.
//
// Contract:
//   - m must be non-nil with N() >= 1.
//   - start ∈ [0, N).
//
// Errors: ErrNilMatrix, ErrStartOutOfRange.
//
// Complexity: O(n) time and space.
func New(m distmat.Matrix, start int) (*Encoding, error) {
	if m == nil || m.N() < 1 {
		return nil, ErrNilMatrix
	}
	var n = m.N()
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	// Ascending order, start excluded. The determinism of this ordering is
	// load-bearing: permutations index into it.
	visit := make([]int, 0, n-1)

	var c int
	for c = 0; c < n; c++ {
		if c != start {
			visit = append(visit, c)
		}
	}

	return &Encoding{m: m, n: n, start: start, visit: visit}, nil
}

// N returns the number of cities.
// Complexity: O(1).
func (e *Encoding) N() int { return e.n }

// Start returns the fixed start city index.
// Complexity: O(1).
func (e *Encoding) Start() int { return e.start }

// Len returns the permutation length (N-1, the cities-to-visit count).
// Complexity: O(1).
func (e *Encoding) Len() int { return len(e.visit) }

// Visit returns a copy of the ascending cities-to-visit list.
// Complexity: O(n) time and space.
func (e *Encoding) Visit() []int {
	out := make([]int, len(e.visit))
	copy(out, e.visit)

	return out
}

// Decode maps a permutation to the closed tour
// [start, visit[perm[0]], …, visit[perm[len-1]], start] of length N+1.
//
// Contract:
//   - perm must be a bijection over 0..Len()-1 (ValidatePermutation).
//
// Errors: ErrInvalidPermutation.
//
// Complexity: O(n) time and space.
func (e *Encoding) Decode(perm []int) ([]int, error) {
	if err := ValidatePermutation(perm, len(e.visit)); err != nil {
		return nil, err
	}

	t := make([]int, e.n+1)
	t[0] = e.start

	var k int
	for k = 0; k < len(perm); k++ {
		t[k+1] = e.visit[perm[k]]
	}
	t[e.n] = e.start

	return t, nil
}
