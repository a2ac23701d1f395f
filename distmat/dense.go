// SPDX-License-Identifier: MIT

// Package distmat - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*n + j.
//   - Guarantee safety at the public surface: At returns errors instead of
//     panicking.
//   - Keep the matrix immutable after construction: the constructor deep
//     copies its input and no mutating method is exposed, so a *Dense may
//     be shared across concurrent solver runs without synchronization.
//
// Complexity quicksheet:
//   - NewDense/FromCities: O(n²); At/N: O(1).
package distmat

import (
	"fmt"
	"math"
)

// Dense is a concrete immutable row-major distance matrix.
//   - n holds the matrix order.
//   - data is a flat buffer of length n*n in row-major order (offset i*n+j).
type Dense struct {
	n    int       // matrix order (number of cities)
	data []float64 // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*Dense)(nil)

// NewDense builds an immutable n×n matrix from raw rows.
//
// Contract:
//   - rows must be non-empty, square, and non-ragged; each len(rows[i])
//     must equal len(rows).
//   - The input is deep-copied; later mutation of rows does not affect the
//     returned matrix.
//   - Shape only: symmetry, zero diagonal and value ranges are NOT checked
//     here (see the parsers for value validation).
//
// Errors: ErrMalformedInput on empty, ragged, or non-square input.
//
// Complexity: O(n²) time and space.
func NewDense(rows [][]float64) (*Dense, error) {
	var n = len(rows)
	if n == 0 {
		return nil, ErrMalformedInput
	}

	buf := make([]float64, n*n)

	var (
		i int // row index
		j int // column index
	)
	for i = 0; i < n; i++ {
		// Ragged or non-square input violates the shape contract.
		if len(rows[i]) != n {
			return nil, ErrMalformedInput
		}
		for j = 0; j < n; j++ {
			buf[i*n+j] = rows[i][j]
		}
	}

	return &Dense{n: n, data: buf}, nil
}

// FromCities builds a symmetric Euclidean matrix from 2D city coordinates,
// with an exact zero diagonal. Entry (i,j) is the distance between
// cities[i] and cities[j]; callers that need the external-ID mapping should
// pass a slice sorted by ID (ParseCities already returns one).
//
// Contract:
//   - len(cities) >= 1; city IDs must be pairwise distinct.
//
// Errors: ErrNoCities, ErrDuplicateCity.
//
// Complexity: O(n²) time and space.
func FromCities(cities []City) (*Dense, error) {
	var n = len(cities)
	if n == 0 {
		return nil, ErrNoCities
	}

	// Reject ambiguous inputs early: duplicate IDs would make the
	// index↔ID mapping meaningless for reporting.
	seen := make(map[int]struct{}, n)

	var i int
	for i = 0; i < n; i++ {
		if _, ok := seen[cities[i].ID]; ok {
			return nil, ErrDuplicateCity
		}
		seen[cities[i].ID] = struct{}{}
	}

	buf := make([]float64, n*n)

	// Fill the upper triangle and mirror; keep exact zeros on the diagonal.
	var (
		j      int
		dx, dy float64
		d      float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = cities[i].X - cities[j].X
			dy = cities[i].Y - cities[j].Y
			d = math.Hypot(dx, dy)
			buf[i*n+j] = d
			buf[j*n+i] = d
		}
	}

	return &Dense{n: n, data: buf}, nil
}

// N returns the matrix order. No side effects.
// Complexity: O(1).
func (m *Dense) N() int { return m.n }

// At returns the distance at (i,j) with defensive bound checks.
// The sentinel is wrapped with method context and coordinates for
// diagnostics; match with errors.Is(err, ErrOutOfRange).
//
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}
