// SPDX-License-Identifier: MIT

// Package distmat: domain-facing types shared by the dense storage and the
// loaders. Errors live in errors.go per the package conventions.
package distmat

// Matrix is the read-only distance-lookup contract consumed by the solver
// packages. Implementations must be safe for concurrent readers.
//
// Complexity notes: both methods are expected O(1).
type Matrix interface {
	// N returns the matrix order (the number of cities).
	// Complexity: O(1).
	N() int

	// At returns the distance from city i to city j, or ErrOutOfRange when
	// either index is outside [0,N).
	// Complexity: O(1).
	At(i, j int) (float64, error)
}

// City is a single city record as read from a city data file.
// IDs are 1-indexed in external files; matrix indices are ID-1.
// Coordinates are read-only after load.
type City struct {
	ID int     // 1-indexed external identifier
	X  float64 // x coordinate
	Y  float64 // y coordinate
}
