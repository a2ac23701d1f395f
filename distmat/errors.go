// SPDX-License-Identifier: MIT
// Package distmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// distmat package. All constructors and accessors MUST return these
// sentinels and tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions.

package distmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "distmat: ..." for consistency and to allow
// easy grepping across logs. Return the sentinels bare from detection sites;
// when coordinates or line numbers are essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still match
// via errors.Is.

var (
	// ErrMalformedInput is returned when raw input cannot form a valid
	// square matrix: ragged rows, non-square shape, empty input, or (from
	// the parsers) tokens that are not finite non-negative numbers.
	ErrMalformedInput = errors.New("distmat: malformed input")

	// ErrOutOfRange indicates that a row or column index is outside [0,N).
	// Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("distmat: index out of range")

	// ErrNoCities is returned when a city list is empty where at least one
	// city is required (FromCities, ParseCities).
	ErrNoCities = errors.New("distmat: no cities")

	// ErrDuplicateCity signals that two city records share the same ID.
	ErrDuplicateCity = errors.New("distmat: duplicate city id")
)
