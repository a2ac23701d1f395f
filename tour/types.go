package tour

import "errors"

// Sentinel errors returned by the tour package.
var (
	// ErrNilMatrix indicates that a nil or zero-size distance matrix was
	// passed where a populated one is required.
	ErrNilMatrix = errors.New("tour: nil or empty distance matrix")

	// ErrStartOutOfRange indicates that the fixed start city is outside
	// [0, N).
	ErrStartOutOfRange = errors.New("tour: start city out of range")

	// ErrInvalidPermutation indicates that a candidate permutation is not a
	// bijection over 0..len-1 (wrong length, out-of-range value, or
	// duplicate). Given correct operators this is an internal-logic fault,
	// not a user error.
	ErrInvalidPermutation = errors.New("tour: invalid permutation")

	// ErrBadTour indicates that a closed tour violates its shape invariants
	// (length N+1, first == last == start, every city exactly once).
	ErrBadTour = errors.New("tour: malformed closed tour")
)
