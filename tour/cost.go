// Package tour - cost evaluation for permutations and closed tours.
//
// Two entry points cover the two representations:
//   - (*Encoding).Cost sums a permutation's legs without materializing the
//     closed tour (the hot path inside evolutionary loops).
//   - Cost sums an explicit closed tour, with a fast path for
//     *distmat.Dense and a generic path for any distmat.Matrix.
//
// Design:
//   - Legs are accumulated in fixed order (start→first, consecutive pairs,
//     last→start) so identical inputs always produce identical floats.
//   - Sums are rounded to 1e-9 to absorb cross-platform FP noise.
//   - Matrix values are used as-is; range ownership stays with distmat.
//
// Complexity: O(n) time, O(1) extra space for both paths.
package tour

import (
	"math"

	"github.com/katalvlaran/evotsp/distmat"
)

// roundScale controls final cost stabilization precision (1e-9).
// Small enough to never reorder genuinely different tours, large enough to
// absorb summation noise across platforms and optimization levels.
const roundScale = 1e9

// Cost sums the leg costs of an explicit tour t over m: legs t[i]→t[i+1]
// for i in [0..len(t)-2], accumulated left to right.
//
// Contract:
//   - m non-nil with N() >= 1, len(t) >= 2, every index in [0..N).
//   - Closure (t[0]==t[len-1]) is the caller's convention; use ValidateTour
//     when it must be enforced.
//
// Errors: ErrNilMatrix, ErrBadTour; lookup errors from m propagate as-is.
//
// Complexity: O(n).
func Cost(m distmat.Matrix, t []int) (float64, error) {
	if m == nil || m.N() < 1 {
		return 0, ErrNilMatrix
	}
	if len(t) < 2 {
		return 0, ErrBadTour
	}
	if d, ok := m.(*distmat.Dense); ok {
		return costDense(d, t)
	}

	return costGeneric(m, t)
}

// costDense accumulates legs through the concrete *distmat.Dense type,
// dodging interface dispatch on every lookup.
func costDense(d *distmat.Dense, t []int) (float64, error) {
	var (
		n   = d.N()
		L   = len(t) - 1 // number of legs
		sum float64
		i   int
		u   int
		v   int
		w   float64
		err error
	)
	for i = 0; i < L; i++ {
		u = t[i]
		v = t[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrBadTour
		}
		w, err = d.At(u, v)
		if err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// costGeneric accumulates legs through the distmat.Matrix interface.
// Same structure as costDense; slightly higher call overhead.
func costGeneric(m distmat.Matrix, t []int) (float64, error) {
	var (
		n   = m.N()
		L   = len(t) - 1
		sum float64
		i   int
		u   int
		v   int
		w   float64
		err error
	)
	for i = 0; i < L; i++ {
		u = t[i]
		v = t[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrBadTour
		}
		w, err = m.At(u, v)
		if err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// Cost evaluates a permutation without building the closed tour slice:
// start→visit[perm[0]], then consecutive pairs, then the closing leg back
// to start. An empty permutation (single-city instance) costs the single
// start→start leg.
//
// Contract:
//   - perm must be a bijection over 0..Len()-1 (ValidatePermutation).
//
// Errors: ErrInvalidPermutation; lookup errors from the matrix propagate.
//
// Complexity: O(n) time, O(1) extra space.
func (e *Encoding) Cost(perm []int) (float64, error) {
	if err := ValidatePermutation(perm, len(e.visit)); err != nil {
		return 0, err
	}

	var (
		sum  float64
		prev = e.start
		cur  int
		k    int
		w    float64
		err  error
	)
	for k = 0; k < len(perm); k++ {
		cur = e.visit[perm[k]]
		w, err = e.m.At(prev, cur)
		if err != nil {
			return 0, err
		}
		sum += w
		prev = cur
	}

	// Closing leg. For n==1 this is the only leg (start→start).
	w, err = e.m.At(prev, e.start)
	if err != nil {
		return 0, err
	}
	sum += w

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
