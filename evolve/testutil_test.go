// Package evolve_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating production code.
package evolve_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/evotsp/distmat"
	"github.com/katalvlaran/evotsp/tour"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsCost matches the 1e-9 rounding applied to all cost sums.
	epsCost = 1e-9

	// seedDet is the deterministic seed used across engine tests.
	seedDet = int64(42)

	// startV is the canonical start city used across tests.
	startV = 0
)

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions, numeric closeness)
// -----------------------------------------------------------------------------

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustEqualInts asserts exact equality of two integer slices (length & values).
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustFloatClose asserts |got-want| <= abs.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if math.Abs(got-want) > abs {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (abs=%.1e)", got, want, abs)
	}
}

// mustValidPerm asserts that perm is a bijection over 0..n-1.
func mustValidPerm(t *testing.T, perm []int, n int) {
	t.Helper()
	if err := tour.ValidatePermutation(perm, n); err != nil {
		t.Fatalf("invalid permutation %v (n=%d): %v", perm, n, err)
	}
}

// -----------------------------------------------------------------------------
// Geometric generators (deterministic)
// -----------------------------------------------------------------------------

// euclid builds a *distmat.Dense metric from 2D points with zero diagonal.
func euclid(t *testing.T, pts [][2]float64) *distmat.Dense {
	t.Helper()

	var (
		n = len(pts)
		a = make([][]float64, n)
	)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}

	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			a[i][j] = d
			a[j][i] = d
		}
	}

	m, err := distmat.NewDense(a)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	return m
}

// rippledCircle places n points on a gently rippled circle. The ripple
// breaks symmetry ties so distinct tours have distinct costs.
func rippledCircle(n int) [][2]float64 {
	pts := make([][2]float64, n)

	var (
		i  int
		th float64
		r  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.025*float64(i%3)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}

	return pts
}

// bruteForceBest exhaustively searches every closed tour from start and
// returns the optimal cost together with one optimal tour. Only for tiny n
// (the test instances use n<=6).
func bruteForceBest(t *testing.T, m distmat.Matrix, start int) (float64, []int) {
	t.Helper()

	enc, err := tour.New(m, start)
	if err != nil {
		t.Fatalf("encoding failed: %v", err)
	}

	var (
		perm     = make([]int, enc.Len())
		best     = math.Inf(1)
		bestPerm []int
		i        int
	)
	for i = range perm {
		perm[i] = i
	}

	var walk func(k int)
	walk = func(k int) {
		if k == len(perm) {
			c, cerr := enc.Cost(perm)
			if cerr != nil {
				t.Fatalf("cost failed: %v", cerr)
			}
			if c < best {
				best = c
				bestPerm = slices.Clone(perm)
			}

			return
		}
		var j int
		for j = k; j < len(perm); j++ {
			perm[k], perm[j] = perm[j], perm[k]
			walk(k + 1)
			perm[k], perm[j] = perm[j], perm[k]
		}
	}
	walk(0)

	bestTour, err := enc.Decode(bestPerm)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	return best, bestTour
}
