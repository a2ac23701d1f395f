// Package tour_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating production code.
package tour_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/evotsp/distmat"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsCost matches the 1e-9 rounding applied to all cost sums.
	epsCost = 1e-9

	// startV is the canonical start city used across tests.
	startV = 0
)

// -----------------------------------------------------------------------------
// Minimal matrix implementation for tests: exercises the generic lookup path
// (anything that is not *distmat.Dense).
// -----------------------------------------------------------------------------

// gridMatrix is a simple bounds-checked square matrix over [][]float64.
type gridMatrix struct{ a [][]float64 }

var _ distmat.Matrix = gridMatrix{}

func (m gridMatrix) N() int { return len(m.a) }
func (m gridMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m.a) || j < 0 || j >= len(m.a) {
		return 0, distmat.ErrOutOfRange
	}

	return m.a[i][j], nil
}

// -----------------------------------------------------------------------------
// Generic helpers (assertions, numeric closeness)
// -----------------------------------------------------------------------------

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

// -----------------------------------------------------------------------------
// Geometric generators
// -----------------------------------------------------------------------------

// euclidRows builds a symmetric metric from 2D points with zero diagonal.
func euclidRows(pts [][2]float64) [][]float64 {
	n := len(pts)
	a := make([][]float64, n)

	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}

	// Fill upper triangle, mirror to lower triangle; keep exact diagonal zeros.
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			a[i][j] = d
			a[j][i] = d
		}
	}

	return a
}

// euclid builds a *distmat.Dense from 2D points.
func euclid(t *testing.T, pts [][2]float64) *distmat.Dense {
	t.Helper()
	m, err := distmat.NewDense(euclidRows(pts))
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	return m
}

// unitSquare returns four corners of the unit square; the perimeter tour
// 0→1→2→3→0 costs exactly 4.
func unitSquare() [][2]float64 {
	return [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}
