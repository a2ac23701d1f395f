package tour_test

import (
	"testing"

	"github.com/katalvlaran/evotsp/tour"
)

// TestCopyIndependence: mutating the copy must not touch the original.
func TestCopyIndependence(t *testing.T) {
	orig := []int{0, 2, 1, 0}

	cp := tour.Copy(orig)
	mustEqualInts(t, cp, orig)

	cp[1] = 9
	mustEqualInts(t, orig, []int{0, 2, 1, 0})

	if tour.Copy(nil) != nil {
		t.Fatalf("Copy(nil) should stay nil")
	}
}

// TestReverseKnown: the anchor stays put, the interior flips.
func TestReverseKnown(t *testing.T) {
	got, err := tour.Reverse([]int{0, 1, 2, 3, 0})
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	mustEqualInts(t, got, []int{0, 3, 2, 1, 0})
}

// TestReverseLeavesInputIntact: Reverse returns a fresh slice.
func TestReverseLeavesInputIntact(t *testing.T) {
	in := []int{2, 0, 1, 3, 2}

	if _, err := tour.Reverse(in); err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	mustEqualInts(t, in, []int{2, 0, 1, 3, 2})
}

// TestReverseTrivial: two-city and single-city tours are their own reversal.
func TestReverseTrivial(t *testing.T) {
	got, err := tour.Reverse([]int{0, 1, 0})
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	mustEqualInts(t, got, []int{0, 1, 0})

	got, err = tour.Reverse([]int{0, 0})
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	mustEqualInts(t, got, []int{0, 0})
}

// TestReverseRejectsOpen: unclosed sequences are not tours.
func TestReverseRejectsOpen(t *testing.T) {
	_, err := tour.Reverse([]int{0, 1, 2})
	mustErrIs(t, err, tour.ErrBadTour)

	_, err = tour.Reverse([]int{0})
	mustErrIs(t, err, tour.ErrBadTour)
}

// TestEqualModuloRotation: same cycle under a different anchor is equal,
// anything else is not.
func TestEqualModuloRotation(t *testing.T) {
	base := []int{0, 1, 2, 3, 0}

	cases := map[string]struct {
		other []int
		want  bool
	}{
		"identical":     {other: []int{0, 1, 2, 3, 0}, want: true},
		"rotated":       {other: []int{2, 3, 0, 1, 2}, want: true},
		"reversed":      {other: []int{0, 3, 2, 1, 0}, want: false},
		"differentLen":  {other: []int{0, 1, 2, 0}, want: false},
		"open":          {other: []int{0, 1, 2, 3, 4}, want: false},
		"missingAnchor": {other: []int{1, 2, 3, 4, 1}, want: false},
	}
	for name, tc := range cases {
		if got := tour.EqualModuloRotation(base, tc.other); got != tc.want {
			t.Fatalf("%s: EqualModuloRotation(%v,%v) = %v, want %v", name, base, tc.other, got, tc.want)
		}
	}
}
