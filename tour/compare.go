// Package tour - structural helpers that operate purely on tour slices,
// without touching distance matrices.
//
// Provided helpers:
//   - Copy: independent copy of a tour slice.
//   - Reverse: fresh traversal-reversed closed tour (same cycle, opposite
//     direction, same anchor).
//   - EqualModuloRotation: equality of closed tours under rotation.
package tour

// Copy returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func Copy(t []int) []int {
	if t == nil {
		return nil
	}
	out := make([]int, len(t))
	copy(out, t)

	return out
}

// Reverse returns a fresh closed tour visiting the same cycle in the
// opposite direction: the anchor t[0]==t[n] is kept and the interior
// segment [1..n-1] is reversed. On symmetric matrices the reversed tour
// costs exactly the same.
//
// Contract:
//   - t must be closed: len(t) >= 2 and t[0] == t[len(t)-1].
//
// Errors: ErrBadTour.
//
// Complexity: O(n) time, O(n) space.
func Reverse(t []int) ([]int, error) {
	if len(t) < 2 || t[0] != t[len(t)-1] {
		return nil, ErrBadTour
	}

	var (
		out = Copy(t)
		i   = 1
		k   = len(t) - 2
	)
	for i < k {
		out[i], out[k] = out[k], out[i]
		i++
		k--
	}

	return out, nil
}

// EqualModuloRotation checks equality of two closed tours under rotation
// (same cycle order, same direction, possibly different anchors). Both
// inputs must be closed (len==n+1, first==last).
//
// Complexity: O(n) time.
func EqualModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}

	var (
		n  = len(a) - 1
		st = a[0]
	)
	if a[n] != st || b[n] != b[0] {
		return false
	}

	// Find a's anchor inside b[0..n-1].
	var (
		j int
		p = -1
	)
	for j = 0; j < n; j++ {
		if b[j] == st {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	// Compare by rotation.
	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}
