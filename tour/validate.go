// Package tour - structural validation of permutations and closed tours.
//
// Validation is separated from decoding so operators and tests can assert
// the invariants directly. All checks are O(n) with a single seen-array
// pass and report sentinel errors only.
package tour

// ValidatePermutation checks that perm is a bijection over 0..n-1:
// exactly n values, each in range, no repeats. An empty permutation is
// valid when n == 0 (single-city instances visit nothing).
//
// Errors: ErrInvalidPermutation.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrInvalidPermutation
	}

	var (
		seen = make([]bool, n)
		v    int
	)
	for _, v = range perm {
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidPermutation
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour checks that t is a closed tour over n cities anchored at
// start: length n+1, t[0] == t[n] == start, and t[0..n-1] visits every
// city exactly once.
//
// Errors: ErrBadTour, ErrStartOutOfRange.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(t []int, n, start int) error {
	if n < 1 {
		return ErrBadTour
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if len(t) != n+1 || t[0] != start || t[n] != start {
		return ErrBadTour
	}

	var (
		seen = make([]bool, n)
		i    int
		v    int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		if v < 0 || v >= n || seen[v] {
			return ErrBadTour
		}
		seen[v] = true
	}

	return nil
}
