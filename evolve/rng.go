// Package evolve - RNG utilities for the evolutionary engine.
//
// This file centralizes deterministic random generation for the whole
// package.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Performance: no hidden allocations in hot paths; O(1) helpers, O(n)
//     shuffles.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each engine owns exactly one
//     stream; parallel runs must construct independent engines with their
//     own seeds.
package evolve

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var n = len(a)
	if n <= 1 {
		return
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randPerm returns a uniform permutation of 0..n-1 drawn from rng.
// Contract: n >= 0 (callers derive n from the encoding's Len).
//
// Complexity: O(n) time, O(n) space.
func randPerm(n int, rng *rand.Rand) []int {
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)

	return p
}

// randSpan draws an inclusive index span [i,k] with 0 <= i < k <= n-1:
// two distinct uniform indices, returned in ascending order. Exactly two
// rng draws, so call sites stay reproducible.
// Contract: n >= 2.
//
// Complexity: O(1).
func randSpan(rng *rand.Rand, n int) (int, int) {
	var (
		i = rng.Intn(n)
		k = rng.Intn(n - 1)
	)
	// Shift k past i to make the pair distinct without rejection loops.
	if k >= i {
		k++
	} else {
		i, k = k, i
	}

	return i, k
}
