// Package evolve - inversion mutation over permutation genotypes.
//
// Inversion reverses one inclusive span of the permutation in place. On
// tour genotypes this is the classic 2-opt move: it replaces two edges of
// the decoded cycle while keeping the genotype a valid permutation.
package evolve

import "math/rand"

// reverseSegment reverses perm[i..k] inclusive, in place.
//
// Contract: 0 <= i <= k < len(perm).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegment(perm []int, i, k int) {
	for i < k {
		perm[i], perm[k] = perm[k], perm[i]
		i++
		k--
	}
}

// invert applies inversion mutation to perm with per-individual
// probability pm: one coin flip, then one randSpan draw when it hits.
// Degenerate genotypes (n < 2) are left untouched without consuming
// randomness.
//
// Contract: perm is a valid permutation; pm ∈ [0,1].
//
// Complexity: O(n) worst case.
func invert(rng *rand.Rand, perm []int, pm float64) {
	if len(perm) < 2 {
		return
	}
	if rng.Float64() >= pm {
		return
	}

	i, k := randSpan(rng, len(perm))
	reverseSegment(perm, i, k)
}
