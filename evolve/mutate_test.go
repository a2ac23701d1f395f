// Package evolve_test verifies inversion mutation: gated by the
// per-individual probability, always a single contiguous reversal, never a
// corrupted genotype.
package evolve_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/evotsp/evolve"
)

// TestInvertNeverFires: pm=0 leaves the genotype untouched.
func TestInvertNeverFires(t *testing.T) {
	var (
		rng  = evolve.RngFromSeedForTest(seedDet)
		perm = []int{3, 1, 4, 0, 2}
	)

	Repeat(t, 10, func(t *testing.T) {
		evolve.InvertForTest(rng, perm, 0)
		mustEqualInts(t, perm, []int{3, 1, 4, 0, 2})
	})
}

// TestInvertAlwaysFires: pm=1 reverses exactly the span the stream dictates.
// A twin stream replays the coin and span draws to predict the outcome.
func TestInvertAlwaysFires(t *testing.T) {
	const seed = int64(99)

	var (
		perm = []int{5, 2, 0, 4, 1, 3}
		want = slices.Clone(perm)
	)

	// Predict with a twin stream: one coin flip, then the span.
	twin := evolve.RngFromSeedForTest(seed)
	_ = twin.Float64()
	lo, hi := evolve.RandSpanForTest(twin, len(want))
	evolve.ReverseSegmentForTest(want, lo, hi)

	evolve.InvertForTest(evolve.RngFromSeedForTest(seed), perm, 1)
	mustEqualInts(t, perm, want)
	mustValidPerm(t, perm, len(perm))
}

// TestInvertKeepsValidity: genotypes stay permutations across many draws.
func TestInvertKeepsValidity(t *testing.T) {
	var (
		rng  = evolve.RngFromSeedForTest(seedDet)
		perm = evolve.RandPermForTest(12, rng)
		i    int
	)
	for i = 0; i < 500; i++ {
		evolve.InvertForTest(rng, perm, 0.5)
		mustValidPerm(t, perm, 12)
	}
}

// TestInvertTinyGenotypes: n<2 is a silent no-op.
func TestInvertTinyGenotypes(t *testing.T) {
	rng := evolve.RngFromSeedForTest(seedDet)

	single := []int{0}
	evolve.InvertForTest(rng, single, 1)
	mustEqualInts(t, single, []int{0})

	empty := []int{}
	evolve.InvertForTest(rng, empty, 1)
	if len(empty) != 0 {
		t.Fatalf("empty genotype should stay empty: %v", empty)
	}
}

// TestReverseSegmentKnown: inclusive bounds, both endpoints swapped.
func TestReverseSegmentKnown(t *testing.T) {
	perm := []int{0, 1, 2, 3, 4, 5}

	evolve.ReverseSegmentForTest(perm, 1, 4)
	mustEqualInts(t, perm, []int{0, 4, 3, 2, 1, 5})

	evolve.ReverseSegmentForTest(perm, 0, 5)
	mustEqualInts(t, perm, []int{5, 1, 2, 3, 4, 0})
}
