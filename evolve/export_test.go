// Test bridge: exposes operator internals to evolve_test without widening
// the production API. Compiled only as part of the test binary.
//
// Provided surface:
//   - Direct aliases for the pure operator kernels (rng, span, OX,
//     inversion) so black-box tests can verify their mechanics.
//   - Wrappers around population-level helpers that construct the
//     unexported individual type internally.
package evolve

import "math/rand"

var (
	// RngFromSeedForTest exposes the engine's seed policy (0 ⇒ default stream).
	RngFromSeedForTest = rngFromSeed

	// RandPermForTest exposes uniform permutation sampling.
	RandPermForTest = randPerm

	// RandSpanForTest exposes the inclusive two-point span draw.
	RandSpanForTest = randSpan

	// OXChildForTest exposes the deterministic order-crossover kernel.
	OXChildForTest = oxChild

	// CrossoverPairForTest exposes the probability-gated pair recombination.
	CrossoverPairForTest = crossoverPair

	// InvertForTest exposes inversion mutation.
	InvertForTest = invert

	// ReverseSegmentForTest exposes the in-place segment reversal primitive.
	ReverseSegmentForTest = reverseSegment
)

// EliminateDuplicatesForTest runs duplicate elimination over raw genotypes
// and returns the resulting genotypes in slot order.
func EliminateDuplicatesForTest(perms [][]int, permLen int, rng *rand.Rand) [][]int {
	pop := make([]individual, len(perms))

	var i int
	for i = range perms {
		p := make([]int, len(perms[i]))
		copy(p, perms[i])
		pop[i] = individual{perm: p}
	}
	eliminateDuplicates(pop, permLen, rng)

	out := make([][]int, len(pop))
	for i = range pop {
		out[i] = pop[i].perm
	}

	return out
}

// SelectorPicksForTest prepares a selector over a population with the given
// ascending costs and returns the indices picked by a fresh seeded stream.
// Costs must already be sorted ascending (the engine's ranking contract).
func SelectorPicksForTest(policy SelectionPolicy, costs []float64, seed int64, draws int) []int {
	pop := make([]individual, len(costs))

	var i int
	for i = range costs {
		pop[i] = individual{cost: costs[i], evaluated: true}
	}

	var (
		sel = newSelector(policy, pop, nil)
		rng = rngFromSeed(seed)
		out = make([]int, draws)
	)
	for i = 0; i < draws; i++ {
		out[i] = sel.pick(rng)
	}

	return out
}
