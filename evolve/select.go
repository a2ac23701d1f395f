// Package evolve - parent selection over a cost-ranked population.
//
// Both policies reduce to the same mechanism: build a cumulative weight
// table once per generation, then draw parents by binary search over it.
// The population must already be sorted ascending by cost (rank 0 = best);
// the engine owns that ordering.
//
// Design:
//   - selector is rebuilt every generation; it never outlives the ranking
//     it was prepared on.
//   - Draws cost O(log p); preparation costs O(p).
//   - Weights are strictly positive for every individual, so even the
//     worst genotype keeps a nonzero chance and diversity survives.
package evolve

import (
	"math/rand"
	"sort"
)

// proportionalEps is added to every cost before inversion so zero-cost
// tours (degenerate all-zero matrices) keep finite weights.
const proportionalEps = 1e-12

// selector draws parent indices from a prepared cumulative weight table.
type selector struct {
	cum []float64 // cum[i] = sum of weights 0..i; strictly increasing
}

// newSelector builds the cumulative table for the given policy over a
// population sorted ascending by cost.
//
// Complexity: O(p).
func newSelector(policy SelectionPolicy, pop []individual, scratch []float64) selector {
	var (
		p   = len(pop)
		cum = scratch[:0]
		sum float64
		i   int
	)

	switch policy {
	case SelectProportional:
		// Weight ∝ 1/cost: shorter tours draw more matings.
		for i = 0; i < p; i++ {
			sum += 1.0 / (pop[i].cost + proportionalEps)
			cum = append(cum, sum)
		}
	default:
		// SelectRank: linear pressure, best rank weighs p, worst weighs 1.
		for i = 0; i < p; i++ {
			sum += float64(p - i)
			cum = append(cum, sum)
		}
	}

	return selector{cum: cum}
}

// pick draws one parent index.
//
// Complexity: O(log p).
func (s selector) pick(rng *rand.Rand) int {
	var (
		total = s.cum[len(s.cum)-1]
		r     = rng.Float64() * total
	)
	// First index whose cumulative weight exceeds r.
	i := sort.SearchFloat64s(s.cum, r)
	if i == len(s.cum) {
		// r landed exactly on the total; clamp to the last slot.
		i = len(s.cum) - 1
	}

	return i
}
