// Package evolve - population bookkeeping: individuals, uniform sampling,
// evaluation and duplicate elimination.
//
// Design:
//   - An individual owns its permutation; operators hand over fresh slices,
//     never aliases into other individuals.
//   - Evaluation is the only place costs are computed, so the evaluated
//     flag is the single source of truth for cost validity.
//   - Duplicate elimination keeps the first occurrence of each genotype and
//     replaces later copies with freshly sampled individuals. Uniqueness is
//     best-effort: tiny search spaces (fewer distinct permutations than
//     population slots) stop retrying after a fixed number of resamples.
package evolve

import (
	"encoding/binary"
	"math/rand"

	"github.com/katalvlaran/evotsp/tour"
)

// maxDedupResamples bounds the fresh draws spent on one duplicate slot
// before accepting the collision. Keeps tiny instances from spinning.
const maxDedupResamples = 10

// individual is one population member: a permutation genotype plus its
// evaluated tour cost.
type individual struct {
	perm      []int
	cost      float64
	evaluated bool
}

// clone returns a deep copy (the permutation slice is duplicated).
func (ind individual) clone() individual {
	return individual{
		perm:      tour.Copy(ind.perm),
		cost:      ind.cost,
		evaluated: ind.evaluated,
	}
}

// samplePopulation draws size independent uniform permutations of length
// permLen. Costs are left unevaluated.
//
// Complexity: O(size·permLen).
func samplePopulation(size, permLen int, rng *rand.Rand) []individual {
	pop := make([]individual, size)

	var i int
	for i = 0; i < size; i++ {
		pop[i] = individual{perm: randPerm(permLen, rng)}
	}

	return pop
}

// evaluate costs every not-yet-evaluated individual through the encoding.
// Already-evaluated members (elites, surviving parents) are skipped so
// their costs stay bit-identical across generations.
//
// Complexity: O(size·n) lookups.
func evaluate(enc *tour.Encoding, pop []individual) error {
	var (
		i   int
		c   float64
		err error
	)
	for i = range pop {
		if pop[i].evaluated {
			continue
		}
		c, err = enc.Cost(pop[i].perm)
		if err != nil {
			return err
		}
		pop[i].cost = c
		pop[i].evaluated = true
	}

	return nil
}

// permKey encodes a permutation as a fixed-width byte string usable as a
// map key. Collision-free for any permutation length.
func permKey(perm []int) string {
	b := make([]byte, 8*len(perm))

	var i, v int
	for i, v = range perm {
		binary.LittleEndian.PutUint64(b[i*8:], uint64(v))
	}

	return string(b)
}

// eliminateDuplicates enforces genotype uniqueness within pop: the first
// occurrence of each permutation is kept, later copies are overwritten with
// fresh uniform samples (unevaluated). A replacement colliding again is
// redrawn up to maxDedupResamples times, then accepted as-is.
//
// Complexity: O(size·permLen) expected.
func eliminateDuplicates(pop []individual, permLen int, rng *rand.Rand) {
	if permLen <= 1 {
		// At most one distinct genotype exists; nothing to separate.
		return
	}

	var (
		seen = make(map[string]struct{}, len(pop))
		key  string
		i    int
		try  int
		ok   bool
	)
	for i = range pop {
		key = permKey(pop[i].perm)
		if _, ok = seen[key]; !ok {
			seen[key] = struct{}{}
			continue
		}

		// Replace the duplicate with a fresh random individual.
		for try = 0; try < maxDedupResamples; try++ {
			pop[i] = individual{perm: randPerm(permLen, rng)}
			key = permKey(pop[i].perm)
			if _, ok = seen[key]; !ok {
				break
			}
		}
		seen[key] = struct{}{}
	}
}
