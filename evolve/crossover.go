// Package evolve - order crossover (OX) over permutation genotypes.
//
// The recombination keeps one donor segment intact and fills the remaining
// positions with the receiver's genes in receiver order:
//
//	receiver  r = [r0 r1 r2 r3 r4]
//	donor     d,  span [1,3] ⇒ donation = d[1..3]
//	child       = [r' r' d1 d2 d3 r']  with r' = r-genes ∉ donation,
//	              spliced so the donation occupies positions 1..3.
//
// Both children of a pair reuse the same span with swapped roles, which
// keeps the pair symmetric and costs a single randSpan draw.
//
// Design:
//   - oxChild is pure and deterministic given the span; all randomness
//     stays in crossoverPair.
//   - Children are always fresh slices; parents are never written to.
//   - Valid permutations in ⇒ valid permutations out, by construction.
package evolve

import "math/rand"

// oxChild builds one order-crossover child from receiver r and donor d
// using the inclusive span [i,k].
//
// Contract: r and d are equal-length permutations over the same set,
// 0 <= i <= k < len(r).
//
// Complexity: O(n) time, O(n) space.
func oxChild(r, d []int, i, k int) []int {
	var (
		n     = len(r)
		child = make([]int, 0, n)
		inSeg = make([]bool, n)
		p     int
	)
	// Mark the donated genes.
	for p = i; p <= k; p++ {
		inSeg[d[p]] = true
	}

	// Receiver genes outside the donation, in receiver order, up to the
	// splice point.
	var taken int
	for p = 0; p < n && taken < i; p++ {
		if !inSeg[r[p]] {
			child = append(child, r[p])
			taken++
		}
	}
	rest := p

	// The donated segment occupies positions i..k.
	child = append(child, d[i:k+1]...)

	// Remaining receiver genes, continuing where the prefix stopped.
	for p = rest; p < n; p++ {
		if !inSeg[r[p]] {
			child = append(child, r[p])
		}
	}

	return child
}

// crossoverPair recombines parents a and b. With probability pc it draws
// one span and produces the two OX children (a-receiver/b-donor and the
// roles swapped); otherwise both children are plain copies. Parents are
// untouched either way.
//
// Contract: a and b are equal-length permutations; pc ∈ [0,1].
//
// Complexity: O(n) time, O(n) space per child.
func crossoverPair(rng *rand.Rand, a, b []int, pc float64) ([]int, []int) {
	var n = len(a)

	// Degenerate genotypes (n < 2) cannot host a two-point span; pass
	// copies through so tiny instances keep working.
	if n < 2 || rng.Float64() >= pc {
		c1 := make([]int, n)
		c2 := make([]int, n)
		copy(c1, a)
		copy(c2, b)

		return c1, c2
	}

	i, k := randSpan(rng, n)

	return oxChild(a, b, i, k), oxChild(b, a, i, k)
}
