// Package evolve - the generational engine.
//
// One Engine binds a distance matrix, a start city and a validated Options
// set. Run executes the full evolutionary loop and returns a self-contained
// Result; it never returns a partially evolved population.
//
// Stages per generation:
//  1. evaluate new genotypes (elites keep their bit-identical costs),
//  2. reinsert the global best over the current worst when it fell out,
//  3. rank ascending by cost, advance the global best,
//  4. select parents (rank or proportional pressure),
//  5. breed: order crossover, inversion mutation, duplicate elimination.
//
// Cancellation is observed once per generation, at the loop boundary, so
// every observable state is a committed generation.
package evolve

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/evotsp/distmat"
	"github.com/katalvlaran/evotsp/tour"
)

// Engine runs the evolutionary search for one (matrix, start, Options)
// binding. Not safe for concurrent use: one goroutine per Engine. Repeated
// Run calls restart from scratch and yield identical Results.
type Engine struct {
	enc   *tour.Encoding
	opts  Options
	state State // written by Run; read via State after Run or from the same goroutine
}

// New validates the full configuration and constructs an Engine.
//
// Contract:
//   - m non-nil with N() >= 1, start ∈ [0,N).
//   - PopSize >= 2, Generations >= 1, probabilities in [0,1], a known
//     selection policy.
//
// Errors: ErrNilMatrix, ErrPopulationSize, ErrGenerations, ErrProbability,
// ErrSelectionPolicy, tour.ErrStartOutOfRange. All checks happen here;
// Run performs no configuration validation.
//
// Complexity: O(n) (encoding construction).
func New(m distmat.Matrix, start int, opts ...Option) (*Engine, error) {
	// Stage 1 - defaults, then user overrides.
	var o = DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 2 - fail-fast validation, cheapest checks first.
	if m == nil || m.N() < 1 {
		return nil, ErrNilMatrix
	}
	if o.PopSize < 2 {
		return nil, ErrPopulationSize
	}
	if o.Generations < 1 {
		return nil, ErrGenerations
	}
	if !validProb(o.CrossoverProb) || !validProb(o.MutationProb) {
		return nil, ErrProbability
	}
	switch o.Selection {
	case SelectRank, SelectProportional:
	default:
		return nil, ErrSelectionPolicy
	}

	// Stage 3 - bind matrix and start city (validates the start range).
	enc, err := tour.New(m, start)
	if err != nil {
		return nil, err
	}

	return &Engine{enc: enc, opts: o}, nil
}

// validProb reports whether p is a probability. NaN fails both comparisons.
func validProb(p float64) bool {
	return p >= 0 && p <= 1
}

// State returns the phase the engine reached. Meaningful from the Run
// goroutine or after Run returned; the field is not synchronized.
func (e *Engine) State() State { return e.state }

// Options returns a copy of the validated configuration (the callback
// field is shared, everything else is by value).
func (e *Engine) Options() Options { return e.opts }

// Run executes the generational loop to the configured budget and returns
// the best tour found.
//
// Contract:
//   - ctx may be nil (treated as context.Background()).
//   - Cancellation is honored at generation boundaries only; the error
//     wraps ctx.Err() and names the generation that was about to start.
//     No Result is returned in that case.
//
// Determinism: identical (matrix, start, Options) ⇒ bit-identical Result.
//
// Complexity: O(Generations · PopSize · n) time,
// O(PopSize · n) space.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		t0       = time.Now()
		rng      = rngFromSeed(e.opts.Seed)
		permLen  = e.enc.Len()
		history  = make([]float64, 0, e.opts.Generations)
		weights  = make([]float64, 0, e.opts.PopSize) // selector scratch, reused
		costs    []float64                            // stats scratch, allocated on demand
		best     individual
		haveBest bool
		gen      int
		i        int
		err      error
	)

	// Stage 1 - initial population of independent uniform permutations.
	e.state = StateInitializing
	pop := samplePopulation(e.opts.PopSize, permLen, rng)

	for gen = 0; gen < e.opts.Generations; gen++ {
		select {
		case <-ctx.Done():
			e.state = StateTerminated

			return Result{}, fmt.Errorf("evolve: generation %d: %w", gen, ctx.Err())
		default:
		}

		// Stage 2 - evaluation.
		e.state = StateEvaluating
		if err = evaluate(e.enc, pop); err != nil {
			e.state = StateTerminated

			return Result{}, fmt.Errorf("evolve: generation %d: evaluate: %w", gen, err)
		}

		// Elitism: the best-so-far genotype survives every generation.
		if haveBest {
			reinsertBest(pop, best)
		}

		// Rank ascending; stable so equal costs keep arrival order.
		sort.SliceStable(pop, func(a, b int) bool { return pop[a].cost < pop[b].cost })

		if !haveBest || pop[0].cost < best.cost {
			best = pop[0].clone()
			haveBest = true
		}
		history = append(history, best.cost)

		if e.opts.OnGeneration != nil {
			if costs == nil {
				costs = make([]float64, len(pop))
			}
			for i = range pop {
				costs[i] = pop[i].cost
			}
			e.opts.OnGeneration(GenerationStats{
				Generation: gen,
				BestCost:   best.cost,
				MeanCost:   stat.Mean(costs, nil),
			})
		}

		// The budget is the sole termination criterion; after the final
		// evaluation there is nothing left to breed for.
		if gen == e.opts.Generations-1 {
			break
		}

		// Stage 3 - parent-selection weights over the ranked population.
		e.state = StateSelecting
		sel := newSelector(e.opts.Selection, pop, weights)

		// Stage 4 - next generation.
		e.state = StateReproducing
		pop = e.breed(rng, sel, pop)
	}

	e.state = StateTerminated

	// Stage 5 - materialize the result.
	bestTour, err := e.enc.Decode(best.perm)
	if err != nil {
		return Result{}, fmt.Errorf("evolve: decode best tour: %w", err)
	}

	return Result{
		Start:       e.enc.Start(),
		BestTour:    bestTour,
		BestCost:    best.cost,
		Generations: e.opts.Generations,
		Elapsed:     time.Since(t0),
		BestHistory: history,
	}, nil
}

// breed produces the next generation: PopSize children from selected
// parent pairs, mutated, then deduplicated. Children are always fresh
// slices, so the parent generation stays immutable while being read.
//
// Complexity: O(PopSize · n).
func (e *Engine) breed(rng *rand.Rand, sel selector, pop []individual) []individual {
	var (
		next = make([]individual, 0, e.opts.PopSize)
		pi   int
		pj   int
	)
	for len(next) < e.opts.PopSize {
		pi = sel.pick(rng)
		pj = sel.pick(rng)

		c1, c2 := crossoverPair(rng, pop[pi].perm, pop[pj].perm, e.opts.CrossoverProb)
		invert(rng, c1, e.opts.MutationProb)
		invert(rng, c2, e.opts.MutationProb)

		next = append(next, individual{perm: c1})
		if len(next) < e.opts.PopSize {
			next = append(next, individual{perm: c2})
		}
	}
	eliminateDuplicates(next, e.enc.Len(), rng)

	return next
}

// reinsertBest overwrites the worst individual with the global best when
// the best genotype is absent from pop. All individuals must be evaluated.
//
// Complexity: O(PopSize · n), allocation-free in the common present case.
func reinsertBest(pop []individual, best individual) {
	var (
		worst = 0
		i     int
	)
	for i = range pop {
		if slices.Equal(pop[i].perm, best.perm) {
			return
		}
		if pop[i].cost > pop[worst].cost {
			worst = i
		}
	}
	pop[worst] = best.clone()
}
