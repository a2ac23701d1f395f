// Package evolve - configuration surface, sentinel errors, run states and
// result types for the evolutionary engine.
//
// Errors (sentinel):
//
//	– ErrNilMatrix       if the distance matrix is nil or empty.
//	– ErrPopulationSize  if PopSize < 2.
//	– ErrGenerations     if Generations < 1.
//	– ErrProbability     if CrossoverProb or MutationProb is outside [0,1].
//	– ErrSelectionPolicy if Selection names an unknown policy.
//
// Start-city range violations surface as tour.ErrStartOutOfRange, unwrapped,
// so callers match one sentinel regardless of which layer detected it.
package evolve

import (
	"errors"
	"time"
)

// Sentinel errors returned by engine construction. Matched with errors.Is.
var (
	// ErrNilMatrix indicates a nil or zero-size distance matrix.
	ErrNilMatrix = errors.New("evolve: nil or empty distance matrix")

	// ErrPopulationSize indicates a population too small to breed (PopSize < 2).
	ErrPopulationSize = errors.New("evolve: population size must be at least 2")

	// ErrGenerations indicates a non-positive generation budget.
	ErrGenerations = errors.New("evolve: generation budget must be at least 1")

	// ErrProbability indicates a crossover or mutation probability outside [0,1].
	ErrProbability = errors.New("evolve: probability outside [0,1]")

	// ErrSelectionPolicy indicates an unknown parent-selection policy.
	ErrSelectionPolicy = errors.New("evolve: unknown selection policy")
)

// State identifies the phase the engine is currently executing. The zero
// value is StateInitializing.
type State int

const (
	// StateInitializing - engine constructed, initial population not yet bred.
	StateInitializing State = iota

	// StateEvaluating - costing the current population and updating the best.
	StateEvaluating

	// StateSelecting - building parent-selection weights over the ranked population.
	StateSelecting

	// StateReproducing - breeding the next population (crossover, mutation, dedup).
	StateReproducing

	// StateTerminated - the generation budget is exhausted; Result is final.
	StateTerminated
)

// String returns a stable lower-case label for logs and tests.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateEvaluating:
		return "evaluating"
	case StateSelecting:
		return "selecting"
	case StateReproducing:
		return "reproducing"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// SelectionPolicy picks how parents are drawn from the ranked population.
type SelectionPolicy int

const (
	// SelectRank draws parents with linear rank pressure: the best of p
	// individuals carries weight p, the worst weight 1. Robust to cost
	// scale and the default policy.
	SelectRank SelectionPolicy = iota

	// SelectProportional draws parents proportionally to inverse cost.
	// Sensitive to cost scale; kept for experiments on well-normalized
	// instances.
	SelectProportional
)

// String returns a stable lower-case label for logs and tests.
func (p SelectionPolicy) String() string {
	switch p {
	case SelectRank:
		return "rank"
	case SelectProportional:
		return "proportional"
	default:
		return "unknown"
	}
}

// Default knob values applied by DefaultOptions. Exported so callers (CLI
// flags, experiment specs) can reference a single source of truth.
const (
	// DefaultPopSize is the default number of individuals per generation.
	DefaultPopSize = 100

	// DefaultGenerations is the default generation budget.
	DefaultGenerations = 500

	// DefaultCrossoverProb is the default per-pair order-crossover probability.
	DefaultCrossoverProb = 0.9

	// DefaultMutationProb is the default per-individual inversion probability.
	DefaultMutationProb = 0.05

	// DefaultSeed is the default RNG seed. Any fixed value keeps runs
	// reproducible; 42 mirrors the reference experiment configuration.
	DefaultSeed int64 = 42
)

// Options configures a single engine run.
//
// PopSize       – individuals per generation (≥ 2).
// Generations   – evaluated generations before termination (≥ 1).
// CrossoverProb – probability that a selected pair is recombined; otherwise
//
//	the children are copies of the parents. Must lie in [0,1].
//
// MutationProb  – per-individual probability of one inversion. Must lie in [0,1].
// Seed          – RNG seed; 0 falls back to a fixed default stream.
// Selection     – parent-selection policy (SelectRank or SelectProportional).
// OnGeneration  – optional per-generation observer; invoked synchronously
//
//	after evaluation with that generation's statistics. Must be fast and
//	must not retain the argument beyond the call.
type Options struct {
	PopSize       int
	Generations   int
	CrossoverProb float64
	MutationProb  float64
	Seed          int64
	Selection     SelectionPolicy
	OnGeneration  func(GenerationStats)
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithPopSize sets the number of individuals per generation.
func WithPopSize(n int) Option {
	return func(o *Options) {
		o.PopSize = n
	}
}

// WithGenerations sets the generation budget.
func WithGenerations(n int) Option {
	return func(o *Options) {
		o.Generations = n
	}
}

// WithCrossoverProb sets the per-pair order-crossover probability.
func WithCrossoverProb(p float64) Option {
	return func(o *Options) {
		o.CrossoverProb = p
	}
}

// WithMutationProb sets the per-individual inversion-mutation probability.
func WithMutationProb(p float64) Option {
	return func(o *Options) {
		o.MutationProb = p
	}
}

// WithSeed sets the RNG seed (0 selects the fixed default stream).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSelection sets the parent-selection policy.
func WithSelection(p SelectionPolicy) Option {
	return func(o *Options) {
		o.Selection = p
	}
}

// WithOnGeneration registers a per-generation statistics observer.
func WithOnGeneration(fn func(GenerationStats)) Option {
	return func(o *Options) {
		o.OnGeneration = fn
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use this as a starting point for functional-option overrides.
func DefaultOptions() Options {
	return Options{
		PopSize:       DefaultPopSize,
		Generations:   DefaultGenerations,
		CrossoverProb: DefaultCrossoverProb,
		MutationProb:  DefaultMutationProb,
		Seed:          DefaultSeed,
		Selection:     SelectRank,
	}
}

// GenerationStats is the per-generation snapshot passed to OnGeneration.
type GenerationStats struct {
	// Generation is the zero-based generation index.
	Generation int

	// BestCost is the best-so-far tour cost after this generation's evaluation.
	BestCost float64

	// MeanCost is the mean tour cost across the evaluated population.
	MeanCost float64
}

// Result holds the outcome of a completed run.
type Result struct {
	// Start is the fixed start city index the engine was built with.
	Start int

	// BestTour is the best closed tour found: len == N+1,
	// BestTour[0] == BestTour[N] == Start.
	BestTour []int

	// BestCost is the total distance of BestTour.
	BestCost float64

	// Generations is the number of evaluated generations (the budget).
	Generations int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// BestHistory records the best-so-far cost after each generation;
	// len == Generations. Monotonically non-increasing.
	BestHistory []float64
}
