// Package evolve implements a deterministic evolutionary engine for
// closed-tour route optimization over a distmat.Matrix.
//
// The engine breeds permutations (tour.Encoding representation) through a
// generational loop: evaluate → rank → select → order crossover → inversion
// mutation → duplicate elimination, with global best-so-far elitism. The
// only termination criterion is the generation budget; optional
// context.Context cancellation is observed at generation boundaries.
//
// Design principles:
//   - Determinism: every random draw flows through one engine-owned
//     *rand.Rand seeded from Options.Seed; identical inputs produce
//     bit-identical results.
//   - Fail-fast configuration: New validates matrix, start and every knob
//     and returns strict sentinels before any work happens.
//   - No logging, no panics on user input; callers observe progress via the
//     OnGeneration callback and the State accessor.
//   - Operators never emit invalid permutations; structural invariants are
//     re-checked only at package boundaries.
//
// Typical usage:
//
//	eng, err := evolve.New(m, 0,
//	    evolve.WithPopSize(200),
//	    evolve.WithGenerations(1000),
//	    evolve.WithSeed(42),
//	)
//	if err != nil { ... }
//	res, err := eng.Run(ctx)
//	if err != nil { ... }
//	fmt.Println(res.BestTour, res.BestCost)
package evolve
