package experiment

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/katalvlaran/evotsp/distmat"
	"github.com/katalvlaran/evotsp/evolve"
)

// RunOption customizes a single Run call.
type RunOption func(*runConfig)

type runConfig struct {
	logger *zap.Logger
}

// WithLogger makes the runner report run starts, finishes and failures on
// l. Without it the runner is silent.
func WithLogger(l *zap.Logger) RunOption {
	return func(c *runConfig) { c.logger = l }
}

// Run executes the full (start × configuration) grid of spec against m and
// returns the result grid. Runs execute concurrently on a pool bounded by
// spec.Parallelism; each run owns its engine and RNG stream, so the grid
// is reproducible regardless of scheduling.
//
// Cell failures (an out-of-range start city, a canceled run) are recorded
// in the grid and never abort the batch; Run itself fails only on a nil
// matrix or an invalid spec. Use Results.Failed to inspect cell errors.
func Run(ctx context.Context, m distmat.Matrix, spec Spec, opts ...RunOption) (Results, error) {
	if m == nil || m.N() < 1 {
		return nil, ErrNilMatrix
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	var cfg = runConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		width   = spec.Parallelism
		grid    = make(Results, len(spec.Starts))
		mu      sync.Mutex
		configs = []Algorithm{spec.Primary, spec.Variant}
	)
	if width < 1 {
		width = runtime.GOMAXPROCS(0)
	}
	var p = pool.New().WithMaxGoroutines(width)
	for _, id := range spec.Starts {
		for _, algo := range configs {
			id, algo := id, algo
			p.Go(func() {
				var out = runOne(ctx, m, spec.Params, algo, id, cfg.logger)
				mu.Lock()
				if grid[out.Start] == nil {
					grid[out.Start] = make(map[string]Outcome, len(configs))
				}
				grid[out.Start][algo.Name] = out
				mu.Unlock()
			})
		}
	}
	p.Wait()

	return grid, nil
}

// runOne solves the instance once: configuration algo from the 1-indexed
// start city id. All failures are folded into the returned Outcome.
func runOne(ctx context.Context, m distmat.Matrix, params Params, algo Algorithm, id int, logger *zap.Logger) Outcome {
	var (
		start = id - 1 // city IDs are 1-indexed, the matrix is 0-indexed
		out   = Outcome{RunResult: RunResult{Algorithm: algo.Name, Start: start}}
		fail  = func(err error) Outcome {
			out.Err = fmt.Errorf("experiment: %s from city %d: %w", algo.Name, id, err)
			logger.Warn("run failed",
				zap.String("algorithm", algo.Name),
				zap.Int("start_id", id),
				zap.Error(err))
			return out
		}
	)
	policy, err := algo.policy()
	if err != nil {
		return fail(err)
	}
	logger.Debug("run starting",
		zap.String("algorithm", algo.Name),
		zap.Int("start_id", id),
		zap.Int("pop_size", params.PopSize),
		zap.Int("generations", params.Generations))

	eng, err := evolve.New(m, start,
		evolve.WithPopSize(params.PopSize),
		evolve.WithGenerations(params.Generations),
		evolve.WithCrossoverProb(algo.CrossoverProb),
		evolve.WithMutationProb(algo.MutationProb),
		evolve.WithSeed(algo.Seed),
		evolve.WithSelection(policy),
	)
	if err != nil {
		return fail(err)
	}
	res, err := eng.Run(ctx)
	if err != nil {
		return fail(err)
	}

	out.Tour = res.BestTour
	out.Distance = res.BestCost
	out.Elapsed = res.Elapsed
	out.Generations = res.Generations
	out.BestHistory = res.BestHistory
	logger.Info("run finished",
		zap.String("algorithm", algo.Name),
		zap.Int("start_id", id),
		zap.Float64("distance", res.BestCost),
		zap.Duration("elapsed", res.Elapsed))

	return out
}
