package experiment

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AlgorithmSummary aggregates the successful runs of one configuration
// across all start cities of a batch.
type AlgorithmSummary struct {
	// Algorithm is the configuration name.
	Algorithm string
	// Runs counts the successful runs behind the statistics.
	Runs int
	// Failures counts the failed cells of this configuration.
	Failures int
	// MeanDistance, StdDistance, MinDistance, MaxDistance describe the
	// best-tour distances of the successful runs. StdDistance is the
	// sample standard deviation, 0 when fewer than two runs succeeded.
	MeanDistance float64
	StdDistance  float64
	MinDistance  float64
	MaxDistance  float64
	// MeanElapsed is the mean wall-clock duration of the successful runs.
	MeanElapsed time.Duration
}

// Summarize reduces a result grid to one AlgorithmSummary per
// configuration, ordered by configuration name. Configurations whose runs
// all failed still appear, with zeroed statistics and Runs == 0.
func Summarize(res Results) []AlgorithmSummary {
	var (
		names     = res.Algorithms()
		summaries = make([]AlgorithmSummary, 0, len(names))
	)
	for _, name := range names {
		var (
			sum       = AlgorithmSummary{Algorithm: name}
			distances []float64
			elapsed   time.Duration
		)
		for _, s := range res.Starts() {
			out, present := res[s][name]
			if !present {
				continue
			}
			if out.Err != nil {
				sum.Failures++
				continue
			}
			distances = append(distances, out.Distance)
			elapsed += out.Elapsed
		}
		sum.Runs = len(distances)
		if sum.Runs > 0 {
			sum.MeanDistance = stat.Mean(distances, nil)
			sum.MinDistance = floats.Min(distances)
			sum.MaxDistance = floats.Max(distances)
			sum.MeanElapsed = elapsed / time.Duration(sum.Runs)
		}
		if sum.Runs > 1 {
			sum.StdDistance = stat.StdDev(distances, nil)
		}
		summaries = append(summaries, sum)
	}

	return summaries
}
