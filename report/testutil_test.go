package report_test

import (
	"math"
	"time"

	"github.com/katalvlaran/evotsp/distmat"
	"github.com/katalvlaran/evotsp/experiment"
)

// sampleCities places six cities on a unit circle, IDs 1..6.
func sampleCities() []distmat.City {
	var cities = make([]distmat.City, 6)
	for i := range cities {
		angle := 2 * math.Pi * float64(i) / 6
		cities[i] = distmat.City{ID: i + 1, X: math.Cos(angle), Y: math.Sin(angle)}
	}
	return cities
}

// sampleSpec matches the grid built by sampleResults.
func sampleSpec() experiment.Spec {
	var s = experiment.DefaultSpec()
	s.Params = experiment.Params{PopSize: 20, Generations: 3}
	s.Starts = []int{1, 3}
	return s
}

// ok builds one successful cell with a closed 6-city tour.
func ok(name string, start int, dist float64, elapsed time.Duration, t []int) experiment.Outcome {
	return experiment.Outcome{RunResult: experiment.RunResult{
		Algorithm:   name,
		Start:       start,
		Tour:        t,
		Distance:    dist,
		Elapsed:     elapsed,
		Generations: 3,
		BestHistory: []float64{dist + 2, dist + 1, dist},
	}}
}

// sampleResults builds a 2x2 grid over starts {0, 2}: GA2 wins from
// start 2 with distance 9.5.
func sampleResults() experiment.Results {
	return experiment.Results{
		0: {
			"GA":  ok("GA", 0, 12, 1500*time.Millisecond, []int{0, 2, 4, 1, 3, 5, 0}),
			"GA2": ok("GA2", 0, 11, 2*time.Second, []int{0, 1, 2, 3, 4, 5, 0}),
		},
		2: {
			"GA":  ok("GA", 2, 10, time.Second, []int{2, 0, 1, 3, 4, 5, 2}),
			"GA2": ok("GA2", 2, 9.5, time.Second, []int{2, 5, 4, 3, 1, 0, 2}),
		},
	}
}
