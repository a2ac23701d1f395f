package experiment

import (
	"errors"
	"sort"
	"time"
)

// Sentinel errors reported by spec loading and the runner. Cell-level
// failures inside a batch wrap evolve's own sentinels instead.
var (
	// ErrNilMatrix - the runner received a nil or empty distance matrix.
	ErrNilMatrix = errors.New("experiment: nil or empty distance matrix")
	// ErrBadSpec - the experiment spec failed validation; the wrap names
	// the offending field.
	ErrBadSpec = errors.New("experiment: invalid spec")
)

// RunResult is the outcome of one successful run: one configuration
// solving the instance from one start city.
type RunResult struct {
	// Algorithm is the configuration name the run belongs to.
	Algorithm string
	// Start is the 0-indexed start city the tour is anchored at.
	Start int
	// Tour is the closed best tour, len n+1, Tour[0] == Tour[n] == Start.
	Tour []int
	// Distance is the total length of Tour.
	Distance float64
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
	// Generations is the generation budget the run consumed.
	Generations int
	// BestHistory holds the best cost after each generation.
	BestHistory []float64
}

// Outcome is one cell of the result grid: either a RunResult or the error
// that prevented it. Err != nil means the embedded RunResult carries only
// Algorithm and Start.
type Outcome struct {
	RunResult
	// Err is non-nil when the run failed; it wraps the cause and names
	// the configuration and start city.
	Err error
}

// Results is the full grid of a batch, keyed by 0-indexed start city and
// then by configuration name. Map iteration order is unspecified; use
// Starts for a deterministic walk.
type Results map[int]map[string]Outcome

// Starts returns the start cities present in the grid in ascending order.
func (r Results) Starts() []int {
	var starts = make([]int, 0, len(r))
	for s := range r {
		starts = append(starts, s)
	}
	sort.Ints(starts)

	return starts
}

// Algorithms returns the configuration names present in the grid in
// ascending order.
func (r Results) Algorithms() []string {
	var (
		seen  = make(map[string]struct{})
		names []string
	)
	for _, row := range r {
		for name := range row {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names
}

// Best returns the shortest successful run in the grid. Ties break on the
// lower start city, then on the lexicographically smaller configuration
// name, so the choice is deterministic. ok is false when every cell
// failed or the grid is empty.
func (r Results) Best() (best RunResult, ok bool) {
	for _, s := range r.Starts() {
		for _, name := range r.Algorithms() {
			out, present := r[s][name]
			if !present || out.Err != nil {
				continue
			}
			if !ok || out.Distance < best.Distance {
				best, ok = out.RunResult, true
			}
		}
	}

	return best, ok
}

// Failed returns the errors of all failed cells, ordered by start city
// and configuration name. Empty when the whole batch succeeded.
func (r Results) Failed() []error {
	var errs []error
	for _, s := range r.Starts() {
		for _, name := range r.Algorithms() {
			if out, present := r[s][name]; present && out.Err != nil {
				errs = append(errs, out.Err)
			}
		}
	}

	return errs
}
