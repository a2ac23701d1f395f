package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evotsp/evolve"
)

// Reference batch configuration, matching the documented benchmark setup.
const (
	// DefaultPopSize is the population size of the reference batch.
	DefaultPopSize = 200
	// DefaultGenerations is the generation budget of the reference batch.
	DefaultGenerations = 1000
)

// Params are the search parameters shared by every configuration in a
// batch. Keeping them out of Algorithm guarantees the configurations are
// compared under an identical budget.
type Params struct {
	// PopSize is the population size, at least 2.
	PopSize int `yaml:"pop_size"`
	// Generations is the generation budget, at least 1.
	Generations int `yaml:"generations"`
}

// Algorithm is one named operator configuration of a batch.
type Algorithm struct {
	// Name labels the configuration in results, reports and plots.
	Name string `yaml:"name"`
	// CrossoverProb is the order-crossover probability in [0,1].
	CrossoverProb float64 `yaml:"crossover_prob"`
	// MutationProb is the inversion-mutation probability in [0,1].
	MutationProb float64 `yaml:"mutation_prob"`
	// Seed fixes the configuration's RNG stream; 0 selects the engine's
	// deterministic default.
	Seed int64 `yaml:"seed"`
	// Selection names the parent-selection policy: "rank" (default when
	// empty) or "proportional".
	Selection string `yaml:"selection,omitempty"`
}

// policy maps the Selection field onto the engine's policy enum.
func (a Algorithm) policy() (evolve.SelectionPolicy, error) {
	switch a.Selection {
	case "", "rank":
		return evolve.SelectRank, nil
	case "proportional":
		return evolve.SelectProportional, nil
	default:
		return 0, fmt.Errorf("experiment: %s: selection %q: %w", a.Name, a.Selection, ErrBadSpec)
	}
}

// Spec describes a full batch: shared parameters, the two configurations
// to compare, the start cities to solve from and the pool width.
type Spec struct {
	// Params are the budget parameters shared by both configurations.
	Params Params `yaml:"params"`
	// Primary is the baseline configuration.
	Primary Algorithm `yaml:"primary"`
	// Variant is the configuration compared against Primary.
	Variant Algorithm `yaml:"variant"`
	// Starts lists the start cities as 1-indexed IDs.
	Starts []int `yaml:"starts"`
	// Parallelism bounds the number of concurrent runs; values below 1
	// select GOMAXPROCS.
	Parallelism int `yaml:"parallelism,omitempty"`
}

// DefaultSpec returns the reference batch: 200 individuals for 1000
// generations from five start cities, GA against GA2.
func DefaultSpec() Spec {
	return Spec{
		Params:  Params{PopSize: DefaultPopSize, Generations: DefaultGenerations},
		Primary: Algorithm{Name: "GA", CrossoverProb: 0.9, MutationProb: 0.05, Seed: 42},
		Variant: Algorithm{Name: "GA2", CrossoverProb: 0.95, MutationProb: 0.2, Seed: 123},
		Starts:  []int{1, 10, 20, 30, 40},
	}
}

// QuickSpec returns a small smoke-test batch: 50 individuals for 100
// generations from two start cities, same configuration pair.
func QuickSpec() Spec {
	var s = DefaultSpec()
	s.Params = Params{PopSize: 50, Generations: 100}
	s.Starts = []int{1, 20}

	return s
}

// LoadSpec reads a YAML spec from path. Omitted fields inherit
// DefaultSpec values, so a file may override only what it cares about.
// The result is validated before it is returned.
func LoadSpec(path string) (Spec, error) {
	var raw, err = os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("experiment: read spec: %w", err)
	}
	var s = DefaultSpec()
	if err = yaml.Unmarshal(raw, &s); err != nil {
		return Spec{}, fmt.Errorf("experiment: parse spec %s: %w", path, err)
	}
	if err = s.Validate(); err != nil {
		return Spec{}, err
	}

	return s, nil
}

// Validate checks every field the runner depends on and returns
// ErrBadSpec (wrapped with the offending field) on the first violation.
// Start IDs are only checked for structural validity here; whether an ID
// exists in the instance is decided per run, against the matrix.
func (s Spec) Validate() error {
	if s.Params.PopSize < 2 {
		return fmt.Errorf("experiment: population size %d: %w", s.Params.PopSize, ErrBadSpec)
	}
	if s.Params.Generations < 1 {
		return fmt.Errorf("experiment: generations %d: %w", s.Params.Generations, ErrBadSpec)
	}
	for _, a := range []Algorithm{s.Primary, s.Variant} {
		if a.Name == "" {
			return fmt.Errorf("experiment: unnamed configuration: %w", ErrBadSpec)
		}
		if !validProb(a.CrossoverProb) {
			return fmt.Errorf("experiment: %s: crossover probability %v: %w", a.Name, a.CrossoverProb, ErrBadSpec)
		}
		if !validProb(a.MutationProb) {
			return fmt.Errorf("experiment: %s: mutation probability %v: %w", a.Name, a.MutationProb, ErrBadSpec)
		}
		if _, err := a.policy(); err != nil {
			return err
		}
	}
	if s.Primary.Name == s.Variant.Name {
		return fmt.Errorf("experiment: duplicate configuration name %q: %w", s.Primary.Name, ErrBadSpec)
	}
	if len(s.Starts) == 0 {
		return fmt.Errorf("experiment: no start cities: %w", ErrBadSpec)
	}
	var seen = make(map[int]struct{}, len(s.Starts))
	for _, id := range s.Starts {
		if id < 1 {
			return fmt.Errorf("experiment: start city ID %d: %w", id, ErrBadSpec)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("experiment: duplicate start city ID %d: %w", id, ErrBadSpec)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// validProb reports whether p is a probability; rejects NaN.
func validProb(p float64) bool {
	return p >= 0 && p <= 1
}
