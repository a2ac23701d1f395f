// Package main is the evotsp command line driver: it loads a TSP
// instance, runs the two-configuration experiment grid and renders the
// report artifacts.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/evotsp/distmat"
	"github.com/katalvlaran/evotsp/experiment"
	"github.com/katalvlaran/evotsp/report"
)

// Environment fallbacks for the path flags; a .env file in the working
// directory is honored.
const (
	envCities    = "EVOTSP_CITIES"
	envDistances = "EVOTSP_DISTANCES"
	envOut       = "EVOTSP_OUT"
)

// Default input/output locations, matching the documented data files.
const (
	defaultCities    = "cityData.txt"
	defaultDistances = "intercityDistance.txt"
	defaultOut       = "results"
	quickTourFile    = "test_tour.png"
)

func main() {
	// A missing .env is fine; the plain environment still applies.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cliOptions collects the flag values shared by run and quick.
type cliOptions struct {
	cities    string
	distances string
	out       string
	config    string
	pop       int
	gens      int
	starts    []int
	parallel  int
	noPlots   bool

	citiesSet bool // --cities given or EVOTSP_CITIES set
	distSet   bool // --distances given or EVOTSP_DISTANCES set
	quick     bool
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "evotsp",
		Short: "Evolutionary TSP solver",
		Long: `evotsp compares two genetic-algorithm configurations on one traveling
salesman instance: the same population size and generation budget, run
from several start cities, with per-configuration crossover and mutation
probabilities and seeds. Results land in a text report plus PNG plots.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.AddCommand(newRunCmd(&verbose), newQuickCmd(&verbose))

	return root
}

func newRunCmd(verbose *bool) *cobra.Command {
	var opts cliOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full experiment grid and write the report artifacts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.citiesSet = cmd.Flags().Changed("cities") || os.Getenv(envCities) != ""
			opts.distSet = cmd.Flags().Changed("distances") || os.Getenv(envDistances) != ""

			spec, err := buildSpec(opts, experiment.DefaultSpec())
			if err != nil {
				return err
			}
			return execute(cmd, opts, spec, *verbose)
		},
	}
	addInputFlags(cmd, &opts)

	fl := cmd.Flags()
	fl.StringVar(&opts.out, "out", envOr(envOut, defaultOut), "output directory for the report and plots")
	fl.StringVar(&opts.config, "config", "", "experiment spec YAML (omitted fields keep their defaults)")
	fl.IntVar(&opts.pop, "pop", 0, "population size override")
	fl.IntVar(&opts.gens, "generations", 0, "generation budget override")
	fl.IntSliceVar(&opts.starts, "starts", nil, "1-indexed start city IDs override")

	return cmd
}

func newQuickCmd(verbose *bool) *cobra.Command {
	var opts cliOptions

	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Smoke run: 50 individuals, 100 generations, two start cities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.citiesSet = cmd.Flags().Changed("cities") || os.Getenv(envCities) != ""
			opts.distSet = cmd.Flags().Changed("distances") || os.Getenv(envDistances) != ""
			opts.quick = true

			spec, err := buildSpec(opts, experiment.QuickSpec())
			if err != nil {
				return err
			}
			return execute(cmd, opts, spec, *verbose)
		},
	}
	addInputFlags(cmd, &opts)

	return cmd
}

// addInputFlags wires the flags both subcommands share.
func addInputFlags(cmd *cobra.Command, opts *cliOptions) {
	fl := cmd.Flags()
	fl.StringVar(&opts.cities, "cities", envOr(envCities, defaultCities), `city coordinates file, one "id x y" line per city`)
	fl.StringVar(&opts.distances, "distances", envOr(envDistances, defaultDistances), "distance matrix file (whitespace table)")
	fl.IntVar(&opts.parallel, "parallel", 0, "max concurrent runs (0 selects GOMAXPROCS)")
	fl.BoolVar(&opts.noPlots, "no-plots", false, "skip PNG rendering")
}

// buildSpec layers the CLI on top of base: an explicit --config file
// replaces base entirely, then scalar flag overrides apply, then the
// result is validated once.
func buildSpec(opts cliOptions, base experiment.Spec) (experiment.Spec, error) {
	var spec = base
	if opts.config != "" {
		var err error
		if spec, err = experiment.LoadSpec(opts.config); err != nil {
			return experiment.Spec{}, err
		}
	}
	if opts.pop > 0 {
		spec.Params.PopSize = opts.pop
	}
	if opts.gens > 0 {
		spec.Params.Generations = opts.gens
	}
	if len(opts.starts) > 0 {
		spec.Starts = opts.starts
	}
	if opts.parallel > 0 {
		spec.Parallelism = opts.parallel
	}

	return spec, spec.Validate()
}

// execute is the shared pipeline: load inputs, run the grid, print the
// table, write artifacts, surface per-run failures in the exit status.
func execute(cmd *cobra.Command, opts cliOptions, spec experiment.Spec, verbose bool) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	printBanner(out)
	printConfiguration(out, spec)

	m, cities, err := loadInstance(logger, opts)
	if err != nil {
		return err
	}

	res, err := experiment.Run(ctx, m, spec, experiment.WithLogger(logger))
	if err != nil {
		return err
	}

	if err = report.WriteTable(out, res); err != nil {
		return err
	}
	for _, s := range experiment.Summarize(res) {
		logger.Info("configuration summary",
			zap.String("algorithm", s.Algorithm),
			zap.Int("runs", s.Runs),
			zap.Int("failures", s.Failures),
			zap.Float64("mean_distance", s.MeanDistance),
			zap.Float64("std_distance", s.StdDistance),
			zap.Float64("min_distance", s.MinDistance),
			zap.Duration("mean_elapsed", s.MeanElapsed))
	}

	if opts.quick {
		err = writeQuickArtifacts(opts, res, cities, out)
	} else {
		err = writeArtifacts(opts, spec, res, cities, out)
	}
	if err != nil {
		return err
	}

	if failed := res.Failed(); len(failed) > 0 {
		for _, ferr := range failed {
			logger.Warn("run failed", zap.Error(ferr))
		}
		return fmt.Errorf("%d run(s) failed", len(failed))
	}

	return nil
}

// loadInstance resolves the distance matrix and the optional coordinate
// list. Default input paths are optional (a missing file falls through);
// explicitly requested paths must exist. When no matrix file is
// available, a Euclidean matrix is built from the coordinates.
func loadInstance(logger *zap.Logger, opts cliOptions) (*distmat.Dense, []distmat.City, error) {
	var (
		cities []distmat.City
		m      *distmat.Dense
		err    error
	)

	cities, err = distmat.LoadCities(opts.cities)
	switch {
	case err == nil:
		logger.Info("loaded city coordinates", zap.String("path", opts.cities), zap.Int("cities", len(cities)))
	case !opts.citiesSet && errors.Is(err, fs.ErrNotExist):
		cities = nil // optional default input; matrix-only runs are fine
	default:
		return nil, nil, err
	}

	m, err = distmat.LoadMatrix(opts.distances)
	switch {
	case err == nil:
		logger.Info("loaded distance matrix", zap.String("path", opts.distances), zap.Int("cities", m.N()))
	case !opts.distSet && errors.Is(err, fs.ErrNotExist):
		m = nil
	default:
		return nil, nil, err
	}

	if m == nil {
		if len(cities) == 0 {
			return nil, nil, errors.New("no input data: pass --cities or --distances, or set " + envCities + " / " + envDistances)
		}
		if m, err = distmat.FromCities(cities); err != nil {
			return nil, nil, err
		}
		logger.Info("built Euclidean matrix from coordinates", zap.Int("cities", m.N()))
	}
	if len(cities) > 0 && len(cities) != m.N() {
		return nil, nil, fmt.Errorf("coordinate file lists %d cities but the matrix is %dx%d", len(cities), m.N(), m.N())
	}

	return m, cities, nil
}

// writeArtifacts renders the full output tree, or only the text report
// under --no-plots.
func writeArtifacts(opts cliOptions, spec experiment.Spec, res experiment.Results, cities []distmat.City, out io.Writer) error {
	if opts.noPlots {
		if err := report.WriteReportFile(opts.out, spec, res); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nReport written to %s\n", filepath.Join(opts.out, report.ReportFile))

		return nil
	}
	if err := report.WriteAll(opts.out, spec, res, cities); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nReport and plots written to %s\n", opts.out)

	return nil
}

// writeQuickArtifacts renders a single sample tour plot for the best
// quick-run result when coordinates are available.
func writeQuickArtifacts(opts cliOptions, res experiment.Results, cities []distmat.City, out io.Writer) error {
	if opts.noPlots || len(cities) == 0 {
		return nil
	}
	best, ok := res.Best()
	if !ok {
		return nil
	}
	title := fmt.Sprintf("%s - Starting from City %d\nTotal Distance: %.2f units",
		best.Algorithm, best.Start+1, best.Distance)
	if err := report.SaveTourPlot(quickTourFile, cities, best.Tour, title); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nSample tour plot written to %s\n", quickTourFile)

	return nil
}

// newLogger builds a console logger; --verbose lowers the level to debug.
func newLogger(verbose bool) (*zap.Logger, error) {
	var cfg = zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return cfg.Build()
}

func printBanner(w io.Writer) {
	var bar = strings.Repeat("=", 80)
	fmt.Fprintln(w, bar)
	fmt.Fprintln(w, strings.Repeat(" ", 23)+"TRAVELING SALESMAN PROBLEM SOLVER")
	fmt.Fprintln(w, strings.Repeat(" ", 22)+"Order Crossover + Inversion Mutation")
	fmt.Fprintln(w, bar)
}

func printConfiguration(w io.Writer, spec experiment.Spec) {
	fmt.Fprintln(w, "\nConfiguration:")
	fmt.Fprintf(w, "  - Population Size: %d\n", spec.Params.PopSize)
	fmt.Fprintf(w, "  - Number of Generations: %d\n", spec.Params.Generations)
	fmt.Fprintf(w, "  - Starting Cities (IDs): %v\n", spec.Starts)
	fmt.Fprintf(w, "  - Algorithms: %s, %s\n\n", spec.Primary.Name, spec.Variant.Name)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
