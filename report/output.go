// Package report - output tree orchestration.
//
// WriteAll lays the full artifact set into one directory using the
// documented file names, so downstream tooling can rely on the paths.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/evotsp/distmat"
	"github.com/katalvlaran/evotsp/experiment"
)

// Fixed artifact names inside the output directory.
const (
	// ReportFile is the plain-text results report.
	ReportFile = "results_report.txt"
	// DistanceChartFile compares best distances across starts.
	DistanceChartFile = "distance_comparison.png"
	// TimingChartFile compares wall-clock time across starts.
	TimingChartFile = "time_comparison.png"
)

// TourPlotFile returns the tour plot name for a configuration and a
// 0-indexed start city, e.g. "tour_GA_start10.png".
func TourPlotFile(algorithm string, start int) string {
	return fmt.Sprintf("tour_%s_start%d.png", algorithm, start+1)
}

// ConvergencePlotFile returns the convergence chart name for a 0-indexed
// start city, e.g. "convergence_start10.png".
func ConvergencePlotFile(start int) string {
	return fmt.Sprintf("convergence_start%d.png", start+1)
}

// WriteReportFile writes only the text report into dir (created if
// missing). Used directly when plot rendering is disabled.
func WriteReportFile(dir string, spec experiment.Spec, res experiment.Results) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("report: create output dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, ReportFile))
	if err != nil {
		return fmt.Errorf("report: create %s: %w", ReportFile, err)
	}
	if err = WriteText(f, spec, res); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", ReportFile, err)
	}

	return nil
}

// WriteAll writes the complete artifact set for one batch into dir
// (created if missing): the text report, both comparison charts, one
// convergence chart per start and one tour plot per successful cell.
//
// The text report is always written. Charts are skipped when the grid is
// empty; tour plots are skipped when cities is empty (distance-matrix-only
// inputs carry no coordinates to draw).
func WriteAll(dir string, spec experiment.Spec, res experiment.Results, cities []distmat.City) error {
	if err := WriteReportFile(dir, spec, res); err != nil {
		return err
	}

	if len(res) == 0 {
		return nil
	}

	if err := SaveComparisonPlot(filepath.Join(dir, DistanceChartFile), res); err != nil {
		return err
	}
	if err := SaveTimingPlot(filepath.Join(dir, TimingChartFile), res); err != nil {
		return err
	}

	for _, s := range res.Starts() {
		var series = make(map[string][]float64, 2)
		for _, name := range res.Algorithms() {
			if out, ok := res[s][name]; ok && out.Err == nil && len(out.BestHistory) > 0 {
				series[name] = out.BestHistory
			}
		}
		if len(series) == 0 {
			continue
		}
		var title = fmt.Sprintf("Convergence - Starting City %d", s+1)
		if err := SaveConvergencePlot(filepath.Join(dir, ConvergencePlotFile(s)), title, series); err != nil {
			return err
		}
	}

	if len(cities) == 0 {
		return nil
	}
	for _, s := range res.Starts() {
		for _, name := range res.Algorithms() {
			out, ok := res[s][name]
			if !ok || out.Err != nil {
				continue
			}
			var title = fmt.Sprintf("%s - Starting from City %d\nTotal Distance: %.2f units, Execution Time: %.2fs",
				name, s+1, out.Distance, out.Elapsed.Seconds())
			if err := SaveTourPlot(filepath.Join(dir, TourPlotFile(name, s)), cities, out.Tour, title); err != nil {
				return err
			}
		}
	}

	return nil
}
