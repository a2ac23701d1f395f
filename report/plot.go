// Package report - PNG plot renderers on gonum/plot.
//
// Four artifact kinds: a single-tour map (all cities faint, route
// polyline, start highlighted, ID labels), a per-start convergence chart
// (one best-distance line per configuration) and two grouped bar charts
// comparing distance and wall-clock time across starts.
package report

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/evotsp/distmat"
	"github.com/katalvlaran/evotsp/experiment"
)

// ErrNoData - the plot has nothing to draw (no coordinates, no series or
// no grid cells).
var ErrNoData = fmt.Errorf("report: no data to plot")

// Series palette, one entry per configuration, reused cyclically.
var palette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
}

var (
	colorFaint = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	colorStart = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// SaveTourPlot renders one closed tour over the city map and writes it as
// a PNG to path. cities supply coordinates and ID labels; t holds
// 0-indexed positions into cities, first == last == start.
//
// Errors: ErrNoData on missing coordinates, a tour shorter than 2 stops,
// or a tour index outside the coordinate table; rendering and file errors
// propagate from gonum/plot.
func SaveTourPlot(path string, cities []distmat.City, t []int, title string) error {
	if len(cities) == 0 {
		return fmt.Errorf("report: no city coordinates: %w", ErrNoData)
	}
	if len(t) < 2 {
		return fmt.Errorf("report: tour of %d stops: %w", len(t), ErrNoData)
	}
	for _, idx := range t {
		if idx < 0 || idx >= len(cities) {
			return fmt.Errorf("report: tour city %d outside %d coordinates: %w", idx, len(cities), ErrNoData)
		}
	}

	var p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X Coordinate"
	p.Y.Label.Text = "Y Coordinate"
	p.Add(plotter.NewGrid())

	// Faint layer with every city of the instance.
	var all = make(plotter.XYs, len(cities))
	for i, c := range cities {
		all[i].X, all[i].Y = c.X, c.Y
	}
	bg, err := plotter.NewScatter(all)
	if err != nil {
		return fmt.Errorf("report: tour plot: %w", err)
	}
	bg.GlyphStyle.Color = colorFaint
	bg.GlyphStyle.Radius = vg.Points(2.5)
	bg.GlyphStyle.Shape = draw.CircleGlyph{}

	// The closed route itself.
	var route = make(plotter.XYs, len(t))
	for i, idx := range t {
		route[i].X, route[i].Y = cities[idx].X, cities[idx].Y
	}
	line, err := plotter.NewLine(route)
	if err != nil {
		return fmt.Errorf("report: tour plot: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = palette[0]

	visited, err := plotter.NewScatter(route[1 : len(route)-1])
	if err != nil {
		return fmt.Errorf("report: tour plot: %w", err)
	}
	visited.GlyphStyle.Color = palette[0]
	visited.GlyphStyle.Radius = vg.Points(3)
	visited.GlyphStyle.Shape = draw.CircleGlyph{}

	start, err := plotter.NewScatter(route[:1])
	if err != nil {
		return fmt.Errorf("report: tour plot: %w", err)
	}
	start.GlyphStyle.Color = colorStart
	start.GlyphStyle.Radius = vg.Points(6)
	start.GlyphStyle.Shape = draw.PyramidGlyph{}

	// ID labels on every stop (the closing duplicate is skipped).
	var lbl = plotter.XYLabels{
		XYs:    make(plotter.XYs, len(t)-1),
		Labels: make([]string, len(t)-1),
	}
	for i, idx := range t[:len(t)-1] {
		lbl.XYs[i].X, lbl.XYs[i].Y = cities[idx].X, cities[idx].Y
		lbl.Labels[i] = strconv.Itoa(cities[idx].ID)
	}
	labels, err := plotter.NewLabels(lbl)
	if err != nil {
		return fmt.Errorf("report: tour plot: %w", err)
	}

	p.Add(bg, line, visited, start, labels)
	p.Legend.Add("all cities", bg)
	p.Legend.Add("tour", line)
	p.Legend.Add("start", start)
	p.Legend.Top = true

	if err = p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save tour plot: %w", err)
	}

	return nil
}

// SaveConvergencePlot renders best-distance-per-generation lines, one per
// configuration, and writes the chart as a PNG to path. series maps a
// configuration name to its history; names are drawn in sorted order so
// colors and legend entries are stable.
func SaveConvergencePlot(path, title string, series map[string][]float64) error {
	var names = make([]string, 0, len(series))
	for name, hist := range series {
		if len(hist) > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("report: no convergence series: %w", ErrNoData)
	}
	sort.Strings(names)

	var p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Best Distance"
	p.Add(plotter.NewGrid())

	var (
		i    int
		name string
	)
	for i, name = range names {
		var hist = series[name]
		var pts = make(plotter.XYs, len(hist))
		for g, c := range hist {
			pts[g].X = float64(g + 1)
			pts[g].Y = c
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("report: convergence plot: %w", err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = palette[i%len(palette)]
		p.Add(line)
		p.Legend.Add(name, line)
	}
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save convergence plot: %w", err)
	}

	return nil
}

// SaveComparisonPlot renders the best distance of every grid cell as
// grouped bars (one group per start city, one bar per configuration) and
// writes the chart as a PNG to path. Failed cells draw zero-height bars.
func SaveComparisonPlot(path string, res experiment.Results) error {
	var p = plot.New()
	p.Title.Text = "Distance Comparison Across Algorithms"
	p.Y.Label.Text = "Total Distance"

	if err := addBars(p, res, func(out experiment.Outcome) float64 { return out.Distance }); err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save distance comparison: %w", err)
	}

	return nil
}

// SaveTimingPlot is SaveComparisonPlot for wall-clock seconds.
func SaveTimingPlot(path string, res experiment.Results) error {
	var p = plot.New()
	p.Title.Text = "Execution Time Comparison"
	p.Y.Label.Text = "Execution Time (seconds)"

	if err := addBars(p, res, func(out experiment.Outcome) float64 { return out.Elapsed.Seconds() }); err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save timing comparison: %w", err)
	}

	return nil
}

// addBars fills p with one grouped bar chart: a bar per configuration
// inside a group per start city, groups labeled with 1-indexed IDs.
func addBars(p *plot.Plot, res experiment.Results, value func(experiment.Outcome) float64) error {
	var (
		starts = res.Starts()
		names  = res.Algorithms()
		width  = vg.Points(20)
	)
	if len(starts) == 0 || len(names) == 0 {
		return fmt.Errorf("report: empty result grid: %w", ErrNoData)
	}

	var (
		i    int
		name string
	)
	for i, name = range names {
		var vals = make(plotter.Values, len(starts))
		for j, s := range starts {
			if out, ok := res[s][name]; ok && out.Err == nil {
				vals[j] = value(out)
			}
		}
		bars, err := plotter.NewBarChart(vals, width)
		if err != nil {
			return fmt.Errorf("report: bar chart: %w", err)
		}
		bars.LineStyle.Width = 0
		bars.Color = palette[i%len(palette)]
		bars.Offset = width * vg.Length(float64(i)-float64(len(names)-1)/2)
		p.Add(bars)
		p.Legend.Add(name, bars)
	}

	var labels = make([]string, len(starts))
	for j, s := range starts {
		labels[j] = "City " + strconv.Itoa(s+1)
	}
	p.NominalX(labels...)
	p.Legend.Top = true

	return nil
}
