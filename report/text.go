// Package report - plain-text renderers.
//
// WriteText produces the results file (configuration block, per-start
// detail sections, best-overall footer); WriteTable produces the compact
// console summary. Both walk the grid in deterministic order: starts
// ascending, configuration names ascending.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/evotsp/experiment"
)

// Horizontal rule widths of the results file, kept from the original
// report format.
const (
	wideBar   = 80
	narrowBar = 60
)

// tablePreview caps how many tour cities the console table shows per row.
const tablePreview = 6

// WriteText writes the full results report to w: a configuration block,
// one detail section per start city and the best overall solution.
// Cells that failed print their error instead of statistics.
func WriteText(w io.Writer, spec experiment.Spec, res experiment.Results) error {
	var b strings.Builder

	bar(&b, wideBar)
	b.WriteString("TRAVELING SALESMAN PROBLEM - RESULTS REPORT\n")
	bar(&b, wideBar)
	b.WriteByte('\n')

	b.WriteString("CONFIGURATION:\n")
	fmt.Fprintf(&b, "  Population Size: %d\n", spec.Params.PopSize)
	fmt.Fprintf(&b, "  Number of Generations: %d\n", spec.Params.Generations)
	fmt.Fprintf(&b, "  Starting Cities: %s\n", joinIDs(spec.Starts))
	fmt.Fprintf(&b, "  Algorithms: %s, %s\n\n", spec.Primary.Name, spec.Variant.Name)

	bar(&b, wideBar)
	b.WriteString("DETAILED RESULTS\n")
	bar(&b, wideBar)
	b.WriteByte('\n')

	for _, start := range res.Starts() {
		b.WriteByte('\n')
		bar(&b, narrowBar)
		fmt.Fprintf(&b, "Starting City: %d\n", start+1)
		bar(&b, narrowBar)
		b.WriteByte('\n')

		for _, name := range res.Algorithms() {
			out, present := res[start][name]
			if !present {
				continue
			}
			fmt.Fprintf(&b, "%s:\n", name)
			if out.Err != nil {
				fmt.Fprintf(&b, "  Run failed: %v\n\n", out.Err)
				continue
			}
			fmt.Fprintf(&b, "  Total Distance: %.2f units\n", out.Distance)
			fmt.Fprintf(&b, "  Execution Time: %.2f seconds\n", out.Elapsed.Seconds())
			fmt.Fprintf(&b, "  Number of Generations: %d\n", out.Generations)
			fmt.Fprintf(&b, "  Tour (City IDs): %s\n\n", tourIDs(out.Tour, 0))
		}
	}

	b.WriteByte('\n')
	bar(&b, wideBar)
	b.WriteString("BEST OVERALL SOLUTION\n")
	bar(&b, wideBar)
	b.WriteByte('\n')

	if best, ok := res.Best(); ok {
		fmt.Fprintf(&b, "Algorithm: %s\n", best.Algorithm)
		fmt.Fprintf(&b, "Starting City: %d\n", best.Start+1)
		fmt.Fprintf(&b, "Total Distance: %.2f units\n", best.Distance)
		fmt.Fprintf(&b, "Execution Time: %.2f seconds\n", best.Elapsed.Seconds())
		fmt.Fprintf(&b, "Complete Tour: %s\n", tourIDs(best.Tour, 0))
	} else {
		b.WriteString("No successful runs.\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: write text report: %w", err)
	}

	return nil
}

// WriteTable writes the compact console table to w: one row per grid
// cell with a truncated tour preview, then the best overall result.
func WriteTable(w io.Writer, res experiment.Results) error {
	var b strings.Builder

	bar(&b, wideBar)
	b.WriteString("DETAILED RESULTS TABLE\n")
	bar(&b, wideBar)
	b.WriteByte('\n')

	fmt.Fprintf(&b, "%-12s %-10s %-12s %-12s %s\n", "Start City", "Algorithm", "Distance", "Time (s)", "Best Tour")
	b.WriteString(strings.Repeat("-", wideBar))
	b.WriteByte('\n')

	for _, start := range res.Starts() {
		for _, name := range res.Algorithms() {
			out, present := res[start][name]
			if !present {
				continue
			}
			if out.Err != nil {
				fmt.Fprintf(&b, "%-12d %-10s run failed: %v\n", start+1, name, out.Err)
				continue
			}
			fmt.Fprintf(&b, "%-12d %-10s %-12.2f %-12.2f %s\n",
				start+1, name, out.Distance, out.Elapsed.Seconds(), tourIDs(out.Tour, tablePreview))
		}
	}
	b.WriteString(strings.Repeat("=", wideBar))
	b.WriteByte('\n')

	if best, ok := res.Best(); ok {
		b.WriteString("\nBEST RESULT:\n")
		fmt.Fprintf(&b, "   Algorithm: %s\n", best.Algorithm)
		fmt.Fprintf(&b, "   Starting City: %d\n", best.Start+1)
		fmt.Fprintf(&b, "   Distance: %.2f\n", best.Distance)
		fmt.Fprintf(&b, "   Execution Time: %.2fs\n", best.Elapsed.Seconds())
		fmt.Fprintf(&b, "   Complete Tour: %s\n", tourIDs(best.Tour, 0))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: write table: %w", err)
	}

	return nil
}

// bar appends a horizontal rule of n '=' runes and a newline.
func bar(b *strings.Builder, n int) {
	b.WriteString(strings.Repeat("=", n))
	b.WriteByte('\n')
}

// joinIDs renders 1-indexed city IDs as "1, 10, 20".
func joinIDs(ids []int) string {
	var parts = make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, ", ")
}

// tourIDs renders a 0-indexed tour as "1 -> 5 -> 3 -> 1" using 1-indexed
// IDs. limit > 0 truncates to the first limit cities and appends "...".
func tourIDs(t []int, limit int) string {
	var n = len(t)
	var truncated bool
	if limit > 0 && n > limit {
		n, truncated = limit, true
	}

	var parts = make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = strconv.Itoa(t[i] + 1)
	}
	var s = strings.Join(parts, " -> ")
	if truncated {
		s += "..."
	}

	return s
}
