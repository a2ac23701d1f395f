// Package report renders experiment results for humans: a plain-text
// results file, a fixed-width console table and PNG plots (best tours,
// convergence curves, distance and timing comparisons).
//
// City numbering: the solver works with 0-indexed city positions; every
// rendered artifact prints 1-indexed city IDs, matching the input file
// convention where city i of the matrix carries ID i+1. Tour plots label
// points with the IDs carried by the coordinate records themselves.
//
// Failed grid cells never abort rendering: the text writers print the
// error in place of the statistics, the bar charts draw a zero-height
// bar, and tour plots for failed cells are simply not produced.
package report
