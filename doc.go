// Package evotsp solves the traveling salesman problem with a genetic
// algorithm and turns the runs into reports you can hand to someone:
// console tables, text files and PNG plots.
//
// 🚀 What is evotsp?
//
//	A small, deterministic GA toolkit for closed tours with a fixed start:
//		• Instances: immutable distance matrices, loaded from plain-text
//		  files or built from 2D city coordinates
//		• Encoding: permutations over the cities-to-visit, decoded into
//		  closed tours anchored at the start city
//		• Engine: order crossover, inversion mutation, duplicate
//		  elimination, elitism, rank or proportional selection
//		• Experiments: two named configurations raced across several
//		  start cities on a bounded worker pool
//		• Reports: results file, console table, tour maps, convergence
//		  curves and comparison charts
//
// ✨ Why choose evotsp?
//
//   - Reproducible – one seed, one RNG stream, bit-identical results,
//     no matter how many runs execute in parallel
//   - Honest errors – sentinel errors everywhere, no panics, no logging
//     inside the algorithms
//   - Small API – a handful of types per package, clear naming
//
// Everything is organized under five packages plus a CLI:
//
//	distmat/    — immutable distance matrices + city/matrix file loaders
//	tour/       — permutation encoding, tour validation, tour cost
//	evolve/     — the generational engine and its operators
//	experiment/ — YAML specs and the parallel two-configuration runner
//	report/     — text reports and gonum/plot PNG renderers
//	cmd/evotsp  — cobra CLI: evotsp run, evotsp quick
//
// Quick example:
//
//	m, _ := distmat.LoadMatrix("intercityDistance.txt")
//	eng, _ := evolve.New(m, 0, evolve.WithSeed(42))
//	res, _ := eng.Run(context.Background())
//	fmt.Println(res.BestCost, res.BestTour)
//
//	go get github.com/katalvlaran/evotsp
package evotsp
