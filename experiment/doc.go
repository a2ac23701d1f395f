// Package experiment orchestrates batches of evolutionary runs: the same
// instance solved from several start cities by two named configurations
// that share population size and generation budget but differ in operator
// probabilities and seed.
//
// The runner executes the (start × configuration) grid on a bounded
// goroutine pool. Every run owns its engine and RNG stream, so results are
// reproducible regardless of scheduling. Failures are isolated per cell:
// one bad start city or canceled run never aborts its siblings, it is
// recorded in the grid next to the successes.
//
// Specs load from YAML and fall back to the reference configuration
// (pop 200, 1000 generations, five start cities, GA vs GA2) when fields
// are omitted.
//
// Logging is opt-in: the runner is silent unless WithLogger installs a
// *zap.Logger. The algorithm packages below this one never log.
package experiment
