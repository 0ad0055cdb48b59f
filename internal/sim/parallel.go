package sim

import (
	"context"
	"sync"
)

// Ensemble runs the same scenario across a range of seeds in parallel.
// Each run gets its own runner from the factory, so no world state is
// shared between goroutines.
type Ensemble struct {
	makeRunner func(seed int64) *Runner
	numRuns    int
	seedStart  int64
}

// NewEnsemble builds an ensemble of numRuns runs seeded seedStart,
// seedStart+1, and so on.
func NewEnsemble(makeRunner func(seed int64) *Runner, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{makeRunner: makeRunner, numRuns: numRuns, seedStart: seedStart}
}

// Run executes every seed and returns the per-run results in seed order.
// The first run error, if any, is returned after all runs finish.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			runCfg := cfg
			runCfg.Seed = e.seedStart + int64(idx)

			r := e.makeRunner(runCfg.Seed)
			results[idx], errs[idx] = r.Run(ctx, runCfg)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
