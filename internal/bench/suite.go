// internal/bench/suite.go
package bench

import (
	"context"

	"github.com/mwiater/gauge/internal/logging"
	"github.com/mwiater/gauge/internal/result"
)

// RunAll executes every target sequentially, each completing its full
// lifecycle before the next begins, and returns the results in target
// order. Per-target failures are recorded in the results, not returned
// as errors.
func RunAll(ctx context.Context, targets []Target) []result.BenchmarkResult {
	logging.Infof("Starting benchmark suite: %d targets", len(targets))

	results := make([]result.BenchmarkResult, 0, len(targets))
	for _, target := range targets {
		logging.Infof("Running benchmark: %s", target.ID())

		res := Execute(ctx, target)

		switch res.Status {
		case result.StatusSuccess:
			logging.Infof("✓ %s completed in %.2fms", res.TargetID, res.Metrics.DurationMS)
		case result.StatusFailed:
			logging.Errorf("✗ %s failed: %s", res.TargetID, res.Error)
		case result.StatusSkipped:
			logging.Warnf("⊘ %s skipped", res.TargetID)
		}

		results = append(results, res)
	}

	logging.Infof("Benchmark suite completed: %d total", len(results))
	return results
}
