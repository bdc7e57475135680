// internal/bench/adapters.go
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/mwiater/gauge/internal/result"
)

// SimulatedTarget is a benchmark whose measured body sleeps for a fixed
// cost per iteration. It stands in for real registry operations until a
// target is wired to a live collaborator, and doubles as the reference
// implementation of the Target contract.
type SimulatedTarget struct {
	TargetID   string
	Summary    string
	Iterations int
	OpCost     time.Duration
}

// NewSimulated returns a sleep-based target with the given identity and
// per-iteration cost.
func NewSimulated(id, summary string, iterations int, opCost time.Duration) *SimulatedTarget {
	return &SimulatedTarget{TargetID: id, Summary: summary, Iterations: iterations, OpCost: opCost}
}

// ID returns the stable benchmark identifier.
func (t *SimulatedTarget) ID() string { return t.TargetID }

// Description returns human-readable text for suite output.
func (t *SimulatedTarget) Description() string {
	if t.Summary != "" {
		return fmt.Sprintf("%s (%d iterations)", t.Summary, t.Iterations)
	}
	return fmt.Sprintf("Benchmark: %s", t.TargetID)
}

// Setup is a no-op for simulated targets.
func (t *SimulatedTarget) Setup(ctx context.Context) error { return nil }

// Teardown is a no-op for simulated targets.
func (t *SimulatedTarget) Teardown(ctx context.Context) error { return nil }

// Run executes the simulated operation loop and reports duration,
// throughput, and operation counts.
func (t *SimulatedTarget) Run(ctx context.Context) result.BenchmarkResult {
	durationMS, err := MeasureCtx(ctx, func(ctx context.Context) error {
		for i := 0; i < t.Iterations; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(t.OpCost):
			}
		}
		return nil
	})
	if err != nil {
		return result.Failed(t.TargetID, err.Error())
	}

	throughput := float64(t.Iterations) / durationMS * 1000.0

	metrics := result.NewMetrics(durationMS).
		WithThroughput(throughput).
		WithCounts(uint64(t.Iterations), 0)

	return result.Success(t.TargetID, metrics)
}

// DefaultTargets returns the standard suite of registry operation
// benchmarks. Callers pass this list (or their own) to RunAll; nothing
// registers itself globally.
func DefaultTargets() []Target {
	return []Target{
		NewSimulated("db.asset_create", "Database asset creation", 100, 100*time.Microsecond),
		NewSimulated("db.asset_read", "Database asset read", 100, 50*time.Microsecond),
		NewSimulated("cache.lookup", "Cache lookup operations", 1000, 10*time.Microsecond),
		NewSimulated("search.query", "Search query execution", 50, 200*time.Microsecond),
		NewSimulated("api.assets", "API endpoint /api/assets", 100, 500*time.Microsecond),
		NewSimulated("event.publish", "Event publishing", 100, 150*time.Microsecond),
		NewSimulated("auth.validate_token", "Token validation", 200, 75*time.Microsecond),
	}
}
