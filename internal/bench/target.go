// internal/bench/target.go
// Package bench defines the benchmark contract and the lifecycle that
// sequences setup, measurement, and teardown for each target.
package bench

import (
	"context"
	"fmt"

	"github.com/mwiater/gauge/internal/logging"
	"github.com/mwiater/gauge/internal/result"
)

// Target is the contract a benchmark implementation must satisfy.
// ID must be stable across runs; it is the key used to match results
// when comparing two runs. Format: category.operation.
type Target interface {
	ID() string
	Description() string
	// Setup runs before the timed body. Its cost is not measured.
	Setup(ctx context.Context) error
	// Run executes the timed body and always returns a result, never
	// an error: failures inside the measured operation are the body's
	// responsibility to convert into a failed result.
	Run(ctx context.Context) result.BenchmarkResult
	// Teardown runs after the timed body regardless of its outcome.
	Teardown(ctx context.Context) error
}

// Execute sequences one target through its full lifecycle.
//
// A setup failure short-circuits: the target's Run is never called and
// the returned result is Failed with the setup error embedded. Teardown
// is always attempted after Run; a teardown failure is logged as a
// warning and never alters the already-produced result.
func Execute(ctx context.Context, t Target) result.BenchmarkResult {
	if err := t.Setup(ctx); err != nil {
		return result.Failed(t.ID(), fmt.Sprintf("setup failed: %v", err))
	}

	res := t.Run(ctx)

	if err := t.Teardown(ctx); err != nil {
		logging.Warnf("teardown failed for %s: %v", t.ID(), err)
	}

	return res
}
