// internal/bench/timeout.go
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/mwiater/gauge/internal/result"
)

// timeoutTarget bounds the measured body of another target with a
// deadline. Setup and teardown run without the deadline applied.
type timeoutTarget struct {
	Target
	limit time.Duration
}

// WithTimeout wraps a target so its Run is abandoned after limit,
// synthesizing a failed result on expiry. The underlying Run is left to
// finish in the background; its result is discarded.
func WithTimeout(t Target, limit time.Duration) Target {
	return &timeoutTarget{Target: t, limit: limit}
}

func (t *timeoutTarget) Run(ctx context.Context) result.BenchmarkResult {
	ctx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()

	done := make(chan result.BenchmarkResult, 1)
	go func() {
		done <- t.Target.Run(ctx)
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		return result.Failed(t.Target.ID(), fmt.Sprintf("timed out after %s", t.limit))
	}
}
