package bench

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mwiater/gauge/internal/result"
)

type scriptedTarget struct {
	id           string
	setupErr     error
	teardownErr  error
	runResult    result.BenchmarkResult
	runCalls     int
	teardownRuns int
}

func (t *scriptedTarget) ID() string          { return t.id }
func (t *scriptedTarget) Description() string { return "Benchmark: " + t.id }

func (t *scriptedTarget) Setup(ctx context.Context) error { return t.setupErr }

func (t *scriptedTarget) Run(ctx context.Context) result.BenchmarkResult {
	t.runCalls++
	return t.runResult
}

func (t *scriptedTarget) Teardown(ctx context.Context) error {
	t.teardownRuns++
	return t.teardownErr
}

func TestExecuteSetupFailureShortCircuits(t *testing.T) {
	target := &scriptedTarget{id: "db.create", setupErr: errors.New("no database")}

	res := Execute(context.Background(), target)

	if target.runCalls != 0 {
		t.Fatalf("run called despite setup failure")
	}
	if !res.IsFailed() {
		t.Fatalf("status: %s", res.Status)
	}
	if !strings.Contains(res.Error, "setup failed") || !strings.Contains(res.Error, "no database") {
		t.Fatalf("error text does not embed cause: %q", res.Error)
	}
}

func TestExecuteTeardownFailureDoesNotMaskResult(t *testing.T) {
	target := &scriptedTarget{
		id:          "cache.lookup",
		runResult:   result.Success("cache.lookup", result.NewMetrics(12.5)),
		teardownErr: errors.New("cleanup blew up"),
	}

	res := Execute(context.Background(), target)

	if !res.IsSuccess() {
		t.Fatalf("teardown failure altered the result: %+v", res)
	}
	if res.Metrics.DurationMS != 12.5 {
		t.Fatalf("duration: %v", res.Metrics.DurationMS)
	}
	if target.teardownRuns != 1 {
		t.Fatalf("teardown runs: %d", target.teardownRuns)
	}
}

func TestExecuteTeardownRunsAfterFailedRun(t *testing.T) {
	target := &scriptedTarget{
		id:        "search.query",
		runResult: result.Failed("search.query", "query exploded"),
	}

	res := Execute(context.Background(), target)

	if !res.IsFailed() {
		t.Fatalf("status: %s", res.Status)
	}
	if target.teardownRuns != 1 {
		t.Fatalf("teardown not attempted after failed run")
	}
}

func TestMeasureReportsFractionalMilliseconds(t *testing.T) {
	elapsed := Measure(func() { time.Sleep(5 * time.Millisecond) })

	if elapsed < 5.0 {
		t.Fatalf("elapsed below sleep time: %v", elapsed)
	}
	if elapsed > 1000.0 {
		t.Fatalf("elapsed implausibly large: %v", elapsed)
	}
}

func TestRunAllSequentialOrder(t *testing.T) {
	targets := []Target{
		&scriptedTarget{id: "a", runResult: result.Success("a", result.NewMetrics(1))},
		&scriptedTarget{id: "b", runResult: result.Failed("b", "boom")},
		&scriptedTarget{id: "c", runResult: result.Skipped("c")},
	}

	results := RunAll(context.Background(), targets)

	if len(results) != 3 {
		t.Fatalf("results: %d", len(results))
	}
	for i, want := range []string{"a", "b", "c"} {
		if results[i].TargetID != want {
			t.Fatalf("index %d: %q, want %q", i, results[i].TargetID, want)
		}
	}
	if !results[1].IsFailed() {
		t.Fatalf("per-target failure not recorded: %+v", results[1])
	}
}

func TestWithTimeoutExpires(t *testing.T) {
	slow := NewSimulated("slow.op", "Slow operation", 1, 500*time.Millisecond)

	res := Execute(context.Background(), WithTimeout(slow, 20*time.Millisecond))

	if !res.IsFailed() {
		t.Fatalf("expected timeout failure, got %s", res.Status)
	}
	if !strings.Contains(res.Error, "timed out") {
		t.Fatalf("error text: %q", res.Error)
	}
	if res.TargetID != "slow.op" {
		t.Fatalf("target id: %q", res.TargetID)
	}
}

func TestWithTimeoutPassesThrough(t *testing.T) {
	fast := NewSimulated("fast.op", "Fast operation", 1, time.Microsecond)

	res := Execute(context.Background(), WithTimeout(fast, time.Second))

	if !res.IsSuccess() {
		t.Fatalf("fast target failed under generous timeout: %+v", res)
	}
}

func TestSimulatedTargetMetrics(t *testing.T) {
	target := NewSimulated("cache.lookup", "Cache lookup operations", 10, time.Microsecond)

	res := target.Run(context.Background())

	if !res.IsSuccess() {
		t.Fatalf("status: %s", res.Status)
	}
	if res.Metrics.DurationMS <= 0 {
		t.Fatalf("duration: %v", res.Metrics.DurationMS)
	}
	if res.Metrics.ThroughputOpsPerSec == nil || *res.Metrics.ThroughputOpsPerSec <= 0 {
		t.Fatalf("throughput: %v", res.Metrics.ThroughputOpsPerSec)
	}
	if res.Metrics.SuccessCount == nil || *res.Metrics.SuccessCount != 10 {
		t.Fatalf("success count: %v", res.Metrics.SuccessCount)
	}
}

func TestDefaultTargetsStableIdentities(t *testing.T) {
	seen := map[string]bool{}
	for _, target := range DefaultTargets() {
		id := target.ID()
		if id == "" {
			t.Fatalf("empty target id")
		}
		if !strings.Contains(id, ".") {
			t.Fatalf("target id %q is not category.operation", id)
		}
		if seen[id] {
			t.Fatalf("duplicate target id %q", id)
		}
		seen[id] = true
	}
}
