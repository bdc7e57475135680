// internal/result/result.go
// Package result defines the value types produced by benchmark runs.
package result

import "time"

// Status describes the terminal outcome of a benchmark execution.
type Status string

const (
	// StatusSuccess indicates the benchmark completed and produced metrics.
	StatusSuccess Status = "success"
	// StatusFailed indicates the benchmark did not complete.
	StatusFailed Status = "failed"
	// StatusSkipped indicates the benchmark was deliberately not run.
	StatusSkipped Status = "skipped"
)

// BenchmarkResult holds the outcome of a single benchmark execution.
type BenchmarkResult struct {
	// TargetID is the stable dotted identifier (category.operation) used
	// to match the same logical benchmark across runs.
	TargetID  string           `json:"target_id"`
	Metrics   BenchmarkMetrics `json:"metrics"`
	Timestamp time.Time        `json:"timestamp"`
	Metadata  *EnvironmentInfo `json:"metadata,omitempty"`
	Status    Status           `json:"status"`
	// Error is set if and only if Status is StatusFailed.
	Error string `json:"error,omitempty"`
}

// BenchmarkMetrics contains the numeric facts collected for one trial.
type BenchmarkMetrics struct {
	DurationMS          float64            `json:"duration_ms"`
	ThroughputOpsPerSec *float64           `json:"throughput_ops_per_sec,omitempty"`
	MemoryBytes         *uint64            `json:"memory_bytes,omitempty"`
	SuccessCount        *uint64            `json:"success_count,omitempty"`
	ErrorCount          *uint64            `json:"error_count,omitempty"`
	Custom              map[string]float64 `json:"custom,omitempty"`
}

// Success returns a successful result for the given target with the
// supplied metrics, stamped with the current time.
func Success(targetID string, metrics BenchmarkMetrics) BenchmarkResult {
	return BenchmarkResult{
		TargetID:  targetID,
		Metrics:   metrics,
		Timestamp: time.Now().UTC(),
		Status:    StatusSuccess,
	}
}

// Failed returns a failed result carrying the error text. The metrics
// report a zero duration and a single error.
func Failed(targetID, errText string) BenchmarkResult {
	one := uint64(1)
	return BenchmarkResult{
		TargetID:  targetID,
		Metrics:   BenchmarkMetrics{ErrorCount: &one},
		Timestamp: time.Now().UTC(),
		Status:    StatusFailed,
		Error:     errText,
	}
}

// Skipped returns a result marking the target as not run.
func Skipped(targetID string) BenchmarkResult {
	return BenchmarkResult{
		TargetID:  targetID,
		Timestamp: time.Now().UTC(),
		Status:    StatusSkipped,
	}
}

// WithMetadata returns a copy of the result with environment metadata
// attached. Intended to be called once, at construction time.
func (r BenchmarkResult) WithMetadata(info EnvironmentInfo) BenchmarkResult {
	r.Metadata = &info
	return r
}

// IsSuccess reports whether the benchmark completed successfully.
func (r BenchmarkResult) IsSuccess() bool { return r.Status == StatusSuccess }

// IsFailed reports whether the benchmark failed.
func (r BenchmarkResult) IsFailed() bool { return r.Status == StatusFailed }

// NewMetrics returns metrics holding only the measured duration.
func NewMetrics(durationMS float64) BenchmarkMetrics {
	return BenchmarkMetrics{DurationMS: durationMS}
}

// WithThroughput returns a copy with the throughput measurement set.
func (m BenchmarkMetrics) WithThroughput(opsPerSec float64) BenchmarkMetrics {
	m.ThroughputOpsPerSec = &opsPerSec
	return m
}

// WithMemory returns a copy with the memory usage measurement set.
func (m BenchmarkMetrics) WithMemory(bytes uint64) BenchmarkMetrics {
	m.MemoryBytes = &bytes
	return m
}

// WithCounts returns a copy with operation success and error counts set.
func (m BenchmarkMetrics) WithCounts(successes, errors uint64) BenchmarkMetrics {
	m.SuccessCount = &successes
	m.ErrorCount = &errors
	return m
}

// WithCustomMetric returns a copy with the named custom metric added.
// Repeated calls accumulate; the last write wins per key.
func (m BenchmarkMetrics) WithCustomMetric(key string, value float64) BenchmarkMetrics {
	custom := make(map[string]float64, len(m.Custom)+1)
	for k, v := range m.Custom {
		custom[k] = v
	}
	custom[key] = value
	m.Custom = custom
	return m
}
