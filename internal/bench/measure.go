// internal/bench/measure.go
package bench

import (
	"context"
	"time"
)

// Measure runs fn and returns its wall-clock cost in fractional
// milliseconds. time.Since reads the monotonic clock.
func Measure(fn func()) float64 {
	start := time.Now()
	fn()
	return float64(time.Since(start)) / float64(time.Millisecond)
}

// MeasureCtx runs fn with the supplied context and returns its error
// alongside the elapsed fractional milliseconds.
func MeasureCtx(ctx context.Context, fn func(ctx context.Context) error) (float64, error) {
	start := time.Now()
	err := fn(ctx)
	return float64(time.Since(start)) / float64(time.Millisecond), err
}
