// internal/compare/compare.go
// Package compare matches benchmark results across two runs and
// classifies the duration change of each matched pair.
package compare

import "github.com/mwiater/gauge/internal/result"

// ChangeThresholdPct is the noise tolerance: changes within ±5% are
// classified as unchanged. The band is closed, so exactly ±5% is still
// unchanged. Callers needing a different tolerance must re-derive the
// partitions from Summary.Comparisons.
const ChangeThresholdPct = 5.0

// Comparison holds the matched durations for one benchmark identity.
type Comparison struct {
	TargetID           string  `json:"target_id"`
	BaselineDurationMS float64 `json:"baseline_duration_ms"`
	CurrentDurationMS  float64 `json:"current_duration_ms"`
	// DurationChangePct is (current-baseline)/baseline*100, clamped to
	// zero when the baseline duration is zero. The clamp guards the
	// division, it does not assert "no change".
	DurationChangePct float64 `json:"duration_change_pct"`
}

// Summary is the ordered collection of comparisons produced by Compare.
type Summary struct {
	Comparisons []Comparison `json:"comparisons"`
}

// Compare pairs two result collections by target identity and computes
// the relative duration change for each pair.
//
// The baseline is indexed by TargetID with last-wins semantics on
// duplicates. Identities present in only one collection are dropped:
// the comparison is defined over the intersection only. Output
// preserves the iteration order of current.
func Compare(baseline, current []result.BenchmarkResult) *Summary {
	index := make(map[string]result.BenchmarkResult, len(baseline))
	for _, r := range baseline {
		index[r.TargetID] = r
	}

	comparisons := make([]Comparison, 0, len(current))
	for _, r := range current {
		base, ok := index[r.TargetID]
		if !ok {
			continue
		}

		changePct := 0.0
		if base.Metrics.DurationMS > 0 {
			changePct = (r.Metrics.DurationMS - base.Metrics.DurationMS) / base.Metrics.DurationMS * 100.0
		}

		comparisons = append(comparisons, Comparison{
			TargetID:           r.TargetID,
			BaselineDurationMS: base.Metrics.DurationMS,
			CurrentDurationMS:  r.Metrics.DurationMS,
			DurationChangePct:  changePct,
		})
	}

	return &Summary{Comparisons: comparisons}
}

// Improvements returns the comparisons more than 5% faster than
// baseline, in collection order.
func (s *Summary) Improvements() []Comparison {
	return s.filter(func(c Comparison) bool { return c.DurationChangePct < -ChangeThresholdPct })
}

// Regressions returns the comparisons more than 5% slower than
// baseline, in collection order.
func (s *Summary) Regressions() []Comparison {
	return s.filter(func(c Comparison) bool { return c.DurationChangePct > ChangeThresholdPct })
}

// Unchanged returns the comparisons within the tolerance band, in
// collection order.
func (s *Summary) Unchanged() []Comparison {
	return s.filter(func(c Comparison) bool {
		return c.DurationChangePct >= -ChangeThresholdPct && c.DurationChangePct <= ChangeThresholdPct
	})
}

func (s *Summary) filter(keep func(Comparison) bool) []Comparison {
	var out []Comparison
	for _, c := range s.Comparisons {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
