// internal/report/markdown.go
// Package report renders result collections and comparison summaries
// into markdown and terminal output. Rendering is total: missing
// optional data becomes a placeholder, never an error.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mwiater/gauge/internal/compare"
	"github.com/mwiater/gauge/internal/result"
)

const placeholder = "-"

// Generate renders a markdown report for a single run.
func Generate(results []result.BenchmarkResult) string {
	var b strings.Builder

	b.WriteString("# Benchmark Results\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", time.Now().UTC().Format("2006-01-02 15:04:05 UTC"))

	total := len(results)
	successful := 0
	failed := 0
	for _, r := range results {
		if r.IsSuccess() {
			successful++
		}
		if r.IsFailed() {
			failed++
		}
	}
	skipped := total - successful - failed

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Total Benchmarks:** %d\n", total)
	fmt.Fprintf(&b, "- **Successful:** %d ✓\n", successful)
	if failed > 0 {
		fmt.Fprintf(&b, "- **Failed:** %d ✗\n", failed)
	}
	if skipped > 0 {
		fmt.Fprintf(&b, "- **Skipped:** %d ⊘\n", skipped)
	}
	b.WriteString("\n")

	if total > 0 {
		b.WriteString("## Results\n\n")
		b.WriteString("| Benchmark | Status | Duration (ms) | Throughput (ops/sec) | Memory (MB) |\n")
		b.WriteString("|-----------|--------|---------------|----------------------|-------------|\n")

		for _, r := range results {
			throughput := placeholder
			if r.Metrics.ThroughputOpsPerSec != nil {
				throughput = fmt.Sprintf("%.2f", *r.Metrics.ThroughputOpsPerSec)
			}
			memory := placeholder
			if r.Metrics.MemoryBytes != nil {
				memory = fmt.Sprintf("%.2f", float64(*r.Metrics.MemoryBytes)/1024.0/1024.0)
			}
			fmt.Fprintf(&b, "| %s | %s | %.2f | %s | %s |\n",
				r.TargetID, statusGlyph(r.Status), r.Metrics.DurationMS, throughput, memory)
		}
		b.WriteString("\n")
	}

	if successful > 0 {
		b.WriteString("## Performance Insights\n\n")

		ranked := make([]result.BenchmarkResult, 0, successful)
		for _, r := range results {
			if r.IsSuccess() {
				ranked = append(ranked, r)
			}
		}
		// Stable sort keeps original order for equal durations.
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Metrics.DurationMS < ranked[j].Metrics.DurationMS
		})

		fastest := ranked[0]
		slowest := ranked[len(ranked)-1]
		fmt.Fprintf(&b, "**Fastest:** %s (%.2fms)\n", fastest.TargetID, fastest.Metrics.DurationMS)
		fmt.Fprintf(&b, "**Slowest:** %s (%.2fms)\n", slowest.TargetID, slowest.Metrics.DurationMS)

		var sum float64
		for _, r := range ranked {
			sum += r.Metrics.DurationMS
		}
		fmt.Fprintf(&b, "**Average Duration:** %.2fms\n\n", sum/float64(len(ranked)))
	}

	if failed > 0 {
		b.WriteString("## Failed Benchmarks\n\n")
		for _, r := range results {
			if !r.IsFailed() {
				continue
			}
			fmt.Fprintf(&b, "### %s\n\n", r.TargetID)
			if r.Error != "" {
				fmt.Fprintf(&b, "```\n%s\n```\n\n", r.Error)
			}
		}
	}

	writeEnvironment(&b, results)

	return b.String()
}

// writeEnvironment emits the environment block from the first result
// carrying metadata. Metadata is not aggregated across results.
func writeEnvironment(b *strings.Builder, results []result.BenchmarkResult) {
	var meta *result.EnvironmentInfo
	for _, r := range results {
		if r.Metadata != nil {
			meta = r.Metadata
			break
		}
	}
	if meta == nil {
		return
	}

	b.WriteString("## System Information\n\n")
	if meta.GoVersion != "" {
		fmt.Fprintf(b, "- **Go Version:** %s\n", meta.GoVersion)
	}
	if meta.Platform != "" {
		fmt.Fprintf(b, "- **Platform:** %s\n", meta.Platform)
	}
	if meta.CPUCores > 0 {
		fmt.Fprintf(b, "- **CPU Cores:** %d\n", meta.CPUCores)
	}
	if meta.TotalMemory > 0 {
		fmt.Fprintf(b, "- **Total Memory:** %.2f GB\n", float64(meta.TotalMemory)/1024.0/1024.0/1024.0)
	}
	if meta.GitCommit != "" {
		fmt.Fprintf(b, "- **Git Commit:** %s\n", meta.GitCommit)
	}
	if meta.RunID != "" {
		fmt.Fprintf(b, "- **Run ID:** %s\n", meta.RunID)
	}
	b.WriteString("\n")
}

// GenerateComparison renders a markdown report of performance changes
// between two runs.
func GenerateComparison(summary *compare.Summary, baselineName, currentName string) string {
	var b strings.Builder

	b.WriteString("# Benchmark Comparison Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", time.Now().UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "**Baseline:** %s\n", baselineName)
	fmt.Fprintf(&b, "**Current:** %s\n\n", currentName)

	sorted := sortByChangeDesc(summary.Comparisons)

	improvements := filterSorted(sorted, func(c compare.Comparison) bool {
		return c.DurationChangePct < -compare.ChangeThresholdPct
	})
	regressions := filterSorted(sorted, func(c compare.Comparison) bool {
		return c.DurationChangePct > compare.ChangeThresholdPct
	})
	unchanged := len(summary.Comparisons) - len(improvements) - len(regressions)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Total Benchmarks:** %d\n", len(summary.Comparisons))
	fmt.Fprintf(&b, "- **Improvements:** %d 🚀\n", len(improvements))
	fmt.Fprintf(&b, "- **Regressions:** %d 🐌\n", len(regressions))
	fmt.Fprintf(&b, "- **Unchanged:** %d ≈\n\n", unchanged)

	b.WriteString("## Detailed Comparison\n\n")
	b.WriteString("| Benchmark | Baseline (ms) | Current (ms) | Change | % Change |\n")
	b.WriteString("|-----------|---------------|--------------|--------|----------|\n")

	for _, c := range sorted {
		change := c.CurrentDurationMS - c.BaselineDurationMS
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %+.2f | %+.1f%% %s |\n",
			c.TargetID, c.BaselineDurationMS, c.CurrentDurationMS, change,
			c.DurationChangePct, changeIcon(c.DurationChangePct))
	}
	b.WriteString("\n")

	// Both sections list entries in the order of the globally sorted
	// table: regressions worst-first, improvements best-last.
	if len(regressions) > 0 {
		b.WriteString("## 🐌 Performance Regressions\n\n")
		for _, c := range regressions {
			fmt.Fprintf(&b, "- **%s**: %.2fms → %.2fms (%+.1f%%)\n",
				c.TargetID, c.BaselineDurationMS, c.CurrentDurationMS, c.DurationChangePct)
		}
		b.WriteString("\n")
	}

	if len(improvements) > 0 {
		b.WriteString("## 🚀 Performance Improvements\n\n")
		for _, c := range improvements {
			fmt.Fprintf(&b, "- **%s**: %.2fms → %.2fms (%+.1f%%)\n",
				c.TargetID, c.BaselineDurationMS, c.CurrentDurationMS, c.DurationChangePct)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// GeneratePRComment renders the short-form notification variant: top-5
// regressions and improvements, plus a collapsible full-table appendix.
func GeneratePRComment(summary *compare.Summary) string {
	var b strings.Builder

	b.WriteString("## 📊 Benchmark Results\n\n")

	improvements := summary.Improvements()
	regressions := summary.Regressions()

	if len(regressions) == 0 && len(improvements) == 0 {
		b.WriteString("✅ No significant performance changes detected.\n")
	} else {
		if len(regressions) > 0 {
			b.WriteString("### 🐌 Performance Regressions\n\n")
			for _, c := range topN(regressions, 5) {
				fmt.Fprintf(&b, "- `%s`: %+.1f%% slower (%.2fms → %.2fms)\n",
					c.TargetID, c.DurationChangePct, c.BaselineDurationMS, c.CurrentDurationMS)
			}
			b.WriteString("\n")
		}
		if len(improvements) > 0 {
			b.WriteString("### 🚀 Performance Improvements\n\n")
			for _, c := range topN(improvements, 5) {
				fmt.Fprintf(&b, "- `%s`: %.1f%% faster (%.2fms → %.2fms)\n",
					c.TargetID, -c.DurationChangePct, c.BaselineDurationMS, c.CurrentDurationMS)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("<details><summary>View full benchmark results</summary>\n\n")
	b.WriteString("| Benchmark | Change |\n")
	b.WriteString("|-----------|--------|\n")
	for _, c := range summary.Comparisons {
		fmt.Fprintf(&b, "| %s | %+.1f%% |\n", c.TargetID, c.DurationChangePct)
	}
	b.WriteString("\n</details>\n")

	return b.String()
}

func statusGlyph(s result.Status) string {
	switch s {
	case result.StatusSuccess:
		return "✓"
	case result.StatusFailed:
		return "✗"
	default:
		return "⊘"
	}
}

func changeIcon(pct float64) string {
	switch {
	case pct < -compare.ChangeThresholdPct:
		return "🚀"
	case pct > compare.ChangeThresholdPct:
		return "🐌"
	default:
		return "≈"
	}
}

// sortByChangeDesc returns a copy sorted worst regression first, best
// improvement last. The stable sort keeps input order on ties.
func sortByChangeDesc(comparisons []compare.Comparison) []compare.Comparison {
	sorted := make([]compare.Comparison, len(comparisons))
	copy(sorted, comparisons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DurationChangePct > sorted[j].DurationChangePct
	})
	return sorted
}

func filterSorted(comparisons []compare.Comparison, keep func(compare.Comparison) bool) []compare.Comparison {
	var out []compare.Comparison
	for _, c := range comparisons {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func topN(comparisons []compare.Comparison, n int) []compare.Comparison {
	if len(comparisons) <= n {
		return comparisons
	}
	return comparisons[:n]
}
