// internal/report/console.go
package report

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mwiater/gauge/internal/compare"
	"github.com/mwiater/gauge/internal/result"
)

var (
	successGlyph = color.New(color.FgGreen).SprintFunc()
	failureGlyph = color.New(color.FgRed).SprintFunc()
	skippedGlyph = color.New(color.FgYellow).SprintFunc()

	headerStyle      = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	regressionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	improvementStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
)

// IsTerminal reports whether stdout is attached to a TTY.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// ConsoleSummary renders a compact terminal summary of one run.
func ConsoleSummary(results []result.BenchmarkResult) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Benchmark Summary"))
	b.WriteString("\n\n")

	total := len(results)
	successful := 0
	failed := 0
	var sum float64
	for _, r := range results {
		if r.IsSuccess() {
			successful++
			sum += r.Metrics.DurationMS
		}
		if r.IsFailed() {
			failed++
		}
	}

	fmt.Fprintf(&b, "Total:      %d\n", total)
	fmt.Fprintf(&b, "Successful: %d %s\n", successful, successGlyph("✓"))
	if failed > 0 {
		fmt.Fprintf(&b, "Failed:     %d %s\n", failed, failureGlyph("✗"))
	}
	if skipped := total - successful - failed; skipped > 0 {
		fmt.Fprintf(&b, "Skipped:    %d %s\n", skipped, skippedGlyph("⊘"))
	}
	if successful > 0 {
		fmt.Fprintf(&b, "\nAverage Duration: %.2fms\n", sum/float64(successful))
	}

	return b.String()
}

// ConsoleComparison renders a terminal comparison summary with the top
// regressions and improvements.
func ConsoleComparison(summary *compare.Summary, baselineName, currentName string) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Benchmark Comparison"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Baseline: %s\n", baselineName)
	fmt.Fprintf(&b, "Current:  %s\n\n", currentName)

	improvements := summary.Improvements()
	regressions := summary.Regressions()
	unchanged := summary.Unchanged()

	fmt.Fprintf(&b, "Total benchmarks: %d\n", len(summary.Comparisons))
	fmt.Fprintf(&b, "Improvements: %d\n", len(improvements))
	fmt.Fprintf(&b, "Regressions:  %d\n", len(regressions))
	fmt.Fprintf(&b, "Unchanged:    %d\n\n", len(unchanged))

	if len(regressions) > 0 {
		sort.SliceStable(regressions, func(i, j int) bool {
			return regressions[i].DurationChangePct > regressions[j].DurationChangePct
		})
		b.WriteString("Top Regressions:\n")
		for i, c := range topN(regressions, 5) {
			line := fmt.Sprintf("  %d. %s (%+.1f%%): %.2fms → %.2fms",
				i+1, c.TargetID, c.DurationChangePct, c.BaselineDurationMS, c.CurrentDurationMS)
			b.WriteString(regressionStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(improvements) > 0 {
		sort.SliceStable(improvements, func(i, j int) bool {
			return improvements[i].DurationChangePct < improvements[j].DurationChangePct
		})
		b.WriteString("Top Improvements:\n")
		for i, c := range topN(improvements, 5) {
			line := fmt.Sprintf("  %d. %s (%+.1f%%): %.2fms → %.2fms",
				i+1, c.TargetID, c.DurationChangePct, c.BaselineDurationMS, c.CurrentDurationMS)
			b.WriteString(improvementStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
