// internal/commands/run.go
package gauge

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mwiater/gauge/internal/bench"
	"github.com/mwiater/gauge/internal/report"
	"github.com/mwiater/gauge/internal/result"
	"github.com/mwiater/gauge/internal/store"
	"github.com/mwiater/gauge/internal/tui"
)

var (
	runRaw      bool
	runMarkdown bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark suite and save the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		targets := bench.DefaultTargets()
		for i, target := range targets {
			targets[i] = bench.WithTimeout(target, cfg.RunTimeout())
		}

		var results []result.BenchmarkResult
		if cfg.Progress && report.IsTerminal() {
			var err error
			results, err = tui.Run(ctx, targets)
			if err != nil {
				return err
			}
		} else {
			results = bench.RunAll(ctx, targets)
		}

		// The environment block in reports reads the first result's
		// metadata, so one stamp is enough.
		if len(results) > 0 {
			results[0] = results[0].WithMetadata(result.CollectEnvironment())
		}

		path, err := store.SaveResults(cfg.ResolvedOutputDir(), results, store.ParseFormat(cfg.Format))
		if err != nil {
			return err
		}
		fmt.Printf("Results saved to: %s\n", path)

		if runRaw {
			rawPaths, err := store.SaveRawResults(cfg.ResolvedRawDir(), results)
			if err != nil {
				return err
			}
			fmt.Printf("Raw results saved: %d files\n", len(rawPaths))
		}

		if runMarkdown {
			reportPath := filepath.Join(cfg.ResolvedOutputDir(), "benchmark_report.md")
			if err := store.WriteFile(reportPath, []byte(report.Generate(results))); err != nil {
				return err
			}
			fmt.Printf("Markdown report saved to: %s\n", reportPath)
		}

		fmt.Printf("\n%s\n", report.ConsoleSummary(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runRaw, "raw", false, "save raw results (one file per benchmark)")
	runCmd.Flags().BoolVar(&runMarkdown, "markdown", false, "write a markdown report alongside the results")
}
