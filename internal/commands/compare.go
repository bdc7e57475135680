// internal/commands/compare.go
package gauge

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mwiater/gauge/internal/compare"
	"github.com/mwiater/gauge/internal/report"
	"github.com/mwiater/gauge/internal/store"
)

var (
	compareMarkdown  bool
	comparePRComment bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <baseline> <current>",
	Short: "Compare two benchmark result files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		baselinePath, currentPath := args[0], args[1]

		baseline, err := store.LoadResults(baselinePath)
		if err != nil {
			return err
		}
		current, err := store.LoadResults(currentPath)
		if err != nil {
			return err
		}

		summary := compare.Compare(baseline, current)

		fmt.Println(report.ConsoleComparison(summary, baselinePath, currentPath))

		if compareMarkdown {
			cfg := GetConfig()
			reportPath := filepath.Join(cfg.ResolvedOutputDir(), "comparison_report.md")
			rendered := report.GenerateComparison(summary, baselinePath, currentPath)
			if err := store.WriteFile(reportPath, []byte(rendered)); err != nil {
				return err
			}
			fmt.Printf("Markdown comparison report saved to: %s\n", reportPath)
		}

		if comparePRComment {
			fmt.Println(report.GeneratePRComment(summary))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().BoolVar(&compareMarkdown, "markdown", false, "write a markdown comparison report")
	compareCmd.Flags().BoolVar(&comparePRComment, "pr-comment", false, "print the short-form PR comment")
}
