// internal/commands/report.go
package gauge

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/gauge/internal/report"
	"github.com/mwiater/gauge/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Generate a markdown report from a result file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := store.LoadResults(args[0])
		if err != nil {
			return err
		}
		fmt.Println(report.Generate(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
