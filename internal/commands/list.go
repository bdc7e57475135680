// internal/commands/list.go
package gauge

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/gauge/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored benchmark result files",
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := store.ListResultFiles(GetConfig().ResolvedOutputDir())
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No result files found.")
			return nil
		}
		for _, file := range files {
			fmt.Println(file)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
