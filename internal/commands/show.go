// internal/commands/show.go
package visor

import (
	"github.com/spf13/cobra"
)

// showCmd represents the 'show' command group for drawing evaluation results.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for drawing evaluation results",
	Long:  `The 'show' command groups subcommands that draw evaluation results onto named surfaces and print them.`,
}

func init() {
	rootCmd.AddCommand(showCmd)
}
