// internal/commands/show_accuracy.go
package visor

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mwiater/visor/surface"
	"github.com/spf13/cobra"
)

var (
	accuracySurfaceName string
	accuracySurfaceTab  string
)

// showAccuracyCmd draws the per-class accuracy table from the
// configured evaluation report and prints it.
var showAccuracyCmd = &cobra.Command{
	Use:   "accuracy",
	Short: "Draw the per-class accuracy table from the evaluation report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		report, err := loadConfiguredReport(cfg)
		if err != nil {
			return err
		}
		if len(report.ClassAccuracy) == 0 {
			return fmt.Errorf("report %q carries no classAccuracy data", cfg.ReportPath())
		}

		board, manager := newBoard(cfg)
		container := surface.Container{Name: accuracySurfaceName, Tab: accuracySurfaceTab}
		target, err := renderReportAccuracy(cmd.Context(), board, manager, report, container)
		if err != nil {
			color.Red("accuracy table failed: %v", err)
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), target.Content())
		color.Green("rendered %d classes onto %s / %s", len(report.ClassAccuracy), target.Tab(), target.Name())
		return nil
	},
}

func init() {
	showAccuracyCmd.Flags().StringVar(&accuracySurfaceName, "surface", "Per-Class Accuracy", "surface name to draw into")
	showAccuracyCmd.Flags().StringVar(&accuracySurfaceTab, "tab", "", "tab group for the surface (empty = configured default)")
	showCmd.AddCommand(showAccuracyCmd)
}
