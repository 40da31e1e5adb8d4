// internal/commands/show_confusion.go
package visor

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mwiater/visor/surface"
	"github.com/spf13/cobra"
)

var (
	confusionSurfaceName string
	confusionSurfaceTab  string
)

// showConfusionCmd draws the confusion matrix from the configured
// evaluation report and prints it.
var showConfusionCmd = &cobra.Command{
	Use:   "confusion",
	Short: "Draw the confusion matrix from the evaluation report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		report, err := loadConfiguredReport(cfg)
		if err != nil {
			return err
		}
		if len(report.ConfusionMatrix) == 0 {
			return fmt.Errorf("report %q carries no confusionMatrix data", cfg.ReportPath())
		}

		board, manager := newBoard(cfg)
		container := surface.Container{Name: confusionSurfaceName, Tab: confusionSurfaceTab}
		target, err := renderReportConfusion(cmd.Context(), board, manager, report, container, cfg.MatrixHeightUnits())
		if err != nil {
			color.Red("confusion matrix failed: %v", err)
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), target.Content())
		color.Green("rendered %dx%d matrix onto %s / %s", len(report.ConfusionMatrix), gridCols(report.ConfusionMatrix), target.Tab(), target.Name())
		return nil
	},
}

// gridCols returns the widest row length, tolerating jagged grids.
func gridCols(values [][]float64) int {
	cols := 0
	for _, row := range values {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

func init() {
	showConfusionCmd.Flags().StringVar(&confusionSurfaceName, "surface", "Confusion Matrix", "surface name to draw into")
	showConfusionCmd.Flags().StringVar(&confusionSurfaceTab, "tab", "", "tab group for the surface (empty = configured default)")
	showCmd.AddCommand(showConfusionCmd)
}
