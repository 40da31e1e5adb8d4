// internal/commands/view.go
package visor

import (
	"fmt"

	"github.com/mwiater/visor/internal/tui"
	"github.com/mwiater/visor/surface"
	"github.com/spf13/cobra"
)

// viewCmd renders every metric in the evaluation report and opens the
// interactive surface browser.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the evaluation report in an interactive viewer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		report, err := loadConfiguredReport(cfg)
		if err != nil {
			return err
		}

		board, manager := newBoard(cfg)
		ctx := cmd.Context()

		if len(report.ClassAccuracy) > 0 {
			if _, err := renderReportAccuracy(ctx, board, manager, report, surface.Container{Name: "Per-Class Accuracy"}); err != nil {
				return fmt.Errorf("accuracy table: %w", err)
			}
		}
		if len(report.ConfusionMatrix) > 0 {
			if _, err := renderReportConfusion(ctx, board, manager, report, surface.Container{Name: "Confusion Matrix"}, cfg.MatrixHeightUnits()); err != nil {
				return fmt.Errorf("confusion matrix: %w", err)
			}
		}

		return tui.Run(manager)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
