// internal/commands/board.go
package visor

import (
	"context"
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/mwiater/visor/internal/appconfig"
	"github.com/mwiater/visor/internal/eval"
	"github.com/mwiater/visor/render"
	"github.com/mwiater/visor/show"
	"github.com/mwiater/visor/surface"
)

// newBoard wires a fresh surface registry to the terminal renderers,
// honoring the configured default tab.
func newBoard(cfg *appconfig.Config) (*show.Board, *surface.Manager) {
	var opts []surface.Option
	if cfg != nil {
		opts = append(opts, surface.WithDefaultTab(cfg.DefaultTabName()))
	}
	manager := surface.NewManager(opts...)
	return show.NewBoard(manager, render.NewTable(), render.NewHeatmap()), manager
}

// loadConfiguredReport reads the evaluation report named by the merged
// configuration, dumping it when debug mode is on.
func loadConfiguredReport(cfg *appconfig.Config) (eval.Report, error) {
	if cfg == nil {
		return eval.Report{}, fmt.Errorf("configuration is not initialized")
	}
	report, err := eval.LoadReport(cfg.ReportPath())
	if err != nil {
		return eval.Report{}, err
	}
	if cfg.Debug {
		_, _ = pp.Println(report)
	}
	return report, nil
}

// renderReportAccuracy draws the report's per-class accuracy table into
// the named surface and returns the resolved target.
func renderReportAccuracy(ctx context.Context, board *show.Board, manager *surface.Manager, report eval.Report, container surface.Container) (*surface.Target, error) {
	err := board.PerClassAccuracy(ctx, container, report.ClassAccuracy, show.AccuracyOptions{
		ClassLabels: report.ClassLabels,
	})
	if err != nil {
		return nil, err
	}
	return manager.Resolve(container)
}

// renderReportConfusion draws the report's confusion matrix into the
// named surface and returns the resolved target.
func renderReportConfusion(ctx context.Context, board *show.Board, manager *surface.Manager, report eval.Report, container surface.Container, height int) (*surface.Target, error) {
	err := board.ConfusionMatrix(ctx, container, report.ConfusionMatrix, show.ConfusionOptions{
		ClassLabels: report.ClassLabels,
		Height:      height,
	})
	if err != nil {
		return nil, err
	}
	return manager.Resolve(container)
}
