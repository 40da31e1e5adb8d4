// render/table.go
// Package render provides the terminal renderers behind the show
// adapters: a lipgloss table for tabular payloads and a color-scaled
// heatmap for confusion matrices. Renderers own all display formatting;
// the payloads they receive are raw.
package render

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mwiater/visor/surface"
	"github.com/mwiater/visor/vis"
)

// Table renders tabular payloads into a surface target using a
// lipgloss table.
type Table struct {
	headerStyle lipgloss.Style
	cellStyle   lipgloss.Style
	borderStyle lipgloss.Style
}

// NewTable creates a table renderer with the default styling.
func NewTable() *Table {
	return &Table{
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1),
		cellStyle:   lipgloss.NewStyle().Padding(0, 1),
		borderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// RenderTable draws the payload into the target, replacing its content.
func (r *Table) RenderTable(ctx context.Context, payload vis.Table, target *surface.Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if target == nil {
		return fmt.Errorf("render table: no draw target")
	}

	rows := make([][]string, 0, len(payload.Rows))
	for _, row := range payload.Rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, formatCell(cell))
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.headerStyle
			}
			return r.cellStyle
		}).
		Headers(payload.Headers...).
		Rows(rows...)

	target.SetContent(t.String())
	return nil
}

// formatCell converts a payload value to its display string. Numeric
// values keep full precision; rounding for display is deliberately not
// done here so small accuracy differences stay visible.
func formatCell(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'g', -1, 32)
	default:
		return fmt.Sprintf("%v", value)
	}
}
