// render/heatmap.go
package render

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/visor/surface"
	"github.com/mwiater/visor/vis"
)

// unitsPerRow converts the height option's layout units into terminal
// rows. The default height of 450 units corresponds to an 18-row block.
const unitsPerRow = 25

// heatRamp is the background color scale from low to high cell values.
var heatRamp = []string{"17", "18", "19", "20", "21", "27", "33", "39", "45", "51"}

// Heatmap renders confusion matrices as a color-scaled grid. Cell color
// intensity is proportional to the cell value relative to the largest
// value in the grid.
type Heatmap struct {
	labelStyle lipgloss.Style
	titleStyle lipgloss.Style
	cellWidth  int
}

// NewHeatmap creates a heatmap renderer with the default styling.
func NewHeatmap() *Heatmap {
	return &Heatmap{
		labelStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		titleStyle: lipgloss.NewStyle().Faint(true),
		cellWidth:  9,
	}
}

// RenderConfusionMatrix draws the matrix into the target, replacing its
// content. The grid is rendered exactly as given: rows are true classes,
// columns are predicted classes, and no reordering or normalization of
// the values takes place. Labels past the end of payload.Labels fall
// back to the decimal class index.
func (r *Heatmap) RenderConfusionMatrix(ctx context.Context, payload vis.Matrix, target *surface.Target, opts vis.MatrixOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if target == nil {
		return fmt.Errorf("render confusion matrix: no draw target")
	}

	opts = opts.WithDefaults()
	values := payload.Values
	peak := gridMax(values)
	cellHeight := rowHeight(opts.Height, len(values))

	var lines []string
	lines = append(lines, r.titleStyle.Render("predicted →"))
	lines = append(lines, r.headerLine(values, payload.Labels))
	for i, row := range values {
		block := r.rowLines(row, axisLabel(payload.Labels, i), peak, cellHeight)
		lines = append(lines, block...)
	}

	target.SetContent(strings.Join(lines, "\n"))
	return nil
}

// headerLine renders the predicted-class column labels. Column count
// follows the widest row so jagged grids still get a full header.
func (r *Heatmap) headerLine(values [][]float64, labels []string) string {
	cols := 0
	for _, row := range values {
		if len(row) > cols {
			cols = len(row)
		}
	}
	cellStyle := lipgloss.NewStyle().Width(r.cellWidth).Align(lipgloss.Center)
	parts := []string{r.labelStyle.Width(r.cellWidth).Render("")}
	for c := 0; c < cols; c++ {
		parts = append(parts, cellStyle.Render(axisLabel(labels, c)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// rowLines renders one matrix row as cellHeight terminal lines, with
// the true-class label on the vertically centered line.
func (r *Heatmap) rowLines(row []float64, label string, peak float64, cellHeight int) []string {
	labelCol := lipgloss.NewStyle().Width(r.cellWidth).Align(lipgloss.Right).PaddingRight(1)
	lines := make([]string, 0, cellHeight)
	for line := 0; line < cellHeight; line++ {
		parts := make([]string, 0, len(row)+1)
		if line == cellHeight/2 {
			parts = append(parts, labelCol.Inherit(r.labelStyle).Render(label))
		} else {
			parts = append(parts, labelCol.Render(""))
		}
		for _, value := range row {
			text := ""
			if line == cellHeight/2 {
				text = strconv.FormatFloat(value, 'g', -1, 64)
			}
			parts = append(parts, r.cellStyle(value, peak).Render(text))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lines
}

// cellStyle picks the ramp color for a value relative to the grid peak.
func (r *Heatmap) cellStyle(value, peak float64) lipgloss.Style {
	idx := 0
	if peak > 0 {
		idx = int(value / peak * float64(len(heatRamp)-1))
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(heatRamp) {
		idx = len(heatRamp) - 1
	}
	fg := "252"
	if idx >= len(heatRamp)/2 {
		fg = "232"
	}
	return lipgloss.NewStyle().
		Width(r.cellWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(heatRamp[idx])).
		Foreground(lipgloss.Color(fg))
}

// rowHeight converts the height option into lines per matrix row,
// keeping at least one line and at most three.
func rowHeight(heightUnits, rows int) int {
	if rows == 0 {
		return 1
	}
	budget := heightUnits / unitsPerRow
	h := (budget - 2) / rows
	if h < 1 {
		return 1
	}
	if h > 3 {
		return 3
	}
	return h
}

// gridMax returns the largest value in the grid, tolerating jagged rows.
func gridMax(values [][]float64) float64 {
	peak := 0.0
	for _, row := range values {
		for _, v := range row {
			if v > peak {
				peak = v
			}
		}
	}
	return peak
}

// axisLabel returns the label for an axis index, falling back to the
// decimal form of the index.
func axisLabel(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return strconv.Itoa(i)
}
