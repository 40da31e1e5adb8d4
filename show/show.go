// show/show.go
// Package show turns evaluation metrics into renderer payloads and
// draws them onto named surfaces. It is a thin adapter layer: data is
// normalized for shape, never validated or corrected. Malformed values
// (out-of-range accuracies, jagged matrices) are forwarded as given and
// surface as renderer artifacts, not adapter errors.
package show

import (
	"context"
	"strconv"

	"github.com/mwiater/visor/internal/logging"
	"github.com/mwiater/visor/surface"
	"github.com/mwiater/visor/vis"
)

// ClassAccuracy holds the evaluation result for a single class.
type ClassAccuracy struct {
	// Accuracy is the fraction of correct predictions, expected in [0, 1].
	Accuracy float64 `json:"accuracy"`
	// Count is the number of samples evaluated for the class.
	Count int `json:"count"`
}

// AccuracyHeaders is the fixed header row of the per-class accuracy table.
var AccuracyHeaders = []string{"Class", "Accuracy", "# Samples"}

// AccuracyOptions configures the per-class accuracy table.
type AccuracyOptions struct {
	// ClassLabels names the classes by index. Missing entries fall back
	// to the decimal class index; excess entries are ignored.
	ClassLabels []string
}

// ConfusionOptions configures the confusion-matrix view.
type ConfusionOptions struct {
	// ClassLabels names both axes of the matrix. The adapter forwards
	// them as given; length mismatches are left to the renderer.
	ClassLabels []string
	// Height is the vertical size of the rendered matrix in layout
	// units. Zero means vis.DefaultMatrixHeight.
	Height int
}

// Board wires a surface manager to concrete renderers. A Board holds no
// per-call state; concurrent calls against different containers are safe.
type Board struct {
	manager  *surface.Manager
	tables   vis.TableRenderer
	matrices vis.MatrixRenderer
}

// NewBoard creates a Board drawing onto the given manager's surfaces.
func NewBoard(manager *surface.Manager, tables vis.TableRenderer, matrices vis.MatrixRenderer) *Board {
	return &Board{
		manager:  manager,
		tables:   tables,
		matrices: matrices,
	}
}

// PerClassAccuracy renders a per-class accuracy table into the surface
// named by container. Row i is [label, accuracy, count] for class i, in
// input order; an empty classAccuracy slice yields a header-only table.
// The returned error is the completion signal: nil once the renderer
// has finished, a *surface.ResolutionError if the container cannot be
// resolved, or the renderer's failure unwrapped.
func (b *Board) PerClassAccuracy(ctx context.Context, container surface.Container, classAccuracy []ClassAccuracy, opts AccuracyOptions) error {
	target, err := b.manager.Resolve(container)
	if err != nil {
		return err
	}

	payload := vis.Table{
		Headers: AccuracyHeaders,
		Rows:    make([][]any, 0, len(classAccuracy)),
	}
	for i, class := range classAccuracy {
		payload.Rows = append(payload.Rows, []any{classLabel(opts.ClassLabels, i), class.Accuracy, class.Count})
	}

	if err := b.tables.RenderTable(ctx, payload, target); err != nil {
		return err
	}
	logging.LogRender("table", target, len(payload.Rows))
	return nil
}

// ConfusionMatrix renders a confusion matrix into the surface named by
// container. The grid is forwarded verbatim: no transposition,
// normalization, or shape checking. The returned error is the
// completion signal, as for PerClassAccuracy.
func (b *Board) ConfusionMatrix(ctx context.Context, container surface.Container, matrix [][]float64, opts ConfusionOptions) error {
	target, err := b.manager.Resolve(container)
	if err != nil {
		return err
	}

	payload := vis.Matrix{
		Values: matrix,
		Labels: opts.ClassLabels,
	}
	renderOpts := vis.MatrixOptions{Height: opts.Height}.WithDefaults()

	if err := b.matrices.RenderConfusionMatrix(ctx, payload, target, renderOpts); err != nil {
		return err
	}
	logging.LogRender("confusion-matrix", target, len(matrix))
	return nil
}

// classLabel returns the label for a class index, falling back to the
// decimal form of the index when no label is supplied.
func classLabel(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return strconv.Itoa(i)
}
