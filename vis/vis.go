// vis/vis.go
// Package vis defines the renderer-agnostic payload shapes exchanged
// between the show adapters and the renderers.
package vis

import (
	"context"

	"github.com/mwiater/visor/surface"
)

// DefaultMatrixHeight is the vertical size, in layout units, requested
// for a rendered confusion matrix when the caller does not override it.
const DefaultMatrixHeight = 450

// Table is a generic tabular payload. Every row has exactly one value
// per header, and row order is meaningful: row i describes class i.
type Table struct {
	Headers []string
	Rows    [][]any
}

// Matrix wraps a confusion matrix for rendering. Values is the caller's
// grid, forwarded untouched; Labels, when present, apply to both the
// row and column axes.
type Matrix struct {
	Values [][]float64
	Labels []string
}

// MatrixOptions configures confusion-matrix rendering. It is an
// extensible option bag; Height is the only recognized option today.
type MatrixOptions struct {
	// Height is the vertical size of the rendered matrix in layout units.
	Height int
}

// WithDefaults returns a copy of the options with unset fields replaced
// by their documented defaults.
func (o MatrixOptions) WithDefaults() MatrixOptions {
	if o.Height <= 0 {
		o.Height = DefaultMatrixHeight
	}
	return o
}

// TableRenderer draws a tabular payload into a resolved target.
type TableRenderer interface {
	RenderTable(ctx context.Context, payload Table, target *surface.Target) error
}

// MatrixRenderer draws a confusion-matrix payload into a resolved target.
type MatrixRenderer interface {
	RenderConfusionMatrix(ctx context.Context, payload Matrix, target *surface.Target, opts MatrixOptions) error
}
