package show

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/mwiater/visor/surface"
	"github.com/mwiater/visor/vis"
)

// recordingRenderer captures the payloads handed to it and optionally
// fails, standing in for both renderer contracts.
type recordingRenderer struct {
	tableCalls  int
	matrixCalls int
	table       vis.Table
	matrix      vis.Matrix
	matrixOpts  vis.MatrixOptions
	err         error
}

func (r *recordingRenderer) RenderTable(_ context.Context, payload vis.Table, _ *surface.Target) error {
	r.tableCalls++
	r.table = payload
	return r.err
}

func (r *recordingRenderer) RenderConfusionMatrix(_ context.Context, payload vis.Matrix, _ *surface.Target, opts vis.MatrixOptions) error {
	r.matrixCalls++
	r.matrix = payload
	r.matrixOpts = opts
	return r.err
}

func newTestBoard() (*Board, *recordingRenderer) {
	r := &recordingRenderer{}
	return NewBoard(surface.NewManager(), r, r), r
}

func TestPerClassAccuracyIndexLabelsWhenNoneSupplied(t *testing.T) {
	board, renderer := newTestBoard()
	classAccuracy := []ClassAccuracy{
		{Accuracy: 0.9, Count: 10},
		{Accuracy: 0.5, Count: 4},
	}
	err := board.PerClassAccuracy(context.Background(), surface.Container{Name: "Accuracy"}, classAccuracy, AccuracyOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]any{
		{"0", 0.9, 10},
		{"1", 0.5, 4},
	}
	if !reflect.DeepEqual(renderer.table.Rows, want) {
		t.Fatalf("expected rows %v, got %v", want, renderer.table.Rows)
	}
}

func TestPerClassAccuracyUsesSuppliedLabels(t *testing.T) {
	board, renderer := newTestBoard()
	classAccuracy := []ClassAccuracy{
		{Accuracy: 0.9, Count: 10},
		{Accuracy: 0.5, Count: 4},
	}
	opts := AccuracyOptions{ClassLabels: []string{"cat", "dog"}}
	err := board.PerClassAccuracy(context.Background(), surface.Container{Name: "Accuracy"}, classAccuracy, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]any{
		{"cat", 0.9, 10},
		{"dog", 0.5, 4},
	}
	if !reflect.DeepEqual(renderer.table.Rows, want) {
		t.Fatalf("expected rows %v, got %v", want, renderer.table.Rows)
	}
}

func TestPerClassAccuracyHeadersAreFixed(t *testing.T) {
	board, renderer := newTestBoard()
	err := board.PerClassAccuracy(context.Background(), surface.Container{Name: "Accuracy"}, []ClassAccuracy{{Accuracy: 1, Count: 1}}, AccuracyOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Class", "Accuracy", "# Samples"}
	if !reflect.DeepEqual(renderer.table.Headers, want) {
		t.Fatalf("expected headers %v, got %v", want, renderer.table.Headers)
	}
}

func TestPerClassAccuracyShortLabelListFallsBackToIndex(t *testing.T) {
	board, renderer := newTestBoard()
	classAccuracy := []ClassAccuracy{
		{Accuracy: 0.8, Count: 3},
		{Accuracy: 0.7, Count: 2},
		{Accuracy: 0.6, Count: 1},
	}
	opts := AccuracyOptions{ClassLabels: []string{"cat"}}
	if err := board.PerClassAccuracy(context.Background(), surface.Container{Name: "Accuracy"}, classAccuracy, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := renderer.table.Rows
	if rows[0][0] != "cat" || rows[1][0] != "1" || rows[2][0] != "2" {
		t.Fatalf("expected labels [cat 1 2], got [%v %v %v]", rows[0][0], rows[1][0], rows[2][0])
	}
}

func TestPerClassAccuracyExcessLabelsIgnored(t *testing.T) {
	board, renderer := newTestBoard()
	opts := AccuracyOptions{ClassLabels: []string{"cat", "dog", "bird"}}
	err := board.PerClassAccuracy(context.Background(), surface.Container{Name: "Accuracy"}, []ClassAccuracy{{Accuracy: 0.9, Count: 10}}, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(renderer.table.Rows) != 1 {
		t.Fatalf("expected exactly 1 row, got %d", len(renderer.table.Rows))
	}
	if renderer.table.Rows[0][0] != "cat" {
		t.Fatalf("expected first label cat, got %v", renderer.table.Rows[0][0])
	}
}

func TestPerClassAccuracyEmptyInputYieldsHeaderOnlyTable(t *testing.T) {
	board, renderer := newTestBoard()
	err := board.PerClassAccuracy(context.Background(), surface.Container{Name: "Accuracy"}, nil, AccuracyOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renderer.tableCalls != 1 {
		t.Fatalf("expected renderer invocation for the degenerate table, got %d calls", renderer.tableCalls)
	}
	if len(renderer.table.Rows) != 0 {
		t.Fatalf("expected zero rows, got %d", len(renderer.table.Rows))
	}
	if len(renderer.table.Headers) != 3 {
		t.Fatalf("expected header row to survive, got %v", renderer.table.Headers)
	}
}

func TestPerClassAccuracyPassesValuesThroughUncorrected(t *testing.T) {
	board, renderer := newTestBoard()
	classAccuracy := []ClassAccuracy{{Accuracy: 1.7, Count: -3}}
	if err := board.PerClassAccuracy(context.Background(), surface.Container{Name: "Accuracy"}, classAccuracy, AccuracyOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := renderer.table.Rows[0]
	if row[1] != 1.7 || row[2] != -3 {
		t.Fatalf("expected out-of-range values forwarded as given, got %v", row)
	}
}

func TestPerClassAccuracyResolutionFailureSkipsRenderer(t *testing.T) {
	board, renderer := newTestBoard()
	err := board.PerClassAccuracy(context.Background(), surface.Container{}, []ClassAccuracy{{Accuracy: 0.9, Count: 10}}, AccuracyOptions{})
	var resErr *surface.ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected *surface.ResolutionError, got %T: %v", err, err)
	}
	if renderer.tableCalls != 0 {
		t.Fatalf("expected no renderer invocation after resolution failure, got %d", renderer.tableCalls)
	}
}

func TestPerClassAccuracyPropagatesRendererError(t *testing.T) {
	board, renderer := newTestBoard()
	renderer.err = errors.New("paint failed")
	err := board.PerClassAccuracy(context.Background(), surface.Container{Name: "Accuracy"}, []ClassAccuracy{{Accuracy: 0.9, Count: 10}}, AccuracyOptions{})
	if !errors.Is(err, renderer.err) {
		t.Fatalf("expected renderer error unchanged, got %v", err)
	}
}

func TestConfusionMatrixPayloadIsPassThrough(t *testing.T) {
	board, renderer := newTestBoard()
	matrix := [][]float64{{5, 1}, {2, 7}}
	opts := ConfusionOptions{ClassLabels: []string{"cat", "dog"}}
	err := board.ConfusionMatrix(context.Background(), surface.Container{Name: "Confusion Matrix"}, matrix, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if &renderer.matrix.Values[0] != &matrix[0] {
		t.Fatalf("expected the payload to carry the caller's grid, not a copy")
	}
	if !reflect.DeepEqual(renderer.matrix.Labels, []string{"cat", "dog"}) {
		t.Fatalf("expected labels forwarded verbatim, got %v", renderer.matrix.Labels)
	}
}

func TestConfusionMatrixDefaultHeight(t *testing.T) {
	board, renderer := newTestBoard()
	small := [][]float64{{1}}
	large := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	for _, matrix := range [][][]float64{small, large} {
		err := board.ConfusionMatrix(context.Background(), surface.Container{Name: "Confusion Matrix"}, matrix, ConfusionOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if renderer.matrixOpts.Height != 450 {
			t.Fatalf("expected default height 450 regardless of matrix size, got %d", renderer.matrixOpts.Height)
		}
	}
}

func TestConfusionMatrixHeightOverride(t *testing.T) {
	board, renderer := newTestBoard()
	err := board.ConfusionMatrix(context.Background(), surface.Container{Name: "Confusion Matrix"}, [][]float64{{1}}, ConfusionOptions{Height: 300})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renderer.matrixOpts.Height != 300 {
		t.Fatalf("expected height override 300, got %d", renderer.matrixOpts.Height)
	}
}

func TestConfusionMatrixJaggedGridForwarded(t *testing.T) {
	board, renderer := newTestBoard()
	jagged := [][]float64{{1, 2, 3}, {4}}
	err := board.ConfusionMatrix(context.Background(), surface.Container{Name: "Confusion Matrix"}, jagged, ConfusionOptions{})
	if err != nil {
		t.Fatalf("expected jagged grid to pass through, got error: %v", err)
	}
	if !reflect.DeepEqual(renderer.matrix.Values, jagged) {
		t.Fatalf("expected jagged grid forwarded unchanged, got %v", renderer.matrix.Values)
	}
}

func TestConfusionMatrixResolutionFailureSkipsRenderer(t *testing.T) {
	board, renderer := newTestBoard()
	err := board.ConfusionMatrix(context.Background(), surface.Container{}, [][]float64{{1}}, ConfusionOptions{})
	var resErr *surface.ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected *surface.ResolutionError, got %T: %v", err, err)
	}
	if renderer.matrixCalls != 0 {
		t.Fatalf("expected no renderer invocation after resolution failure, got %d", renderer.matrixCalls)
	}
}

func TestConfusionMatrixPropagatesRendererError(t *testing.T) {
	board, renderer := newTestBoard()
	renderer.err = errors.New("heatmap failed")
	err := board.ConfusionMatrix(context.Background(), surface.Container{Name: "Confusion Matrix"}, [][]float64{{1}}, ConfusionOptions{})
	if !errors.Is(err, renderer.err) {
		t.Fatalf("expected renderer error unchanged, got %v", err)
	}
}
