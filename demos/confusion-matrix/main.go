// demos/confusion-matrix/main.go
// Demo: draw a confusion matrix heatmap onto a named surface and print it.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mwiater/visor/render"
	"github.com/mwiater/visor/show"
	"github.com/mwiater/visor/surface"
)

func main() {
	manager := surface.NewManager()
	board := show.NewBoard(manager, render.NewTable(), render.NewHeatmap())

	container := surface.Container{Name: "Confusion Matrix", Tab: "Evaluation"}
	matrix := [][]float64{
		{108, 7, 5},
		{9, 80, 6},
		{2, 4, 13},
	}
	opts := show.ConfusionOptions{ClassLabels: []string{"cat", "dog", "bird"}}

	if err := board.ConfusionMatrix(context.Background(), container, matrix, opts); err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	target, err := manager.Resolve(container)
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(target.Content())
}
