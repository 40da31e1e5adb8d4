// demos/accuracy-table/main.go
// Demo: draw a per-class accuracy table onto a named surface and print it.
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

	container := surface.Container{Name: "Per-Class Accuracy", Tab: "Evaluation"}
	classAccuracy := []show.ClassAccuracy{
		{Accuracy: 0.92, Count: 120},
		{Accuracy: 0.87, Count: 95},
		{Accuracy: 0.64, Count: 19},
	}
	opts := show.AccuracyOptions{ClassLabels: []string{"cat", "dog", "bird"}}

	if err := board.PerClassAccuracy(context.Background(), container, classAccuracy, opts); err != nil {
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
