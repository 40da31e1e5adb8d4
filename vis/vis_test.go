package vis

import "testing"

func TestMatrixOptionsDefaults(t *testing.T) {
	if got := (MatrixOptions{}).WithDefaults().Height; got != 450 {
		t.Fatalf("expected default height 450, got %d", got)
	}
	if got := (MatrixOptions{Height: -10}).WithDefaults().Height; got != 450 {
		t.Fatalf("expected non-positive height replaced, got %d", got)
	}
	if got := (MatrixOptions{Height: 300}).WithDefaults().Height; got != 300 {
		t.Fatalf("expected explicit height kept, got %d", got)
	}
}
