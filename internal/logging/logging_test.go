package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/visor/surface"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "visor.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", data)
	}
}

func TestBuildRenderMessageDefaults(t *testing.T) {
	msg := buildRenderMessage("  ", nil, 0)
	if !strings.Contains(msg, "[RENDER]") {
		t.Fatalf("expected render marker, got: %s", msg)
	}
	if !strings.Contains(msg, "renderer=unknown") {
		t.Fatalf("expected default renderer, got: %s", msg)
	}
	if !strings.Contains(msg, "tab=unknown") || !strings.Contains(msg, "surface=unknown") {
		t.Fatalf("expected default tab and surface, got: %s", msg)
	}
}

func TestBuildRenderMessageWithTarget(t *testing.T) {
	m := surface.NewManager()
	target, err := m.Resolve(surface.Container{Name: "Accuracy", Tab: "Evaluation"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	msg := buildRenderMessage("table", target, 4)
	if !strings.Contains(msg, "renderer=table") {
		t.Fatalf("expected renderer name, got: %s", msg)
	}
	if !strings.Contains(msg, "tab=Evaluation") {
		t.Fatalf("expected tab, got: %s", msg)
	}
	if !strings.Contains(msg, "surface=Accuracy") {
		t.Fatalf("expected surface name, got: %s", msg)
	}
	if !strings.Contains(msg, "rows=4") {
		t.Fatalf("expected row count, got: %s", msg)
	}
}
