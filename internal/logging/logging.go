package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mwiater/visor/surface"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogRender records a completed renderer invocation against a surface.
func LogRender(renderer string, target *surface.Target, rows int) {
	log.Println(buildRenderMessage(renderer, target, rows))
}

func buildRenderMessage(renderer string, target *surface.Target, rows int) string {
	kind := strings.TrimSpace(renderer)
	if kind == "" {
		kind = "unknown"
	}
	tab, name := "unknown", "unknown"
	if target != nil {
		if v := strings.TrimSpace(target.Tab()); v != "" {
			tab = v
		}
		if v := strings.TrimSpace(target.Name()); v != "" {
			name = v
		}
	}
	parts := []string{"[RENDER]"}
	parts = append(parts, fmt.Sprintf("renderer=%s", kind))
	parts = append(parts, fmt.Sprintf("tab=%s", tab))
	parts = append(parts, fmt.Sprintf("surface=%s", name))
	parts = append(parts, fmt.Sprintf("rows=%d", rows))
	return strings.Join(parts, " ")
}
