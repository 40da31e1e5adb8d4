// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/visor/surface"
	"github.com/mwiater/visor/vis"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// defaultReportPath is the evaluation report read when the config omits one.
	defaultReportPath = "visorData/report.json"
)

// Config represents the top-level application configuration.
type Config struct {
	Debug        bool   `json:"debug"`
	LogFile      string `json:"logFile,omitempty"`
	DefaultTab   string `json:"defaultTab,omitempty"`
	MatrixHeight int    `json:"matrixHeight,omitempty"`
	Report       string `json:"report,omitempty"`
	ConfigPath   string `json:"-"`
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "visor.log"
}

// DefaultTabName returns the tab group used for containers that do not
// name one, falling back to the surface package default.
func (c Config) DefaultTabName() string {
	if tab := strings.TrimSpace(c.DefaultTab); tab != "" {
		return tab
	}
	return surface.DefaultTab
}

// MatrixHeightUnits returns the configured confusion-matrix height in
// layout units, falling back to the renderer default.
func (c Config) MatrixHeightUnits() int {
	if c.MatrixHeight > 0 {
		return c.MatrixHeight
	}
	return vis.DefaultMatrixHeight
}

// ReportPath returns the evaluation report path, applying a default if not set.
func (c Config) ReportPath() string {
	if path := strings.TrimSpace(c.Report); path != "" {
		return path
	}
	return defaultReportPath
}

// Load reads the application configuration from the specified path, with fallback to a legacy path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, fmt.Errorf("no configuration file found (searched %q and %q)", DefaultConfigPath, legacyConfigPath)
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
