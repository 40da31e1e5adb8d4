// internal/eval/report.go
// Package eval loads evaluation reports produced by external tooling.
// Reports are JSON documents carrying per-class accuracy records and an
// optional confusion matrix; they are schema-validated before unmarshal
// so malformed files fail with a useful message instead of a zero value.
package eval

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/visor/show"
	"github.com/xeipuuv/gojsonschema"
)

// Report is a single evaluation run: what was evaluated and the metrics
// the visualizer can draw. Values are forwarded to the renderers as
// given; the loader checks shape, never numeric ranges.
type Report struct {
	Model           string               `json:"model,omitempty"`
	ClassLabels     []string             `json:"classLabels,omitempty"`
	ClassAccuracy   []show.ClassAccuracy `json:"classAccuracy,omitempty"`
	ConfusionMatrix [][]float64          `json:"confusionMatrix,omitempty"`
}

// reportSchema describes the report document shape.
func reportSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"model": map[string]any{
				"type": "string",
			},
			"classLabels": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"classAccuracy": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"accuracy": map[string]any{"type": "number"},
						"count":    map[string]any{"type": "integer"},
					},
					"required": []string{"accuracy", "count"},
				},
			},
			"confusionMatrix": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "number"},
				},
			},
		},
	}
}

// ValidateReport checks a raw report document against the schema and
// returns the collected violations, if any.
func ValidateReport(data []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(reportSchema())
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("report validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var issues []string
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return fmt.Errorf("invalid report: %s", strings.Join(issues, "; "))
}

// LoadReport reads, validates, and unmarshals an evaluation report.
// A report must carry at least one drawable metric.
func LoadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read report %q: %w", path, err)
	}
	if err := ValidateReport(data); err != nil {
		return Report{}, err
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("decode report %q: %w", path, err)
	}
	if len(report.ClassAccuracy) == 0 && len(report.ConfusionMatrix) == 0 {
		return Report{}, fmt.Errorf("report %q has neither classAccuracy nor confusionMatrix", path)
	}
	return report, nil
}
