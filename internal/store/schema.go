// internal/store/schema.go
package store

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// resultsSchema describes the persisted result-file format: a JSON
// array of result objects. Optional fields are omitted, never null.
var resultsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []string{"target_id", "metrics", "timestamp", "status"},
		"properties": map[string]any{
			"target_id": map[string]any{"type": "string", "minLength": 1},
			"metrics": map[string]any{
				"type":     "object",
				"required": []string{"duration_ms"},
				"properties": map[string]any{
					"duration_ms":            map[string]any{"type": "number", "minimum": 0},
					"throughput_ops_per_sec": map[string]any{"type": "number"},
					"memory_bytes":           map[string]any{"type": "integer", "minimum": 0},
					"success_count":          map[string]any{"type": "integer", "minimum": 0},
					"error_count":            map[string]any{"type": "integer", "minimum": 0},
					"custom": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "number"},
					},
				},
			},
			"timestamp": map[string]any{"type": "string"},
			"metadata":  map[string]any{"type": "object"},
			"status": map[string]any{
				"type": "string",
				"enum": []string{"success", "failed", "skipped"},
			},
			"error": map[string]any{"type": "string"},
		},
	},
}

// validateResults checks a raw payload against the result-file schema.
func validateResults(data []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(resultsSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	outcome, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if outcome.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range outcome.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("schema violations: %s", strings.Join(problems, "; "))
}
