package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// problemSetSchema defines the shape a staged problem set must have
// before it is trusted for a new attempt cycle. The payload crosses a
// process boundary (written by one run, read by a later one), so it is
// validated like any other untrusted input.
var problemSetSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":    map[string]any{"type": "string", "minLength": 1},
		"title": map[string]any{"type": "string"},
		"items": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"question": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"answer":      map[string]any{"type": "string", "minLength": 1},
					"explanation": map[string]any{"type": "string"},
					"topic": map[string]any{
						"type": "string",
						"enum": []any{"macro", "finance", "trade", "stats"},
					},
					"level": map[string]any{
						"type": "string",
						"enum": []any{"basic", "intermediate", "advanced"},
					},
				},
				"required": []any{"id", "question", "answer"},
			},
		},
		"source": map[string]any{
			"type": "string",
			"enum": []any{"generated", "retry"},
		},
		"created_at": map[string]any{"type": "string"},
	},
	"required": []any{"id", "items", "source"},
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidateProblemSet checks raw staged JSON against the problem set
// schema. Returns a *ParseError on any failure.
func ValidateProblemSet(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ParseError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledProblemSetSchema()
	if err != nil {
		return &ParseError{Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := schema.Validate(parsed); err != nil {
		return &ParseError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func compiledProblemSetSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(problemSetSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://problem-set.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
