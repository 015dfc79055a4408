package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// envelopeDef is the JSON schema for a bank file's outer shape. It pins
// the envelope fields and the per-question discriminant without
// duplicating variant-specific structure, which quiz.Validate covers.
var envelopeDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"topic": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"name": map[string]any{
			"type": "string",
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"type": map[string]any{
						"type": "string",
						"enum": []any{
							"multiple-choice", "drag-drop", "graph", "order",
							"fill-blank", "line-match", "quick-tap", "type-in",
							"graph-plot", "slider-input",
						},
					},
					"difficulty": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 4,
					},
					"points": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
					"question": map[string]any{
						"type": "string",
					},
				},
				"required": []any{"id", "type", "difficulty", "points", "question"},
			},
		},
	},
	"required":             []any{"topic", "questions"},
	"additionalProperties": false,
}

var (
	envelopeOnce   sync.Once
	envelopeSchema *jsonschema.Schema
	envelopeErr    error
)

func compiledEnvelope() (*jsonschema.Schema, error) {
	envelopeOnce.Do(func() {
		defBytes, err := json.Marshal(envelopeDef)
		if err != nil {
			envelopeErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			envelopeErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			envelopeErr = fmt.Errorf("add resource: %w", err)
			return
		}
		envelopeSchema, envelopeErr = c.Compile(schemaURL)
	})
	return envelopeSchema, envelopeErr
}

// checkEnvelope validates one bank file against the envelope schema.
func checkEnvelope(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiledEnvelope()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("bank schema: %w", err)
	}
	return nil
}
