package authoring

import "github.com/abhisek/quizkit/internal/llm"

// draftSchema pins the shape of a drafting response: a bank-file
// envelope with a list of question objects. Variant payloads are left
// open here; structural validation happens after decoding, where the
// checks can be exact.
var draftSchema = &llm.Schema{
	Name: "question-draft",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type":        "string",
				"description": "Topic id the questions belong to, kebab-case",
			},
			"name": map[string]any{
				"type":        "string",
				"description": "Human-readable topic name",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Unique kebab-case question id",
						},
						"type": map[string]any{
							"type": "string",
							"enum": []any{
								"multiple-choice", "order", "fill-blank",
								"type-in", "slider-input",
							},
							"description": "Question variant",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     4,
							"description": "1 easiest to 4 hardest",
						},
						"points": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "Score value of a correct answer",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The prompt shown to the learner, plain ASCII",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Short worked solution shown after answering",
						},
					},
					"required": []any{"id", "type", "difficulty", "points", "question"},
				},
			},
		},
		"required": []any{"topic", "questions"},
	},
}
