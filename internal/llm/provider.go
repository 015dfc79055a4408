// Package llm abstracts over hosted language model APIs for question
// drafting. Providers return schema-validated JSON; everything else in
// the program treats drafts as plain data.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured completion per call. Drafting is
// single-turn: a system role, one prompt, one JSON answer.
type Provider interface {
	// Generate sends the prompt and returns the model's output. When the
	// request carries a Schema the content is validated against it before
	// being returned.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user-turn content.
	Prompt string

	// Schema, when set, selects the provider's structured output
	// mechanism and gates the response through validation.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema to providers that require one
	// (OpenAI's response format). Kebab-case.
	Name string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is the generated JSON (validated when a Schema was set) or
	// raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
