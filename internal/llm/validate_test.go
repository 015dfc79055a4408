package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func draftSchema() *Schema {
	return &Schema{
		Name: "test-draft",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"points":   map[string]any{"type": "integer", "minimum": 1},
			},
			"required":             []any{"question", "points"},
			"additionalProperties": false,
		},
	}
}

func TestCheckSchema(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"question": "2+2?", "points": 10}`, false},
		{"missing field", `{"question": "2+2?"}`, true},
		{"wrong type", `{"question": "2+2?", "points": "ten"}`, true},
		{"below minimum", `{"question": "2+2?", "points": 0}`, true},
		{"extra field", `{"question": "2+2?", "points": 1, "hint": "x"}`, true},
		{"not json", `nope`, true},
	}

	for _, tc := range tests {
		err := checkSchema(draftSchema(), json.RawMessage(tc.raw))
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
		if tc.wantErr {
			var invalid *ErrInvalidResponse
			if err != nil && !errors.As(err, &invalid) {
				t.Errorf("%s: error type %T, want ErrInvalidResponse", tc.name, err)
			}
		}
	}
}

func TestCheckSchema_NilSchema(t *testing.T) {
	if err := checkSchema(nil, json.RawMessage(`anything at all`)); err != nil {
		t.Fatalf("nil schema must pass everything, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("anthropic without key validated")
	}

	cfg.Anthropic.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("anthropic with key rejected: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock rejected: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider validated")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("QUIZKIT_LLM_PROVIDER", "gemini")
	t.Setenv("QUIZKIT_GEMINI_API_KEY", "g-key")
	t.Setenv("QUIZKIT_GEMINI_MODEL", "gemini-pro")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" || cfg.Gemini.Model != "gemini-pro" {
		t.Errorf("gemini config = %+v", cfg.Gemini)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("env config rejected: %v", err)
	}
}

func TestConfigFromEnv_GenericKeyFallback(t *testing.T) {
	t.Setenv("QUIZKIT_ANTHROPIC_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "generic-key")

	cfg := ConfigFromEnv()
	if cfg.Anthropic.APIKey != "generic-key" {
		t.Errorf("anthropic key = %q, want generic fallback", cfg.Anthropic.APIKey)
	}
}
