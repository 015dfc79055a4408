// Package authoring drafts new bank questions with a language model and
// gates them through the same structural validation as hand-written
// banks. A draft that fails validation is reported, never silently
// shipped.
package authoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizkit/internal/llm"
	"github.com/abhisek/quizkit/internal/quiz"
)

// Params describes one drafting request.
type Params struct {
	// Topic id the drafted questions belong to.
	Topic string

	// Count is how many questions to draft.
	Count int

	// Difficulty pins all drafts to one level; zero means a mix.
	Difficulty int

	// Types restricts the drafted variants; empty means any the
	// drafting schema allows.
	Types []quiz.Type

	// ExistingIDs are question ids already present in the bank, so the
	// model avoids collisions.
	ExistingIDs []string
}

// Draft is the decoded and validated result of one drafting call,
// shaped like a bank file.
type Draft struct {
	Topic     string
	Name      string
	Questions []quiz.Question
}

// Generator drafts questions through an llm.Provider.
type Generator struct {
	provider  llm.Provider
	maxTokens int
}

// NewGenerator creates a Generator on the given provider.
func NewGenerator(p llm.Provider) *Generator {
	return &Generator{provider: p, maxTokens: 4096}
}

// Generate drafts questions for the given parameters. Every drafted
// question is decoded and structurally validated; any problem fails the
// whole draft with a message naming the offending questions.
func (g *Generator) Generate(ctx context.Context, p Params) (*Draft, error) {
	if p.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if p.Count < 1 {
		return nil, fmt.Errorf("count %d must be positive", p.Count)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Prompt:    buildPrompt(p),
		Schema:    draftSchema,
		MaxTokens: g.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("draft questions: %w", err)
	}

	draft, err := decodeDraft(resp.Content)
	if err != nil {
		return nil, err
	}

	if errs := quiz.ValidateAll(map[string][]quiz.Question{draft.Topic: draft.Questions}); len(errs) > 0 {
		return nil, fmt.Errorf("draft failed validation:\n  %s", strings.Join(errs, "\n  "))
	}
	return draft, nil
}

func decodeDraft(raw json.RawMessage) (*Draft, error) {
	var envelope struct {
		Topic     string            `json:"topic"`
		Name      string            `json:"name"`
		Questions []json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	if len(envelope.Questions) == 0 {
		return nil, fmt.Errorf("draft contains no questions")
	}

	draft := &Draft{Topic: envelope.Topic, Name: envelope.Name}
	for i, rawQ := range envelope.Questions {
		q, err := quiz.UnmarshalQuestion(rawQ)
		if err != nil {
			return nil, fmt.Errorf("draft question %d: %w", i+1, err)
		}
		draft.Questions = append(draft.Questions, q)
	}
	return draft, nil
}

// BankFile renders a draft as an indented bank-file JSON document.
func (d *Draft) BankFile() ([]byte, error) {
	questions := make([]json.RawMessage, len(d.Questions))
	for i, q := range d.Questions {
		data, err := quiz.MarshalQuestion(q)
		if err != nil {
			return nil, err
		}
		questions[i] = data
	}

	out := map[string]any{
		"topic":     d.Topic,
		"name":      d.Name,
		"questions": questions,
	}
	return json.MarshalIndent(out, "", "  ")
}
