package authoring

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/quizkit/internal/llm"
	"github.com/abhisek/quizkit/internal/quiz"
)

const goodDraft = `{
	"topic": "fractions",
	"name": "Fractions",
	"questions": [
		{
			"id": "fractions-mc-1",
			"type": "multiple-choice",
			"difficulty": 2,
			"points": 10,
			"question": "Which fraction equals 0.5?",
			"options": ["1/2", "1/3", "2/3", "1/4"],
			"correctAnswers": ["1/2"],
			"explanation": "One half is 0.5."
		},
		{
			"id": "fractions-slider-1",
			"type": "slider-input",
			"difficulty": 1,
			"points": 10,
			"question": "Set the slider to 1/4 of 100.",
			"min": 0,
			"max": 100,
			"correctAnswer": 25,
			"tolerance": 2
		}
	]
}`

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(goodDraft)},
	)
	gen := NewGenerator(mock)

	draft, err := gen.Generate(context.Background(), Params{
		Topic:       "fractions",
		Count:       2,
		Types:       []quiz.Type{quiz.TypeMultipleChoice, quiz.TypeSliderInput},
		ExistingIDs: []string{"fractions-old-1"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if draft.Topic != "fractions" || len(draft.Questions) != 2 {
		t.Fatalf("draft = %q with %d questions", draft.Topic, len(draft.Questions))
	}
	if draft.Questions[0].Type() != quiz.TypeMultipleChoice {
		t.Errorf("first question type = %s", draft.Questions[0].Type())
	}

	calls := mock.Calls()
	if len(calls) != 1 {
		t.Fatalf("call count = %d", len(calls))
	}
	req := calls[0]
	if req.Schema == nil || req.Schema.Name != "question-draft" {
		t.Error("request missing drafting schema")
	}
	for _, want := range []string{"Topic: fractions", "Questions: 2", "fractions-old-1"} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, req.Prompt)
		}
	}
}

func TestGenerate_RejectsInvalidDraft(t *testing.T) {
	// Correct answer references a missing option; structural validation
	// must fail the whole draft.
	bad := `{
		"topic": "fractions",
		"questions": [{
			"id": "fractions-mc-1",
			"type": "multiple-choice",
			"difficulty": 2,
			"points": 10,
			"question": "Which fraction equals 0.5?",
			"options": ["1/3", "2/3"],
			"correctAnswers": ["1/2"]
		}]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	gen := NewGenerator(mock)

	_, err := gen.Generate(context.Background(), Params{Topic: "fractions", Count: 1})
	if err == nil {
		t.Fatal("invalid draft accepted")
	}
	if !strings.Contains(err.Error(), "failed validation") {
		t.Errorf("error = %v", err)
	}
}

func TestGenerate_RejectsUnknownVariant(t *testing.T) {
	bad := `{"topic": "t", "questions": [{"id": "a", "type": "essay", "difficulty": 1, "points": 1, "question": "?"}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	gen := NewGenerator(mock)

	_, err := gen.Generate(context.Background(), Params{Topic: "t", Count: 1})
	if err == nil {
		t.Fatal("unknown variant accepted")
	}
}

func TestGenerate_RejectsEmptyDraft(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"topic": "t", "questions": []}`)})
	gen := NewGenerator(mock)

	_, err := gen.Generate(context.Background(), Params{Topic: "t", Count: 1})
	if err == nil || !strings.Contains(err.Error(), "no questions") {
		t.Fatalf("empty draft: %v", err)
	}
}

func TestGenerate_ParamChecks(t *testing.T) {
	gen := NewGenerator(llm.NewMockProvider())

	if _, err := gen.Generate(context.Background(), Params{Count: 1}); err == nil {
		t.Error("missing topic accepted")
	}
	if _, err := gen.Generate(context.Background(), Params{Topic: "t"}); err == nil {
		t.Error("zero count accepted")
	}
}

func TestDraftBankFile(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(goodDraft)})
	gen := NewGenerator(mock)

	draft, err := gen.Generate(context.Background(), Params{Topic: "fractions", Count: 2})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := draft.BankFile()
	if err != nil {
		t.Fatalf("BankFile: %v", err)
	}

	// The rendered file must decode back to the same questions.
	var envelope struct {
		Topic     string            `json:"topic"`
		Questions []json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("rendered file does not parse: %v", err)
	}
	if envelope.Topic != "fractions" || len(envelope.Questions) != 2 {
		t.Errorf("rendered envelope = %q with %d questions", envelope.Topic, len(envelope.Questions))
	}
	for i, rawQ := range envelope.Questions {
		if _, err := quiz.UnmarshalQuestion(rawQ); err != nil {
			t.Errorf("rendered question %d does not decode: %v", i, err)
		}
	}
}
