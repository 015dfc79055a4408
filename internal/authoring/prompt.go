package authoring

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an exercise author creating practice questions for a quiz engine.

Rules:
- Generate questions for the requested topic, difficulty and count.
- Use plain ASCII text for all math. Use / for fractions, * for multiplication, ^ for powers.
- Every question object must carry its full variant payload alongside the common fields:
  - "multiple-choice": "options" (list of strings), "correctAnswers" (subset of options by exact text), optional "multiSelect".
  - "order": "numbers" (list) plus "direction" ("ascending" or "descending").
  - "fill-blank": "blanks" (list of {"id", "answer", "position"}), and the question text must contain a {N} placeholder per blank position.
  - "type-in": "correctAnswer", optional "acceptableAnswers", optional "validation" ({"type": "number"|"text"|"formula", ...}).
  - "slider-input": "min", "max", "correctAnswer", optional "tolerance".
- Answers must be correct. Multiple-choice distractors should reflect common mistakes, not random values.
- Question ids must be unique, kebab-case, prefixed with the topic.
- Include a short explanation for every question.`

// buildPrompt constructs the user-turn prompt for one drafting call.
func buildPrompt(p Params) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", p.Topic)
	fmt.Fprintf(&b, "Questions: %d\n", p.Count)
	if p.Difficulty > 0 {
		fmt.Fprintf(&b, "Difficulty: %d\n", p.Difficulty)
	} else {
		b.WriteString("Difficulty: mix of 1-4\n")
	}

	if len(p.Types) > 0 {
		types := make([]string, len(p.Types))
		for i, t := range p.Types {
			types[i] = string(t)
		}
		fmt.Fprintf(&b, "Variants: %s\n", strings.Join(types, ", "))
	} else {
		b.WriteString("Variants: any mix of the allowed variants\n")
	}

	if len(p.ExistingIDs) > 0 {
		b.WriteString("\nIds already taken (do not reuse):\n")
		for _, id := range p.ExistingIDs {
			fmt.Fprintf(&b, "- %s\n", id)
		}
	}

	return b.String()
}
