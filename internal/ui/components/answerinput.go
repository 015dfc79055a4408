package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizkit/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for free-form answers.
type AnswerInput struct {
	Model textinput.Model

	submitted bool
	correct   bool
}

// NewAnswerInput creates a focused text input with a placeholder.
func NewAnswerInput(placeholder string) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	return AnswerInput{Model: ti}
}

// Init returns the initial focus command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update forwards messages to the inner input. It reports whether enter
// was pressed with non-empty content.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd, bool) {
	if a.submitted {
		return a, nil, false
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return a, nil, a.Model.Value() != ""
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd, false
}

// Value returns the typed answer.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Submit freezes the input and records the verdict for rendering.
func (a *AnswerInput) Submit(correct bool) {
	a.submitted = true
	a.correct = correct
	a.Model.Blur()
}

// View renders the input with a verdict mark once submitted.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.correct {
			view += " " + theme.Correct.Render("✓")
		} else {
			view += " " + theme.Incorrect.Render("✗")
		}
	}
	return view
}
