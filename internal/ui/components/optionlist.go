package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizkit/internal/ui/theme"
)

// OptionList is a selector over question options. In single-select mode
// enter submits the cursor row; in multi-select mode space toggles rows
// and enter submits the toggled set.
type OptionList struct {
	Options     []string
	MultiSelect bool

	cursor  int
	checked map[int]bool
	done    bool
}

// NewOptionList creates a selector over the given option texts.
func NewOptionList(options []string, multiSelect bool) OptionList {
	return OptionList{
		Options:     options,
		MultiSelect: multiSelect,
		checked:     make(map[int]bool),
	}
}

// Update handles keyboard navigation. It reports whether enter was
// pressed this message.
func (l OptionList) Update(msg tea.Msg) (OptionList, bool) {
	if l.done {
		return l, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, false
	}

	switch kmsg.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.Options)-1 {
			l.cursor++
		}
	case "space", " ":
		if l.MultiSelect {
			l.checked[l.cursor] = !l.checked[l.cursor]
		}
	case "enter":
		l.done = true
		if !l.MultiSelect {
			l.checked = map[int]bool{l.cursor: true}
		}
		return l, true
	}
	return l, false
}

// Chosen returns the texts of the selected options.
func (l OptionList) Chosen() []string {
	var out []string
	for i, opt := range l.Options {
		if l.checked[i] {
			out = append(out, opt)
		}
	}
	return out
}

// View renders the list. After submission correctSet highlights the
// answer key; pass nil while still answering.
func (l OptionList) View(correctSet map[string]bool) string {
	var s string
	for i, opt := range l.Options {
		marker := " "
		if l.MultiSelect {
			marker = "[ ]"
			if l.checked[i] {
				marker = "[x]"
			}
		}
		prefix := "  "
		if i == l.cursor && !l.done {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s %s", prefix, marker, opt)

		switch {
		case correctSet != nil && correctSet[opt]:
			s += theme.Correct.Render(line) + "\n"
		case correctSet != nil && l.checked[i]:
			s += theme.Incorrect.Render(line) + "\n"
		case correctSet != nil:
			s += theme.Subtitle.Render(line) + "\n"
		case i == l.cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
