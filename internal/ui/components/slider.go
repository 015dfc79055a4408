package components

import (
	"fmt"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizkit/internal/ui/theme"
)

// Slider picks a numeric value on a bounded range with the arrow keys.
type Slider struct {
	Min, Max float64
	Unit     string
	Width    int

	value float64
	step  float64
	done  bool
}

// NewSlider creates a slider positioned at the middle of the range. The
// step is 1% of the range, snapped to whole numbers when the range is
// wide enough for that to be usable.
func NewSlider(min, max float64, unit string) Slider {
	step := (max - min) / 100
	if max-min >= 20 {
		step = math.Max(1, math.Round(step))
	}
	return Slider{
		Min:   min,
		Max:   max,
		Unit:  unit,
		Width: 40,
		value: math.Round((min+max)/2*100) / 100,
		step:  step,
	}
}

// Update handles arrow keys. It reports whether enter was pressed.
func (s Slider) Update(msg tea.Msg) (Slider, bool) {
	if s.done {
		return s, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}

	switch kmsg.String() {
	case "left", "h":
		s.value = math.Max(s.Min, s.value-s.step)
	case "right", "l":
		s.value = math.Min(s.Max, s.value+s.step)
	case "shift+left", "H":
		s.value = math.Max(s.Min, s.value-s.step*10)
	case "shift+right", "L":
		s.value = math.Min(s.Max, s.value+s.step*10)
	case "enter":
		s.done = true
		return s, true
	}
	return s, false
}

// Value returns the current slider position.
func (s Slider) Value() float64 {
	return s.value
}

// View renders the track with the current value.
func (s Slider) View() string {
	width := s.Width
	if width < 10 {
		width = 10
	}

	frac := 0.0
	if s.Max > s.Min {
		frac = (s.value - s.Min) / (s.Max - s.Min)
	}
	knob := int(frac * float64(width-1))

	track := []rune(strings.Repeat("─", width))
	track[knob] = '●'

	label := fmt.Sprintf("%g", s.value)
	if s.Unit != "" {
		label += " " + s.Unit
	}

	return fmt.Sprintf("%s\n%s  %s",
		theme.Body.Render(string(track)),
		theme.Subtitle.Render(fmt.Sprintf("%g ↔ %g", s.Min, s.Max)),
		theme.Selected.Render(label),
	)
}
