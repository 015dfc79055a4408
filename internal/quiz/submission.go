package quiz

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Submission is what the presentation layer collected from the user.
// Each variant expects one concrete shape; any other shape evaluates as
// incorrect rather than failing.
type Submission interface {
	isSubmission()

	// Display returns the submitted answer as display strings for the
	// Response record.
	Display() []string
}

// ChoiceSubmission is the set of selected option contents (multiple-choice).
type ChoiceSubmission []string

func (ChoiceSubmission) isSubmission() {}

func (s ChoiceSubmission) Display() []string { return append([]string(nil), s...) }

// PlacementSubmission maps drop-zone id to the content placed in it.
type PlacementSubmission map[string]string

func (PlacementSubmission) isSubmission() {}

func (s PlacementSubmission) Display() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprintf("%s: %s", k, s[k])
	}
	return out
}

// PointsSubmission is the set of placed points (graph).
type PointsSubmission []Point

func (PointsSubmission) isSubmission() {}

func (s PointsSubmission) Display() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = fmt.Sprintf("(%g, %g)", p.X, p.Y)
	}
	return out
}

// NumberOrderSubmission is the numeric sequence in the user's chosen order.
type NumberOrderSubmission []float64

func (NumberOrderSubmission) isSubmission() {}

func (s NumberOrderSubmission) Display() []string {
	out := make([]string, len(s))
	for i, n := range s {
		out[i] = strconv.FormatFloat(n, 'f', -1, 64)
	}
	return out
}

// StepOrderSubmission is the user's arrangement of solution steps:
// element i is the index (into the question's Steps) of the step placed
// at position i.
type StepOrderSubmission []int

func (StepOrderSubmission) isSubmission() {}

func (s StepOrderSubmission) Display() []string {
	out := make([]string, len(s))
	for i, idx := range s {
		out[i] = strconv.Itoa(idx)
	}
	return out
}

// BlankSubmission maps blank id to the typed answer (fill-blank).
type BlankSubmission map[string]string

func (BlankSubmission) isSubmission() {}

func (s BlankSubmission) Display() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = s[k]
	}
	return out
}

// MatchSubmission is the set of drawn connections (line-match).
type MatchSubmission []Connection

func (MatchSubmission) isSubmission() {}

func (s MatchSubmission) Display() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = fmt.Sprintf("%d-%d", c.From, c.To)
	}
	return out
}

// TapSubmission records which items were tapped and how long it took.
type TapSubmission struct {
	// Tapped holds indices into the question's item list.
	Tapped []int

	// Elapsed is the time from presentation to submission.
	Elapsed time.Duration
}

func (TapSubmission) isSubmission() {}

func (s TapSubmission) Display() []string {
	out := make([]string, len(s.Tapped))
	for i, idx := range s.Tapped {
		out[i] = strconv.Itoa(idx)
	}
	return out
}

// TextSubmission is a free-form typed answer (type-in) or a symbolic
// function string (graph-plot).
type TextSubmission string

func (TextSubmission) isSubmission() {}

func (s TextSubmission) Display() []string { return []string{strings.TrimSpace(string(s))} }

// ValueSubmission is a single numeric value (slider-input).
type ValueSubmission float64

func (ValueSubmission) isSubmission() {}

func (s ValueSubmission) Display() []string {
	return []string{strconv.FormatFloat(float64(s), 'f', -1, 64)}
}
