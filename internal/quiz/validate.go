package quiz

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Validate runs structural checks over a single question and returns a
// list of human-readable problems. An empty list means the question is
// well-formed; the evaluator and shuffle transform assume questions that
// passed validation and do not re-check.
func Validate(q Question) []string {
	var errs []string

	meta := q.Meta()
	if meta.ID == "" {
		errs = append(errs, "missing id")
	}
	if meta.Difficulty < 1 || meta.Difficulty > 4 {
		errs = append(errs, fmt.Sprintf("difficulty %d out of range (1-4)", meta.Difficulty))
	}
	if meta.Points < 1 {
		errs = append(errs, fmt.Sprintf("points %d must be positive", meta.Points))
	}
	if meta.Text == "" {
		errs = append(errs, "missing question text")
	}

	switch v := q.(type) {
	case MultipleChoice:
		errs = append(errs, validateMultipleChoice(v)...)
	case DragDrop:
		errs = append(errs, validateDragDrop(v)...)
	case Graph:
		errs = append(errs, validateGraph(v)...)
	case Order:
		errs = append(errs, validateOrder(v)...)
	case FillBlank:
		errs = append(errs, validateFillBlank(v)...)
	case LineMatch:
		errs = append(errs, validateLineMatch(v)...)
	case QuickTap:
		errs = append(errs, validateQuickTap(v)...)
	case TypeIn:
		errs = append(errs, validateTypeIn(v)...)
	case GraphPlot:
		errs = append(errs, validateGraphPlot(v)...)
	case SliderInput:
		errs = append(errs, validateSlider(v)...)
	}

	return errs
}

// ValidateAll checks every question in a topic map and prefixes each
// problem with its topic and question id. A non-empty result should fail
// the build.
func ValidateAll(byTopic map[string][]Question) []string {
	var errs []string
	for topic, qs := range byTopic {
		seen := make(map[string]bool, len(qs))
		for i, q := range qs {
			id := q.Meta().ID
			label := id
			if label == "" {
				label = fmt.Sprintf("#%d", i+1)
			}
			if id != "" && seen[id] {
				errs = append(errs, fmt.Sprintf("%s/%s: duplicate question id", topic, label))
			}
			seen[id] = true
			for _, msg := range Validate(q) {
				errs = append(errs, fmt.Sprintf("%s/%s: %s", topic, label, msg))
			}
		}
	}
	return errs
}

func validateMultipleChoice(q MultipleChoice) []string {
	var errs []string
	if len(q.Options) < 2 {
		errs = append(errs, "needs at least 2 options")
	}
	if len(q.CorrectAnswers) < 1 {
		errs = append(errs, "needs at least 1 correct answer")
	}
	if !q.MultiSelect && len(q.CorrectAnswers) > 1 {
		errs = append(errs, "multiple correct answers require multiSelect")
	}
	available := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		available[opt.Content] = true
	}
	for _, want := range q.CorrectAnswers {
		if !available[want] {
			errs = append(errs, fmt.Sprintf("correct answer %q matches no option", want))
		}
	}
	return errs
}

func validateDragDrop(q DragDrop) []string {
	var errs []string
	if len(q.Items) < 2 {
		errs = append(errs, "needs at least 2 items")
	}
	if len(q.DropZones) < 2 {
		errs = append(errs, "needs at least 2 drop zones")
	}
	seen := make(map[string]bool, len(q.DropZones))
	for _, zone := range q.DropZones {
		if zone.ID == "" {
			errs = append(errs, "drop zone missing id")
			continue
		}
		if seen[zone.ID] {
			errs = append(errs, fmt.Sprintf("duplicate drop zone id %q", zone.ID))
		}
		seen[zone.ID] = true
		idx, err := parseItemID(zone.CorrectItemID)
		if err != nil || idx < 0 || idx >= len(q.Items) {
			errs = append(errs, fmt.Sprintf("drop zone %q references unknown item %q", zone.ID, zone.CorrectItemID))
		}
	}
	return errs
}

func validateGraph(q Graph) []string {
	var errs []string
	if len(q.CorrectPoints) < 1 {
		errs = append(errs, "needs at least 1 correct point")
	}
	errs = append(errs, validateGrid(q.Grid)...)
	return errs
}

func validateGrid(g GridConfig) []string {
	var errs []string
	if g.XMax <= g.XMin {
		errs = append(errs, fmt.Sprintf("grid x-range [%g, %g] is empty", g.XMin, g.XMax))
	}
	if g.YMax <= g.YMin {
		errs = append(errs, fmt.Sprintf("grid y-range [%g, %g] is empty", g.YMin, g.YMax))
	}
	return errs
}

func validateOrder(q Order) []string {
	var errs []string
	numeric := len(q.Numbers) > 0
	steps := len(q.Steps) > 0
	switch {
	case numeric && steps:
		errs = append(errs, "cannot mix numbers and steps")
	case numeric:
		if len(q.Numbers) < 2 {
			errs = append(errs, "needs at least 2 numbers")
		}
		if q.Direction != Ascending && q.Direction != Descending {
			errs = append(errs, fmt.Sprintf("direction %q must be %q or %q", q.Direction, Ascending, Descending))
		}
	case steps:
		if len(q.Steps) < 2 {
			errs = append(errs, "needs at least 2 steps")
		}
		if len(q.StepOrder) != len(q.Steps) {
			errs = append(errs, fmt.Sprintf("stepOrder has %d entries for %d steps", len(q.StepOrder), len(q.Steps)))
		} else if !isPermutation(q.StepOrder) {
			errs = append(errs, "stepOrder is not a permutation of the step indices")
		}
	default:
		errs = append(errs, "needs either numbers or steps")
	}
	return errs
}

// isPermutation reports whether order contains each index 0..n-1 once.
func isPermutation(order []int) bool {
	seen := make([]bool, len(order))
	for _, idx := range order {
		if idx < 0 || idx >= len(order) || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

func validateFillBlank(q FillBlank) []string {
	var errs []string
	if len(q.Blanks) < 1 {
		errs = append(errs, "needs at least 1 blank")
	}
	positions := make(map[int]bool, len(q.Blanks))
	for i, blank := range q.Blanks {
		if blank.ID == "" || blank.Answer == "" {
			errs = append(errs, fmt.Sprintf("blank %d is missing id or answer", i))
		}
		if positions[blank.Position] {
			errs = append(errs, fmt.Sprintf("duplicate blank position %d", blank.Position))
		}
		positions[blank.Position] = true
		marker := "{" + strconv.Itoa(blank.Position) + "}"
		if !strings.Contains(q.Text, marker) {
			errs = append(errs, fmt.Sprintf("question text has no %s placeholder", marker))
		}
	}
	return errs
}

func validateLineMatch(q LineMatch) []string {
	var errs []string
	if len(q.LeftItems) == 0 || len(q.RightItems) == 0 {
		errs = append(errs, "needs both left and right items")
		return errs
	}
	if len(q.LeftItems) != len(q.RightItems) {
		errs = append(errs, fmt.Sprintf("%d left items but %d right items", len(q.LeftItems), len(q.RightItems)))
	}
	if len(q.Connections) != len(q.LeftItems) {
		errs = append(errs, fmt.Sprintf("%d connections for %d left items", len(q.Connections), len(q.LeftItems)))
		return errs
	}
	fromSeen := make([]bool, len(q.LeftItems))
	toSeen := make(map[int]bool, len(q.Connections))
	for _, c := range q.Connections {
		if c.From < 0 || c.From >= len(q.LeftItems) || c.To < 0 || c.To >= len(q.RightItems) {
			errs = append(errs, fmt.Sprintf("connection %d-%d is out of range", c.From, c.To))
			continue
		}
		if fromSeen[c.From] {
			errs = append(errs, fmt.Sprintf("left item %d is connected twice", c.From))
		}
		fromSeen[c.From] = true
		if toSeen[c.To] {
			errs = append(errs, fmt.Sprintf("right item %d is connected twice", c.To))
		}
		toSeen[c.To] = true
	}
	return errs
}

func validateQuickTap(q QuickTap) []string {
	var errs []string
	if len(q.Items) < 4 {
		errs = append(errs, "needs at least 4 items")
	}
	if q.TimeLimit < 1 {
		errs = append(errs, fmt.Sprintf("time limit %g must be at least 1 second", q.TimeLimit))
	}
	if q.Mode != TapExact && q.Mode != TapThreshold {
		errs = append(errs, fmt.Sprintf("mode %q must be %q or %q", q.Mode, TapExact, TapThreshold))
	}
	correct := 0
	for _, it := range q.Items {
		if it.IsCorrect {
			correct++
		}
	}
	if correct == 0 {
		errs = append(errs, "needs at least 1 correct item")
	}
	if q.MinCorrect < 1 || q.MinCorrect > correct {
		errs = append(errs, fmt.Sprintf("minCorrect %d outside 1-%d", q.MinCorrect, correct))
	}
	return errs
}

func validateTypeIn(q TypeIn) []string {
	var errs []string
	if q.CorrectAnswer == "" {
		errs = append(errs, "missing correct answer")
	}
	v := q.Validation
	if v == nil {
		return errs
	}
	switch v.Type {
	case "number":
		if _, err := strconv.ParseFloat(strings.TrimSpace(q.CorrectAnswer), 64); err != nil {
			errs = append(errs, fmt.Sprintf("correct answer %q is not numeric", q.CorrectAnswer))
		}
		if v.Min != nil && v.Max != nil && *v.Min > *v.Max {
			errs = append(errs, fmt.Sprintf("min %g exceeds max %g", *v.Min, *v.Max))
		}
		if v.Tolerance != nil && *v.Tolerance < 0 {
			errs = append(errs, fmt.Sprintf("tolerance %g must not be negative", *v.Tolerance))
		}
	case "text":
		if v.Pattern != "" {
			if _, err := regexp.Compile(v.Pattern); err != nil {
				errs = append(errs, fmt.Sprintf("pattern %q does not compile: %v", v.Pattern, err))
			}
		}
	case "formula":
		// Nothing beyond the correct answer being present.
	default:
		errs = append(errs, fmt.Sprintf("validation type %q must be number, text or formula", v.Type))
	}
	return errs
}

func validateGraphPlot(q GraphPlot) []string {
	var errs []string
	if q.CorrectFunction == "" {
		errs = append(errs, "missing correct function")
	} else {
		mid := (q.Grid.XMin + q.Grid.XMax) / 2
		if _, err := EvalExpression(q.CorrectFunction, mid); err != nil {
			errs = append(errs, fmt.Sprintf("correct function %q does not evaluate: %v", q.CorrectFunction, err))
		}
	}
	if len(q.CheckPoints) == 0 {
		errs = append(errs, validateGrid(q.Grid)...)
	}
	return errs
}

func validateSlider(q SliderInput) []string {
	var errs []string
	if q.Max <= q.Min {
		errs = append(errs, fmt.Sprintf("range [%g, %g] is empty", q.Min, q.Max))
	}
	if q.CorrectAnswer < q.Min || q.CorrectAnswer > q.Max {
		errs = append(errs, fmt.Sprintf("correct answer %g outside range [%g, %g]", q.CorrectAnswer, q.Min, q.Max))
	}
	if q.Tolerance < 0 {
		errs = append(errs, fmt.Sprintf("tolerance %g must not be negative", q.Tolerance))
	}
	return errs
}
