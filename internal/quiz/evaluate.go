package quiz

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Result is the outcome of judging one submission.
type Result struct {
	Correct bool

	// Normalized is the canonical form of a text submission, when the
	// variant defines one. Empty otherwise.
	Normalized string
}

// Evaluate judges a submission against a question. It is pure and total:
// for any well-formed question it never panics and never returns an
// error — malformed or mismatched submissions are simply incorrect. This
// makes it safe to call directly from a UI event handler.
func Evaluate(q Question, sub Submission) Result {
	res := Result{Correct: q.evaluate(sub)}
	if text, ok := sub.(TextSubmission); ok {
		if ti, ok := q.(TypeIn); ok && ti.Validation != nil && ti.Validation.Type == "formula" {
			res.Normalized = NormalizeFormula(string(text))
		} else {
			res.Normalized = strings.TrimSpace(string(text))
		}
	}
	return res
}

// Correct iff the selected set has the same size as the answer key and
// every correct content string was selected. Comparing by content keeps
// the rule stable across option shuffles.
func (q MultipleChoice) evaluate(sub Submission) bool {
	selected, ok := sub.(ChoiceSubmission)
	if !ok {
		return false
	}
	if len(selected) != len(q.CorrectAnswers) {
		return false
	}
	set := make(map[string]bool, len(selected))
	for _, s := range selected {
		set[s] = true
	}
	if len(set) != len(q.CorrectAnswers) {
		return false
	}
	for _, want := range q.CorrectAnswers {
		if !set[want] {
			return false
		}
	}
	return true
}

// Correct iff every drop zone holds the content of the item its
// correctItemId points at.
func (q DragDrop) evaluate(sub Submission) bool {
	placed, ok := sub.(PlacementSubmission)
	if !ok {
		return false
	}
	for _, zone := range q.DropZones {
		idx, err := parseItemID(zone.CorrectItemID)
		if err != nil || idx < 0 || idx >= len(q.Items) {
			return false
		}
		if placed[zone.ID] != q.Items[idx].Content {
			return false
		}
	}
	return true
}

// parseItemID extracts the index from a position-encoded "item-<n>" id.
func parseItemID(id string) (int, error) {
	rest, ok := strings.CutPrefix(id, "item-")
	if !ok {
		rest = id
	}
	return strconv.Atoi(rest)
}

// itemID builds the position-encoded id for an item index.
func itemID(index int) string {
	return "item-" + strconv.Itoa(index)
}

// Correct iff at least one submitted point lands within the tolerance
// window of at least one target point on both axes. The tolerance scales
// with the visible x-range so small grids aren't too forgiving and large
// grids aren't impossibly strict.
func (q Graph) evaluate(sub Submission) bool {
	points, ok := sub.(PointsSubmission)
	if !ok || len(points) == 0 {
		return false
	}
	threshold := graphTolerance(q.Grid)
	for _, target := range q.CorrectPoints {
		for _, p := range points {
			if math.Abs(p.X-target.X) < threshold && math.Abs(p.Y-target.Y) < threshold {
				return true
			}
		}
	}
	return false
}

// graphTolerance clamps 2% of the x-range to [0.1, 0.2].
func graphTolerance(g GridConfig) float64 {
	return math.Min(0.2, math.Max(0.1, (g.XMax-g.XMin)*0.02))
}

func (q Order) evaluate(sub Submission) bool {
	if q.IsStepMode() {
		arranged, ok := sub.(StepOrderSubmission)
		if !ok || len(arranged) != len(q.StepOrder) {
			return false
		}
		for i, idx := range arranged {
			if idx != q.StepOrder[i] {
				return false
			}
		}
		return true
	}

	arranged, ok := sub.(NumberOrderSubmission)
	if !ok || len(arranged) != len(q.Numbers) {
		return false
	}
	want := append([]float64(nil), q.Numbers...)
	sort.Float64s(want)
	if q.Direction == Descending {
		for i, j := 0, len(want)-1; i < j; i, j = i+1, j-1 {
			want[i], want[j] = want[j], want[i]
		}
	}
	for i, n := range arranged {
		if n != want[i] {
			return false
		}
	}
	return true
}

// Every blank is judged independently; the question is correct only when
// all of them are.
func (q FillBlank) evaluate(sub Submission) bool {
	answers, ok := sub.(BlankSubmission)
	if !ok {
		return false
	}
	for _, blank := range q.Blanks {
		if !blankCorrect(blank, answers[blank.ID]) {
			return false
		}
	}
	return true
}

// Correct iff every drawn connection appears in the canonical bijection
// and every left item is connected.
func (q LineMatch) evaluate(sub Submission) bool {
	drawn, ok := sub.(MatchSubmission)
	if !ok || len(drawn) != len(q.LeftItems) {
		return false
	}
	for _, conn := range drawn {
		if !containsConnection(q.Connections, conn) {
			return false
		}
	}
	return true
}

func containsConnection(conns []Connection, c Connection) bool {
	for _, want := range conns {
		if want == c {
			return true
		}
	}
	return false
}

func (q QuickTap) evaluate(sub Submission) bool {
	taps, ok := sub.(TapSubmission)
	if !ok {
		return false
	}

	tapped := make(map[int]bool, len(taps.Tapped))
	correctTapped := 0
	for _, idx := range taps.Tapped {
		if idx < 0 || idx >= len(q.Items) || tapped[idx] {
			continue
		}
		tapped[idx] = true
		if q.Items[idx].IsCorrect {
			correctTapped++
		}
	}

	switch q.Mode {
	case TapThreshold:
		// Reach the minimum before time runs out; stray taps don't count
		// against the player.
		return correctTapped >= q.MinCorrect && taps.Elapsed.Seconds() <= q.TimeLimit
	default:
		// Exact match: every correct item tapped, nothing else.
		totalCorrect := 0
		for _, it := range q.Items {
			if it.IsCorrect {
				totalCorrect++
			}
		}
		return correctTapped == totalCorrect && len(tapped) == totalCorrect
	}
}

// Correct iff the value lands within tolerance of the answer.
func (q SliderInput) evaluate(sub Submission) bool {
	v, ok := sub.(ValueSubmission)
	if !ok {
		return false
	}
	return math.Abs(float64(v)-q.CorrectAnswer) <= q.tolerance()
}

func (q SliderInput) tolerance() float64 {
	if q.Tolerance > 0 {
		return q.Tolerance
	}
	return 1
}
