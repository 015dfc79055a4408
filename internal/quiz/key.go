package quiz

import "sort"

// CorrectSubmission builds the submission a perfectly-informed user
// would make, derived from the question's own answer key. Useful for
// previews and as the round-trip guard for the shuffle transform: the
// key-derived answer of a shuffled question must always evaluate as
// correct.
func CorrectSubmission(q Question) Submission {
	switch v := q.(type) {
	case MultipleChoice:
		return ChoiceSubmission(append([]string(nil), v.CorrectAnswers...))

	case DragDrop:
		placed := make(PlacementSubmission, len(v.DropZones))
		for _, zone := range v.DropZones {
			if idx, err := parseItemID(zone.CorrectItemID); err == nil && idx >= 0 && idx < len(v.Items) {
				placed[zone.ID] = v.Items[idx].Content
			}
		}
		return placed

	case Graph:
		if len(v.CorrectPoints) == 0 {
			return PointsSubmission{}
		}
		return PointsSubmission{v.CorrectPoints[0]}

	case Order:
		if v.IsStepMode() {
			return StepOrderSubmission(append([]int(nil), v.StepOrder...))
		}
		sorted := append([]float64(nil), v.Numbers...)
		sort.Float64s(sorted)
		if v.Direction == Descending {
			for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
		return NumberOrderSubmission(sorted)

	case FillBlank:
		answers := make(BlankSubmission, len(v.Blanks))
		for _, blank := range v.Blanks {
			answers[blank.ID] = blank.Answer
		}
		return answers

	case LineMatch:
		return MatchSubmission(append([]Connection(nil), v.Connections...))

	case QuickTap:
		var tapped []int
		for i, it := range v.Items {
			if it.IsCorrect {
				tapped = append(tapped, i)
			}
		}
		if v.Mode == TapThreshold && len(tapped) > v.MinCorrect {
			tapped = tapped[:v.MinCorrect]
		}
		return TapSubmission{Tapped: tapped}

	case TypeIn:
		return TextSubmission(v.CorrectAnswer)

	case GraphPlot:
		return TextSubmission(v.CorrectFunction)

	case SliderInput:
		return ValueSubmission(v.CorrectAnswer)
	}
	return nil
}
