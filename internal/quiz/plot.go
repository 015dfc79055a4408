package quiz

import (
	"math"
	"strings"
)

// plotThreshold is the absolute difference allowed between the submitted
// and expected function values at each sample point.
const plotThreshold = 0.1

// plotSamples is the number of evenly spaced x samples used when a
// question carries no explicit check points.
const plotSamples = 10

// Correct iff the submitted function tracks the expected values at every
// sample point. A function that fails to evaluate anywhere is incorrect,
// never an error.
func (q GraphPlot) evaluate(sub Submission) bool {
	text, ok := sub.(TextSubmission)
	if !ok {
		return false
	}
	fn := strings.TrimSpace(string(text))
	if fn == "" {
		return false
	}

	if len(q.CheckPoints) > 0 {
		for _, p := range q.CheckPoints {
			y, err := EvalExpression(fn, p.X)
			if err != nil || !closeEnough(y, p.Y) {
				return false
			}
		}
		return true
	}

	for i := range plotSamples {
		x := q.Grid.XMin + float64(i)/float64(plotSamples-1)*(q.Grid.XMax-q.Grid.XMin)
		got, err := EvalExpression(fn, x)
		if err != nil {
			return false
		}
		want, err := EvalExpression(q.CorrectFunction, x)
		if err != nil {
			return false
		}
		if !closeEnough(got, want) {
			return false
		}
	}
	return true
}

func closeEnough(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) < plotThreshold
}
