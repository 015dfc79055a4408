package quiz

import "time"

// Response records one answer attempt. It is created once per attempt,
// never mutated afterwards, and owned by the calling session — the core
// does not retain it.
type Response struct {
	QuestionID string

	Correct bool

	// Submitted is the display form of the submitted answer.
	Submitted []string

	TimeTaken time.Duration

	// PointsAwarded is zero for incorrect or skipped attempts.
	PointsAwarded int

	Skipped bool
}

// NewResponse builds the response record for a judged attempt.
func NewResponse(q Question, sub Submission, res Result, took time.Duration) Response {
	r := Response{
		QuestionID: q.Meta().ID,
		Correct:    res.Correct,
		TimeTaken:  took,
	}
	if sub != nil {
		r.Submitted = sub.Display()
	}
	if res.Correct {
		r.PointsAwarded = q.Meta().Points
	}
	return r
}

// SkippedResponse builds the record for a question the user passed on.
func SkippedResponse(q Question) Response {
	return Response{
		QuestionID: q.Meta().ID,
		Skipped:    true,
	}
}
