// Package session tracks the runtime state of one practice run: the
// responses given, the score and the per-topic tallies. It holds display
// state only; judging answers and picking questions belong to the quiz
// and adaptive packages.
package session

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizkit/internal/quiz"
)

// Session accumulates the outcomes of one practice run. Not safe for
// concurrent use; a session is driven from a single event loop.
type Session struct {
	// ID is the UUID for this session.
	ID string

	// Topic is the topic being practiced, empty for mixed practice.
	Topic string

	StartTime time.Time

	Responses []quiz.Response

	// Score accumulates streak-multiplied points.
	Score int

	// Streak is the current run of consecutive correct answers. Unlike
	// the difficulty controller's streak it never resets on a level
	// change; it feeds the score multiplier and the UI only.
	Streak int

	// BestStreak is the longest streak seen this session.
	BestStreak int

	perTopic map[string]*TopicResult
}

// TopicResult tallies one topic's attempts within a session.
type TopicResult struct {
	Topic     string
	Attempted int
	Correct   int
	Points    int
}

// New starts a session for the given topic at the given time.
func New(topic string, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Topic:     topic,
		StartTime: now,
		perTopic:  make(map[string]*TopicResult),
	}
}

// Record applies one judged response and returns the points earned. The
// points are the question's value multiplied by the streak as it stands
// after this answer, with a floor of 1 so the first correct answer still
// scores. Incorrect and skipped responses earn nothing and reset the
// streak.
func (s *Session) Record(topic string, q quiz.Question, resp quiz.Response) int {
	s.Responses = append(s.Responses, resp)

	tr := s.perTopic[topic]
	if tr == nil {
		tr = &TopicResult{Topic: topic}
		s.perTopic[topic] = tr
	}
	tr.Attempted++

	if !resp.Correct {
		s.Streak = 0
		return 0
	}

	s.Streak++
	if s.Streak > s.BestStreak {
		s.BestStreak = s.Streak
	}

	earned := q.Meta().Points * s.Streak

	s.Score += earned
	tr.Correct++
	tr.Points += earned
	return earned
}

// Attempted returns the number of responses recorded so far.
func (s *Session) Attempted() int { return len(s.Responses) }

// CorrectCount returns the number of correct responses so far.
func (s *Session) CorrectCount() int {
	n := 0
	for _, r := range s.Responses {
		if r.Correct {
			n++
		}
	}
	return n
}

// TopicResults returns the per-topic tallies sorted by topic id.
func (s *Session) TopicResults() []TopicResult {
	out := make([]TopicResult, 0, len(s.perTopic))
	for _, tr := range s.perTopic {
		out = append(out, *tr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out
}
