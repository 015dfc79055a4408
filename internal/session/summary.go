package session

import "time"

// Summary holds the data displayed on the end-of-session screen.
type Summary struct {
	SessionID      string
	Topic          string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	Score          int
	BestStreak     int
	TopicResults   []TopicResult
}

// BuildSummary closes out a session at the given time.
func BuildSummary(s *Session, now time.Time) *Summary {
	attempted := s.Attempted()
	var accuracy float64
	if attempted > 0 {
		accuracy = float64(s.CorrectCount()) / float64(attempted)
	}

	return &Summary{
		SessionID:      s.ID,
		Topic:          s.Topic,
		Duration:       now.Sub(s.StartTime),
		TotalQuestions: attempted,
		TotalCorrect:   s.CorrectCount(),
		Accuracy:       accuracy,
		Score:          s.Score,
		BestStreak:     s.BestStreak,
		TopicResults:   s.TopicResults(),
	}
}
