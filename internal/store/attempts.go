package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Attempt is one recorded answer, as stored.
type Attempt struct {
	SessionID    string
	Topic        string
	QuestionID   string
	QuestionType string
	Difficulty   int
	Correct      bool
	Skipped      bool
	Points       int
	TimeTaken    time.Duration
	CreatedAt    time.Time
}

// SessionRecord is the stored header of one practice session.
type SessionRecord struct {
	ID         string
	Topic      string
	StartedAt  time.Time
	EndedAt    time.Time
	Score      int
	BestStreak int
}

// TopicStats aggregates accuracy for one topic across all sessions.
type TopicStats struct {
	Topic     string
	Attempted int
	Correct   int
	Points    int
}

// Accuracy returns the fraction of attempts answered correctly.
func (ts TopicStats) Accuracy() float64 {
	if ts.Attempted == 0 {
		return 0
	}
	return float64(ts.Correct) / float64(ts.Attempted)
}

// AttemptRepo persists attempts and session headers.
type AttemptRepo interface {
	// BeginSession records a session header when practice starts.
	BeginSession(ctx context.Context, id, topic string, startedAt time.Time) error

	// EndSession stamps the end time and final tallies.
	EndSession(ctx context.Context, id string, endedAt time.Time, score, bestStreak int) error

	// Append records one attempt.
	Append(ctx context.Context, a Attempt) error

	// StatsByTopic aggregates all non-skipped attempts per topic.
	StatsByTopic(ctx context.Context) ([]TopicStats, error)

	// RecentSessions returns the most recent session headers, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)

	// Reset deletes all stored history.
	Reset(ctx context.Context) error
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) BeginSession(ctx context.Context, id, topic string, startedAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, topic, started_at) VALUES (?, ?, ?)`,
		id, topic, startedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("begin session: %w", err)
	}
	return nil
}

func (r *attemptRepo) EndSession(ctx context.Context, id string, endedAt time.Time, score, bestStreak int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET ended_at = ?, score = ?, best_streak = ? WHERE id = ?`,
		endedAt.UTC(), score, bestStreak, id,
	)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

func (r *attemptRepo) Append(ctx context.Context, a Attempt) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (session_id, topic, question_id, question_type, difficulty,
			correct, skipped, points, time_taken_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.SessionID, a.Topic, a.QuestionID, a.QuestionType, a.Difficulty,
		a.Correct, a.Skipped, a.Points, a.TimeTaken.Milliseconds(), a.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) StatsByTopic(ctx context.Context) ([]TopicStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT topic,
			COUNT(*),
			COALESCE(SUM(correct), 0),
			COALESCE(SUM(points), 0)
		 FROM attempts
		 WHERE skipped = 0
		 GROUP BY topic
		 ORDER BY topic`,
	)
	if err != nil {
		return nil, fmt.Errorf("stats by topic: %w", err)
	}
	defer rows.Close()

	var out []TopicStats
	for rows.Next() {
		var ts TopicStats
		if err := rows.Scan(&ts.Topic, &ts.Attempted, &ts.Correct, &ts.Points); err != nil {
			return nil, fmt.Errorf("scan topic stats: %w", err)
		}
		out = append(out, ts)
	}
	return out, rows.Err()
}

func (r *attemptRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, topic, started_at, COALESCE(ended_at, started_at), score, best_streak
		 FROM sessions
		 ORDER BY started_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var sr SessionRecord
		if err := rows.Scan(&sr.ID, &sr.Topic, &sr.StartedAt, &sr.EndedAt, &sr.Score, &sr.BestStreak); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

func (r *attemptRepo) Reset(ctx context.Context) error {
	for _, table := range []string{"attempts", "sessions"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}
