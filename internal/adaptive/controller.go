package adaptive

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/quizkit/internal/quiz"
)

// Controller selects the next question to present based on recent
// performance. One instance serves one practice session; the caller owns
// it and drives it with explicit method calls. It is not safe for
// concurrent use — sessions are single-threaded and event-driven.
//
// Difficulty rises only after a clear streak signal, which avoids
// thrashing on a single lucky answer, but drops immediately on any miss
// so a struggling user recovers fast.
type Controller struct {
	cfg Config
	rng *rand.Rand

	level      int
	streak     int
	answered   map[string]bool
	lastAnswer time.Time
	locked     bool
}

// New creates a controller starting at the minimum level with an empty
// answered set. The rand source is injected so selection is
// deterministic under test.
func New(cfg Config, rng *rand.Rand) *Controller {
	return &Controller{
		cfg:      cfg,
		rng:      rng,
		level:    cfg.MinLevel,
		answered: make(map[string]bool),
	}
}

// Level returns the current difficulty level.
func (c *Controller) Level() int { return c.level }

// Streak returns the current run of consecutive correct answers.
func (c *Controller) Streak() int { return c.streak }

// AnsweredCount returns how many distinct questions have been answered
// since the last reset.
func (c *Controller) AnsweredCount() int { return len(c.answered) }

// Locked reports whether the controller is refusing answers while a
// selection or feedback transition is in flight.
func (c *Controller) Locked() bool { return c.locked }

// Unlock clears the lock without selecting. Used when a session is
// abandoned mid-transition.
func (c *Controller) Unlock() { c.locked = false }

// Reset returns the controller to its initial state.
func (c *Controller) Reset() {
	c.level = c.cfg.MinLevel
	c.streak = 0
	c.answered = make(map[string]bool)
	c.lastAnswer = time.Time{}
	c.locked = false
}

// OnAnswer feeds one evaluation outcome into the controller. It reports
// whether the outcome was applied: submissions arriving while locked or
// inside the debounce window are dropped as no-ops, never queued.
// Applying an outcome locks the controller until the next SelectNext.
func (c *Controller) OnAnswer(questionID string, correct bool, now time.Time) bool {
	if c.locked {
		return false
	}
	if !c.lastAnswer.IsZero() && now.Sub(c.lastAnswer) < c.cfg.DebounceWindow {
		return false
	}

	c.lastAnswer = now
	c.answered[questionID] = true

	if correct {
		c.streak++
		if c.streak >= c.cfg.StreakToAdvance {
			c.streak = 0
			if c.level < c.cfg.MaxLevel {
				c.level++
			}
		}
	} else {
		c.streak = 0
		if c.level > c.cfg.MinLevel {
			c.level--
		}
	}

	c.locked = true
	return true
}

// SelectNext picks the next question from the pool and clears the lock.
//
// Preference order: a uniform pick among unanswered questions at exactly
// the current level; failing that, among unanswered questions at the
// difficulty closest to the current level (ties go to the difficulty
// encountered first); failing that the pool is exhausted — the
// controller resets its answered set, level and streak and selects again
// from the full pool, making the session infinite rather than terminal.
// Returns nil only for an empty pool.
func (c *Controller) SelectNext(pool []quiz.Question) quiz.Question {
	c.locked = false
	if len(pool) == 0 {
		return nil
	}

	if q := c.pickUnanswered(pool); q != nil {
		return q
	}

	// Exhausted: trade strict non-repetition for session continuity.
	c.answered = make(map[string]bool)
	c.level = c.cfg.MinLevel
	c.streak = 0
	return c.pickUnanswered(pool)
}

func (c *Controller) pickUnanswered(pool []quiz.Question) quiz.Question {
	var exact, unanswered []quiz.Question
	for _, q := range pool {
		if c.answered[q.Meta().ID] {
			continue
		}
		unanswered = append(unanswered, q)
		if q.Meta().Difficulty == c.level {
			exact = append(exact, q)
		}
	}
	if len(exact) > 0 {
		return exact[c.rng.IntN(len(exact))]
	}
	if len(unanswered) == 0 {
		return nil
	}

	closest := unanswered[0].Meta().Difficulty
	for _, q := range unanswered[1:] {
		d := q.Meta().Difficulty
		if math.Abs(float64(d-c.level)) < math.Abs(float64(closest-c.level)) {
			closest = d
		}
	}
	var candidates []quiz.Question
	for _, q := range unanswered {
		if q.Meta().Difficulty == closest {
			candidates = append(candidates, q)
		}
	}
	return candidates[c.rng.IntN(len(candidates))]
}
