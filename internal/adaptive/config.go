package adaptive

import "time"

// Config holds the tunable constants of the difficulty controller.
type Config struct {
	// MinLevel and MaxLevel bound the difficulty range.
	MinLevel int
	MaxLevel int

	// StreakToAdvance is how many consecutive correct answers raise the
	// level by one. Changing level resets the streak.
	StreakToAdvance int

	// DebounceWindow is the minimum gap between accepted answers.
	// A second submission inside the window is silently dropped,
	// guarding against double-taps.
	DebounceWindow time.Duration
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MinLevel:        1,
		MaxLevel:        4,
		StreakToAdvance: 3,
		DebounceWindow:  2 * time.Second,
	}
}
