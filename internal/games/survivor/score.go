package survivor

import (
	"fmt"
	"time"
)

// FormatScore renders the whole seconds of v zero-padded to digits.
func FormatScore(v float64, digits int) string {
	if v < 0 {
		v = 0
	}
	return fmt.Sprintf("%0*d", digits, int64(v))
}

// ScoreTracker accumulates survival time while the player is alive. It is
// only visible between entering Playing and leaving Dead.
type ScoreTracker struct {
	visible bool
	value   float64
	text    string
	digits  int
}

// Spawn shows a fresh tracker. The text stays empty until the first update.
func (s *ScoreTracker) Spawn(digits int) {
	*s = ScoreTracker{visible: true, digits: digits}
}

// Despawn hides the tracker.
func (s *ScoreTracker) Despawn() {
	*s = ScoreTracker{}
}

// Add accumulates dt seconds and refreshes the text.
func (s *ScoreTracker) Add(dt float64) {
	if !s.visible {
		return
	}
	s.value += dt
	s.text = FormatScore(s.value, s.digits)
}

// Visible reports whether the tracker is shown.
func (s *ScoreTracker) Visible() bool { return s.visible }

// Value returns the accumulated seconds.
func (s *ScoreTracker) Value() float64 { return s.value }

// Text returns the formatted score, empty before the first update.
func (s *ScoreTracker) Text() string { return s.text }

// RunStats summarizes one run from entering Playing to dying.
type RunStats struct {
	Score          int           // Whole seconds survived
	Duration       time.Duration // Wall time spent alive
	EnemiesSpawned int
	EnemiesDodged  int     // Enemies that left the screen while the player lived
	MinDifficulty  float64 // Lowest difficulty reached
}
