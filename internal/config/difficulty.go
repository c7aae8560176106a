package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyDefault DifficultyPreset = ""
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyFixed   DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// An empty string selects the config's own values.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyDefault, DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return DifficultyDefault, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// StartForPreset returns the initial difficulty offset for a preset.
// Higher values mean longer pauses between spawns.
func StartForPreset(preset DifficultyPreset, fallback float64) float64 {
	switch preset {
	case DifficultyEasy:
		return 4.0
	case DifficultyNormal:
		return 3.0
	case DifficultyHard:
		return 1.5
	default:
		return fallback
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the configured start but disables the decay, so
// spawn density never ramps up.
func ApplyPreset(cfg *SurvivorConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Enemies.DifficultyDecay = 0
		return
	}
	cfg.Enemies.DifficultyStart = StartForPreset(preset, cfg.Enemies.DifficultyStart)
}

// MaxLaneSpread keeps enemies on at most two lanes: int(U[0, spread)) is 0 or 1.
const MaxLaneSpread = 2.0

// Validate rejects values the simulation cannot run with.
func (c SurvivorConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	case c.Physics.SimRate <= 0:
		return fmt.Errorf("config: sim_rate must be positive, got %d", c.Physics.SimRate)
	case c.Enemies.MinTime < 0:
		return fmt.Errorf("config: enemies.min_time must not be negative, got %g", c.Enemies.MinTime)
	case c.Enemies.MaxTime <= c.Enemies.MinTime:
		return fmt.Errorf("config: enemies.max_time (%g) must be greater than min_time (%g)", c.Enemies.MaxTime, c.Enemies.MinTime)
	case c.Enemies.DifficultyStart < 0:
		return fmt.Errorf("config: enemies.difficulty_start must not be negative, got %g", c.Enemies.DifficultyStart)
	case c.Enemies.DifficultyDecay < 0:
		return fmt.Errorf("config: enemies.difficulty_decay must not be negative, got %g", c.Enemies.DifficultyDecay)
	case c.Enemies.LaneSpread <= 0 || c.Enemies.LaneSpread > MaxLaneSpread:
		return fmt.Errorf("config: enemies.lane_spread must be in (0, %g], got %g", MaxLaneSpread, c.Enemies.LaneSpread)
	case c.Player.DeadWidth <= 0 || c.Player.DeadHeight <= 0:
		return fmt.Errorf("config: player dead size must be positive, got %gx%g", c.Player.DeadWidth, c.Player.DeadHeight)
	case c.Score.Digits <= 0:
		return fmt.Errorf("config: score.digits must be positive, got %d", c.Score.Digits)
	}

	clips := map[string]Clip{
		"idle":  c.Animation.Idle,
		"walk":  c.Animation.Walk,
		"jump":  c.Animation.Jump,
		"dead":  c.Animation.Dead,
		"enemy": c.Animation.Enemy,
	}
	for name, clip := range clips {
		if clip.Start < 0 || clip.Length <= 0 {
			return fmt.Errorf("config: animation.%s must have start >= 0 and length > 0, got %+v", name, clip)
		}
	}

	// A zero period freezes the clip, and a frozen death clip never ends the run.
	periods := map[string]float64{
		"player_frame": c.Animation.PlayerFrame,
		"dead_frame":   c.Animation.DeadFrame,
		"enemy_frame":  c.Animation.EnemyFrame,
	}
	for name, period := range periods {
		if period <= 0 {
			return fmt.Errorf("config: animation.%s must be positive, got %g", name, period)
		}
	}
	return nil
}
