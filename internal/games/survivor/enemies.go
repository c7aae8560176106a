package survivor

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Spawner paces enemy creation. Each interval is a uniform sample from
// [MinTime, MaxTime) plus the current difficulty, which shrinks over time.
type Spawner struct {
	Duration   float64 // Length of the current interval
	Elapsed    float64 // Time accumulated toward Duration
	Difficulty float64 // Added to every sampled interval
}

// Reset restores the initial delay and difficulty.
func (s *Spawner) Reset(cfg *config.SurvivorConfig) {
	s.Duration = cfg.Enemies.InitialDelay
	s.Elapsed = 0
	s.Difficulty = cfg.Enemies.DifficultyStart
}

// Remaining returns the time left before the next spawn.
func (s *Spawner) Remaining() float64 {
	return max(s.Duration-s.Elapsed, 0)
}

// Decay lowers the difficulty by the configured rate, never below zero.
func (s *Spawner) Decay(cfg *config.SurvivorConfig, dt float64) {
	s.Difficulty = max(s.Difficulty-dt*cfg.Enemies.DifficultyDecay, 0)
}

// Tick advances the countdown by dt. When it expires a new interval is
// drawn from rng and the lane of the enemy to spawn is returned with
// ok == true. Overshoot past the old interval is discarded.
func (s *Spawner) Tick(cfg *config.SurvivorConfig, rng *rand.Rand, dt float64) (lane int, ok bool) {
	s.Elapsed += dt
	if s.Elapsed < s.Duration {
		return 0, false
	}

	u := cfg.Enemies.MinTime + rng.Float64()*(cfg.Enemies.MaxTime-cfg.Enemies.MinTime)
	s.Duration = u + s.Difficulty
	s.Elapsed = 0

	lane = int(rng.Float64() * cfg.Enemies.LaneSpread)
	return lane, true
}

// spawnEnemy creates an enemy at the right edge in the given lane.
func spawnEnemy(w *World, cfg *config.SurvivorConfig, lane int) *Entity {
	return w.Spawn(Entity{
		Kind: KindEnemy,
		Pos: core.Vec2{
			X: cfg.Enemies.SpawnX,
			Y: cfg.Enemies.LaneBaseY + cfg.Enemies.LaneStep*float64(lane),
		},
		Depth: cfg.Enemies.Depth,
		Scale: core.Vec2{X: cfg.Enemies.Scale, Y: cfg.Enemies.Scale},
		Vel:   core.Vec2{X: cfg.Enemies.Speed},
		Anim:  NewAnimation(cfg.Animation.Enemy, cfg.Animation.EnemyFrame),
	})
}

// moveEnemies moves every enemy horizontally by its velocity and bobs it
// vertically. elapsed is the wall-clock time since start, in seconds.
func moveEnemies(w *World, cfg *config.SurvivorConfig, step, elapsed float64) {
	bob := cfg.Enemies.BobAmplitude * math.Sin(cfg.Enemies.BobFrequency*elapsed)
	for _, e := range w.Enemies() {
		e.Pos.X += e.Vel.X * step
		e.Pos.Y += bob
	}
}

// despawnOffscreen removes enemies at or beyond the despawn line.
func despawnOffscreen(w *World, cfg *config.SurvivorConfig) int {
	return w.DespawnWhere(KindEnemy, func(e *Entity) bool {
		return e.Pos.X <= cfg.Enemies.DespawnX
	})
}

// cleanupEnemies removes every enemy.
func cleanupEnemies(w *World) int {
	return w.DespawnKind(KindEnemy)
}

// animateLooping advances looping clips of all entities of kind.
func animateLooping(w *World, kind Kind, dt float64) {
	for _, e := range w.OfKind(kind) {
		e.Anim.Advance(dt)
	}
}
