package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameTime carries wall-clock timing for one tick.
// Delta is the time since the previous tick, Elapsed the time since the
// game was started.
type FrameTime struct {
	Delta   time.Duration
	Elapsed time.Duration
}

// FixedFrameTime returns the FrameTime of the n-th tick (1-based) of a clock
// that advances by exactly 1/tickRate per tick.
func FixedFrameTime(tickRate, n int) FrameTime {
	if tickRate <= 0 {
		tickRate = 60
	}
	step := time.Second / time.Duration(tickRate)
	return FrameTime{Delta: step, Elapsed: step * time.Duration(n)}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score (whole seconds survived)
	Phase    string // Human-readable phase name ("menu", "playing", "dead")
	GameOver bool   // Whether the run has ended and is waiting for a retry
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
