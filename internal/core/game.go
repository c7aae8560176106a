package core

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, persistence, and terminal output.
type Game interface {
	// ID returns a unique identifier for this game.
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick.
	// Input is abstracted to platform-level actions; ft carries wall-clock timing.
	Step(in InputFrame, ft FrameTime) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
