// Package survivor implements a side-scrolling survival game: the player
// walks and jumps to avoid enemies drifting in from the right, and the
// score is the number of seconds survived.
//
// The simulation (Sim) is pure and single-threaded. Game adapts it to the
// core.Game interface used by the terminal platform.
package survivor

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// GameOption configures a Game.
type GameOption func(*Game)

// WithConfigPath loads the game config from path instead of searching the
// default locations.
func WithConfigPath(path string) GameOption {
	return func(g *Game) { g.configPath = path }
}

// WithPreset applies a difficulty preset on every reset and reload.
func WithPreset(p config.DifficultyPreset) GameOption {
	return func(g *Game) { g.preset = p }
}

// WithConfig uses cfg as is and skips loading from disk.
func WithConfig(cfg config.SurvivorConfig) GameOption {
	return func(g *Game) { g.fixed = &cfg }
}

// WithGameLogger sets the logger passed to the simulation.
func WithGameLogger(l *log.Logger) GameOption {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game is the survivor game as seen by the platform.
type Game struct {
	sim        *Sim
	runtime    core.RuntimeConfig
	configPath string
	preset     config.DifficultyPreset
	fixed      *config.SurvivorConfig
	logger     *log.Logger
}

// New creates a game. Reset must be called before the first Step.
func New(opts ...GameOption) *Game {
	g := &Game{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "survivor"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Survivor"
}

// Reset loads the configuration and starts a fresh simulation in the main
// menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.sim = NewSim(g.loadConfig(),
		WithSeed(runtime.Seed),
		WithLogger(g.logger))
}

func (g *Game) loadConfig() config.SurvivorConfig {
	var cfg config.SurvivorConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		loaded, err := config.Load(g.configPath)
		if err != nil {
			g.logger.Warn("using default config", "error", err)
			loaded = config.DefaultSurvivorConfig()
		}
		cfg = loaded
	}

	config.ApplyPreset(&cfg, g.preset)
	return cfg
}

// ApplyConfig schedules cfg for the next run. The running round keeps its
// values so that a reload never changes the rules mid-run.
func (g *Game) ApplyConfig(cfg config.SurvivorConfig) {
	if g.sim == nil {
		return
	}
	config.ApplyPreset(&cfg, g.preset)
	g.sim.QueueConfig(cfg)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame, ft core.FrameTime) core.StepResult {
	if g.sim == nil {
		g.Reset(g.runtime)
	}
	g.sim.Tick(Input{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Jump:    in.Has(core.ActionJump),
		Confirm: in.Has(core.ActionConfirm),
		Cancel:  in.Has(core.ActionCancel),
	}, Clock{Delta: ft.Delta, Elapsed: ft.Elapsed})

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Phase: StateMainMenu.String()}
	}
	return core.GameState{
		Score:    int(g.sim.Score().Value()),
		Phase:    g.sim.State().String(),
		GameOver: g.sim.State() == StateDead,
	}
}

// LastRun returns the statistics of the current or most recent run.
func (g *Game) LastRun() RunStats {
	if g.sim == nil {
		return RunStats{}
	}
	return g.sim.Stats()
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}
