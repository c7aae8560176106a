package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survivor"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

// ConfigApplier is implemented by games that accept config updates while running.
type ConfigApplier interface {
	ApplyConfig(cfg config.SurvivorConfig)
}

// RunReporter is implemented by games that expose the statistics of the
// last finished run.
type RunReporter interface {
	LastRun() survivor.RunStats
}

// configMsg carries a reloaded config from the watcher.
type configMsg struct {
	cfg config.SurvivorConfig
}

// waitForConfig blocks on the next config update.
// A closed channel ends the subscription.
func waitForConfig(updates <-chan config.SurvivorConfig) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return configMsg{cfg: cfg}
	}
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithStore persists every finished run to store.
func WithStore(store *storage.Store) ModelOption {
	return func(m *Model) { m.store = store }
}

// WithPlayer sets the name runs are saved under.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithHoldWindow sets how long a movement key stays held after a press.
func WithHoldWindow(d time.Duration) ModelOption {
	return func(m *Model) { m.hold = NewHoldTracker(d) }
}

// WithConfigUpdates applies every config received on updates to the game.
func WithConfigUpdates(updates <-chan config.SurvivorConfig) ModelOption {
	return func(m *Model) { m.updates = updates }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// withClock replaces the wall clock used for key presses.
func withClock(now func() time.Time) ModelOption {
	return func(m *Model) { m.now = now }
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	keys       *KeyMapper
	hold       *HoldTracker
	clock      *frameClock
	updates    <-chan config.SurvivorConfig
	logger     *log.Logger
	now        func() time.Time
	inputFrame core.InputFrame
	gameState  core.GameState
	lastRun    *storage.Run // Most recently saved run
	quitting   bool
	runSaved   bool // Whether the current death has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		hold:       NewHoldTracker(DefaultHoldWindow),
		clock:      newFrameClock(cfg.TickRate),
		logger:     log.New(io.Discard),
		now:        time.Now,
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.updates != nil {
		cmds = append(cmds, waitForConfig(m.updates))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case configMsg:
		return m.handleConfig(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case holdable(action):
		m.hold.Press(action, m.now())
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The world is independent of the terminal size, so only the buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleConfig hands a reloaded config to the game and waits for the next one.
func (m Model) handleConfig(msg configMsg) (tea.Model, tea.Cmd) {
	if applier, ok := m.game.(ConfigApplier); ok {
		applier.ApplyConfig(msg.cfg)
		m.logger.Info("config reloaded", "applies", "next run")
	}
	return m, waitForConfig(m.updates)
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.inputFrame.Clone()
	m.hold.Apply(&frame, now)

	result := m.game.Step(frame, m.clock.Next(now))
	m.gameState = result.State

	// Save the run once per death. Keys held into the death do not carry
	// over to the retry.
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.hold.Reset()
		m.runSaved = true
	} else if !m.gameState.GameOver {
		m.runSaved = false
	}

	// One-shot actions only last a single tick
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the run that just ended.
func (m *Model) saveRun() {
	run := storage.Run{Player: m.player, Score: m.gameState.Score}
	if reporter, ok := m.game.(RunReporter); ok {
		stats := reporter.LastRun()
		run.Score = stats.Score
		run.Duration = stats.Duration
		run.EnemiesSpawned = stats.EnemiesSpawned
		run.EnemiesDodged = stats.EnemiesDodged
		run.MinDifficulty = stats.MinDifficulty
	}

	if m.store == nil {
		m.lastRun = &run
		return
	}

	saved, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Error("failed to save run", "err", err)
		return
	}
	m.lastRun = &saved
	m.logger.Info("run saved", "run", saved.RunID, "player", saved.Player, "score", saved.Score)
}

// LastRun returns the most recently finished run, or nil before the first death.
func (m Model) LastRun() *storage.Run {
	return m.lastRun
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".survivor", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for game in the local terminal.
func Run(game core.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
