package survivor

import (
	"cmp"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Input is the per-tick control snapshot. Left, Right and Jump are level
// triggered; Confirm and Cancel request state transitions.
type Input struct {
	Left    bool
	Right   bool
	Jump    bool
	Confirm bool
	Cancel  bool
}

// Clock carries wall time for one tick.
type Clock struct {
	Delta   time.Duration // Since the previous tick
	Elapsed time.Duration // Since the simulation started
}

// Option configures a Sim.
type Option func(*Sim)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Sim) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed seeds the spawner's random source.
func WithSeed(seed int64) Option {
	return func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// Sim is the fixed-step gameplay simulation. All state lives here; a Sim is
// not safe for concurrent use.
type Sim struct {
	cfg     config.SurvivorConfig
	pending *config.SurvivorConfig // Swapped in on the next Enter(Playing)

	state   State
	alive   bool
	world   *World
	spawner Spawner
	score   ScoreTracker
	prompt  bool

	deathPending bool
	stats        RunStats
	runs         int

	rng    *rand.Rand
	logger *log.Logger
}

// NewSim creates a simulation in the main menu with the player spawned.
func NewSim(cfg config.SurvivorConfig, opts ...Option) *Sim {
	s := &Sim{
		cfg:    cfg,
		state:  StateMainMenu,
		alive:  true,
		world:  NewWorld(),
		rng:    rand.New(rand.NewSource(1)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.spawner.Reset(&s.cfg)

	for _, h := range InitialHooks() {
		s.runHook(h)
	}
	return s
}

// Tick advances the simulation by one fixed step.
func (s *Sim) Tick(in Input, clk Clock) {
	dt := clk.Delta.Seconds()
	step := s.cfg.TimeStep()

	s.updateState(in)

	ApplyGravity(s.world, s.cfg.Physics.Gravity, step)

	s.updatePlayer(in, dt, step)
	s.updateEnemies(dt, step, clk.Elapsed.Seconds())

	if s.state == StatePlaying && s.alive {
		s.score.Add(dt)
		s.stats.Duration += clk.Delta
	}
}

// updateState applies at most one transition per tick. A pending death
// event takes precedence over input.
func (s *Sim) updateState(in Input) {
	if s.deathPending {
		s.deathPending = false
		if s.request(EventDeathAnimationDone) {
			return
		}
	}

	switch s.state {
	case StateMainMenu:
		if in.Confirm {
			s.request(EventConfirm)
		}
	case StateDead:
		if in.Cancel {
			s.request(EventCancel)
		}
	}
}

// request runs a transition and its hooks. Illegal requests are ignored.
func (s *Sim) request(ev Event) bool {
	next, hooks, ok := Transition(s.state, ev)
	if !ok {
		return false
	}

	from := s.state
	for _, h := range hooks {
		if h.Phase == PhaseEnter {
			s.state = next
		}
		s.runHook(h)
	}
	s.state = next

	s.logger.Info("state transition", "from", from, "to", next, "event", ev)
	return true
}

func (s *Sim) runHook(h Hook) {
	switch h {
	case Enter(StateMainMenu):
		spawnPlayer(s.world, &s.cfg)
		s.prompt = true

	case Exit(StateMainMenu):
		s.prompt = false

	case Enter(StatePlaying):
		if s.pending != nil {
			s.cfg = *s.pending
			s.pending = nil
			s.logger.Info("applied reloaded config")
		}
		s.spawner.Reset(&s.cfg)
		resetPlayer(s.world, &s.cfg)
		s.score.Spawn(s.cfg.Score.Digits)
		s.stats = RunStats{MinDifficulty: s.spawner.Difficulty}

	case Enter(StateDead):
		s.stats.Score = int(s.score.Value())
		s.runs++
		s.logger.Info("run finished",
			"score", s.stats.Score,
			"spawned", s.stats.EnemiesSpawned,
			"dodged", s.stats.EnemiesDodged)

	case Exit(StateDead):
		spawnPlayer(s.world, &s.cfg)
		cleanupDeadPlayer(s.world)
		s.alive = true
		cleanupEnemies(s.world)
		s.score.Despawn()
	}
}

func (s *Sim) updatePlayer(in Input, dt, step float64) {
	if s.alive {
		movePlayer(s.world, in, &s.cfg, step)
	}
	animateLooping(s.world, KindPlayer, dt)

	if s.state != StatePlaying {
		return
	}
	if s.alive && checkCollision(s.world, &s.cfg) {
		s.alive = false
	}
	moveDeadPlayer(s.world, &s.cfg, step)
	if animateDeadPlayer(s.world, dt) {
		s.deathPending = true
	}
}

func (s *Sim) updateEnemies(dt, step, elapsed float64) {
	animateLooping(s.world, KindEnemy, dt)

	if s.state == StatePlaying {
		if s.alive {
			if lane, ok := s.spawner.Tick(&s.cfg, s.rng, dt); ok {
				spawnEnemy(s.world, &s.cfg, lane)
				s.stats.EnemiesSpawned++
			}
		}
		s.spawner.Decay(&s.cfg, dt)
		s.stats.MinDifficulty = min(s.stats.MinDifficulty, s.spawner.Difficulty)
	}

	if s.state == StatePlaying || s.state == StateDead {
		moveEnemies(s.world, &s.cfg, step, elapsed)
		gone := despawnOffscreen(s.world, &s.cfg)
		if s.state == StatePlaying && s.alive {
			s.stats.EnemiesDodged += gone
		}
	}
}

// QueueConfig stores cfg to be used from the next time Playing is entered.
func (s *Sim) QueueConfig(cfg config.SurvivorConfig) {
	s.pending = &cfg
}

// Config returns the active configuration.
func (s *Sim) Config() config.SurvivorConfig { return s.cfg }

// State returns the current flow state.
func (s *Sim) State() State { return s.state }

// Alive reports whether the player is alive.
func (s *Sim) Alive() bool { return s.alive }

// World exposes the entity set.
func (s *Sim) World() *World { return s.world }

// Spawner exposes the enemy spawner.
func (s *Sim) Spawner() *Spawner { return &s.spawner }

// Score exposes the score tracker.
func (s *Sim) Score() *ScoreTracker { return &s.score }

// Stats returns the statistics of the current or last run.
func (s *Sim) Stats() RunStats { return s.stats }

// Runs returns how many runs have ended in death.
func (s *Sim) Runs() int { return s.runs }

// Sprite is one drawable entity.
type Sprite struct {
	ID       EntityID
	Kind     Kind
	Pos      core.Vec2
	Depth    float64
	Scale    core.Vec2
	Frame    int
	Airborne bool
}

// View is everything a presentation layer needs to draw a frame.
type View struct {
	State        State
	Sprites      []Sprite // Sorted back to front
	ScoreVisible bool
	ScoreLabel   string
	ScoreText    string
	Prompt       string // Empty when no prompt is shown
}

// View captures the drawable state.
func (s *Sim) View() View {
	v := View{
		State:        s.state,
		ScoreVisible: s.score.Visible(),
		ScoreLabel:   s.cfg.Score.Label,
		ScoreText:    s.score.Text(),
	}
	if s.prompt {
		v.Prompt = s.cfg.Score.Prompt
	}

	for _, e := range s.world.All() {
		v.Sprites = append(v.Sprites, Sprite{
			ID:       e.ID,
			Kind:     e.Kind,
			Pos:      e.Pos,
			Depth:    e.Depth,
			Scale:    e.Scale,
			Frame:    e.Anim.Frame,
			Airborne: e.Gravity,
		})
	}
	slices.SortStableFunc(v.Sprites, func(a, b Sprite) int {
		return cmp.Compare(a.Depth, b.Depth)
	})
	return v
}
