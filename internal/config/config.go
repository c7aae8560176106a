// Package config provides YAML/TOML game configuration loading, difficulty
// presets and live reloading for the survivor game.
//
// All distances are world units (the play area is centered on the origin
// with y pointing up), all durations are seconds.
package config

// SurvivorConfig contains all tunable constants of the game.
type SurvivorConfig struct {
	World     WorldConfig     `yaml:"world" toml:"world"`
	Physics   PhysicsConfig   `yaml:"physics" toml:"physics"`
	Player    PlayerConfig    `yaml:"player" toml:"player"`
	Enemies   EnemyConfig     `yaml:"enemies" toml:"enemies"`
	Animation AnimationConfig `yaml:"animation" toml:"animation"`
	Score     ScoreConfig     `yaml:"score" toml:"score"`
}

// WorldConfig defines the play area.
type WorldConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	GroundOffset float64 `yaml:"ground_offset" toml:"ground_offset"` // Ground line height above the bottom edge
	SpawnInset   float64 `yaml:"spawn_inset" toml:"spawn_inset"`     // Player spawn distance from the left edge
}

// PhysicsConfig defines the fixed-step integration parameters.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity" toml:"gravity"`
	SimRate int     `yaml:"sim_rate" toml:"sim_rate"` // Fixed integration steps per second
}

// PlayerConfig defines the live player character.
type PlayerConfig struct {
	Width       float64 `yaml:"width" toml:"width"`             // Nominal sprite width before scaling
	Height      float64 `yaml:"height" toml:"height"`           // Nominal sprite height before scaling
	DeadWidth   float64 `yaml:"dead_width" toml:"dead_width"`   // Dead sprite width before scaling
	DeadHeight  float64 `yaml:"dead_height" toml:"dead_height"` // Dead sprite height before scaling
	Scale       float64 `yaml:"scale" toml:"scale"`
	WalkSpeed   float64 `yaml:"walk_speed" toml:"walk_speed"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	HitMargin   float64 `yaml:"hit_margin" toml:"hit_margin"` // Subtracted from both box sizes before overlap tests
	Depth       float64 `yaml:"depth" toml:"depth"`
}

// EnemyConfig defines enemy spawning, motion and difficulty ramp.
type EnemyConfig struct {
	Width           float64 `yaml:"width" toml:"width"`
	Height          float64 `yaml:"height" toml:"height"`
	Scale           float64 `yaml:"scale" toml:"scale"`
	Speed           float64 `yaml:"speed" toml:"speed"` // Horizontal velocity, negative moves left
	MinTime         float64 `yaml:"min_time" toml:"min_time"`
	MaxTime         float64 `yaml:"max_time" toml:"max_time"`
	InitialDelay    float64 `yaml:"initial_delay" toml:"initial_delay"`
	DifficultyStart float64 `yaml:"difficulty_start" toml:"difficulty_start"`
	DifficultyDecay float64 `yaml:"difficulty_decay" toml:"difficulty_decay"` // Per second of wall time
	SpawnX          float64 `yaml:"spawn_x" toml:"spawn_x"`
	DespawnX        float64 `yaml:"despawn_x" toml:"despawn_x"`
	LaneBaseY       float64 `yaml:"lane_base_y" toml:"lane_base_y"`
	LaneStep        float64 `yaml:"lane_step" toml:"lane_step"`
	LaneSpread      float64 `yaml:"lane_spread" toml:"lane_spread"` // Lane = int(U[0, spread))
	BobAmplitude    float64 `yaml:"bob_amplitude" toml:"bob_amplitude"`
	BobFrequency    float64 `yaml:"bob_frequency" toml:"bob_frequency"`
	Depth           float64 `yaml:"depth" toml:"depth"`
}

// Clip is a contiguous range of animation frames.
type Clip struct {
	Start  int `yaml:"start" toml:"start"`
	Length int `yaml:"length" toml:"length"`
}

// AnimationConfig defines sprite-sheet clips and frame periods.
type AnimationConfig struct {
	Idle        Clip    `yaml:"idle" toml:"idle"`
	Walk        Clip    `yaml:"walk" toml:"walk"`
	Jump        Clip    `yaml:"jump" toml:"jump"`
	PlayerFrame float64 `yaml:"player_frame" toml:"player_frame"`
	Dead        Clip    `yaml:"dead" toml:"dead"`
	DeadFrame   float64 `yaml:"dead_frame" toml:"dead_frame"`
	Enemy       Clip    `yaml:"enemy" toml:"enemy"`
	EnemyFrame  float64 `yaml:"enemy_frame" toml:"enemy_frame"`
}

// ScoreConfig defines the HUD texts.
type ScoreConfig struct {
	Digits int    `yaml:"digits" toml:"digits"`
	Label  string `yaml:"label" toml:"label"`
	Prompt string `yaml:"prompt" toml:"prompt"`
}

// TimeStep returns the fixed integration step in seconds.
func (c SurvivorConfig) TimeStep() float64 {
	if c.Physics.SimRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.Physics.SimRate)
}

// GroundY returns the y coordinate of the ground line.
func (c SurvivorConfig) GroundY() float64 {
	return -c.World.Height/2 + c.World.GroundOffset
}

// SpawnX returns the x coordinate of the player's spawn point.
func (c SurvivorConfig) SpawnX() float64 {
	return -c.World.Width/2 + c.World.SpawnInset
}
