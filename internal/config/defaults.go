package config

import (
	_ "embed"
)

//go:embed defaults/survivor.yaml
var defaultSurvivorYAML []byte

// DefaultSurvivorConfig returns the built-in configuration.
// It mirrors defaults/survivor.yaml and is used when the embedded file
// cannot be decoded.
func DefaultSurvivorConfig() SurvivorConfig {
	return SurvivorConfig{
		World: WorldConfig{
			Width:        1000,
			Height:       555,
			GroundOffset: 160,
			SpawnInset:   135,
		},
		Physics: PhysicsConfig{
			Gravity: 45 * 25,
			SimRate: 60,
		},
		Player: PlayerConfig{
			Width:       416,
			Height:      454,
			DeadWidth:   601,
			DeadHeight:  512,
			Scale:       0.30,
			WalkSpeed:   300,
			JumpImpulse: 19 * 30,
			HitMargin:   17,
			Depth:       10,
		},
		Enemies: EnemyConfig{
			Width:           273,
			Height:          282,
			Scale:           0.20,
			Speed:           -170,
			MinTime:         1.5,
			MaxTime:         4.0,
			InitialDelay:    2.5,
			DifficultyStart: 3.0,
			DifficultyDecay: 0.05,
			SpawnX:          500,
			DespawnX:        -550,
			LaneBaseY:       -100,
			LaneStep:        135,
			LaneSpread:      1.5,
			BobAmplitude:    0.5,
			BobFrequency:    2.0,
			Depth:           15,
		},
		Animation: AnimationConfig{
			Idle:        Clip{Start: 0, Length: 16},
			Walk:        Clip{Start: 16, Length: 20},
			Jump:        Clip{Start: 36, Length: 30},
			PlayerFrame: 0.07,
			Dead:        Clip{Start: 0, Length: 30},
			DeadFrame:   0.05,
			Enemy:       Clip{Start: 0, Length: 13},
			EnemyFrame:  0.05,
		},
		Score: ScoreConfig{
			Digits: 5,
			Label:  "Score: ",
			Prompt: "<Press Enter>",
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultSurvivorYAML
}
