package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyDefault, false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", DifficultyDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePreset(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantStart float64
		wantDecay float64
	}{
		{DifficultyDefault, 3.0, 0.05},
		{DifficultyEasy, 4.0, 0.05},
		{DifficultyNormal, 3.0, 0.05},
		{DifficultyHard, 1.5, 0.05},
		{DifficultyFixed, 3.0, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSurvivorConfig()
			ApplyPreset(&cfg, tc.preset)
			assert.Equal(t, tc.wantStart, cfg.Enemies.DifficultyStart)
			assert.Equal(t, tc.wantDecay, cfg.Enemies.DifficultyDecay)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SurvivorConfig)
	}{
		{"zero world", func(c *SurvivorConfig) { c.World.Width = 0 }},
		{"zero sim rate", func(c *SurvivorConfig) { c.Physics.SimRate = 0 }},
		{"negative min time", func(c *SurvivorConfig) { c.Enemies.MinTime = -1 }},
		{"inverted interval", func(c *SurvivorConfig) { c.Enemies.MaxTime = c.Enemies.MinTime }},
		{"negative difficulty", func(c *SurvivorConfig) { c.Enemies.DifficultyStart = -0.1 }},
		{"negative decay", func(c *SurvivorConfig) { c.Enemies.DifficultyDecay = -0.1 }},
		{"zero lane spread", func(c *SurvivorConfig) { c.Enemies.LaneSpread = 0 }},
		{"three lanes", func(c *SurvivorConfig) { c.Enemies.LaneSpread = 2.5 }},
		{"zero dead width", func(c *SurvivorConfig) { c.Player.DeadWidth = 0 }},
		{"zero player frame", func(c *SurvivorConfig) { c.Animation.PlayerFrame = 0 }},
		{"zero dead frame", func(c *SurvivorConfig) { c.Animation.DeadFrame = 0 }},
		{"negative enemy frame", func(c *SurvivorConfig) { c.Animation.EnemyFrame = -0.05 }},
		{"zero digits", func(c *SurvivorConfig) { c.Score.Digits = 0 }},
		{"empty clip", func(c *SurvivorConfig) { c.Animation.Dead.Length = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSurvivorConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateAcceptsDefaultsAndTwoLanes(t *testing.T) {
	cfg := DefaultSurvivorConfig()
	require.NoError(t, cfg.Validate())

	cfg.Enemies.LaneSpread = MaxLaneSpread
	assert.NoError(t, cfg.Validate())
}
