package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeedFactorDisabled(t *testing.T) {
	d := NewDifficultyManager(DefaultCrossingConfig().Difficulty)

	for _, wins := range []int{0, 5, 100} {
		assert.Equal(t, 1.0, d.SpeedFactor(wins), "disabled scaling must leave speeds untouched")
	}
}

func TestLevelProgressesWithWins(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "wins", MaxAt: 4},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	assert.InDelta(t, 0.2, d.Level(0), 1e-9)
	assert.InDelta(t, 0.6, d.Level(2), 1e-9)
	assert.InDelta(t, 1.0, d.Level(4), 1e-9)
	assert.InDelta(t, 1.0, d.Level(40), 1e-9, "level is capped at 1")
	assert.InDelta(t, 2.0, d.SpeedFactor(4), 1e-9)
}

func TestPresetStartingSpeedFactor(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 1.0},
		{DifficultyNormal, 1.0},
		{DifficultyHard, 1.7},
		{DifficultyFixed, 1.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			ApplyCrossingPreset(&cfg, tc.preset)
			d := NewDifficultyManager(cfg.Difficulty)

			assert.InDelta(t, tc.want, d.SpeedFactor(0), 1e-9)
		})
	}

	cfg := DefaultCrossingConfig()
	ApplyCrossingPreset(&cfg, DifficultyNormal)
	d := NewDifficultyManager(cfg.Difficulty)
	assert.Greater(t, d.SpeedFactor(3), 1.0, "normal traffic speeds up with wins")
}

func TestLevelWithoutProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.5,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	})

	assert.Equal(t, 1.0, d.Level(3), "initial level is clamped")
	assert.InDelta(t, 1.5, d.SpeedFactor(3), 1e-9)
}
