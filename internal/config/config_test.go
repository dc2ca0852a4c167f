package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	assert.Equal(t, DefaultCrossingConfig(), embeddedDefault())
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultCrossingConfig().Validate())
}

func TestLoadCrossingCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("enemies:\n  count: 3\n  min_speed: 10\n  max_speed: 20\nrules:\n  countdown: 5\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadCrossing(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Enemies.Count)
	assert.Equal(t, 10.0, cfg.Enemies.MinSpeed)
	assert.Equal(t, 20.0, cfg.Enemies.MaxSpeed)
	assert.Equal(t, 5, cfg.Rules.Countdown)

	// Keys the file does not mention keep their defaults
	assert.Equal(t, 210.0, cfg.Player.StartX)
	assert.Len(t, cfg.Enemies.Sprites, 4)
	assert.Len(t, cfg.Gems.Colors, 3)
}

func TestLoadCrossingMissingCustomPath(t *testing.T) {
	_, err := LoadCrossing(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadCrossingRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemies:\n  min_speed: 100\n  max_speed: 40\n"), 0o600))

	_, err := LoadCrossing(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "speed range")
}

func TestLoadCrossingMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player: [unterminated"), 0o600))

	_, err := LoadCrossing(path)
	assert.Error(t, err)
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := DefaultCrossingConfig()
	cfg.Player.Step = 0
	cfg.Gems.Colors = nil

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player: step")
	assert.Contains(t, err.Error(), "gems: at least one color")
}

func TestApplyCrossingPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		count        int
	}{
		{DifficultyEasy, true, 0.0, 4},
		{DifficultyNormal, true, 0.0, 6},
		{DifficultyHard, true, 0.7, 8},
		{DifficultyFixed, false, 0.0, 6},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			ApplyCrossingPreset(&cfg, tc.preset)

			assert.Equal(t, tc.enabled, cfg.Difficulty.Enabled)
			assert.Equal(t, tc.initialLevel, cfg.Difficulty.InitialLevel)
			assert.Equal(t, tc.count, cfg.Enemies.Count)
			assert.NoError(t, cfg.Validate())
		})
	}
}
