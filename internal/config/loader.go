package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrossing loads the crossing game configuration.
// Search order: customPath -> ~/.crossing/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default.
// Files only need to contain the keys they override.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	base := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseOver(base, data)
		if err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return base, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("crossing.yaml"), filepath.Join("configs", "crossing.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseOver(base, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// embeddedDefault parses the embedded default YAML, falling back to the
// hardcoded defaults if that fails.
func embeddedDefault() CrossingConfig {
	cfg, err := parseOver(DefaultCrossingConfig(), defaultCrossingYAML)
	if err != nil {
		return DefaultCrossingConfig()
	}
	return cfg
}

// parseOver decodes data on top of a copy of base.
func parseOver(base CrossingConfig, data []byte) (CrossingConfig, error) {
	cfg := base
	// Copy slices so the result never shares backing arrays with base.
	cfg.Board.Rows = append([]string(nil), base.Board.Rows...)
	cfg.Enemies.Sprites = append([]string(nil), base.Enemies.Sprites...)
	cfg.Gems.Colors = append([]GemColorConfig(nil), base.Gems.Colors...)

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crossing", "configs", filename)
}

// Validate checks that the configuration describes a playable board.
func (c CrossingConfig) Validate() error {
	var errs []error

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, errors.New("board: width and height must be positive"))
	}
	if c.Board.TileWidth <= 0 || c.Board.TileHeight <= 0 {
		errs = append(errs, errors.New("board: tile size must be positive"))
	}
	if len(c.Board.Rows) == 0 || c.Board.Columns <= 0 {
		errs = append(errs, errors.New("board: needs at least one row and column"))
	}
	if c.Player.Step <= 0 {
		errs = append(errs, errors.New("player: step must be positive"))
	}
	if c.Player.MinX >= c.Player.MaxX || c.Player.MinY >= c.Player.MaxY {
		errs = append(errs, errors.New("player: movement limits are inverted"))
	}
	if c.Enemies.Count < 0 {
		errs = append(errs, errors.New("enemies: count must not be negative"))
	}
	if c.Enemies.Count > 0 && len(c.Enemies.Sprites) == 0 {
		errs = append(errs, errors.New("enemies: at least one sprite is required"))
	}
	if c.Enemies.MinSpeed <= 0 || c.Enemies.MaxSpeed <= c.Enemies.MinSpeed {
		errs = append(errs, fmt.Errorf("enemies: speed range [%g, %g) is empty", c.Enemies.MinSpeed, c.Enemies.MaxSpeed))
	}
	if c.Enemies.SpawnMaxY < c.Enemies.SpawnMinY || c.Enemies.ResetMaxY < c.Enemies.ResetMinY {
		errs = append(errs, errors.New("enemies: spawn ranges are inverted"))
	}
	if c.Gems.Count < 0 {
		errs = append(errs, errors.New("gems: count must not be negative"))
	}
	if c.Gems.Count > 0 && len(c.Gems.Colors) == 0 {
		errs = append(errs, errors.New("gems: at least one color is required"))
	}
	for _, gc := range c.Gems.Colors {
		switch gc.Name {
		case "blue", "green", "orange":
		default:
			errs = append(errs, fmt.Errorf("gems: unknown color %q", gc.Name))
		}
	}
	if c.Gems.MaxX < c.Gems.MinX || c.Gems.MaxY < c.Gems.MinY {
		errs = append(errs, errors.New("gems: placement area is inverted"))
	}
	if c.Rules.Countdown < 0 {
		errs = append(errs, errors.New("rules: countdown must not be negative"))
	}

	return errors.Join(errs...)
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "wins"
		}
	}

	// Adjust traffic based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Count = 4
		cfg.Enemies.MinSpeed = 30
		cfg.Enemies.MaxSpeed = 70
	case DifficultyHard:
		cfg.Enemies.Count = 8
		cfg.Enemies.MinSpeed = 60
		cfg.Enemies.MaxSpeed = 140
	}
}
