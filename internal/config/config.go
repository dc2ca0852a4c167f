// Package config provides YAML-based game configuration loading and
// difficulty management for the crossing game.
package config

// CrossingConfig contains all configuration for the crossing game.
type CrossingConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Gems       GemConfig        `yaml:"gems"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield and its tile background.
type BoardConfig struct {
	Width      float64  `yaml:"width"`
	Height     float64  `yaml:"height"`
	TileWidth  float64  `yaml:"tile_width"`
	TileHeight float64  `yaml:"tile_height"`
	Columns    int      `yaml:"columns"`
	Rows       []string `yaml:"rows"` // Sprite id per tile row, top to bottom
}

// PlayerConfig defines the player's size, origin and movement limits.
// A move is allowed only while the position is strictly inside the limit
// for that direction.
type PlayerConfig struct {
	Sprite     string  `yaml:"sprite"`
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	DrawWidth  float64 `yaml:"draw_width"`
	DrawHeight float64 `yaml:"draw_height"`
	Step       float64 `yaml:"step"`
	MinX       float64 `yaml:"min_x"`
	MaxX       float64 `yaml:"max_x"`
	MinY       float64 `yaml:"min_y"`
	MaxY       float64 `yaml:"max_y"`
}

// EnemyConfig defines enemy spawning and movement.
type EnemyConfig struct {
	Count      int      `yaml:"count"`
	Sprites    []string `yaml:"sprites"`
	Width      float64  `yaml:"width"`
	Height     float64  `yaml:"height"`
	DrawWidth  float64  `yaml:"draw_width"`
	DrawHeight float64  `yaml:"draw_height"`
	MinSpeed   float64  `yaml:"min_speed"`
	MaxSpeed   float64  `yaml:"max_speed"`
	ExitX      float64  `yaml:"exit_x"`      // Enemies past this x wrap to the left
	RespawnX   float64  `yaml:"respawn_x"`   // Wrapped enemies land in [respawn_x, 0)
	SpawnX     float64  `yaml:"spawn_x"`     // Fresh enemies start in (spawn_x, 0]
	SpawnMinY  float64  `yaml:"spawn_min_y"` // Fresh enemies start in [spawn_min_y, spawn_max_y]
	SpawnMaxY  float64  `yaml:"spawn_max_y"`
	ResetX     float64  `yaml:"reset_x"` // Reset enemies start in (reset_x, 0]
	ResetMinY  float64  `yaml:"reset_min_y"`
	ResetMaxY  float64  `yaml:"reset_max_y"`
}

// GemConfig defines gem placement and pickup.
type GemConfig struct {
	Count        int              `yaml:"count"`
	Width        float64          `yaml:"width"`
	Height       float64          `yaml:"height"`
	Scale        float64          `yaml:"scale"` // Render scale around the gem's center
	PickupRadius float64          `yaml:"pickup_radius"`
	MinX         int              `yaml:"min_x"`
	MaxX         int              `yaml:"max_x"`
	MinY         int              `yaml:"min_y"`
	MaxY         int              `yaml:"max_y"`
	Colors       []GemColorConfig `yaml:"colors"`
}

// GemColorConfig binds a gem color name to its sprite.
type GemColorConfig struct {
	Name   string `yaml:"name"`
	Sprite string `yaml:"sprite"`
}

// RulesConfig defines win detection and the restart countdown.
type RulesConfig struct {
	WinY      float64 `yaml:"win_y"`     // Reaching y <= win_y wins the round
	Countdown int     `yaml:"countdown"` // First number shown by the restart countdown
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wins" or "none"
	MaxAt int    `yaml:"max_at"` // Games won at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
