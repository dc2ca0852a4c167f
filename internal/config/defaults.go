package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing configuration.
// It mirrors defaults/crossing.yaml and is used if the embedded file
// cannot be parsed.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Board: BoardConfig{
			Width:      505,
			Height:     606,
			TileWidth:  101,
			TileHeight: 83,
			Columns:    5,
			Rows: []string{
				"images/water-block.png",
				"images/stone-block.png",
				"images/stone-block.png",
				"images/stone-block.png",
				"images/grass-block.png",
				"images/grass-block.png",
			},
		},
		Player: PlayerConfig{
			Sprite:     "images/char-boy.png",
			StartX:     210,
			StartY:     440,
			Width:      50,
			Height:     50,
			DrawWidth:  101,
			DrawHeight: 171,
			Step:       20,
			MinX:       0,
			MaxX:       410,
			MinY:       -1,
			MaxY:       440,
		},
		Enemies: EnemyConfig{
			Count: 6,
			Sprites: []string{
				"images/char-cat-girl.png",
				"images/char-horn-girl.png",
				"images/char-pink-girl.png",
				"images/char-princess-girl.png",
			},
			Width:      50,
			Height:     50,
			DrawWidth:  101,
			DrawHeight: 171,
			MinSpeed:   40,
			MaxSpeed:   100,
			ExitX:      500,
			RespawnX:   -100,
			SpawnX:     -300,
			SpawnMinY:  60,
			SpawnMaxY:  360,
			ResetX:     -100,
			ResetMinY:  60,
			ResetMaxY:  225,
		},
		Gems: GemConfig{
			Count:        6,
			Width:        25,
			Height:       25,
			Scale:        0.5,
			PickupRadius: 50,
			MinX:         40,
			MaxX:         460,
			MinY:         40,
			MaxY:         420,
			Colors: []GemColorConfig{
				{Name: "blue", Sprite: "images/Gem Blue.png"},
				{Name: "green", Sprite: "images/Gem Green.png"},
				{Name: "orange", Sprite: "images/Gem Orange.png"},
			},
		},
		Rules: RulesConfig{
			WinY:      -20,
			Countdown: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
