package crossing

import (
	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
)

// GemColor identifies which score counter a gem feeds.
type GemColor int

const (
	GemBlue GemColor = iota
	GemGreen
	GemOrange
)

// GemColors lists every gem color in display order.
var GemColors = []GemColor{GemBlue, GemGreen, GemOrange}

// String returns the color's config name.
func (c GemColor) String() string {
	switch c {
	case GemBlue:
		return "blue"
	case GemGreen:
		return "green"
	case GemOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// ParseGemColor maps a config color name to a GemColor.
func ParseGemColor(name string) (GemColor, bool) {
	for _, c := range GemColors {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// Player is the sprite the user steers across the board.
type Player struct {
	X, Y   float64
	Width  float64
	Height float64
	Sprite string
	cfg    config.PlayerConfig
}

func newPlayer(cfg config.PlayerConfig) Player {
	p := Player{
		Width:  cfg.Width,
		Height: cfg.Height,
		Sprite: cfg.Sprite,
		cfg:    cfg,
	}
	p.SetInitialState()
	return p
}

// Rect returns the player's collision box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// SetInitialState moves the player back to its origin.
func (p *Player) SetInitialState() {
	p.X = p.cfg.StartX
	p.Y = p.cfg.StartY
}

// Update is the player's per-frame hook. The player has no velocity: it
// only moves through HandleInput, so elapsed time leaves it where it is.
func (p *Player) Update(dt float64) {}

// Enemy crosses the board from left to right at its own speed.
type Enemy struct {
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64
	Sprite string
}

// Rect returns the enemy's collision box.
func (e *Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Gem is a collectible that disappears once picked up.
type Gem struct {
	X, Y    float64
	Width   float64
	Height  float64
	Color   GemColor
	Sprite  string
	Visible bool
}

// Score holds the counters for the whole process lifetime.
type Score struct {
	GamesWon   int
	GamesLost  int
	BlueGems   int
	GreenGems  int
	OrangeGems int
}

// GamesPlayed returns the number of finished rounds.
func (s Score) GamesPlayed() int {
	return s.GamesWon + s.GamesLost
}

// Gems returns the counter for one gem color.
func (s Score) Gems(c GemColor) int {
	switch c {
	case GemBlue:
		return s.BlueGems
	case GemGreen:
		return s.GreenGems
	case GemOrange:
		return s.OrangeGems
	}
	return 0
}

// addGem increments the counter for c and returns its new value.
func (s *Score) addGem(c GemColor) int {
	switch c {
	case GemBlue:
		s.BlueGems++
		return s.BlueGems
	case GemGreen:
		s.GreenGems++
		return s.GreenGems
	case GemOrange:
		s.OrangeGems++
		return s.OrangeGems
	}
	return 0
}

// clearGems zeroes the three gem counters.
func (s *Score) clearGems() {
	s.BlueGems = 0
	s.GreenGems = 0
	s.OrangeGems = 0
}
