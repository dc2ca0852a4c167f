// Package crossing implements the gem-crossing arcade game.
// The player walks from the grass at the bottom of the board to the water at
// the top, dodging enemies and picking up gems on the way. The package holds
// pure game logic; drawing goes through the Surface and Resources interfaces
// and the platform drives frames and the restart countdown.
package crossing

import (
	"math/rand"

	"github.com/vovakirdan/crossing/internal/config"
)

// Session owns every entity of one running game plus the score counters.
type Session struct {
	cfg        config.CrossingConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	player  Player
	enemies []Enemy
	gems    []Gem
	score   Score
}

// NewSession creates the player, enemies and gems for a game.
// Enemy sprites, speeds and gem colors are drawn once here and survive
// later resets.
func NewSession(cfg config.CrossingConfig, seed int64) *Session {
	s := &Session{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		player:     newPlayer(cfg.Player),
	}

	s.enemies = make([]Enemy, cfg.Enemies.Count)
	for i := range s.enemies {
		s.enemies[i] = s.newEnemy()
	}

	s.gems = make([]Gem, cfg.Gems.Count)
	for i := range s.gems {
		s.gems[i] = s.newGem()
	}

	return s
}

func (s *Session) newEnemy() Enemy {
	ec := s.cfg.Enemies
	return Enemy{
		X:      s.rng.Float64() * ec.SpawnX,
		Y:      s.randInt(int(ec.SpawnMinY), int(ec.SpawnMaxY)),
		Width:  ec.Width,
		Height: ec.Height,
		Speed:  s.randomSpeed(),
		Sprite: ec.Sprites[s.rng.Intn(len(ec.Sprites))],
	}
}

func (s *Session) newGem() Gem {
	gc := s.cfg.Gems
	choice := gc.Colors[s.rng.Intn(len(gc.Colors))]
	color, _ := ParseGemColor(choice.Name)
	return Gem{
		Width:   gc.Width,
		Height:  gc.Height,
		Color:   color,
		Sprite:  choice.Sprite,
		Visible: true,
	}
}

// Reset puts the board back into its starting layout: the player at its
// origin, enemies back off the left edge, gems at fresh random locations
// and visible again. Score counters are untouched.
func (s *Session) Reset() {
	s.player.SetInitialState()

	ec := s.cfg.Enemies
	for i := range s.enemies {
		e := &s.enemies[i]
		e.X = s.rng.Float64() * ec.ResetX
		e.Y = s.randInt(int(ec.ResetMinY), int(ec.ResetMaxY))
	}

	gc := s.cfg.Gems
	for i := range s.gems {
		g := &s.gems[i]
		g.X = s.randInt(gc.MinX, gc.MaxX)
		g.Y = s.randInt(gc.MinY, gc.MaxY)
		g.Visible = true
	}
}

// randomSpeed draws an enemy speed uniformly from [min_speed, max_speed),
// scaled by the current difficulty.
func (s *Session) randomSpeed() float64 {
	ec := s.cfg.Enemies
	speed := ec.MinSpeed + s.rng.Float64()*(ec.MaxSpeed-ec.MinSpeed)
	return speed * s.difficulty.SpeedFactor(s.score.GamesWon)
}

// randInt draws an integer uniformly from [min, max].
func (s *Session) randInt(min, max int) float64 {
	if max <= min {
		return float64(min)
	}
	return float64(min + s.rng.Intn(max-min+1))
}

// Player returns the player.
func (s *Session) Player() Player {
	return s.player
}

// Enemies returns the live enemy slice.
func (s *Session) Enemies() []Enemy {
	return s.enemies
}

// Gems returns the live gem slice.
func (s *Session) Gems() []Gem {
	return s.gems
}

// Score returns a copy of the score counters.
func (s *Session) Score() Score {
	return s.score
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.CrossingConfig {
	return s.cfg
}
