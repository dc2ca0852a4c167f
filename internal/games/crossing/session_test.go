package crossing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crossing/internal/config"
)

func TestNewSessionPopulation(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	s := NewSession(cfg, 7)

	require.Len(t, s.Enemies(), 6)
	require.Len(t, s.Gems(), 6)

	for _, e := range s.Enemies() {
		assert.GreaterOrEqual(t, e.Speed, 40.0)
		assert.Less(t, e.Speed, 100.0)
		assert.Contains(t, cfg.Enemies.Sprites, e.Sprite)
		assert.LessOrEqual(t, e.X, 0.0)
		assert.Greater(t, e.X, -300.0)
		assert.GreaterOrEqual(t, e.Y, 60.0)
		assert.LessOrEqual(t, e.Y, 360.0)
	}

	for _, g := range s.Gems() {
		assert.True(t, g.Visible)
		assert.Contains(t, GemColors, g.Color)
		assert.Equal(t, 25.0, g.Width)
	}

	p := s.Player()
	assert.Equal(t, 210.0, p.X)
	assert.Equal(t, 440.0, p.Y)
	assert.Equal(t, Score{}, s.Score())
}

func TestSessionReset(t *testing.T) {
	s := NewSession(config.DefaultCrossingConfig(), 99)

	speeds := make([]float64, len(s.enemies))
	colors := make([]GemColor, len(s.gems))
	for i, e := range s.enemies {
		speeds[i] = e.Speed
	}
	for i, g := range s.gems {
		colors[i] = g.Color
	}

	s.player.X, s.player.Y = 30, 30
	for i := range s.gems {
		s.gems[i].Visible = false
	}
	s.score = Score{GamesWon: 2, GamesLost: 1, BlueGems: 3}

	s.Reset()

	assert.Equal(t, 210.0, s.player.X)
	assert.Equal(t, 440.0, s.player.Y)

	for i, e := range s.enemies {
		assert.Equal(t, speeds[i], e.Speed, "reset must not redraw speeds")
		assert.LessOrEqual(t, e.X, 0.0)
		assert.Greater(t, e.X, -100.0)
		assert.GreaterOrEqual(t, e.Y, 60.0)
		assert.LessOrEqual(t, e.Y, 225.0)
		assert.Equal(t, math.Trunc(e.Y), e.Y, "reset y is a whole number")
	}

	for i, g := range s.gems {
		assert.True(t, g.Visible)
		assert.Equal(t, colors[i], g.Color, "reset must not recolor gems")
		assert.GreaterOrEqual(t, g.X, 40.0)
		assert.LessOrEqual(t, g.X, 460.0)
		assert.GreaterOrEqual(t, g.Y, 40.0)
		assert.LessOrEqual(t, g.Y, 420.0)
	}

	assert.Equal(t, Score{GamesWon: 2, GamesLost: 1, BlueGems: 3}, s.score, "reset keeps the score")
}

func TestSessionDeterminism(t *testing.T) {
	cfg := config.DefaultCrossingConfig()

	run := func() *Session {
		s := NewSession(cfg, 12345)
		s.Reset()
		for i := 0; i < 500; i++ {
			s.Update(0.05)
		}
		return s
	}

	a, b := run(), run()
	assert.Equal(t, a.enemies, b.enemies)
	assert.Equal(t, a.gems, b.gems)
}

func TestGemColorNames(t *testing.T) {
	for _, c := range GemColors {
		parsed, ok := ParseGemColor(c.String())
		require.True(t, ok)
		assert.Equal(t, c, parsed)
	}

	_, ok := ParseGemColor("purple")
	assert.False(t, ok)
}

func TestScoreGems(t *testing.T) {
	var s Score
	assert.Equal(t, 1, s.addGem(GemOrange))
	assert.Equal(t, 2, s.addGem(GemOrange))
	assert.Equal(t, 1, s.addGem(GemBlue))

	assert.Equal(t, 2, s.Gems(GemOrange))
	assert.Equal(t, 1, s.Gems(GemBlue))
	assert.Equal(t, 0, s.Gems(GemGreen))

	s.GamesWon, s.GamesLost = 3, 4
	assert.Equal(t, 7, s.GamesPlayed())

	s.clearGems()
	assert.Equal(t, Score{GamesWon: 3, GamesLost: 4}, s)
}
