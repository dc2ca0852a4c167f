package assets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
)

func TestEmbeddedSheetCoversDefaultConfig(t *testing.T) {
	c, err := NewCache()
	require.NoError(t, err)

	cfg := config.DefaultCrossingConfig()
	ids := append([]string{cfg.Player.Sprite}, cfg.Board.Rows...)
	ids = append(ids, cfg.Enemies.Sprites...)
	for _, gc := range cfg.Gems.Colors {
		ids = append(ids, gc.Sprite)
	}

	require.NoError(t, c.Load(ids...))
	for _, id := range ids {
		assert.NotNil(t, c.Get(id), "sprite %q should be loaded", id)
	}
}

func TestGetBeforeLoad(t *testing.T) {
	c, err := NewCache()
	require.NoError(t, err)

	assert.Nil(t, c.Get("images/char-boy.png"))
	assert.False(t, c.IsReady())
}

func TestOnReady(t *testing.T) {
	c, err := NewCache()
	require.NoError(t, err)

	calls := 0
	c.OnReady(func() { calls++ })
	assert.Equal(t, 0, calls, "callback must wait for Load")

	require.NoError(t, c.Load("images/char-boy.png", "images/stone-block.png"))
	assert.Equal(t, 1, calls)
	assert.True(t, c.IsReady())

	// Late registration runs immediately
	c.OnReady(func() { calls++ })
	assert.Equal(t, 2, calls)

	// Further loads don't replay old callbacks
	require.NoError(t, c.Load("images/grass-block.png"))
	assert.Equal(t, 2, calls)
}

func TestLoadUnknownAsset(t *testing.T) {
	c, err := NewCache()
	require.NoError(t, err)

	err = c.Load("images/char-boy.png", "images/missing.png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAsset))
	assert.NotNil(t, c.Get("images/char-boy.png"), "known ids still load")
}

func TestSpriteParsing(t *testing.T) {
	c, err := NewCacheFromYAML([]byte(`
sprites:
  - id: tile
    width: 10
    height: 5
    fill: "#x"
    color: gray
  - id: hero
    offset_x: -5
    color: orange
    art: ["ab", "cd"]
`))
	require.NoError(t, err)
	require.NoError(t, c.Load("tile", "hero"))

	tile := c.Get("tile")
	assert.True(t, tile.IsTile())
	assert.Equal(t, '#', tile.Fill)
	assert.Equal(t, core.ColorGray, tile.Color)

	hero := c.Get("hero")
	assert.False(t, hero.IsTile())
	assert.Equal(t, -5.0, hero.OffsetX)
	assert.Equal(t, []string{"ab", "cd"}, hero.Art)
	assert.Equal(t, core.ColorOrange, hero.Color)
}

func TestSheetErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "sprites: [oops"},
		{"missing id", "sprites:\n  - width: 3\n"},
		{"duplicate id", "sprites:\n  - id: a\n  - id: a\n"},
		{"bad color", "sprites:\n  - id: a\n    color: plaid\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCacheFromYAML([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}
