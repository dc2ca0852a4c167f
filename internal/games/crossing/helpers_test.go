package crossing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/config"
)

type drawCall struct {
	id         string
	x, y, w, h float64
}

type textCall struct {
	text  string
	x, y  float64
	style TextStyle
}

// fakeSurface records everything drawn on it.
type fakeSurface struct {
	draws    []drawCall
	texts    []textCall
	clears   int
	saves    int
	restores int
}

func (f *fakeSurface) Clear() {
	f.clears++
	f.draws = nil
	f.texts = nil
}

func (f *fakeSurface) DrawImage(s *assets.Sprite, x, y, w, h float64) {
	f.draws = append(f.draws, drawCall{id: s.ID, x: x, y: y, w: w, h: h})
}

func (f *fakeSurface) DrawText(text string, x, y float64, style TextStyle) {
	f.texts = append(f.texts, textCall{text: text, x: x, y: y, style: style})
}

func (f *fakeSurface) SaveFrame()    { f.saves++ }
func (f *fakeSurface) RestoreFrame() { f.restores++ }

func (f *fakeSurface) lastText() string {
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1].text
}

// fakeReadout keeps the latest value of every counter.
type fakeReadout map[Counter]int

func (r fakeReadout) Set(c Counter, v int) { r[c] = v }

func loadedCache(t *testing.T, cfg config.CrossingConfig) *assets.Cache {
	t.Helper()

	c, err := assets.NewCache()
	require.NoError(t, err)

	ids := append([]string{cfg.Player.Sprite}, cfg.Board.Rows...)
	ids = append(ids, cfg.Enemies.Sprites...)
	for _, gc := range cfg.Gems.Colors {
		ids = append(ids, gc.Sprite)
	}
	require.NoError(t, c.Load(ids...))
	return c
}

// newTestGame builds an initialized game on the default config.
func newTestGame(t *testing.T, seed int64) (*Game, *fakeSurface, fakeReadout) {
	t.Helper()

	cfg := config.DefaultCrossingConfig()
	surface := &fakeSurface{}
	readout := fakeReadout{}
	g := New(cfg, seed, surface, loadedCache(t, cfg), readout)
	g.Init()
	return g, surface, readout
}

// emptyBoard removes every enemy and gem from the session.
func emptyBoard(s *Session) {
	s.enemies = nil
	s.gems = nil
}
