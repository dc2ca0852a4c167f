package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/games/crossing"
	"github.com/vovakirdan/crossing/internal/storage"
)

// emptyBoardConfig has no enemies and no gems, so rounds only end by
// reaching the water.
func emptyBoardConfig() config.CrossingConfig {
	cfg := config.DefaultCrossingConfig()
	cfg.Enemies.Count = 0
	cfg.Gems.Count = 0
	return cfg
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = 1
	}
	m, err := NewModel(opts)
	require.NoError(t, err)
	return m
}

// update feeds one message and returns the new model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// startModel runs the sprite load and returns a model with a live loop.
func startModel(t *testing.T, m Model) Model {
	t.Helper()
	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.True(t, m.ready)
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelLoadsSpritesThenStarts(t *testing.T) {
	m := newTestModel(t, Options{Game: config.DefaultCrossingConfig()})
	assert.Equal(t, crossing.PhaseIdle, m.Game().Phase())
	assert.Contains(t, m.View(), "Loading")

	m = startModel(t, m)

	assert.Equal(t, crossing.PhasePlaying, m.Game().Phase())
	assert.Equal(t, 1, m.loop)
	assert.True(t, m.last.IsZero())
}

func TestModelSpriteFailureQuits(t *testing.T) {
	cfg := emptyBoardConfig()
	cfg.Board.Rows = []string{"images/missing.png"}
	cfg.Player.Sprite = "images/also-missing.png"
	cfg.Enemies.Sprites = nil
	cfg.Gems.Colors = nil

	m := newTestModel(t, Options{Game: cfg})
	m, cmd := update(t, m, m.Init()())

	require.Error(t, m.Err())
	assert.True(t, errors.Is(m.Err(), assets.ErrUnknownAsset))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelFrameDeltaTime(t *testing.T) {
	m := startModel(t, newTestModel(t, Options{Game: emptyBoardConfig()}))
	start := time.Unix(100, 0)

	m, cmd := update(t, m, FrameMsg{Loop: m.loop, At: start})
	assert.NotNil(t, cmd)
	assert.Equal(t, start, m.last)

	m, _ = update(t, m, FrameMsg{Loop: m.loop, At: start.Add(250 * time.Millisecond)})
	assert.Equal(t, start.Add(250*time.Millisecond), m.last)
}

func TestModelDropsStaleFrames(t *testing.T) {
	m := startModel(t, newTestModel(t, Options{Game: emptyBoardConfig()}))

	m, cmd := update(t, m, FrameMsg{Loop: m.loop - 1, At: time.Now()})

	assert.Nil(t, cmd)
	assert.True(t, m.last.IsZero())
}

func TestModelPause(t *testing.T) {
	m := startModel(t, newTestModel(t, Options{Game: emptyBoardConfig()}))
	loop := m.loop

	m, _ = update(t, m, keyRune('p'))
	require.True(t, m.paused)
	assert.Contains(t, m.View(), "PAUSED")

	// Frames of the old loop are dropped and input is ignored.
	m, cmd := update(t, m, FrameMsg{Loop: loop, At: time.Now()})
	assert.Nil(t, cmd)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 440.0, m.Game().Session().Player().Y)

	m, cmd = update(t, m, keyRune('p'))
	assert.False(t, m.paused)
	assert.NotNil(t, cmd)
	assert.Greater(t, m.loop, loop+1)
	assert.True(t, m.last.IsZero(), "unpausing starts a fresh time baseline")
}

func TestModelMovesPlayer(t *testing.T) {
	m := startModel(t, newTestModel(t, Options{Game: emptyBoardConfig()}))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, keyRune('a'))

	p := m.Game().Session().Player()
	assert.Equal(t, 420.0, p.Y)
	assert.Equal(t, 190.0, p.X)
}

func TestModelRoundLifecycle(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	m := startModel(t, newTestModel(t, Options{
		Game:   emptyBoardConfig(),
		Store:  store,
		Player: "alice",
	}))

	for i := 0; i < 23; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	m, cmd := update(t, m, FrameMsg{Loop: m.loop, At: time.Now()})
	require.NotNil(t, cmd)
	require.Equal(t, crossing.PhaseWon, m.Game().Phase())
	assert.Equal(t, 1, m.hud.Value(crossing.CounterGamesWon))

	rounds, err := store.RecentRounds(10)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, storage.OutcomeWon, rounds[0].Outcome)
	assert.Equal(t, "alice", rounds[0].Player)
	assert.Equal(t, 1, rounds[0].GamesWon)

	// Pause is refused during the countdown.
	m, _ = update(t, m, keyRune('p'))
	assert.False(t, m.paused)

	loop := m.loop
	for i := 0; i < 4; i++ {
		m, cmd = update(t, m, IntervalMsg(time.Now()))
		require.NotNil(t, cmd)
		require.Equal(t, crossing.PhaseWon, m.Game().Phase())
	}
	assert.Contains(t, m.canvas.Screen().String(), "YOU WON!!")

	m, cmd = update(t, m, IntervalMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.Equal(t, crossing.PhasePlaying, m.Game().Phase())
	assert.Equal(t, loop+1, m.loop)
	assert.Equal(t, 440.0, m.Game().Session().Player().Y)

	// A stray interval after the restart does nothing.
	_, cmd = update(t, m, IntervalMsg(time.Now()))
	assert.Nil(t, cmd)
}

func TestModelQuit(t *testing.T) {
	m := startModel(t, newTestModel(t, Options{Game: emptyBoardConfig()}))

	m, cmd := update(t, m, keyRune('q'))

	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelHelpToggle(t *testing.T) {
	m := startModel(t, newTestModel(t, Options{Game: emptyBoardConfig()}))
	assert.False(t, m.help.ShowAll)

	m, _ = update(t, m, keyRune('?'))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "screenshot")
}

func TestModelView(t *testing.T) {
	m := startModel(t, newTestModel(t, Options{Game: config.DefaultCrossingConfig()}))
	m, _ = update(t, m, FrameMsg{Loop: m.loop, At: time.Now()})

	view := m.View()
	assert.Contains(t, view, crossing.Title)
	assert.Contains(t, view, "Won:")
	assert.Contains(t, view, "Orange:")
	assert.Contains(t, view, "≈", "water row is drawn")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Contains(t, m.View(), "Terminal too small")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.NotContains(t, m.View(), "Terminal too small")
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m := startModel(t, newTestModel(t, Options{Game: emptyBoardConfig(), ScreenshotDir: dir}))
	m, _ = update(t, m, FrameMsg{Loop: m.loop, At: time.Now()})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "crossing_*.txt"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestSpriteIDs(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	ids := spriteIDs(cfg)

	seen := map[string]int{}
	for _, id := range ids {
		seen[id]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "%s listed twice", id)
	}

	assert.Contains(t, ids, cfg.Player.Sprite)
	assert.Contains(t, ids, "images/stone-block.png")
	assert.Contains(t, ids, "images/Gem Orange.png")
	assert.Len(t, ids, 3+1+len(cfg.Enemies.Sprites)+len(cfg.Gems.Colors))
}

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{keyRune('w'), core.ActionUp},
		{keyRune('s'), core.ActionDown},
		{keyRune('a'), core.ActionLeft},
		{keyRune('d'), core.ActionRight},
		{keyRune('p'), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{keyRune('?'), core.ActionHelp},
		{keyRune('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{keyRune('x'), core.ActionNone},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, km.MapKey(tc.msg))
		})
	}
}

func TestHUD(t *testing.T) {
	h := NewHUD()
	for _, c := range crossing.Counters {
		assert.Zero(t, h.Value(c))
	}

	h.Set(crossing.CounterGamesWon, 3)
	h.Set(crossing.CounterBlueGems, 7)
	assert.Equal(t, 3, h.Value(crossing.CounterGamesWon))

	view := h.View("")
	for _, label := range []string{"Won:", "Lost:", "Played:", "Blue:", "Green:", "Orange:"} {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "7")
	assert.NotContains(t, view, "PAUSED")
	assert.True(t, strings.Index(view, "Won:") < strings.Index(view, "Blue:"))

	assert.Contains(t, h.View("PAUSED"), "PAUSED")
}
