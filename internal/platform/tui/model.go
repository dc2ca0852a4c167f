package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/games/crossing"
	"github.com/vovakirdan/crossing/internal/storage"
)

// hudRows is the number of lines drawn around the board: title, HUD and help.
const hudRows = 3

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// Options configures a game model.
type Options struct {
	Game    config.CrossingConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // May be nil; rounds are then not recorded
	Logger  *log.Logger    // May be nil
	Player  string         // Recorded with every round; empty for local play

	// ScreenshotDir is where ctrl+s writes the board as text.
	// Screenshots are disabled when empty.
	ScreenshotDir string
}

type assetsReadyMsg struct{ err error } // err lists sprites that were skipped
type assetsFailedMsg struct{ err error }

// Model is the Bubble Tea model that runs one crossing game.
type Model struct {
	opts   Options
	logger *log.Logger
	game   *crossing.Game
	canvas *Canvas
	hud    *HUD
	cache  *assets.Cache
	keys   KeyMap
	help   help.Model

	loop     int       // Id of the live frame chain
	last     time.Time // Time of the previous frame, zero at loop start
	ready    bool
	paused   bool
	quitting bool
	width    int
	height   int
	err      error
}

// NewModel creates a model. Sprites are loaded when the program starts.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cache, err := assets.NewCache()
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	canvas := NewCanvas(opts.Game.Board)
	hud := NewHUD()

	return Model{
		opts:   opts,
		logger: logger,
		game:   crossing.New(opts.Game, opts.Runtime.Seed, canvas, cache, hud),
		canvas: canvas,
		hud:    hud,
		cache:  cache,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}, nil
}

// spriteIDs lists every sprite the config refers to, without duplicates.
func spriteIDs(cfg config.CrossingConfig) []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for _, id := range cfg.Board.Rows {
		add(id)
	}
	add(cfg.Player.Sprite)
	for _, id := range cfg.Enemies.Sprites {
		add(id)
	}
	for _, gc := range cfg.Gems.Colors {
		add(gc.Sprite)
	}
	return ids
}

// loadAssets loads the sprites and reports whether the cache became ready.
func loadAssets(cache *assets.Cache, ids []string) tea.Cmd {
	return func() tea.Msg {
		ready := false
		cache.OnReady(func() { ready = true })

		err := cache.Load(ids...)
		if !ready {
			if err == nil {
				err = errors.New("no sprites to load")
			}
			return assetsFailedMsg{err: err}
		}
		return assetsReadyMsg{err: err}
	}
}

// Init starts loading sprites. The frame loop starts once they are ready.
func (m Model) Init() tea.Cmd {
	return loadAssets(m.cache, spriteIDs(m.opts.Game))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case assetsReadyMsg:
		if msg.err != nil {
			m.logger.Warn("some sprites are missing", "error", msg.err)
		}
		m.ready = true
		m.game.Init()
		return m, m.startLoop()

	case assetsFailedMsg:
		m.err = fmt.Errorf("tui: cannot load sprites: %w", msg.err)
		m.quitting = true
		return m, tea.Quit

	case FrameMsg:
		return m.handleFrame(msg)

	case IntervalMsg:
		return m.handleInterval()
	}

	return m, nil
}

// startLoop starts a new frame chain with a fresh time baseline. Frames
// still in flight from an older chain are dropped.
func (m *Model) startLoop() tea.Cmd {
	m.loop++
	m.last = time.Time{}
	return frameCmd(m.loop, m.opts.Runtime.TickRate)
}

// stopLoop cancels the live frame chain.
func (m *Model) stopLoop() {
	m.loop++
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionPause:
		// Only a running round can be paused; the countdown keeps going.
		if !m.ready || m.game.Phase() != crossing.PhasePlaying {
			return m, nil
		}
		m.paused = !m.paused
		if m.paused {
			m.stopLoop()
			return m, nil
		}
		return m, m.startLoop()

	default:
		if !m.paused {
			m.game.HandleInput(action)
		}
	}

	return m, nil
}

// handleFrame runs one animation frame.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Loop != m.loop || m.paused {
		return m, nil
	}

	dt := 0.0
	if !m.last.IsZero() {
		dt = msg.At.Sub(m.last).Seconds()
	}
	m.last = msg.At

	res := m.game.Frame(dt)
	if res.Ended {
		m.recordRound(res.Round)
		return m, intervalCmd()
	}
	return m, frameCmd(m.loop, m.opts.Runtime.TickRate)
}

// handleInterval advances the restart countdown.
func (m Model) handleInterval() (tea.Model, tea.Cmd) {
	if m.game.Tick() {
		return m, m.startLoop()
	}

	switch m.game.Phase() {
	case crossing.PhaseWon, crossing.PhaseLost:
		return m, intervalCmd()
	}
	return m, nil
}

// recordRound logs a finished round and stores it.
func (m Model) recordRound(r crossing.Round) {
	outcome := storage.OutcomeLost
	if r.Outcome == crossing.PhaseWon {
		outcome = storage.OutcomeWon
	}

	m.logger.Info("round finished",
		"outcome", outcome,
		"blue", r.Gems[0],
		"green", r.Gems[1],
		"orange", r.Gems[2],
		"won", r.GamesWon,
		"lost", r.GamesLost,
		"elapsed", r.Elapsed.Round(time.Millisecond),
		"player", m.opts.Player,
	)

	if m.opts.Store == nil {
		return
	}

	_, err := m.opts.Store.SaveRound(storage.RoundRecord{
		Outcome:   outcome,
		Blue:      r.Gems[0],
		Green:     r.Gems[1],
		Orange:    r.Gems[2],
		GamesWon:  r.GamesWon,
		GamesLost: r.GamesLost,
		Duration:  r.Elapsed,
		Player:    m.opts.Player,
	})
	if err != nil {
		// Best-effort save, the game continues regardless
		m.logger.Warn("could not save round", "error", err)
	}
}

// saveScreenshot writes the board as plain text.
func (m Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", crossing.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(m.opts.ScreenshotDir, filename)
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the board, the HUD and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return noticeStyle.Render("Loading sprites...")
	}

	screen := m.canvas.Screen()
	needW, needH := screen.Width(), screen.Height()+hudRows
	if m.width > 0 && m.height > 0 && (m.width < needW || m.height < needH) {
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, noticeStyle.Render(msg))
	}

	tag := ""
	if m.paused {
		tag = "PAUSED"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(crossing.Title),
		RenderScreen(screen),
		m.hud.View(tag),
		helpStyle.Render(m.help.View(m.keys)),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Game returns the running game.
func (m Model) Game() *crossing.Game {
	return m.game
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
