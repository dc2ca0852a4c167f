package crossing

import (
	"time"

	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
)

// ID is the identifier used for score storage and logs.
const ID = "crossing"

// Title is the display name of the game.
const Title = "Gem Crossing"

// Phase is the state of the frame loop.
type Phase int

const (
	PhaseIdle    Phase = iota // Created, Init not called yet
	PhasePlaying              // Frames are running
	PhaseWon                  // Round won, countdown running
	PhaseLost                 // Round lost, countdown running
)

// String returns a lower-case name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Counter names one of the numeric score readouts.
type Counter int

const (
	CounterGamesWon Counter = iota
	CounterGamesLost
	CounterBlueGems
	CounterGreenGems
	CounterOrangeGems
	CounterGamesPlayed
)

// Counters lists every readout in display order.
var Counters = []Counter{
	CounterGamesWon,
	CounterGamesLost,
	CounterGamesPlayed,
	CounterBlueGems,
	CounterGreenGems,
	CounterOrangeGems,
}

// String returns the readout label.
func (c Counter) String() string {
	switch c {
	case CounterGamesWon:
		return "Won"
	case CounterGamesLost:
		return "Lost"
	case CounterBlueGems:
		return "Blue"
	case CounterGreenGems:
		return "Green"
	case CounterOrangeGems:
		return "Orange"
	case CounterGamesPlayed:
		return "Played"
	default:
		return "?"
	}
}

func gemCounter(c GemColor) Counter {
	switch c {
	case GemGreen:
		return CounterGreenGems
	case GemOrange:
		return CounterOrangeGems
	default:
		return CounterBlueGems
	}
}

// Readout receives score counter values whenever they change.
type Readout interface {
	Set(c Counter, value int)
}

type noopReadout struct{}

func (noopReadout) Set(Counter, int) {}

// Round describes a finished round.
type Round struct {
	Outcome   Phase  // PhaseWon or PhaseLost
	Gems      [3]int // Blue, green and orange counters when the round ended
	GamesWon  int
	GamesLost int
	Elapsed   time.Duration // Play time covered by frames
}

// FrameResult is returned by Game.Frame.
type FrameResult struct {
	Picked []GemColor
	Ended  bool
	Round  Round // Valid when Ended
}

// Game drives a Session: it runs frames, detects the end of a round and
// runs the restart countdown.
type Game struct {
	session   *Session
	surface   Surface
	res       Resources
	readout   Readout
	phase     Phase
	countdown Countdown
	elapsed   float64
}

// New creates a game. Call Init before the first frame.
// readout may be nil.
func New(cfg config.CrossingConfig, seed int64, surface Surface, res Resources, readout Readout) *Game {
	if readout == nil {
		readout = noopReadout{}
	}
	g := &Game{
		session:   NewSession(cfg, seed),
		surface:   surface,
		res:       res,
		readout:   readout,
		countdown: NewCountdown(cfg.Rules.Countdown),
	}
	g.publishAll()
	return g
}

// Init resets the board and (re)opens the frame loop.
func (g *Game) Init() {
	g.session.Reset()
	g.phase = PhasePlaying
	g.elapsed = 0
}

// Frame runs one animation frame: update, collisions, render, win check.
// It does nothing unless the game is playing.
func (g *Game) Frame(dt float64) FrameResult {
	if g.phase != PhasePlaying {
		return FrameResult{}
	}
	if dt < 0 {
		dt = 0
	}

	g.session.Update(dt)
	g.elapsed += dt

	hits := g.session.CheckCollisions()
	for _, c := range hits.Picked {
		g.readout.Set(gemCounter(c), g.session.score.Gems(c))
	}

	g.render()

	res := FrameResult{Picked: hits.Picked}
	switch {
	case hits.Hit:
		res.Ended = true
		res.Round = g.endRound(PhaseLost, hits.Haul)
	case g.session.Won():
		res.Ended = true
		res.Round = g.endRound(PhaseWon, g.session.recordWin())
	}
	return res
}

// endRound halts the loop, shows the outcome and arms the countdown.
func (g *Game) endRound(outcome Phase, haul [3]int) Round {
	g.phase = outcome
	g.publishAll()

	if outcome == PhaseWon {
		g.drawMessage(wonText, wonStyle)
	} else {
		g.drawMessage(lostText, lostStyle)
	}
	g.surface.SaveFrame()
	g.countdown.Start()

	return Round{
		Outcome:   outcome,
		Gems:      haul,
		GamesWon:  g.session.score.GamesWon,
		GamesLost: g.session.score.GamesLost,
		Elapsed:   time.Duration(g.elapsed * float64(time.Second)),
	}
}

// Tick advances the restart countdown by one interval. It returns true when
// the countdown finished and the game was reinitialized; the caller should
// then restart its frame loop.
func (g *Game) Tick() bool {
	if !g.countdown.Active() {
		return false
	}

	n, done := g.countdown.Tick()
	if done {
		g.Init()
		return true
	}

	g.surface.RestoreFrame()
	g.drawCounter(n)
	return false
}

// HandleInput applies a key press. Input is ignored during the countdown.
func (g *Game) HandleInput(a core.Action) {
	if g.phase != PhasePlaying || !a.IsMove() {
		return
	}
	g.session.HandleInput(a)
}

// Phase returns the current loop phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) publishAll() {
	sc := g.session.score
	g.readout.Set(CounterGamesWon, sc.GamesWon)
	g.readout.Set(CounterGamesLost, sc.GamesLost)
	g.readout.Set(CounterGamesPlayed, sc.GamesPlayed())
	g.readout.Set(CounterBlueGems, sc.BlueGems)
	g.readout.Set(CounterGreenGems, sc.GreenGems)
	g.readout.Set(CounterOrangeGems, sc.OrangeGems)
}
