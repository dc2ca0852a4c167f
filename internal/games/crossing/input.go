package crossing

import "github.com/vovakirdan/crossing/internal/core"

// HandleInput moves the player one step in the given direction.
// Each direction only moves while the player is strictly inside that
// direction's limit; anything other than a direction is ignored.
func (p *Player) HandleInput(a core.Action) {
	switch a {
	case core.ActionLeft:
		if p.X > p.cfg.MinX {
			p.X -= p.cfg.Step
		}
	case core.ActionUp:
		if p.Y > p.cfg.MinY {
			p.Y -= p.cfg.Step
		}
	case core.ActionRight:
		if p.X < p.cfg.MaxX {
			p.X += p.cfg.Step
		}
	case core.ActionDown:
		if p.Y < p.cfg.MaxY {
			p.Y += p.cfg.Step
		}
	}
}

// HandleInput forwards a direction to the player.
func (s *Session) HandleInput(a core.Action) {
	s.player.HandleInput(a)
}
