package crossing

// Collisions reports what CheckCollisions found in one frame.
type Collisions struct {
	Picked   []GemColor // Colors of gems collected this frame, in gem order
	Hit      bool       // Whether an enemy touched the player
	HitIndex int        // Index of the first enemy hit, -1 if none
	Haul     [3]int     // Gem counters just before a hit cleared them
}

// CheckCollisions runs the gem pickup check and then the enemy check.
//
// A gem counts when the player's bottom-right corner is within the pickup
// radius of the gem's position on both axes; it is hidden until the next
// reset. The enemy check uses AABB overlap with touching edges counting as a
// hit and stops at the first enemy found. A hit adds a loss and clears the
// gem counters.
func (s *Session) CheckCollisions() Collisions {
	res := Collisions{HitIndex: -1}
	res.Picked = s.collectGems()

	if i := s.firstHit(); i >= 0 {
		res.Hit = true
		res.HitIndex = i
		res.Haul = s.recordLoss()
	}
	return res
}

func (s *Session) collectGems() []GemColor {
	var picked []GemColor
	player := s.player.Rect()
	radius := s.cfg.Gems.PickupRadius

	for i := range s.gems {
		g := &s.gems[i]
		if !player.Within(g.X, g.Y, radius) {
			continue
		}
		if g.Visible {
			s.score.addGem(g.Color)
			picked = append(picked, g.Color)
		}
		g.Visible = false
	}
	return picked
}

// firstHit returns the index of the first enemy overlapping the player, or -1.
func (s *Session) firstHit() int {
	player := s.player.Rect()
	for i := range s.enemies {
		if player.Overlaps(s.enemies[i].Rect()) {
			return i
		}
	}
	return -1
}

// recordLoss counts a lost game and clears the gem counters, returning the
// values they held.
func (s *Session) recordLoss() [3]int {
	haul := s.haul()
	s.score.GamesLost++
	s.score.clearGems()
	return haul
}

// Won reports whether the player has reached the winning row.
func (s *Session) Won() bool {
	return s.player.Y <= s.cfg.Rules.WinY
}

// recordWin counts a won game. Gem counters carry over into the next round.
func (s *Session) recordWin() [3]int {
	s.score.GamesWon++
	return s.haul()
}

func (s *Session) haul() [3]int {
	return [3]int{s.score.BlueGems, s.score.GreenGems, s.score.OrangeGems}
}
