package crossing

// Update advances every entity by dt seconds.
func (s *Session) Update(dt float64) {
	for i := range s.enemies {
		s.moveEnemy(&s.enemies[i], dt)
	}
	s.player.Update(dt)
}

// moveEnemy applies x += speed*dt. An enemy that leaves the right edge
// re-enters from the left with a new speed.
func (s *Session) moveEnemy(e *Enemy, dt float64) {
	e.X += e.Speed * dt

	ec := s.cfg.Enemies
	if e.X > ec.ExitX {
		e.Speed = s.randomSpeed()
		e.X = ec.RespawnX - s.rng.Float64()*ec.RespawnX
	}
}
