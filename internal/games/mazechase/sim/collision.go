package sim

import "github.com/zyedidia/generic/mapset"

// checkPlayer resolves what the player's tile collides with. The first match
// wins: pursuer, bonus item, dot, super-dot, portal.
func (s *Session) checkPlayer() {
	p := s.player
	if !p.LeftSpawn {
		return
	}
	if q := s.pursuerAt(p.Pos); q != nil {
		s.contact(q)
		return
	}
	if b := s.items.BonusAt(p.Pos); b != nil {
		s.eatBonus(b)
		return
	}
	if d := s.items.DotAt(p.Pos); d != nil {
		s.items.Consume(s.grid, d)
		s.score += d.Points
		s.emit(DotChomped{Tile: d.Tile, Points: d.Points})
		s.checkCleared()
		return
	}
	if d := s.items.SuperDotAt(p.Pos); d != nil {
		s.eatSuperDot(d)
		return
	}
	s.transit(&p.Mover, PlayerID)
}

func (s *Session) pursuerAt(tile Coord) *Pursuer {
	for _, q := range s.pursuers {
		if q.Pos == tile {
			return q
		}
	}
	return nil
}

func (s *Session) contact(q *Pursuer) {
	key := pairKey(PlayerID, q.ID)
	if s.collide.Ready(key) {
		s.collide.Set(key, s.cfg.CollisionCooldownTicks)
		s.emit(Contact{Pursuer: q.ID, Tile: q.Pos})
	}
	if s.player.Power == PowerEmpowered {
		s.pursuerEaten(q)
		return
	}
	s.playerEaten(q)
}

func (s *Session) eatBonus(b *Collectible) {
	index := s.bonusEaten
	b.Points = s.cfg.bonusReward(index)
	s.items.Consume(s.grid, b)
	s.bonusEaten++
	s.score += b.Points
	s.emit(BonusEaten{Tile: b.Tile, Label: b.Label, Points: b.Points, Index: index})
	s.checkCleared()
}

func (s *Session) eatSuperDot(d *Collectible) {
	s.items.Consume(s.grid, d)
	s.score += d.Points
	s.player.Empower(s.clock, s.cfg.EmpowerTicks, s.cfg.PoweredSpeed)
	s.emit(PowerPelletActivated{Tile: d.Tile, Points: d.Points, Until: s.player.EmpoweredUntil})
	s.scatter()
	s.checkCleared()
}

// scatter sends every roaming pursuer away from the player. The spread
// grows with a pursuer's position in the whole pack, penned ones included.
func (s *Session) scatter() {
	used := mapset.New[Coord]()
	for i, q := range s.pursuers {
		if q.State != PursuerActive {
			continue
		}
		q.scatter(s.terrain, s.player.Pos, i, s.cfg.ScatterDistance, s.cfg.ScatterTries, used)
	}
}

// playerEaten handles a fatal contact. Repeats inside DeathThrottleTicks of
// the last handled one are dropped.
func (s *Session) playerEaten(q *Pursuer) {
	if s.hasDied && s.clock-s.lastDeath < s.cfg.DeathThrottleTicks {
		return
	}
	s.hasDied = true
	s.lastDeath = s.clock

	s.lives--
	s.emit(PlayerEliminated{By: q.ID, LivesLeft: s.lives})
	s.setState(StateStopped)
	if s.lives <= 0 {
		s.setState(StateGameOver)
		s.emit(GameOver{Score: s.score, Level: s.level})
		s.log.Info("game over", "score", s.score, "level", s.level)
		return
	}

	s.player = newPlayer(s.player.Spawn, s.cfg)
	s.deathTimer = s.cfg.DeathMessageTicks
	s.setState(StatePlaying)
}

// pursuerEaten returns a caught pursuer to the pen and credits its points.
func (s *Session) pursuerEaten(q *Pursuer) {
	points := s.cfg.pursuerPoints(q.Identity)
	q.sendHome(s.terrain.home)
	s.score += points
	s.emit(PursuerEaten{ID: q.ID, Name: q.Identity.Name, Points: points})
}

// transit moves an entity resting on a ready portal to its pair and reports
// whether it did. The entity lands one tile past the pair, toward the grid
// center, when that tile is open floor, and on the pair itself otherwise.
func (s *Session) transit(m *Mover, id EntityID) bool {
	entry := m.Pos
	if m.Moving || s.grid.TileAt(entry) != TilePortal {
		return false
	}
	if !s.portals.Ready(tileKey(id, entry)) {
		return false
	}
	pair, ok := s.grid.PairPortal(entry)
	if !ok {
		return false
	}

	ticks := s.cfg.PortalCooldownTicks
	s.portals.Set(tileKey(id, entry), ticks)
	s.portals.Set(tileKey(id, pair), ticks)

	center := s.grid.Center()
	dest := pair
	eject := C(pair.Col+sign(center.Col-pair.Col), pair.Row+sign(center.Row-pair.Row))
	switch s.grid.TileAt(eject) {
	case TileEmpty, TileDot, TileSuperDot:
		dest = eject
		s.portals.Set(tileKey(id, eject), ticks)
	}

	m.Teleport(dest)
	s.emit(PortalTransit{Entity: id, From: entry, To: dest})
	return true
}
