package sim

import "math"

// WalkRule reports whether an entity standing on from may step onto to.
type WalkRule func(g *Grid, from, to Coord) bool

// Mover is the motion state shared by every movable entity.
//
// Pos is authoritative for logic and collision. X and Y are the pixel
// position used only for render interpolation. Pos changes only on the
// tick the pixel position snaps onto the destination tile's origin.
type Mover struct {
	Pos     Coord
	Last    Coord // tile most recently departed from
	HasLast bool
	X, Y    float64
	Dir     Dir
	Next    Dir // buffered turn request, DirNone when empty
	Moving  bool
	Speed   float64

	tile float64
	dest Coord
}

func newMover(at Coord, tileSize, speed float64) Mover {
	return Mover{
		Pos:   at,
		X:     float64(at.Col) * tileSize,
		Y:     float64(at.Row) * tileSize,
		Speed: speed,
		tile:  tileSize,
	}
}

// Queue buffers a single turn request, replacing any pending one.
func (m *Mover) Queue(d Dir) {
	m.Next = d
}

// Target returns the tile being entered while Moving, otherwise Pos.
func (m *Mover) Target() Coord {
	if m.Moving {
		return m.dest
	}
	return m.Pos
}

// Step advances the mover by one tick and reports whether it arrived on a
// new tile this tick.
func (m *Mover) Step(g *Grid, rule WalkRule) bool {
	if !m.Moving {
		if m.Next != DirNone && rule(g, m.Pos, m.Pos.Step(m.Next)) {
			m.Dir = m.Next
			m.Next = DirNone
		}
		if m.Dir == DirNone || !rule(g, m.Pos, m.Pos.Step(m.Dir)) {
			return false
		}
		m.dest = m.Pos.Step(m.Dir)
		m.Moving = true
	}

	tx := float64(m.dest.Col) * m.tile
	ty := float64(m.dest.Row) * m.tile
	dx, dy := tx-m.X, ty-m.Y
	dist := math.Hypot(dx, dy)
	if dist <= m.Speed {
		m.X, m.Y = tx, ty
		m.Last, m.HasLast = m.Pos, true
		m.Pos = m.dest
		m.Moving = false
		return true
	}
	m.X += dx / dist * m.Speed
	m.Y += dy / dist * m.Speed
	return false
}

// Teleport places the mover on c at rest. Its facing is kept.
func (m *Mover) Teleport(c Coord) {
	m.Pos = c
	m.dest = c
	m.X = float64(c.Col) * m.tile
	m.Y = float64(c.Row) * m.tile
	m.Moving = false
}

// PlayerRule is the player's walkability rule.
func PlayerRule(g *Grid, from, to Coord) bool {
	if !g.InBounds(to) {
		return false
	}
	switch g.TileAt(to) {
	case TileWall, TileCorner, TileGhostDoor, TilePortalBlocker:
		return false
	case TilePortal:
		return g.TileAt(from) != TilePortal
	}
	return true
}

// PursuerRule returns the walkability rule for a pursuer in the given state.
func PursuerRule(state PursuerState) WalkRule {
	if state == PursuerPenned {
		return penRule
	}
	return roamRule
}

func penRule(g *Grid, _, to Coord) bool {
	return g.InBounds(to) && g.TileAt(to) == TileGhostSpawn
}

func roamRule(g *Grid, _, to Coord) bool {
	if !g.InBounds(to) {
		return false
	}
	return roamable(g.TileAt(to))
}

func roamable(k TileKind) bool {
	switch k {
	case TileEmpty, TileDot, TileSuperDot, TileGhostDoor, TileGhostSpawn, TileTunnel, TilePortal:
		return true
	}
	return false
}
