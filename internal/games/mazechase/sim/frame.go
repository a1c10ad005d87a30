package sim

import (
	"fmt"
	"strings"
)

// Sprite is the render directive for one entity.
type Sprite struct {
	Kind      EntityKind
	ID        EntityID
	Name      string
	Color     string
	Tile      Coord
	X, Y      float64
	Facing    Dir
	Moving    bool
	MouthOpen bool
	Empowered bool
	State     PursuerState // pursuers only
}

// ItemSprite is the render directive for one collectible.
type ItemSprite struct {
	Collectible
	Scale float64
}

// Frame is everything a renderer needs to draw the current tick.
type Frame struct {
	Width, Height int
	Tiles         [][]TileKind
	Player        Sprite
	Pursuers      []Sprite
	Items         []ItemSprite

	State        State
	Score        int
	Lives        int
	Level        int
	DeathMessage bool
	PowerLeft    int // ticks of empowerment remaining
	Clock        int
}

// Frame builds the render directives for the current state.
func (s *Session) Frame() Frame {
	p := s.player
	f := Frame{
		Width:  s.grid.Width(),
		Height: s.grid.Height(),
		Tiles:  s.grid.Rows(),
		Player: Sprite{
			Kind:      EntityPlayer,
			ID:        PlayerID,
			Name:      "player",
			Tile:      p.Pos,
			X:         p.X,
			Y:         p.Y,
			Facing:    p.Dir,
			Moving:    p.Moving,
			MouthOpen: p.MouthOpen,
			Empowered: p.Power == PowerEmpowered,
		},
		State:        s.state,
		Score:        s.score,
		Lives:        s.lives,
		Level:        s.level,
		DeathMessage: s.deathTimer > 0,
		Clock:        s.clock,
	}
	if p.Power == PowerEmpowered {
		f.PowerLeft = max(0, p.EmpoweredUntil-s.clock)
	}
	for _, q := range s.pursuers {
		f.Pursuers = append(f.Pursuers, Sprite{
			Kind:   EntityPursuer,
			ID:     q.ID,
			Name:   q.Identity.Name,
			Color:  q.Identity.Color,
			Tile:   q.Pos,
			X:      q.X,
			Y:      q.Y,
			Facing: q.Dir,
			Moving: q.Moving,
			State:  q.State,
		})
	}
	for _, it := range s.items.Items() {
		f.Items = append(f.Items, ItemSprite{Collectible: it, Scale: s.items.Scale(it)})
	}
	return f
}

// Snapshot is a comparable digest of the session. Two sessions driven by
// the same seed and inputs produce equal snapshots.
type Snapshot struct {
	Clock      int
	State      State
	Score      int
	Lives      int
	Level      int
	BonusEaten int
	Player     Coord
	Power      PowerState
	Remaining  int
	Pursuers   string
}

// Snapshot summarizes the session.
func (s *Session) Snapshot() Snapshot {
	var b strings.Builder
	for i, q := range s.pursuers {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%d:%s@%s/%s", q.ID, q.Identity.Name, q.Pos, q.State)
	}
	return Snapshot{
		Clock:      s.clock,
		State:      s.state,
		Score:      s.score,
		Lives:      s.lives,
		Level:      s.level,
		BonusEaten: s.bonusEaten,
		Player:     s.player.Pos,
		Power:      s.player.Power,
		Remaining:  s.items.Remaining(),
		Pursuers:   b.String(),
	}
}
