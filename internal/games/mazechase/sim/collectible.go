package sim

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// CollectibleKind is the type of a collectible.
type CollectibleKind uint8

const (
	CollectDot CollectibleKind = iota
	CollectSuperDot
	CollectBonus
)

func (k CollectibleKind) String() string {
	switch k {
	case CollectDot:
		return "dot"
	case CollectSuperDot:
		return "super-dot"
	case CollectBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Collectible is an item the player can consume.
type Collectible struct {
	Tile     Coord
	Kind     CollectibleKind
	Points   int
	Label    string
	Consumed bool
	AnimLeft int // ticks of consumed animation remaining
}

// Collectibles holds the items of one level.
type Collectibles struct {
	dots      map[Coord]*Collectible
	supers    map[Coord]*Collectible
	bonus     []*Collectible
	animTicks int
}

// Place populates a freshly loaded grid. Super-dots go first, bonus items
// keep their distance from super-dots, and dots fill every remaining tile.
func Place(g *Grid, cfg Config, rng *rand.Rand) *Collectibles {
	set := &Collectibles{
		dots:      make(map[Coord]*Collectible),
		supers:    make(map[Coord]*Collectible),
		animTicks: cfg.BonusAnimTicks,
	}

	tunnelRows := mapset.New[int]()
	for _, p := range g.FindAll(TilePortal) {
		tunnelRows.Put(p.Row)
	}
	eligible := func(at Coord) bool {
		k := g.TileAt(at)
		if k.IsPen() || k == TilePortal {
			return false
		}
		if tunnelRows.Has(at.Row) && (at.Col == 1 || at.Col == g.Width()-2) {
			return false
		}
		return true
	}

	for _, at := range g.FindAll(TileSuperDot) {
		if eligible(at) {
			set.supers[at] = &Collectible{Tile: at, Kind: CollectSuperDot, Points: cfg.SuperDotPoints}
		}
	}

	var candidates []Coord
	for _, at := range g.FindAll(TileEmpty) {
		if eligible(at) && set.farFromSupers(at, cfg.BonusMinDistance) {
			candidates = append(candidates, at)
		}
	}
	occupied := mapset.New[Coord]()
	n := min(cfg.BonusCount, len(candidates))
	for i, idx := range rng.Perm(len(candidates))[:n] {
		at := candidates[idx]
		occupied.Put(at)
		label := ""
		if len(cfg.BonusLabels) > 0 {
			label = cfg.BonusLabels[i%len(cfg.BonusLabels)]
		}
		set.bonus = append(set.bonus, &Collectible{Tile: at, Kind: CollectBonus, Label: label})
	}

	for _, at := range g.FindAll(TileEmpty) {
		if eligible(at) && !occupied.Has(at) {
			set.dots[at] = &Collectible{Tile: at, Kind: CollectDot, Points: cfg.DotPoints}
		}
	}
	return set
}

func (s *Collectibles) farFromSupers(at Coord, minDist int) bool {
	for c := range s.supers {
		if at.Manhattan(c) < minDist {
			return false
		}
	}
	return true
}

// BonusAt returns the live bonus item on tile, if any.
func (s *Collectibles) BonusAt(tile Coord) *Collectible {
	for _, b := range s.bonus {
		if !b.Consumed && b.Tile == tile {
			return b
		}
	}
	return nil
}

// DotAt returns the dot on tile, if any.
func (s *Collectibles) DotAt(tile Coord) *Collectible {
	return s.dots[tile]
}

// SuperDotAt returns the super-dot on tile, if any.
func (s *Collectibles) SuperDotAt(tile Coord) *Collectible {
	return s.supers[tile]
}

// Consume takes an item out of play. Dots and super-dots leave their
// collections at once and a super-dot's tile becomes EMPTY. A bonus item is
// marked consumed and lingers only for its removal animation.
func (s *Collectibles) Consume(g *Grid, item *Collectible) {
	switch item.Kind {
	case CollectDot:
		delete(s.dots, item.Tile)
	case CollectSuperDot:
		delete(s.supers, item.Tile)
		g.set(item.Tile, TileEmpty)
	case CollectBonus:
		item.Consumed = true
		item.AnimLeft = s.animTicks
	}
}

// Animate advances consumed-bonus animations and drops finished ones.
func (s *Collectibles) Animate() {
	kept := s.bonus[:0]
	for _, b := range s.bonus {
		if b.Consumed {
			b.AnimLeft--
			if b.AnimLeft <= 0 {
				continue
			}
		}
		kept = append(kept, b)
	}
	s.bonus = kept
}

// Remaining counts items still collectible.
func (s *Collectibles) Remaining() int {
	n := len(s.dots) + len(s.supers)
	for _, b := range s.bonus {
		if !b.Consumed {
			n++
		}
	}
	return n
}

// Count returns how many live items of a kind remain.
func (s *Collectibles) Count(kind CollectibleKind) int {
	switch kind {
	case CollectDot:
		return len(s.dots)
	case CollectSuperDot:
		return len(s.supers)
	}
	n := 0
	for _, b := range s.bonus {
		if !b.Consumed {
			n++
		}
	}
	return n
}

// Tiles returns the coordinates of live items of a kind in row-major order.
func (s *Collectibles) Tiles(kind CollectibleKind) []Coord {
	var out []Coord
	switch kind {
	case CollectDot:
		for c := range s.dots {
			out = append(out, c)
		}
	case CollectSuperDot:
		for c := range s.supers {
			out = append(out, c)
		}
	case CollectBonus:
		for _, b := range s.bonus {
			if !b.Consumed {
				out = append(out, b.Tile)
			}
		}
	}
	slices.SortFunc(out, rowMajor)
	return out
}

// Items returns copies of every item, including animating bonus items, in
// row-major order.
func (s *Collectibles) Items() []Collectible {
	out := make([]Collectible, 0, len(s.dots)+len(s.supers)+len(s.bonus))
	for _, d := range s.dots {
		out = append(out, *d)
	}
	for _, d := range s.supers {
		out = append(out, *d)
	}
	for _, b := range s.bonus {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b Collectible) int {
		if c := rowMajor(a.Tile, b.Tile); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})
	return out
}

// Scale returns the render scale of an item: 1.0 while live, growing to 1.5
// over a consumed bonus item's animation.
func (s *Collectibles) Scale(item Collectible) float64 {
	if !item.Consumed || s.animTicks <= 0 {
		return 1.0
	}
	progress := 1 - float64(item.AnimLeft)/float64(s.animTicks)
	return 1.0 + 0.5*progress
}

func rowMajor(a, b Coord) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}
