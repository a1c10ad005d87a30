package sim

import (
	"math"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// PursuerState is a pursuer's behavior state.
type PursuerState uint8

const (
	PursuerPenned PursuerState = iota
	PursuerExiting
	PursuerActive
)

func (s PursuerState) String() string {
	switch s {
	case PursuerPenned:
		return "penned"
	case PursuerExiting:
		return "exiting"
	case PursuerActive:
		return "active"
	default:
		return "unknown"
	}
}

// Pursuer is an AI-controlled adversary.
type Pursuer struct {
	Mover
	ID       EntityID
	Identity Identity
	State    PursuerState
	Dest     *Coord
	Path     []Coord
	Cursor   int
	PenTicks int
}

// terrain is the read-mostly level context a pursuer decides against.
type terrain struct {
	grid    *Grid
	pen     mapset.Set[Coord]
	targets []Coord // non-pen EMPTY/DOT/SUPER_DOT tiles
	home    Coord   // first pen tile, where eaten pursuers return
	rng     *rand.Rand
}

func newTerrain(g *Grid, rng *rand.Rand) *terrain {
	spawns := g.FindAll(TileGhostSpawn)
	t := &terrain{
		grid: g,
		pen:  mapset.Of(spawns...),
		rng:  rng,
	}
	if len(spawns) > 0 {
		t.home = spawns[0]
	}
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			at := C(c, r)
			switch g.TileAt(at) {
			case TileEmpty, TileDot, TileSuperDot:
				if !t.pen.Has(at) {
					t.targets = append(t.targets, at)
				}
			}
		}
	}
	return t
}

func newPursuer(id EntityID, ident Identity, at Coord, cfg Config) *Pursuer {
	return &Pursuer{
		Mover:    newMover(at, cfg.TileSize, cfg.PursuerSpeed),
		ID:       id,
		Identity: ident,
		State:    PursuerPenned,
	}
}

func (p *Pursuer) rule() WalkRule {
	return PursuerRule(p.State)
}

// AtDestination reports whether the pursuer stands on its destination.
func (p *Pursuer) AtDestination() bool {
	return p.Dest != nil && !p.Moving && p.Pos == *p.Dest
}

// SetDestination targets dest and plans a route to it. The tile the pursuer
// last departed from is rejected to avoid oscillation.
func (p *Pursuer) SetDestination(g *Grid, dest Coord) bool {
	if p.HasLast && dest == p.Last {
		return false
	}
	d := dest
	p.Dest = &d
	path, err := PlanPath(g, p.Target(), dest, roamRule)
	if err != nil {
		path = nil
	}
	p.Path = path
	p.Cursor = 1
	return true
}

// ClearRoute drops the destination and path so the pursuer must re-plan.
func (p *Pursuer) ClearRoute() {
	p.Dest = nil
	p.Path = nil
	p.Cursor = 0
}

// update runs one tick of the behavior state machine. It reports whether the
// pursuer left the pen this tick.
func (p *Pursuer) update(t *terrain, penTimeout int) (released bool) {
	switch p.State {
	case PursuerPenned:
		if !p.Moving {
			var dirs []Dir
			for _, d := range Dirs {
				if penRule(t.grid, p.Pos, p.Pos.Step(d)) {
					dirs = append(dirs, d)
				}
			}
			if len(dirs) > 0 {
				p.Dir = dirs[t.rng.Intn(len(dirs))]
			}
		}
		p.PenTicks++
		if p.PenTicks <= penTimeout {
			p.Step(t.grid, penRule)
			return false
		}
		p.State = PursuerExiting
		p.PenTicks = 0
		if p.Dest == nil {
			p.chooseDestination(t)
		}
		p.follow(t)
		return true

	case PursuerExiting:
		if p.Dest == nil {
			p.chooseDestination(t)
		}
		p.follow(t)
		if p.AtDestination() && !t.pen.Has(p.Pos) {
			p.State = PursuerActive
		}

	case PursuerActive:
		if p.Dest == nil || p.AtDestination() {
			p.chooseDestination(t)
		}
		p.follow(t)
	}
	return false
}

// chooseDestination picks a uniformly random roaming target other than the
// current tile.
func (p *Pursuer) chooseDestination(t *terrain) {
	if len(t.targets) == 0 {
		return
	}
	here := p.Target()
	for range 4 {
		dest := t.targets[t.rng.Intn(len(t.targets))]
		if dest == here {
			continue
		}
		if p.SetDestination(t.grid, dest) {
			return
		}
	}
}

// follow advances one tick along the planned path.
func (p *Pursuer) follow(t *terrain) {
	if p.Moving {
		if p.Step(t.grid, p.rule()) {
			p.syncCursor()
		}
		return
	}
	if p.Path == nil || p.Cursor >= len(p.Path) {
		if p.Dest != nil {
			p.Path = BFS(t.grid, p.Pos, *p.Dest, roamRule)
			p.Cursor = 1
		}
		if len(p.Path) < 2 {
			p.ClearRoute()
			return
		}
	}
	p.syncCursor()
	if p.Cursor >= len(p.Path) {
		return
	}

	next := p.Path[p.Cursor]
	d := DirToward(p.Pos, next)
	if d == DirNone {
		// Off route; re-plan from here next tick.
		p.Path = nil
		return
	}
	if p.State == PursuerExiting {
		if k := t.grid.TileAt(next); k == TileGhostDoor || k == TileEmpty {
			p.Dir = d
			p.Next = DirNone
		} else {
			p.Queue(d)
		}
	} else {
		p.Queue(d)
	}
	if p.Step(t.grid, p.rule()) {
		p.syncCursor()
	}
}

func (p *Pursuer) syncCursor() {
	for p.Cursor < len(p.Path) && p.Path[p.Cursor] == p.Pos {
		p.Cursor++
	}
}

// sendHome returns an eaten pursuer to the pen.
func (p *Pursuer) sendHome(home Coord) {
	p.Teleport(home)
	p.State = PursuerPenned
	p.PenTicks = 0
	p.Dir = DirNone
	p.Next = DirNone
	p.HasLast = false
	p.ClearRoute()
}

// scatter re-targets the pursuer away from the player. Up to tries samples
// are drawn; the first unused EMPTY one wins, otherwise the last is kept.
func (p *Pursuer) scatter(t *terrain, from Coord, idx, minDist, tries int, used mapset.Set[Coord]) {
	g := t.grid
	var dest Coord
	for try := 0; try < tries; try++ {
		angle := t.rng.Float64() * 2 * math.Pi
		dist := float64(minDist + t.rng.Intn(4) + idx)
		dest = C(
			clamp(from.Col+int(math.Round(math.Cos(angle)*dist)), 1, g.Width()-2),
			clamp(from.Row+int(math.Round(math.Sin(angle)*dist)), 1, g.Height()-2),
		)
		if g.TileAt(dest) == TileEmpty && !used.Has(dest) {
			break
		}
	}
	used.Put(dest)
	p.SetDestination(g, dest)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
