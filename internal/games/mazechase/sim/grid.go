package sim

import "fmt"

// Maze is a raw maze definition in the legacy code encoding.
// Rows holds Height rows of Width codes each, without a border.
type Maze struct {
	Name   string
	Width  int
	Height int
	Rows   [][]int
}

// MazeSource supplies the maze for a given level (1-based).
type MazeSource interface {
	Maze(level int) (Maze, error)
}

// MazeFunc adapts a function to MazeSource.
type MazeFunc func(level int) (Maze, error)

// Maze implements MazeSource.
func (f MazeFunc) Maze(level int) (Maze, error) {
	return f(level)
}

// Grid is the bordered tile world of one level.
// It is two cells wider and taller than the raw maze.
type Grid struct {
	name   string
	width  int
	height int
	cells  []TileKind
}

// Load decodes a raw maze, synthesizes its border and inserts portal blockers.
func Load(m Maze, policy CodePolicy) (*Grid, error) {
	if m.Width <= 0 || m.Height <= 0 {
		return nil, &InvalidMapError{Maze: m.Name, Reason: "width and height must be positive", Row: -1, Col: -1}
	}
	if len(m.Rows) != m.Height {
		return nil, &InvalidMapError{
			Maze:   m.Name,
			Reason: fmt.Sprintf("has %d rows, declared height %d", len(m.Rows), m.Height),
			Row:    -1,
			Col:    -1,
		}
	}

	g := &Grid{
		name:   m.Name,
		width:  m.Width + 2,
		height: m.Height + 2,
	}
	g.cells = make([]TileKind, g.width*g.height)
	for i := range g.cells {
		g.cells[i] = TileWall
	}

	for r, row := range m.Rows {
		if len(row) != m.Width {
			return nil, &InvalidMapError{
				Maze:   m.Name,
				Reason: fmt.Sprintf("row has %d columns, declared width %d", len(row), m.Width),
				Row:    r,
				Col:    -1,
			}
		}
		for c, code := range row {
			kind, ok := decodeTile(code, policy)
			if !ok {
				return nil, &InvalidMapError{Maze: m.Name, Reason: "unknown tile code", Row: r, Col: c, Code: code}
			}
			g.set(C(c+1, r+1), kind)
		}
	}

	g.buildBorder()
	g.backfillBlockers()
	return g, nil
}

// buildBorder places PORTAL_BLOCKER on border cells that face an edge portal.
func (g *Grid) buildBorder() {
	for c := 1; c < g.width-1; c++ {
		g.blockIfPortal(C(c, 0), C(c, 1))
		g.blockIfPortal(C(c, g.height-1), C(c, g.height-2))
	}
	for r := 1; r < g.height-1; r++ {
		g.blockIfPortal(C(0, r), C(1, r))
		g.blockIfPortal(C(g.width-1, r), C(g.width-2, r))
	}
}

func (g *Grid) blockIfPortal(border, inward Coord) {
	if g.TileAt(inward) == TilePortal {
		g.set(border, TilePortalBlocker)
	}
}

// backfillBlockers seals the cell behind each portal, on the side of the
// nearest grid edge, when that cell is plain EMPTY.
func (g *Grid) backfillBlockers() {
	for _, p := range g.FindAll(TilePortal) {
		behind := p.Step(g.outward(p))
		if g.InBounds(behind) && g.TileAt(behind) == TileEmpty {
			g.set(behind, TilePortalBlocker)
		}
	}
}

// outward returns the direction from c toward the nearest grid edge.
// Ties prefer left, right, up, down in that order.
func (g *Grid) outward(c Coord) Dir {
	best, dir := c.Col, DirLeft
	if d := g.width - 1 - c.Col; d < best {
		best, dir = d, DirRight
	}
	if c.Row < best {
		best, dir = c.Row, DirUp
	}
	if d := g.height - 1 - c.Row; d < best {
		dir = DirDown
	}
	return dir
}

// Name returns the maze name the grid was loaded from.
func (g *Grid) Name() string { return g.name }

// Width returns the bordered width.
func (g *Grid) Width() int { return g.width }

// Height returns the bordered height.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies inside the bordered grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// TileAt returns the tile at c, or WALL for any out-of-bounds query.
func (g *Grid) TileAt(c Coord) TileKind {
	if !g.InBounds(c) {
		return TileWall
	}
	return g.cells[c.Row*g.width+c.Col]
}

func (g *Grid) set(c Coord, k TileKind) {
	if g.InBounds(c) {
		g.cells[c.Row*g.width+c.Col] = k
	}
}

// FindAll returns every coordinate holding the given kind, in row-major order.
func (g *Grid) FindAll(kind TileKind) []Coord {
	var out []Coord
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r*g.width+c] == kind {
				out = append(out, C(c, r))
			}
		}
	}
	return out
}

// PairPortal resolves the exit of the portal at from.
// Preference: same row, then same column, then the farthest remaining portal.
func (g *Grid) PairPortal(from Coord) (Coord, bool) {
	var others []Coord
	for _, p := range g.FindAll(TilePortal) {
		if p != from {
			others = append(others, p)
		}
	}
	if len(others) == 0 {
		return Coord{}, false
	}
	for _, p := range others {
		if p.Row == from.Row {
			return p, true
		}
	}
	for _, p := range others {
		if p.Col == from.Col {
			return p, true
		}
	}
	best, bestDist := others[0], -1
	for _, p := range others {
		if d := p.Manhattan(from); d > bestDist {
			best, bestDist = p, d
		}
	}
	return best, true
}

// Center returns the middle cell of the bordered grid.
func (g *Grid) Center() Coord {
	return C(g.width/2, g.height/2)
}

// Rows returns a copy of the tiles as rows, for render directives.
func (g *Grid) Rows() [][]TileKind {
	rows := make([][]TileKind, g.height)
	for r := range rows {
		rows[r] = make([]TileKind, g.width)
		copy(rows[r], g.cells[r*g.width:(r+1)*g.width])
	}
	return rows
}
