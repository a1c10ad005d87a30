package sim

import "fmt"

// Coord is a tile position in bordered-grid coordinates.
// (0,0) is the synthesized top-left border cell.
type Coord struct {
	Col int
	Row int
}

// C is shorthand for Coord{Col: col, Row: row}.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Dir) Coord {
	dc, dr := d.Delta()
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// Manhattan returns the L1 distance between two coordinates.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Col-o.Col) + abs(c.Row-o.Row)
}

// String implements fmt.Stringer.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Dir is a cardinal movement direction.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Dirs lists the four cardinal directions in a fixed order.
var Dirs = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the column/row offset of one step in this direction.
func (d Dir) Delta() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// DirToward returns the direction of a single orthogonal step from a to b.
// DirNone is returned when b is not a 4-neighbour of a.
func DirToward(a, b Coord) Dir {
	switch {
	case b.Col == a.Col+1 && b.Row == a.Row:
		return DirRight
	case b.Col == a.Col-1 && b.Row == a.Row:
		return DirLeft
	case b.Row == a.Row+1 && b.Col == a.Col:
		return DirDown
	case b.Row == a.Row-1 && b.Col == a.Col:
		return DirUp
	default:
		return DirNone
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
