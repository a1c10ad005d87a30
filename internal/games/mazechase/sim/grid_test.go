package sim

import (
	"errors"
	"testing"
)

func borderCells(g *Grid) []Coord {
	var out []Coord
	for c := 0; c < g.Width(); c++ {
		out = append(out, C(c, 0), C(c, g.Height()-1))
	}
	for r := 1; r < g.Height()-1; r++ {
		out = append(out, C(0, r), C(g.Width()-1, r))
	}
	return out
}

func TestLoadBorderInvariant(t *testing.T) {
	tests := []struct {
		name string
		maze Maze
	}{
		{name: "test maze", maze: testMaze()},
		{
			name: "open edges",
			maze: Maze{Name: "open", Width: 4, Height: 3, Rows: [][]int{
				{1, 4, 1, 1},
				{4, 1, 2, 4},
				{1, 1, 4, 1},
			}},
		},
		{
			name: "single row",
			maze: Maze{Name: "row", Width: 3, Height: 1, Rows: [][]int{{4, 1, 4}}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustLoad(t, tc.maze)
			if g.Width() != tc.maze.Width+2 || g.Height() != tc.maze.Height+2 {
				t.Fatalf("size = %dx%d, expected %dx%d", g.Width(), g.Height(), tc.maze.Width+2, tc.maze.Height+2)
			}
			for _, c := range borderCells(g) {
				if k := g.TileAt(c); k != TileWall && k != TilePortalBlocker {
					t.Errorf("TileAt(%v) = %v, expected wall or portal-blocker", c, k)
				}
			}
		})
	}
}

func TestLoadBlocksBorderBehindPortals(t *testing.T) {
	g := mustLoad(t, testMaze())

	tests := []struct {
		at       Coord
		expected TileKind
	}{
		{C(1, 11), TilePortal},
		{C(19, 11), TilePortal},
		{C(0, 11), TilePortalBlocker},
		{C(20, 11), TilePortalBlocker},
		{C(0, 10), TileWall},
		{C(9, 8), TileSuperDot},
		{C(10, 10), TileGhostDoor},
		{C(10, 11), TileGhostSpawn},
	}
	for _, tc := range tests {
		if got := g.TileAt(tc.at); got != tc.expected {
			t.Errorf("TileAt(%v) = %v, expected %v", tc.at, got, tc.expected)
		}
	}
}

func TestLoadBackfillsInteriorPortal(t *testing.T) {
	g := mustLoad(t, Maze{Name: "inner", Width: 5, Height: 3, Rows: [][]int{
		{0, 0, 0, 0, 0},
		{1, 4, 1, 1, 1},
		{0, 0, 0, 0, 0},
	}})

	if got := g.TileAt(C(1, 2)); got != TilePortalBlocker {
		t.Errorf("TileAt(1,2) = %v, expected %v", got, TilePortalBlocker)
	}
	if got := g.TileAt(C(3, 2)); got != TileEmpty {
		t.Errorf("TileAt(3,2) = %v, expected %v", got, TileEmpty)
	}
	if got := g.TileAt(C(0, 2)); got != TileWall {
		t.Errorf("TileAt(0,2) = %v, expected %v", got, TileWall)
	}
}

func TestLoadRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name    string
		maze    Maze
		wantRow int
	}{
		{
			name:    "too few rows",
			maze:    Maze{Name: "short", Width: 2, Height: 3, Rows: [][]int{{1, 1}, {1, 1}}},
			wantRow: -1,
		},
		{
			name:    "ragged row",
			maze:    Maze{Name: "ragged", Width: 3, Height: 2, Rows: [][]int{{1, 1, 1}, {1, 1}}},
			wantRow: 1,
		},
		{
			name:    "zero width",
			maze:    Maze{Name: "empty", Width: 0, Height: 1, Rows: [][]int{{}}},
			wantRow: -1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.maze, StrictCodes)
			var mapErr *InvalidMapError
			if !errors.As(err, &mapErr) {
				t.Fatalf("Load() error = %v, expected *InvalidMapError", err)
			}
			if mapErr.Row != tc.wantRow {
				t.Errorf("Row = %d, expected %d", mapErr.Row, tc.wantRow)
			}
			if mapErr.Maze != tc.maze.Name {
				t.Errorf("Maze = %q, expected %q", mapErr.Maze, tc.maze.Name)
			}
		})
	}
}

func TestUnknownCodePolicy(t *testing.T) {
	m := Maze{Name: "odd", Width: 3, Height: 1, Rows: [][]int{{1, 9, 1}}}

	t.Run("strict", func(t *testing.T) {
		_, err := Load(m, StrictCodes)
		var mapErr *InvalidMapError
		if !errors.As(err, &mapErr) {
			t.Fatalf("Load() error = %v, expected *InvalidMapError", err)
		}
		if mapErr.Row != 0 || mapErr.Col != 1 || mapErr.Code != 9 {
			t.Errorf("error at row %d col %d code %d, expected row 0 col 1 code 9", mapErr.Row, mapErr.Col, mapErr.Code)
		}
	})

	t.Run("lenient", func(t *testing.T) {
		g, err := Load(m, LenientCodes)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got := g.TileAt(C(2, 1)); got != TileEmpty {
			t.Errorf("TileAt(2,1) = %v, expected %v", got, TileEmpty)
		}
	})

	t.Run("parse", func(t *testing.T) {
		if ParseCodePolicy("lenient") != LenientCodes {
			t.Error("ParseCodePolicy(lenient) should be lenient")
		}
		if ParseCodePolicy("whatever") != StrictCodes {
			t.Error("ParseCodePolicy(whatever) should be strict")
		}
	})
}

func TestPairPortal(t *testing.T) {
	g := mustLoad(t, Maze{Name: "pairs", Width: 5, Height: 5, Rows: [][]int{
		{1, 1, 4, 1, 1},
		{4, 1, 1, 1, 4},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 4, 1, 1},
	}})

	tests := []struct {
		name     string
		from     Coord
		expected Coord
	}{
		{name: "same row", from: C(1, 2), expected: C(5, 2)},
		{name: "same row reversed", from: C(5, 2), expected: C(1, 2)},
		{name: "same column", from: C(3, 1), expected: C(3, 5)},
		{name: "same column reversed", from: C(3, 5), expected: C(3, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := g.PairPortal(tc.from)
			if !ok || got != tc.expected {
				t.Errorf("PairPortal(%v) = %v, %v, expected %v, true", tc.from, got, ok, tc.expected)
			}
		})
	}

	t.Run("farthest fallback", func(t *testing.T) {
		g := mustLoad(t, Maze{Name: "diag", Width: 4, Height: 4, Rows: [][]int{
			{4, 1, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 4, 1},
			{1, 1, 1, 4},
		}})
		got, ok := g.PairPortal(C(1, 1))
		if !ok || got != C(4, 4) {
			t.Errorf("PairPortal(1,1) = %v, %v, expected (4,4), true", got, ok)
		}
	})

	t.Run("lone portal", func(t *testing.T) {
		g := mustLoad(t, Maze{Name: "lone", Width: 3, Height: 1, Rows: [][]int{{4, 1, 1}}})
		if _, ok := g.PairPortal(C(1, 1)); ok {
			t.Error("PairPortal() on a lone portal should fail")
		}
	})
}

func TestPlayerSpawn(t *testing.T) {
	g := mustLoad(t, testMaze())
	got, err := playerSpawn(g)
	if err != nil {
		t.Fatalf("playerSpawn() error = %v", err)
	}
	if got != C(10, 13) {
		t.Errorf("playerSpawn() = %v, expected (10,13)", got)
	}

	t.Run("no floor", func(t *testing.T) {
		g := mustLoad(t, Maze{Name: "solid", Width: 2, Height: 1, Rows: [][]int{{0, 3}}})
		_, err := playerSpawn(g)
		var spawnErr *NoValidSpawnError
		if !errors.As(err, &spawnErr) {
			t.Fatalf("playerSpawn() error = %v, expected *NoValidSpawnError", err)
		}
		if spawnErr.Entity != "player" {
			t.Errorf("Entity = %q, expected player", spawnErr.Entity)
		}
	})
}

func TestTileAtOutOfBounds(t *testing.T) {
	g := mustLoad(t, testMaze())
	for _, c := range []Coord{C(-1, 0), C(0, -1), C(g.Width(), 0), C(0, g.Height())} {
		if got := g.TileAt(c); got != TileWall {
			t.Errorf("TileAt(%v) = %v, expected %v", c, got, TileWall)
		}
	}
}
