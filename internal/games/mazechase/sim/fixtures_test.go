package sim

import "testing"

// testRows is a 19x21 maze in the legacy encoding. The pen is raw cols 8-10
// of row 10 with its door above the middle, portals sit at both ends of
// row 10, and raw (8,7) holds a super-dot in an open corridor.
var testRows = []string{
	"0000000000000000000",
	"0111111110111111110",
	"0100100010100010010",
	"0200100010100010020",
	"0111111111111111110",
	"0100101000001010010",
	"0111101110111011110",
	"0000100020100010000",
	"0000101111111010000",
	"0000101005001010000",
	"4111111033301111114",
	"0000101000001010000",
	"0000101111111010000",
	"0000101000001010000",
	"0111111110111111110",
	"0100100010100010010",
	"0210111111111110120",
	"0010101000001010100",
	"0111101110111011110",
	"0100000010100000010",
	"0000000000000000000",
}

func parseRows(lines []string) [][]int {
	rows := make([][]int, len(lines))
	for r, line := range lines {
		rows[r] = make([]int, len(line))
		for c, ch := range line {
			rows[r][c] = int(ch - '0')
		}
	}
	return rows
}

func testMaze() Maze {
	return Maze{Name: "test", Width: 19, Height: 21, Rows: parseRows(testRows)}
}

func testSource() MazeSource {
	return MazeFunc(func(int) (Maze, error) {
		return testMaze(), nil
	})
}

// quietConfig disables the spawner so tests can place pursuers by hand.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxPursuers = 0
	return cfg
}

func newTestSession(t *testing.T, cfg Config, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(cfg, testSource(), opts...)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

func mustLoad(t *testing.T, m Maze) *Grid {
	t.Helper()
	g, err := Load(m, StrictCodes)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return g
}

// placeAt puts the player on tile at rest, already past its spawn.
func placeAt(s *Session, tile Coord) {
	s.player.Teleport(tile)
	s.player.LeftSpawn = true
	s.player.Dir = DirNone
	s.player.Next = DirNone
}

func addPursuer(s *Session, name string, at Coord, state PursuerState) *Pursuer {
	q := newPursuer(s.nextID, Identity{Name: name}, at, s.cfg)
	q.State = state
	s.nextID++
	s.pursuers = append(s.pursuers, q)
	return q
}

func eventsOf[T Event](events []Event) []T {
	var out []T
	for _, e := range events {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func drain(s *Session) []Event {
	out := s.events
	s.events = nil
	return out
}
