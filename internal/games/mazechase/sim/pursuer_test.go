package sim

import (
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

func TestPenContainment(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnIntervalTicks = 5
	cfg.PenTimeoutTicks = 80
	s := newTestSession(t, cfg, WithSeed(11))
	s.Start()

	released := 0
	for tick := 0; tick < 600; tick++ {
		for _, e := range s.Tick() {
			if _, ok := e.(PursuerReleased); ok {
				released++
			}
		}
		for _, q := range s.pursuers {
			if q.State != PursuerPenned {
				continue
			}
			if k := s.grid.TileAt(q.Pos); k != TileGhostSpawn {
				t.Fatalf("tick %d: penned %s on %v at %v", tick, q.Identity.Name, k, q.Pos)
			}
			if k := s.grid.TileAt(q.Target()); k != TileGhostSpawn {
				t.Fatalf("tick %d: penned %s heading onto %v", tick, q.Identity.Name, k)
			}
		}
	}
	if len(s.pursuers) != cfg.MaxPursuers {
		t.Errorf("pursuers = %d, expected %d", len(s.pursuers), cfg.MaxPursuers)
	}
	if released == 0 {
		t.Error("no pursuer was released from the pen")
	}
}

func TestPursuerLeavesPen(t *testing.T) {
	s := newTestSession(t, quietConfig(), WithSeed(5))
	q := addPursuer(s, "Blinky", C(10, 11), PursuerPenned)
	s.state = StatePlaying

	var released bool
	for tick := 0; tick < 2000 && q.State != PursuerActive; tick++ {
		for _, e := range s.Tick() {
			if r, ok := e.(PursuerReleased); ok && r.ID == q.ID {
				released = true
			}
		}
	}
	if !released {
		t.Fatal("PursuerReleased never emitted")
	}
	if q.State != PursuerActive {
		t.Fatalf("State = %v, expected %v", q.State, PursuerActive)
	}
	if s.terrain.pen.Has(q.Pos) {
		t.Errorf("active pursuer still on pen tile %v", q.Pos)
	}
}

func TestSetDestinationRejectsLastTile(t *testing.T) {
	g := mustLoad(t, testMaze())
	q := newPursuer(1, Identity{Name: "Inky"}, C(3, 2), DefaultConfig())
	q.Last, q.HasLast = C(2, 2), true

	if q.SetDestination(g, C(2, 2)) {
		t.Error("SetDestination(last tile) = true, expected false")
	}
	if q.Dest != nil {
		t.Errorf("Dest = %v, expected nil", *q.Dest)
	}
	if !q.SetDestination(g, C(9, 2)) {
		t.Fatal("SetDestination(9,2) = false, expected true")
	}
	if len(q.Path) != 7 || q.Cursor != 1 {
		t.Errorf("path len = %d cursor = %d, expected 7 and 1", len(q.Path), q.Cursor)
	}
}

func TestFollowAbandonsUnreachable(t *testing.T) {
	g := mustLoad(t, testMaze())
	tr := newTerrain(g, rand.New(rand.NewSource(1)))
	q := newPursuer(1, Identity{Name: "Clyde"}, C(3, 2), DefaultConfig())
	q.State = PursuerActive
	dest := C(1, 1)
	q.Dest = &dest

	q.follow(tr)
	if q.Dest != nil || q.Path != nil {
		t.Errorf("route = %v %v, expected it cleared", q.Dest, q.Path)
	}
}

func TestSendHome(t *testing.T) {
	g := mustLoad(t, testMaze())
	tr := newTerrain(g, rand.New(rand.NewSource(1)))
	q := newPursuer(1, Identity{Name: "Pinky"}, C(3, 2), DefaultConfig())
	q.State = PursuerActive
	q.PenTicks = 40
	q.SetDestination(g, C(9, 2))

	q.sendHome(tr.home)
	if q.Pos != tr.home || q.State != PursuerPenned {
		t.Errorf("Pos = %v State = %v, expected %v penned", q.Pos, q.State, tr.home)
	}
	if q.Dest != nil || q.Path != nil || q.PenTicks != 0 {
		t.Error("sendHome() left route or pen timer set")
	}
	if tr.home != C(9, 11) {
		t.Errorf("home = %v, expected first spawn tile (9,11)", tr.home)
	}
}

func TestScatterTargetsAwayFromPlayer(t *testing.T) {
	g := mustLoad(t, testMaze())
	tr := newTerrain(g, rand.New(rand.NewSource(9)))
	used := mapset.New[Coord]()
	from := C(10, 13)

	for idx := 0; idx < 4; idx++ {
		q := newPursuer(EntityID(idx+1), Identity{Name: "q"}, C(2, 2), DefaultConfig())
		q.State = PursuerActive
		q.scatter(tr, from, idx, 6, 10, used)
		if q.Dest == nil {
			t.Fatalf("scatter %d left no destination", idx)
		}
		d := *q.Dest
		if d.Col < 1 || d.Col > g.Width()-2 || d.Row < 1 || d.Row > g.Height()-2 {
			t.Errorf("scatter %d destination %v outside interior", idx, d)
		}
	}
	if used.Size() == 0 {
		t.Error("scatter did not record used destinations")
	}
}

func TestScatterOnlyActivePursuers(t *testing.T) {
	s := newTestSession(t, quietConfig(), WithSeed(2))
	penned := addPursuer(s, "A", C(9, 11), PursuerPenned)
	active := addPursuer(s, "B", C(2, 2), PursuerActive)

	s.scatter()
	if penned.Dest != nil {
		t.Error("penned pursuer was re-targeted")
	}
	if active.Dest == nil {
		t.Error("active pursuer was not re-targeted")
	}
}

func TestScatterSpreadUsesPackIndex(t *testing.T) {
	pack := func(s *Session) *Pursuer {
		addPursuer(s, "A", C(9, 11), PursuerPenned)
		addPursuer(s, "B", C(10, 11), PursuerExiting)
		return addPursuer(s, "C", C(2, 2), PursuerActive)
	}

	scattered := newTestSession(t, quietConfig(), WithSeed(4))
	q := pack(scattered)
	scattered.scatter()

	direct := newTestSession(t, quietConfig(), WithSeed(4))
	ref := pack(direct)
	cfg := direct.cfg
	ref.scatter(direct.terrain, direct.player.Pos, 2, cfg.ScatterDistance, cfg.ScatterTries, mapset.New[Coord]())

	if q.Dest == nil || ref.Dest == nil {
		t.Fatalf("Dest = %v and %v, expected both set", q.Dest, ref.Dest)
	}
	if *q.Dest != *ref.Dest {
		t.Errorf("scatter() Dest = %v, expected %v from pack index 2", *q.Dest, *ref.Dest)
	}
}

func spawnClocks(t *testing.T, s *Session, ticks int, names map[string]bool) []int {
	t.Helper()
	var clocks []int
	for range ticks {
		for _, e := range eventsOf[PursuerSpawned](s.Tick()) {
			if names[e.Name] {
				t.Errorf("clock %d: %s spawned while already in play", s.Clock(), e.Name)
			}
			names[e.Name] = true
			clocks = append(clocks, s.Clock())
		}
	}
	return clocks
}

func TestSpawnScheduler(t *testing.T) {
	tests := []struct {
		name       string
		max        int
		identities int
		expected   []int
	}{
		{name: "capped by max", max: 3, identities: 6, expected: []int{1, 6, 11}},
		{name: "capped by identities", max: 10, identities: 4, expected: []int{1, 6, 11, 16}},
		{name: "full pack", max: 6, identities: 6, expected: []int{1, 6, 11, 16, 21, 26}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SpawnIntervalTicks = 5
			cfg.PenTimeoutTicks = 100000
			cfg.MaxPursuers = tc.max
			cfg.Identities = append([]Identity(nil), DefaultIdentities[:tc.identities]...)
			s := newTestSession(t, cfg, WithSeed(3))

			// Nothing spawns before the first PLAYING tick
			for range 10 {
				if got := eventsOf[PursuerSpawned](s.Tick()); len(got) != 0 {
					t.Fatalf("spawned %d pursuers on the welcome screen", len(got))
				}
			}
			s.Start()

			clocks := spawnClocks(t, s, 100, map[string]bool{})
			if len(clocks) != len(tc.expected) {
				t.Fatalf("spawn clocks = %v, expected %v", clocks, tc.expected)
			}
			for i := range tc.expected {
				if clocks[i] != tc.expected[i] {
					t.Errorf("spawn %d at clock %d, expected %d", i, clocks[i], tc.expected[i])
				}
			}
			if len(s.pursuers) != min(tc.max, tc.identities) {
				t.Errorf("pursuers = %d, expected %d", len(s.pursuers), min(tc.max, tc.identities))
			}
		})
	}
}

func TestSpawnSchedulerPaused(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnIntervalTicks = 5
	cfg.PenTimeoutTicks = 100000
	s := newTestSession(t, cfg, WithSeed(3))
	s.Start()

	names := map[string]bool{}
	if clocks := spawnClocks(t, s, 3, names); len(clocks) != 1 || clocks[0] != 1 {
		t.Fatalf("spawn clocks = %v, expected [1]", clocks)
	}

	s.TogglePause()
	if clocks := spawnClocks(t, s, 50, names); len(clocks) != 0 {
		t.Fatalf("spawned at clocks %v while paused", clocks)
	}
	if s.Clock() != 3 {
		t.Errorf("Clock() = %d while paused, expected 3", s.Clock())
	}

	s.TogglePause()
	if clocks := spawnClocks(t, s, 3, names); len(clocks) != 1 || clocks[0] != 6 {
		t.Errorf("spawn clocks after resume = %v, expected [6]", clocks)
	}
}
