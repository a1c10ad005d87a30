package mazechase

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/mazes"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
	"github.com/vovakirdan/mazechase/internal/registry"
)

// isolate keeps the config loader away from files on the host.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func newGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	isolate(t)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	if g.err != nil {
		t.Fatalf("Reset() failed: %v", g.err)
	}
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{ModeClassic, ModeHard} {
		if !registry.Exists(id) {
			t.Fatalf("registry.Exists(%q) = false", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, New(), 12345)
	g2 := newGame(t, New(), 12345)

	for i := 0; i < 600; i++ {
		var in core.InputFrame
		switch {
		case i == 0:
			in = press(core.ActionConfirm)
		case i%120 == 30:
			in = press(core.ActionLeft)
		case i%120 == 90:
			in = press(core.ActionUp)
		default:
			in = press()
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", s1, s2)
	}
}

func TestStartRaisesCue(t *testing.T) {
	g := newGame(t, New(), 1)

	res := g.Step(press())
	if slices.Contains(res.Cues, core.CueStart) {
		t.Error("start cue raised before confirm")
	}

	res = g.Step(press(core.ActionConfirm))
	if !slices.Contains(res.Cues, core.CueStart) {
		t.Errorf("Cues = %v, expected %q", res.Cues, core.CueStart)
	}
	if got := g.session.State(); got != sim.StatePlaying {
		t.Errorf("State() = %v, expected playing", got)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newGame(t, New(), 1)
	g.Step(press(core.ActionConfirm))

	if res := g.Step(press(core.ActionPause)); !res.State.Paused {
		t.Error("State.Paused = false after pause")
	}
	clock := g.session.Clock()
	g.Step(press())
	if g.session.Clock() != clock {
		t.Error("clock advanced while paused")
	}
	if res := g.Step(press(core.ActionPause)); res.State.Paused {
		t.Error("State.Paused = true after second pause")
	}
}

func TestRestartIssuesNewRun(t *testing.T) {
	g := newGame(t, New(), 1)
	first := g.State().RunID
	if first == "" {
		t.Fatal("RunID is empty after Reset")
	}

	// Restart is ignored on the welcome screen
	g.Step(press(core.ActionRestart))
	if g.State().RunID != first {
		t.Error("RunID changed on a welcome-screen restart")
	}

	g.Step(press(core.ActionConfirm))
	for range 30 {
		g.Step(press())
	}
	g.Step(press(core.ActionRestart))

	st := g.State()
	if st.RunID == first {
		t.Error("RunID unchanged after restart")
	}
	if st.Score != 0 || st.Level != 1 {
		t.Errorf("State() = %+v, expected a fresh run", st)
	}
	if got := g.session.State(); got != sim.StateWelcome {
		t.Errorf("State() = %v, expected welcome", got)
	}
}

func TestModeLives(t *testing.T) {
	tests := []struct {
		name  string
		game  *Game
		lives int
	}{
		{"classic", New(), 3},
		{"hard", NewHard(), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, tt.game, 7)
			if got := g.State().Lives; got != tt.lives {
				t.Errorf("Lives = %d, expected %d", got, tt.lives)
			}
		})
	}
}

func TestCueMapping(t *testing.T) {
	g := New()
	got := g.cues([]sim.Event{
		sim.DotChomped{Points: 10},
		sim.Contact{},
		sim.PowerPelletActivated{},
		sim.PowerExpired{},
		sim.PursuerEaten{},
		sim.BonusEaten{},
		sim.Fault{Step: "spawn"},
		sim.PlayerEliminated{},
		sim.LevelCleared{},
		sim.GameOver{},
	})
	want := []string{
		core.CueChomp,
		core.CuePower,
		core.CuePursuerEaten,
		core.CueBonus,
		core.CueDeath,
		core.CueLevel,
		core.CueGameOver,
	}
	if !slices.Equal(got, want) {
		t.Errorf("cues() = %v, expected %v", got, want)
	}
}

func TestCustomMazes(t *testing.T) {
	d, err := mazes.New("Box", "", "1,1,1,1,1\n1,0,1,0,1\n1,1,3,1,1\n1,0,1,0,1\n1,1,1,1,1", 1)
	if err != nil {
		t.Fatalf("mazes.New() failed: %v", err)
	}

	custom := New()
	custom.Configure(Settings{Mazes: []mazes.Definition{d}})
	newGame(t, custom, 3)
	f := custom.session.Frame()
	// One border cell on every side
	if f.Width != 7 || f.Height != 7 {
		t.Errorf("Frame size = %dx%d, expected 7x7", f.Width, f.Height)
	}

	// Settings belong to one game; a second game keeps the built-in set
	other := newGame(t, New(), 3)
	if of := other.session.Frame(); of.Width == 7 && of.Height == 7 {
		t.Errorf("second game Frame size = %dx%d, expected a built-in maze", of.Width, of.Height)
	}
}

func TestSettingsPerGame(t *testing.T) {
	easy := New()
	easy.Configure(Settings{Preset: config.DifficultyEasy})
	plain := New()

	newGame(t, easy, 1)
	newGame(t, plain, 1)
	if got := easy.State().Lives; got != 5 {
		t.Errorf("easy Lives = %d, expected 5", got)
	}
	if got := plain.State().Lives; got != 3 {
		t.Errorf("plain Lives = %d, expected 3", got)
	}
}

func TestBrokenMazeEndsRun(t *testing.T) {
	isolate(t)

	g := New()
	g.Configure(Settings{Mazes: []mazes.Definition{{Name: "broken", Design: "1,x", Active: true}}})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	if g.err == nil {
		t.Fatal("Reset() error = nil, expected a maze error")
	}
	if !g.State().GameOver {
		t.Error("State.GameOver = false without a session")
	}
	g.Step(press(core.ActionConfirm))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot start") {
		t.Error("Render() missing the start error")
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, New(), 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Score: 0", "Lives: 3", "Press Enter to start", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}

	g.Step(press(core.ActionConfirm))
	g.Render(screen)
	if strings.Contains(screen.String(), "Press Enter to start") {
		t.Error("welcome overlay still drawn while playing")
	}

	p := g.session.Frame().Player
	offX := (80 - g.session.Frame().Width*cellW) / 2
	offY := (24-g.session.Frame().Height-hudRows)/2 + 1
	cell := screen.GetCell(offX+p.Tile.Col*cellW, offY+p.Tile.Row)
	if cell.Color != core.ColorYellow {
		t.Errorf("player cell = %+v, expected yellow", cell)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, New(), 1)

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Render() missing the too-small notice")
	}
}

func TestSetPreset(t *testing.T) {
	g := New()
	g.SetPreset(config.DifficultyEasy)
	newGame(t, g, 1)
	if got := g.State().Lives; got != 5 {
		t.Errorf("Lives = %d, expected 5 with the easy preset", got)
	}

	hard := NewHard()
	hard.SetPreset(config.DifficultyEasy)
	newGame(t, hard, 1)
	if got := hard.State().Lives; got != 2 {
		t.Errorf("hard Lives = %d, expected 2 regardless of preset", got)
	}
}
