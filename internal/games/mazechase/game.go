// Package mazechase adapts the maze chase engine to the arcade registry.
package mazechase

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/mazes"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
	"github.com/vovakirdan/mazechase/internal/registry"
)

// Mode identifiers.
const (
	ModeClassic = "mazechase"
	ModeHard    = "mazechase_hard"
)

var discard = log.New(io.Discard)

// Settings controls how a game builds its sessions. The zero value plays
// the built-in mazes with the config found on the search path.
type Settings struct {
	ConfigPath string
	Preset     config.DifficultyPreset // ignored by the hard mode
	Mazes      []mazes.Definition      // nil means the built-in set
	Logger     *log.Logger
}

// Game is the maze chase implementation of registry.Game.
type Game struct {
	mode    string
	session *sim.Session
	runID   string
	err     error // set when the last Reset could not build a session

	settings Settings
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewHard creates a game locked to the hard preset.
func NewHard() *Game {
	return &Game{mode: ModeHard}
}

func init() {
	registry.Register(ModeClassic, func() registry.Game { return New() })
	registry.Register(ModeHard, func() registry.Game { return NewHard() })
}

// Configure replaces the game's settings. It takes effect on the next Reset.
func (g *Game) Configure(s Settings) {
	g.settings = s
}

// SetPreset changes only the difficulty preset. It takes effect on the next
// Reset and is ignored by the hard mode.
func (g *Game) SetPreset(preset config.DifficultyPreset) {
	g.settings.Preset = preset
}

func (g *Game) logger() *log.Logger {
	if g.settings.Logger == nil {
		return discard
	}
	return g.settings.Logger
}

// DifficultyLocked reports whether the mode ignores presets.
func (g *Game) DifficultyLocked() bool {
	return g.mode == ModeHard
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeHard {
		return "Maze Chase (Hard)"
	}
	return "Maze Chase"
}

// Reset builds a fresh session from the current configuration. The
// screen size is read at render time.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runID = uuid.NewString()
	g.session, g.err = g.newSession(cfg.Seed)
	if g.err != nil {
		g.logger().Error("cannot start session", "mode", g.mode, "error", g.err)
	}
}

func (g *Game) newSession(seed int64) (*sim.Session, error) {
	mc, err := config.LoadMazeChase(g.settings.ConfigPath)
	if err != nil {
		g.logger().Warn("using default config", "path", g.settings.ConfigPath, "error", err)
		mc = config.DefaultMazeChaseConfig()
	}

	preset := g.settings.Preset
	if g.mode == ModeHard {
		preset = config.DifficultyHard
	}
	config.ApplyMazeChasePreset(&mc, preset)

	defs := g.settings.Mazes
	if len(defs) == 0 {
		if defs, err = mazes.Builtin(); err != nil {
			return nil, err
		}
	}
	picker, err := mazes.NewPicker(defs, seed)
	if err != nil {
		return nil, err
	}

	scaler := config.NewLevelScaler(mc.Difficulty)
	return sim.NewSession(mc.Engine(), picker,
		sim.WithSeed(seed),
		sim.WithLogger(g.logger()),
		sim.WithLevelTuning(scaler.Tune),
	)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}
	s := g.session

	if input.Has(core.ActionRestart) || (input.Has(core.ActionConfirm) && s.State() == sim.StateGameOver) {
		if s.State() != sim.StateWelcome {
			s.Restart()
			g.runID = uuid.NewString()
		}
	}
	if input.Has(core.ActionConfirm) {
		s.Start()
	}
	if input.Has(core.ActionPause) {
		s.TogglePause()
	}
	if d := steering(input.Direction()); d != sim.DirNone {
		s.Steer(d)
	}

	events := s.Tick()
	return core.StepResult{State: g.State(), Cues: g.cues(events)}
}

func steering(a core.Action) sim.Dir {
	switch a {
	case core.ActionUp:
		return sim.DirUp
	case core.ActionDown:
		return sim.DirDown
	case core.ActionLeft:
		return sim.DirLeft
	case core.ActionRight:
		return sim.DirRight
	default:
		return sim.DirNone
	}
}

// cues maps engine events onto host cue names and logs faults.
func (g *Game) cues(events []sim.Event) []string {
	var out []string
	for _, ev := range events {
		switch e := ev.(type) {
		case sim.GameStarted:
			out = append(out, core.CueStart)
		case sim.DotChomped:
			out = append(out, core.CueChomp)
		case sim.PowerPelletActivated:
			out = append(out, core.CuePower)
		case sim.PursuerEaten:
			out = append(out, core.CuePursuerEaten)
		case sim.BonusEaten:
			out = append(out, core.CueBonus)
		case sim.PlayerEliminated:
			out = append(out, core.CueDeath)
		case sim.LevelCleared:
			out = append(out, core.CueLevel)
		case sim.GameOver:
			out = append(out, core.CueGameOver)
		case sim.Fault:
			g.logger().Error("engine fault", "step", e.Step, "error", e.Err, "run", g.runID)
		}
	}
	return out
}

// State returns the host-facing game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Level: 1, GameOver: g.err != nil, RunID: g.runID}
	}
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Level:    s.Level(),
		Lives:    s.Lives(),
		GameOver: s.State() == sim.StateGameOver,
		Paused:   s.State() == sim.StatePaused,
		RunID:    g.runID,
	}
}

// Snapshot exposes the engine digest for determinism checks.
func (g *Game) Snapshot() sim.Snapshot {
	if g.session == nil {
		return sim.Snapshot{}
	}
	return g.session.Snapshot()
}
