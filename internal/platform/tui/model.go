package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/audio"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

// Setup prepares a freshly created game for one player before its first
// Reset. logger is already scoped to that player.
type Setup func(g registry.Game, logger *log.Logger)

// Options carries the optional collaborators of a GameModel.
type Options struct {
	Store  *storage.Store // nil disables score saving
	Audio  *audio.Player  // nil plays nothing
	Logger *log.Logger
	Setup  Setup // nil leaves games as created
}

// GameModel runs one game inside Bubble Tea. It is used for local play and
// for every SSH session.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	audio      *audio.Player
	log        *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	savedRun   string // run id of the last saved score
	standalone bool   // no menu to return to, so back quits
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Silent()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		audio:      opts.Audio,
		log:        opts.Logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The engine is size independent, so a resize only changes the canvas
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionMute:
		muted := m.audio.ToggleMute()
		m.log.Debug("sound toggled", "muted", muted)
		return m, nil
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		// Back while playing pauses first
		action = core.ActionPause
	}

	m.inputFrame.Set(action)
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.audio.PlayAll(result.Cues)
	m.saveScore()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished run once. Storage is best-effort.
func (m *GameModel) saveScore() {
	st := m.gameState
	if !st.GameOver || st.RunID == "" || st.RunID == m.savedRun {
		return
	}
	m.savedRun = st.RunID
	if m.store == nil || st.Score == 0 {
		return
	}

	saved, err := m.store.SaveScore(storage.ScoreEntry{
		Mode:  m.game.ID(),
		RunID: st.RunID,
		Score: st.Score,
		Level: st.Level,
	})
	if err != nil {
		m.log.Warn("could not save score", "mode", m.game.ID(), "error", err)
		return
	}
	m.log.Debug("score recorded", "mode", m.game.ID(), "score", st.Score, "new", saved)
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".mazechase", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot skipped", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the local terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
