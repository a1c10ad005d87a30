package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazechase/internal/audio"
	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/mazes"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagDifficulty string
	flagMaze       string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: mazechase).

Controls:
  Arrows/WASD/HJKL - Steer
  Enter/Space      - Start
  P                - Pause
  Esc/B            - Pause, then back out
  R                - Restart
  M                - Mute
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, fewer and slower pursuers
  normal - Start at 30% difficulty, ramps up every level
  hard   - 2 lives, start at 70% difficulty
  fixed  - No level scaling

Without --difficulty a selector is shown before the run starts.

Examples:
  mazechase play
  mazechase play --difficulty easy --sound
  mazechase play mazechase_hard
  mazechase play --maze "Demo Maze 2"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Play only the named maze")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
}

func runPlay(_ *cobra.Command, args []string) {
	modeID := mazechase.ModeClassic
	if len(args) == 1 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'mazechase list' to see available modes.")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	defs, err := mazeRotation(store, flagMaze)
	if err != nil {
		closeStore(store)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	game, err := registry.Create(modeID)
	if err != nil {
		closeStore(store)
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}

	if preset == "" && !difficultyLocked(game) {
		chosen, selErr := tui.RunDifficultySelector(width, height)
		if selErr != nil {
			closeStore(store)
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if chosen == nil {
			closeStore(store)
			return
		}
		preset = *chosen
	}
	gameSetup(defs, preset)(game, logger)

	player := audio.Silent()
	if flagSound {
		player = audio.New(logger)
	}

	runErr := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Audio:  player,
		Logger: logger,
	})

	player.Close()
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// mazeRotation picks the maze definitions for a local run. Active mazes in
// the store win over the built-in set; nil means the built-in set. A named
// maze is looked up in the store first, so inactive stored mazes can still
// be played on request.
func mazeRotation(store *storage.Store, name string) ([]mazes.Definition, error) {
	if name != "" && store != nil {
		d, err := store.MazeByName(name)
		switch {
		case err == nil:
			return []mazes.Definition{d}, nil
		case !errors.Is(err, storage.ErrMazeNotFound):
			logger.Warn("could not look up stored maze", "maze", name, "error", err)
		}
	}

	var defs []mazes.Definition
	if store != nil {
		active, err := store.ActiveMazes()
		if err != nil {
			logger.Warn("could not load stored mazes", "error", err)
		} else {
			defs = active
		}
	}
	if name == "" {
		return defs, nil
	}

	builtin, err := mazes.Builtin()
	if err != nil {
		return nil, err
	}
	return mazes.ByName(builtin, name)
}

func difficultyLocked(g registry.Game) bool {
	l, ok := g.(tui.DifficultyLocker)
	return ok && l.DifficultyLocked()
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
