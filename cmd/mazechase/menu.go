package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazechase/internal/audio"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start Maze Chase in interactive menu mode, the same flow an SSH
player sees. After a run ends, back out to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  mazechase menu
  mazechase menu --fps 30 --sound`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	rootCmd.AddCommand(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	defs, err := mazeRotation(store, "")
	if err != nil {
		logger.Warn("using built-in mazes", "error", err)
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

	player := audio.Silent()
	if flagSound {
		player = audio.New(logger)
	}

	model := tui.NewSessionModel(cfg, tui.Options{
		Store:  store,
		Audio:  player,
		Logger: logger,
		Setup:  gameSetup(defs, ""),
	})
	_, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()

	player.Close()
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
