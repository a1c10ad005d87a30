// mazechase is a terminal maze chase: eat every dot, dodge the pursuers,
// turn the tables with a power pellet.
//
// Usage:
//
//	mazechase list               - List available modes
//	mazechase play [mode]        - Play a mode (default: mazechase)
//	mazechase menu               - Pick modes from an interactive menu
//	mazechase scores [mode]      - Show high scores
//	mazechase mazes <command>    - Manage the maze repository
//	mazechase serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.mazechase/scores.db)
//	--config <path> - Engine config YAML
//	--debug         - Verbose logging
//
// MAZECHASE_DB, MAZECHASE_CONFIG and MAZECHASE_SEED, read from the
// environment or a .env file, replace the flag defaults.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/mazes"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/registry"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "mazechase"})
)

// envFlags maps environment variables onto persistent flags.
var envFlags = map[string]string{
	"MAZECHASE_DB":     "db",
	"MAZECHASE_CONFIG": "config",
	"MAZECHASE_SEED":   "seed",
}

func main() {
	// A missing .env is normal
	_ = godotenv.Load()
	if err := applyEnv(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyEnv presets flags from the environment. Explicit flags still win
// because they are parsed afterwards.
func applyEnv(cmd *cobra.Command) error {
	for env, name := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := cmd.PersistentFlags().Set(name, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - a maze chase game for your terminal",
	Long: `Maze Chase is a terminal maze chase. Clear every dot while the
pursuers hunt you down, and eat a power pellet to hunt them instead.

Available commands:
  list     - Show all modes
  play     - Play a mode
  menu     - Interactive mode picker
  scores   - View high scores
  mazes    - Manage the maze repository
  serve    - Start SSH server for remote play

Examples:
  mazechase play
  mazechase play mazechase_hard --sound
  mazechase mazes import ./cross.csv --name Cross --difficulty 2
  mazechase serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazechase/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(serveCmd)
}

// gameSetup returns the hook that hands each new game its settings.
func gameSetup(defs []mazes.Definition, preset config.DifficultyPreset) tui.Setup {
	return func(g registry.Game, l *log.Logger) {
		if mg, ok := g.(*mazechase.Game); ok {
			mg.Configure(mazechase.Settings{
				ConfigPath: flagConfig,
				Preset:     preset,
				Mazes:      defs,
				Logger:     l,
			})
		}
	}
}
