package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/mazes"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagMazeName       string
	flagMazeDesc       string
	flagMazeDifficulty int
)

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "Manage the maze repository",
	Long: `List, import and toggle the mazes stored in the database.

When the database holds active mazes they replace the built-in set.

Examples:
  mazechase mazes list
  mazechase mazes seed
  mazechase mazes import ./cross.csv --name Cross --difficulty 2
  mazechase mazes deactivate "Demo Maze 1"`,
}

var mazesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored mazes",
	Args:  cobra.NoArgs,
	Run:   runMazesList,
}

var mazesSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store the built-in mazes",
	Args:  cobra.NoArgs,
	Run:   runMazesSeed,
}

var mazesImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import a maze design from a CSV file",
	Long: `Import a maze design. The file holds one row of comma separated
tile codes per line:

  0 wall, 1 open (gets a dot), 2 super dot, 3 pursuer pen, 4 portal, 5 pen door`,
	Args: cobra.ExactArgs(1),
	Run:  runMazesImport,
}

var mazesActivateCmd = &cobra.Command{
	Use:   "activate <name>",
	Short: "Add a stored maze to the rotation",
	Args:  cobra.ExactArgs(1),
	Run:   func(_ *cobra.Command, args []string) { setMazeActive(args[0], true) },
}

var mazesDeactivateCmd = &cobra.Command{
	Use:   "deactivate <name>",
	Short: "Remove a stored maze from the rotation",
	Args:  cobra.ExactArgs(1),
	Run:   func(_ *cobra.Command, args []string) { setMazeActive(args[0], false) },
}

func init() {
	mazesImportCmd.Flags().StringVar(&flagMazeName, "name", "", "Maze name (required)")
	mazesImportCmd.Flags().StringVar(&flagMazeDesc, "description", "", "Maze description")
	mazesImportCmd.Flags().IntVar(&flagMazeDifficulty, "difficulty", 1, "First level the maze appears on")
	_ = mazesImportCmd.MarkFlagRequired("name")

	mazesCmd.AddCommand(mazesListCmd)
	mazesCmd.AddCommand(mazesSeedCmd)
	mazesCmd.AddCommand(mazesImportCmd)
	mazesCmd.AddCommand(mazesActivateCmd)
	mazesCmd.AddCommand(mazesDeactivateCmd)
}

func openStoreOrExit() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runMazesList(_ *cobra.Command, _ []string) {
	store := openStoreOrExit()
	defer store.Close()

	defs, err := store.Mazes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving mazes: %v\n", err)
		os.Exit(1)
	}
	if len(defs) == 0 {
		fmt.Println("No mazes stored; the built-in set is used.")
		fmt.Println("Run 'mazechase mazes seed' to store it.")
		return
	}

	fmt.Printf("  %-20s  %-7s  %-10s  %s\n", "Name", "Size", "Difficulty", "Active")
	fmt.Printf("  %-20s  %-7s  %-10s  %s\n", "----", "----", "----------", "------")
	for _, d := range defs {
		active := "no"
		if d.Active {
			active = "yes"
		}
		size := fmt.Sprintf("%dx%d", d.Width, d.Height)
		fmt.Printf("  %-20s  %-7s  %-10d  %s\n", d.Name, size, d.Difficulty, active)
	}
}

func runMazesSeed(_ *cobra.Command, _ []string) {
	defs, err := mazes.Builtin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading built-in mazes: %v\n", err)
		os.Exit(1)
	}

	store := openStoreOrExit()
	defer store.Close()

	n, err := store.SeedBuiltinMazes(defs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding mazes: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Stored %d of %d built-in mazes.\n", n, len(defs))
}

func runMazesImport(_ *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", args[0], err)
		os.Exit(1)
	}

	d, err := mazes.New(flagMazeName, flagMazeDesc, string(data), flagMazeDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing maze: %v\n", err)
		os.Exit(1)
	}

	mc, err := config.LoadMazeChase(flagConfig)
	if err != nil {
		logger.Warn("could not load config, validating with defaults", "error", err)
		mc = config.DefaultMazeChaseConfig()
	}
	if err := d.Validate(mc.Engine().Codes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid maze: %v\n", err)
		os.Exit(1)
	}

	store := openStoreOrExit()
	defer store.Close()

	if _, err := store.SaveMaze(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving maze: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %q (%dx%d, difficulty %d).\n", d.Name, d.Width, d.Height, d.Difficulty)
}

func setMazeActive(name string, active bool) {
	store := openStoreOrExit()
	defer store.Close()

	err := store.SetMazeActive(name, active)
	switch {
	case errors.Is(err, storage.ErrMazeNotFound):
		fmt.Fprintf(os.Stderr, "Error: no stored maze named %q\n", name)
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error updating maze: %v\n", err)
		os.Exit(1)
	}

	state := "deactivated"
	if active {
		state = "activated"
	}
	fmt.Printf("Maze %q %s.\n", name, state)
}
