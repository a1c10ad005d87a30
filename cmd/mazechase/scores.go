package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a mode, or a summary of every
mode when none is given.

Examples:
  mazechase scores
  mazechase scores mazechase
  mazechase scores mazechase_hard --clear
  mazechase scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score of the mode")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the terminal UI")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) == 0 {
		if err := printStats(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		return
	}

	modeID := args[0]
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'mazechase list' to see available modes.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearScores(modeID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", modeID)
		return
	}

	if err := printTop(store, modeID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func modeTitle(id string) string {
	for _, m := range registry.List() {
		if m.ID == id {
			return m.Title
		}
	}
	return id
}

func printTop(store *storage.Store, modeID string) error {
	scores, err := store.TopScores(modeID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", modeTitle(modeID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mazechase play %s' to set the first high score!\n", modeID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "Rank", "Score", "Level", "Run", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "----", "-----", "-----", "---", "----")
	for i, entry := range scores {
		run := entry.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-8s  %s\n", i+1, entry.Score, entry.Level, run, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(modeID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Printf("  %-16s  %-5s  %-10s  %-5s  %-8s  %s\n", "Mode", "Runs", "Best", "Level", "Average", "Last played")
	fmt.Printf("  %-16s  %-5s  %-10s  %-5s  %-8s  %s\n", "----", "----", "----", "-----", "-------", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-16s  %-5d  %-10d  %-5d  %-8.1f  %s\n",
			id, s.RunsCount, s.HighScore, s.BestLevel, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
