package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dot-rush/internal/platform/tui"
	"github.com/vovakirdan/dot-rush/internal/registry"
	"github.com/vovakirdan/dot-rush/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show run history",
	Long: `Display recorded runs.

With no arguments an interactive scoreboard opens; press Tab to cycle
through modes. With a mode argument the top 10 runs are printed.

Examples:
  dotrush scores
  dotrush scores classic
  dotrush scores rush --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded runs for the given mode")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// No mode given: open the interactive scoreboard.
	if len(args) == 0 {
		if flagClearScores {
			fmt.Fprintln(os.Stderr, "Error: --clear requires a mode argument")
			os.Exit(1)
		}

		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		if sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	modeID := args[0]
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'dotrush list' to see available modes.")
		os.Exit(1)
	}

	if flagClearScores {
		if clearErr := store.ClearRuns(modeID); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %q.\n", modeID)
		return
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	runs, err := store.TopRuns(modeID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dotrush play %s' to set the first high score!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %-6s  %s\n", "Rank", "Score", "Combo", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %-6s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  x%-6d  %-5ds  %s\n",
			i+1, entry.Score, entry.BestCombo, entry.DurationSecs, dateStr)
	}

	fmt.Println()
	if stats, statsErr := store.Stats(modeID); statsErr == nil && stats.RunsCount > 0 {
		fmt.Printf("Runs: %d  Best: %d  Best combo: x%d  Avg score: %.0f\n",
			stats.RunsCount, stats.HighScore, stats.BestCombo, stats.AvgScore)
	}
}
