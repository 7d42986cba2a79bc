// dotrush is a terminal reflex game: tap the target dots, dodge the bombs.
//
// Usage:
//
//	dotrush list              - List available modes
//	dotrush play <mode>       - Play a mode
//	dotrush scores [mode]     - Show run history
//	dotrush serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.dotrush/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/dot-rush/internal/games/dotrush"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dotrush",
	Short: "Dot Rush - A terminal reflex game",
	Long: `Dot Rush is a terminal reflex game. Colored dots stream in from the
edges of the screen; tap the ones matching the target color as fast as
you can, keep your combo alive, and stay away from the bombs.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  scores   - View run history and high scores
  serve    - Start SSH server for remote play

Examples:
  dotrush list
  dotrush play classic
  dotrush play zen --config ./my-tuning.yaml
  dotrush scores
  dotrush serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dotrush/scores.db", "Path to run database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
