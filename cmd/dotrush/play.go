package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dot-rush/internal/config"
	"github.com/vovakirdan/dot-rush/internal/core"
	"github.com/vovakirdan/dot-rush/internal/games/dotrush"
	"github.com/vovakirdan/dot-rush/internal/platform/tui"
	"github.com/vovakirdan/dot-rush/internal/registry"
	"github.com/vovakirdan/dot-rush/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  WASD/Arrows  - Move the crosshair
  Space/Enter  - Tap
  P/Esc        - Pause
  R            - Restart (after game over)
  Tab/F3       - Debug overlay
  Q/Ctrl+C     - Quit

Examples:
  dotrush play classic
  dotrush play zen
  dotrush play rush --seed 42
  dotrush play classic --config ./my-tuning.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'dotrush list' to see available modes.")
		os.Exit(1)
	}

	// Fail fast on a broken custom config instead of silently falling
	// back to defaults mid-game.
	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dotrush.SetConfigPath(flagConfig)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
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

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
