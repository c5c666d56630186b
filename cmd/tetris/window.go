package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the well (display.cell_size pixels per
cell) and play there. Controls are the same as in the terminal.

Examples:
  tetris window
  tetris window --seed 7 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	renderer, err := cfg.Renderer()
	if err != nil {
		fatal("%v", err)
	}

	logger, closeLog := openLogger(os.Stderr)
	defer closeLog()

	logger.Info("session started", "mode", "window", "seed", flagSeed)
	result, err := window.Run(window.Options{
		Settings: cfg.Settings(),
		Renderer: renderer,
		Bindings: cfg.Bindings(),
		CellSize: cfg.Display.CellSize,
		Seed:     flagSeed,
		Logger:   logger,
	})
	if err != nil {
		closeLog()
		fatal("%v", err)
	}
	logger.Info("session ended", "score", result.Score, "high_score", result.HighScore)

	fmt.Printf("Score: %d  High score: %d\n", result.Score, result.HighScore)
}
