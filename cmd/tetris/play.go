package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Default controls (see 'tetris keys'):
  Left/A, Right/D   - Move
  Down/S            - Soft drop
  Z / X             - Rotate counter-clockwise / clockwise
  Ctrl+S            - Save a text screenshot to ~/.tetris/screenshots
  Q/Ctrl+C          - Quit

The terminal owns the screen while playing, so logs go to --log-file
or nowhere.

Examples:
  tetris play
  tetris play --seed 42 --fps 30
  tetris play --config ./fast.yaml --log-file ~/.tetris/tetris.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	renderer, err := cfg.Renderer()
	if err != nil {
		fatal("%v", err)
	}

	logger, closeLog := openLogger(nil)
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("session started", "mode", "terminal", "seed", flagSeed)
	result, err := tui.Run(tui.Options{
		Settings: cfg.Settings(),
		Renderer: renderer,
		Keys:     tui.NewKeyMap(cfg.Bindings()),
		Logger:   logger,
	}, runtime)
	if err != nil {
		closeLog()
		fatal("%v", err)
	}
	logger.Info("session ended", "score", result.Score, "high_score", result.HighScore)

	fmt.Printf("Score: %d  High score: %d\n", result.Score, result.HighScore)
}
