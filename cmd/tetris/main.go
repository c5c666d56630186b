// tetris is a falling-block puzzle for the terminal, a desktop window, or
// remote play over SSH.
//
// Usage:
//
//	tetris play      - Play in the terminal
//	tetris window    - Play in a desktop window
//	tetris serve     - Start SSH server for remote play
//	tetris keys      - Show key bindings
//	tetris config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/gamelog"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris drops seven kinds of pieces into a 10x20 well. Fill a row to
clear it; several rows in one lock score double each. When a new piece
cannot enter the well, the board empties and play goes on.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  keys     - Show key bindings
  config   - Print the effective configuration

Examples:
  tetris play
  tetris play --seed 42
  tetris window
  tetris serve --ssh :2222
  tetris config --defaults > ~/.tetris/configs/tetris.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// mustLoadConfig loads and validates the configuration or exits.
func mustLoadConfig() config.TetrisConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	return cfg
}

// openLogger honors --log-file and --log-level. Without a log file it
// writes to fallback, or discards when fallback is nil. The returned
// function releases the log file.
func openLogger(fallback io.Writer) (*log.Logger, func()) {
	if flagLogFile != "" {
		logger, closer, err := gamelog.OpenFile(flagLogFile, flagLogLevel, "tetris")
		if err != nil {
			fatal("%v", err)
		}
		return logger, func() { closer.Close() } //nolint:errcheck // Best-effort close on exit
	}
	if fallback == nil {
		return gamelog.Discard(), func() {}
	}
	logger, err := gamelog.New(fallback, flagLogLevel, "tetris")
	if err != nil {
		fatal("%v", err)
	}
	return logger, func() {}
}
