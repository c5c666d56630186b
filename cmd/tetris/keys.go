package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long: `Print the key bindings from the effective configuration.

Examples:
  tetris keys
  tetris keys --config ./my-keys.yaml`,
	Args: cobra.NoArgs,
	Run:  runKeys,
}

func runKeys(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	fmt.Println(tui.NewKeyMap(cfg.Bindings()).HelpView(width))
}
