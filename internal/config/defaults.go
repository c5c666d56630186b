package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration. It matches the
// embedded defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			DropIntervalMS: 1000,
		},
		Scoring: ScoringConfig{
			LinePoints: 10,
		},
		Display: DisplayConfig{
			CellSize:    20,
			Background:  "#333",
			Border:      "black",
			BorderWidth: 0.08,
			Palette:     []string{"aqua", "yellow", "magenta", "green", "red", "blue", "orange"},
		},
		Keys: KeysConfig{
			MoveLeft:  []string{"left", "a"},
			MoveRight: []string{"right", "d"},
			SoftDrop:  []string{"down", "s"},
			RotateCCW: []string{"z"},
			RotateCW:  []string{"x"},
			Quit:      []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
