// Package config provides YAML-based game configuration loading and
// validation for tetris.
package config

// TetrisConfig contains all tunable settings.
type TetrisConfig struct {
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
	Keys    KeysConfig    `yaml:"keys"`
}

// GravityConfig controls how fast pieces fall.
type GravityConfig struct {
	DropIntervalMS int `yaml:"drop_interval_ms"`
}

// ScoringConfig controls line-clear awards.
type ScoringConfig struct {
	LinePoints int `yaml:"line_points"`
}

// DisplayConfig controls colors and, for the window frontend, cell size.
// Colors are SVG names ("aqua") or hex ("#333").
type DisplayConfig struct {
	CellSize    int      `yaml:"cell_size"`    // Pixels per cell in the window frontend
	Background  string   `yaml:"background"`   // Field fill
	Border      string   `yaml:"border"`       // Cell outline
	BorderWidth float64  `yaml:"border_width"` // Outline width in cells
	Palette     []string `yaml:"palette"`      // Seven piece colors, index 0-6
}

// KeysConfig lists key names per action, in Bubble Tea notation
// ("left", "a", "ctrl+c").
type KeysConfig struct {
	MoveLeft  []string `yaml:"move_left"`
	MoveRight []string `yaml:"move_right"`
	SoftDrop  []string `yaml:"soft_drop"`
	RotateCCW []string `yaml:"rotate_ccw"`
	RotateCW  []string `yaml:"rotate_cw"`
	Quit      []string `yaml:"quit"`
}
