package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Load loads the tetris configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it
// cares about. The result is validated.
func Load(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("tetris.yaml"), filepath.Join("configs", "tetris.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultTetrisConfig()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if err := candidate.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
		return candidate, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// Validate reports every invalid field at once.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Gravity.DropIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("gravity.drop_interval_ms must be positive, got %d", c.Gravity.DropIntervalMS))
	}
	if c.Scoring.LinePoints <= 0 {
		errs = append(errs, fmt.Errorf("scoring.line_points must be positive, got %d", c.Scoring.LinePoints))
	}
	if c.Display.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("display.cell_size must be positive, got %d", c.Display.CellSize))
	}
	if c.Display.BorderWidth < 0 || c.Display.BorderWidth >= 0.5 {
		errs = append(errs, fmt.Errorf("display.border_width must be in [0, 0.5), got %g", c.Display.BorderWidth))
	}
	if _, err := c.Renderer(); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]string)
	for _, group := range c.Keys.groups() {
		for _, key := range group.keys {
			if prev, dup := seen[key]; dup && prev != group.name {
				errs = append(errs, fmt.Errorf("keys: %q bound to both %s and %s", key, prev, group.name))
			}
			seen[key] = group.name
		}
	}

	return errors.Join(errs...)
}

// Settings converts gravity and scoring into game settings.
func (c TetrisConfig) Settings() tetris.Settings {
	return tetris.Settings{
		DropInterval: time.Duration(c.Gravity.DropIntervalMS) * time.Millisecond,
		LinePoints:   c.Scoring.LinePoints,
	}
}

// Renderer resolves the display colors.
func (c TetrisConfig) Renderer() (tetris.Renderer, error) {
	var r tetris.Renderer
	var errs []error

	if len(c.Display.Palette) != len(r.Palette) {
		errs = append(errs, fmt.Errorf("display.palette needs %d colors, got %d", len(r.Palette), len(c.Display.Palette)))
	}
	for i, name := range c.Display.Palette {
		if i >= len(r.Palette) {
			break
		}
		col, err := core.ParseColor(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("display.palette[%d]: %w", i, err))
			continue
		}
		r.Palette[i] = col
	}

	var err error
	if r.Background, err = core.ParseColor(c.Display.Background); err != nil {
		errs = append(errs, fmt.Errorf("display.background: %w", err))
	}
	if r.Border, err = core.ParseColor(c.Display.Border); err != nil {
		errs = append(errs, fmt.Errorf("display.border: %w", err))
	}
	r.BorderWidth = c.Display.BorderWidth

	return r, errors.Join(errs...)
}

// Bindings builds the key lookup table.
func (c TetrisConfig) Bindings() tetris.Bindings {
	b := make(tetris.Bindings)
	for _, group := range c.Keys.groups() {
		for _, key := range group.keys {
			b[strings.ToLower(key)] = group.action
		}
	}
	return b
}

type keyGroup struct {
	name   string
	action core.Action
	keys   []string
}

func (k KeysConfig) groups() []keyGroup {
	return []keyGroup{
		{"move_left", core.ActionMoveLeft, k.MoveLeft},
		{"move_right", core.ActionMoveRight, k.MoveRight},
		{"soft_drop", core.ActionSoftDrop, k.SoftDrop},
		{"rotate_ccw", core.ActionRotateCCW, k.RotateCCW},
		{"rotate_cw", core.ActionRotateCW, k.RotateCW},
		{"quit", core.ActionQuit, k.Quit},
	}
}
