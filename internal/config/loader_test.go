package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, cwd string) {
	t.Helper()
	home = t.TempDir()
	cwd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(cwd)
	return home, cwd
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg TetrisConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultTetrisConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "mine.yaml")
	writeFile(t, path, "gravity:\n  drop_interval_ms: 250\nkeys:\n  rotate_cw: [x, up]\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Gravity.DropIntervalMS)
	assert.Equal(t, 10, cfg.Scoring.LinePoints, "unset keys keep defaults")
	assert.Equal(t, []string{"x", "up"}, cfg.Keys.RotateCW)
}

func TestLoadSearchOrder(t *testing.T) {
	home, cwd := isolate(t)
	writeFile(t, filepath.Join(cwd, "configs", "tetris.yaml"), "scoring:\n  line_points: 20\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Scoring.LinePoints, "local configs dir is used")

	writeFile(t, filepath.Join(home, ".tetris", "configs", "tetris.yaml"), "scoring:\n  line_points: 30\n")

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Scoring.LinePoints, "user config wins over local")
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		path    string
		errPart string
	}{
		{"missing file", "", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"bad yaml", "gravity: [", filepath.Join(dir, "bad.yaml"), "failed to parse"},
		{"invalid values", "gravity:\n  drop_interval_ms: 0\n", filepath.Join(dir, "zero.yaml"), "drop_interval_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.content != "" {
				writeFile(t, tc.path, tc.content)
			}
			_, err := Load(tc.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestLoadRejectsInvalidUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".tetris", "configs", "tetris.yaml"), "display:\n  palette: [red]\n")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette")
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Scoring.LinePoints = -1
	cfg.Display.CellSize = 0
	cfg.Display.BorderWidth = 2
	cfg.Display.Palette[3] = "chartreuse-ish"
	cfg.Display.Background = ""
	cfg.Keys.SoftDrop = []string{"down", "x"}

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	for _, part := range []string{
		"line_points", "cell_size", "border_width",
		"palette[3]", "background", `"x" bound to both`,
	} {
		assert.Contains(t, msg, part)
	}
}

func TestSettings(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Gravity.DropIntervalMS = 1500

	assert.Equal(t, tetris.Settings{DropInterval: 1500 * time.Millisecond, LinePoints: 10}, cfg.Settings())
}

func TestRendererMatchesGameDefaults(t *testing.T) {
	r, err := DefaultTetrisConfig().Renderer()
	require.NoError(t, err)
	assert.Equal(t, tetris.DefaultRenderer(), r)
}

func TestBindings(t *testing.T) {
	assert.Equal(t, tetris.DefaultBindings(), DefaultTetrisConfig().Bindings())

	cfg := DefaultTetrisConfig()
	cfg.Keys.RotateCW = []string{"X", "up"}
	b := cfg.Bindings()

	assert.Equal(t, core.ActionRotateCW, b.Lookup("x"))
	assert.Equal(t, core.ActionRotateCW, b.Lookup("up"))
}
