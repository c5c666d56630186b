package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		ctrl bool
		want string
		ok   bool
	}{
		{ebiten.KeyArrowLeft, false, "left", true},
		{ebiten.KeyArrowRight, false, "right", true},
		{ebiten.KeyArrowDown, false, "down", true},
		{ebiten.KeyA, false, "a", true},
		{ebiten.KeyZ, false, "z", true},
		{ebiten.KeyC, true, "ctrl+c", true},
		{ebiten.KeyDigit1, false, "1", true},
		{ebiten.KeyShiftLeft, false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			got, ok := keyName(tt.key, tt.ctrl)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppLayout(t *testing.T) {
	app := NewApp(Options{CellSize: 30, Seed: 1})
	w, h := app.Layout(1024, 768)
	assert.Equal(t, 300, w)
	assert.Equal(t, 600, h)

	app = NewApp(Options{Seed: 1})
	w, h = app.Layout(0, 0)
	assert.Equal(t, tetris.ArenaWidth*DefaultCellSize, w)
	assert.Equal(t, tetris.ArenaHeight*DefaultCellSize, h)
}

func TestAppTickAppliesKeys(t *testing.T) {
	app := NewApp(Options{Settings: tetris.DefaultSettings(), Seed: 3})
	start := app.Game().Player().Pos

	require.NoError(t, app.tick([]string{"right", "right"}))
	assert.Equal(t, start.X+2, app.Game().Player().Pos.X)

	require.NoError(t, app.tick([]string{"unbound"}))
	assert.Equal(t, start.X+2, app.Game().Player().Pos.X)
}

func TestAppTickGravity(t *testing.T) {
	app := NewApp(Options{Settings: tetris.DefaultSettings(), Seed: 3})
	startY := app.Game().Player().Pos.Y

	// Sixty frames add up to just under the one-second interval.
	for range ebiten.DefaultTPS {
		require.NoError(t, app.tick(nil))
	}
	assert.Equal(t, startY, app.Game().Player().Pos.Y)

	require.NoError(t, app.tick(nil))
	assert.Equal(t, startY+1, app.Game().Player().Pos.Y)
}

func TestAppTickQuit(t *testing.T) {
	app := NewApp(Options{Seed: 3})
	assert.ErrorIs(t, app.tick([]string{"q"}), ebiten.Termination)
	assert.ErrorIs(t, app.tick([]string{"ctrl+c"}), ebiten.Termination)
}
