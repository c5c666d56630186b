package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"right", core.ActionMoveRight},
		{"d", core.ActionMoveRight},
		{"left", core.ActionMoveLeft},
		{"a", core.ActionMoveLeft},
		{"down", core.ActionSoftDrop},
		{"s", core.ActionSoftDrop},
		{"z", core.ActionRotateCCW},
		{"x", core.ActionRotateCW},
		{"X", core.ActionRotateCW},
		{"q", core.ActionQuit},
		{"up", core.ActionNone},
		{"enter", core.ActionNone},
		{"", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.want, b.Lookup(tc.key))
		})
	}
}

func TestBindingsKeys(t *testing.T) {
	b := DefaultBindings()

	assert.Equal(t, []string{"right", "d"}, b.Keys(core.ActionMoveRight))
	assert.Equal(t, []string{"ctrl+c", "q"}, b.Keys(core.ActionQuit))
	assert.Empty(t, b.Keys(core.ActionNone))
}
