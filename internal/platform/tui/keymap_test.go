package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{"a", runeKey('a'), core.ActionMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{"d", runeKey('d'), core.ActionMoveRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{"s", runeKey('s'), core.ActionSoftDrop},
		{"z", runeKey('z'), core.ActionRotateCCW},
		{"x", runeKey('x'), core.ActionRotateCW},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('p'), core.ActionNone},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.Action(tt.msg))
		})
	}
}

func TestKeyMapCustomBindings(t *testing.T) {
	km := NewKeyMap(tetris.Bindings{
		"j": core.ActionMoveLeft,
		"l": core.ActionMoveRight,
	})

	assert.Equal(t, core.ActionMoveLeft, km.Action(runeKey('j')))
	assert.Equal(t, core.ActionMoveRight, km.Action(runeKey('l')))
	assert.Equal(t, core.ActionNone, km.Action(runeKey('a')))
	assert.Equal(t, core.ActionNone, km.Action(runeKey('q')))
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, "left/a", km.MoveLeft.Help().Key)
	assert.Equal(t, "ctrl+c/q", km.Quit.Help().Key)
	assert.Len(t, km.ShortHelp(), 6)

	view := km.HelpView(120)
	for _, want := range []string{"move left", "rotate clockwise", "save screenshot"} {
		assert.Contains(t, view, want)
	}
}
