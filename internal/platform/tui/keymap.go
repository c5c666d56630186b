package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// KeyMap translates Bubble Tea key messages to game actions.
// It also implements help.KeyMap.
type KeyMap struct {
	MoveLeft   key.Binding
	MoveRight  key.Binding
	SoftDrop   key.Binding
	RotateCCW  key.Binding
	RotateCW   key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds bindings from a key table.
func NewKeyMap(b tetris.Bindings) KeyMap {
	bind := func(a core.Action, desc string) key.Binding {
		keys := b.Keys(a)
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), desc),
		)
	}

	return KeyMap{
		MoveLeft:  bind(core.ActionMoveLeft, "move left"),
		MoveRight: bind(core.ActionMoveRight, "move right"),
		SoftDrop:  bind(core.ActionSoftDrop, "soft drop"),
		RotateCCW: bind(core.ActionRotateCCW, "rotate counter-clockwise"),
		RotateCW:  bind(core.ActionRotateCW, "rotate clockwise"),
		Quit:      bind(core.ActionQuit, "quit"),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save screenshot"),
		),
	}
}

// DefaultKeyMap binds the stock keys.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(tetris.DefaultBindings())
}

// Action returns the game action for msg, or ActionNone.
// Quit is checked first so it cannot be shadowed.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.MoveLeft):
		return core.ActionMoveLeft
	case key.Matches(msg, k.MoveRight):
		return core.ActionMoveRight
	case key.Matches(msg, k.SoftDrop):
		return core.ActionSoftDrop
	case key.Matches(msg, k.RotateCCW):
		return core.ActionRotateCCW
	case key.Matches(msg, k.RotateCW):
		return core.ActionRotateCW
	}
	return core.ActionNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveLeft, k.MoveRight, k.SoftDrop, k.RotateCCW, k.RotateCW, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveLeft, k.MoveRight, k.SoftDrop},
		{k.RotateCCW, k.RotateCW},
		{k.Quit, k.Screenshot},
	}
}

// HelpView renders every binding as a help table.
func (k KeyMap) HelpView(width int) string {
	h := help.New()
	h.Width = width
	return h.FullHelpView(k.FullHelp())
}
