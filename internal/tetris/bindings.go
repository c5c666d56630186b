package tetris

import (
	"sort"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Bindings maps lower-case key names ("left", "d", "ctrl+c") to actions.
type Bindings map[string]core.Action

// DefaultBindings returns arrows/WASD movement, z/x rotation and q to quit.
func DefaultBindings() Bindings {
	return Bindings{
		"left":   core.ActionMoveLeft,
		"a":      core.ActionMoveLeft,
		"right":  core.ActionMoveRight,
		"d":      core.ActionMoveRight,
		"down":   core.ActionSoftDrop,
		"s":      core.ActionSoftDrop,
		"z":      core.ActionRotateCCW,
		"x":      core.ActionRotateCW,
		"q":      core.ActionQuit,
		"ctrl+c": core.ActionQuit,
	}
}

// Lookup returns the action bound to key, or ActionNone.
func (b Bindings) Lookup(key string) core.Action {
	if a, ok := b[strings.ToLower(key)]; ok {
		return a
	}
	return core.ActionNone
}

// Keys returns the keys bound to a, in sorted order.
func (b Bindings) Keys(a core.Action) []string {
	var keys []string
	for k, v := range b {
		if v == a {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return keyLess(keys[i], keys[j])
	})
	return keys
}

// keyLess orders named keys ("left") before single characters so help
// text reads "left/a" rather than "a/left".
func keyLess(a, b string) bool {
	if (len(a) > 1) != (len(b) > 1) {
		return len(a) > 1
	}
	return a < b
}
