package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// namedKeys spells ebiten keys the way Bubble Tea does, so one key table
// serves both frontends.
var namedKeys = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  "left",
	ebiten.KeyArrowRight: "right",
	ebiten.KeyArrowDown:  "down",
	ebiten.KeyArrowUp:    "up",
	ebiten.KeySpace:      "space",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyEscape:     "esc",
	ebiten.KeyTab:        "tab",
	ebiten.KeyBackspace:  "backspace",
}

// keyName returns the binding name for k, prefixed with "ctrl+" when
// ctrl is held. Keys without a name report false.
func keyName(k ebiten.Key, ctrl bool) (string, bool) {
	name, ok := namedKeys[k]
	if !ok {
		s := k.String()
		switch {
		case len(s) == 1:
			name = strings.ToLower(s)
		case strings.HasPrefix(s, "Digit"):
			name = strings.TrimPrefix(s, "Digit")
		default:
			return "", false
		}
	}
	if ctrl {
		name = "ctrl+" + name
	}
	return name, true
}
