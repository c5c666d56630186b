package core

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a cell color stored as "#rrggbb".
// The zero value means the terminal's default foreground.
type Color string

// ColorDefault leaves the terminal foreground untouched.
const ColorDefault Color = ""

// ParseColor resolves an SVG color name ("aqua", "orange") or a hex
// string ("#333", "#1e90ff") into a Color.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return ColorDefault, fmt.Errorf("core: empty color")
	}

	if rgba, ok := colornames.Map[name]; ok {
		c, _ := colorful.MakeColor(rgba)
		return Color(c.Hex()), nil
	}

	c, err := colorful.Hex(name)
	if err != nil {
		return ColorDefault, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return Color(c.Hex()), nil
}

// MustParseColor is ParseColor for compile-time constants. Panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToRGBA converts the color for image-based surfaces.
// ColorDefault and malformed values come back as opaque black.
func (c Color) ToRGBA() color.RGBA {
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b := parsed.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
