package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Surface is a drawable area where one unit is one arena cell.
type Surface interface {
	FillRect(x, y, w, h float64, c core.Color)
	StrokeRect(x, y, w, h, lineWidth float64, c core.Color)
}

// Palette holds the colors for cell values 0-6.
type Palette [7]core.Color

// DefaultPalette is aqua, yellow, magenta, green, red, blue, orange.
func DefaultPalette() Palette {
	return Palette{
		core.MustParseColor("aqua"),
		core.MustParseColor("yellow"),
		core.MustParseColor("magenta"),
		core.MustParseColor("green"),
		core.MustParseColor("red"),
		core.MustParseColor("blue"),
		core.MustParseColor("orange"),
	}
}

// Renderer draws a Game onto a Surface.
type Renderer struct {
	Palette     Palette
	Background  core.Color
	Border      core.Color
	BorderWidth float64
}

// DefaultRenderer returns the stock look: dark gray field, black borders.
func DefaultRenderer() Renderer {
	return Renderer{
		Palette:     DefaultPalette(),
		Background:  core.MustParseColor("#333"),
		Border:      core.MustParseColor("black"),
		BorderWidth: 0.08,
	}
}

// ColorFor returns the fill for a cell value. Value 7 (the I piece) shares
// the color of index 0.
func (r Renderer) ColorFor(v int) core.Color {
	if v == 7 || v < 0 || v >= len(r.Palette) {
		return r.Palette[0]
	}
	return r.Palette[v]
}

// Draw repaints the whole field: background, settled cells, then the piece.
func (r Renderer) Draw(s Surface, g *Game) {
	s.FillRect(0, 0, ArenaWidth, ArenaHeight, r.Background)
	r.drawMatrix(s, g.arena, core.Point{})
	r.drawMatrix(s, g.player.Matrix, g.player.Pos)
}

func (r Renderer) drawMatrix(s Surface, m Grid, off core.Point) {
	for y, row := range m {
		for x, v := range row {
			if v == 0 {
				continue
			}
			px, py := float64(x+off.X), float64(y+off.Y)
			s.FillRect(px, py, 1, 1, r.ColorFor(v))
			s.StrokeRect(px, py, 1, 1, r.BorderWidth, r.Border)
		}
	}
}
