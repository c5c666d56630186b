package tui

import (
	"math"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

const (
	blockRune = '█'
	cellCols  = 2 // terminal columns per arena cell
)

// screenSurface draws arena units onto a Screen. One unit is two columns
// by one row, clipped to the arena so pieces above the top stay hidden.
type screenSurface struct {
	screen *core.Screen
	origin core.Point
	clip   core.Rect
}

func newScreenSurface(s *core.Screen, origin core.Point) screenSurface {
	return screenSurface{
		screen: s,
		origin: origin,
		clip:   core.NewRect(0, 0, tetris.ArenaWidth, tetris.ArenaHeight),
	}
}

// FillRect paints every unit the rectangle touches.
func (s screenSurface) FillRect(x, y, w, h float64, c core.Color) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	cell := core.Cell{Rune: blockRune, Color: c}

	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if !s.clip.Contains(cx, cy) {
				continue
			}
			sx := s.origin.X + cx*cellCols
			sy := s.origin.Y + cy
			for i := range cellCols {
				s.screen.SetCell(sx+i, sy, cell)
			}
		}
	}
}

// StrokeRect is a no-op: a character cell has no room for an outline.
func (screenSurface) StrokeRect(_, _, _, _, _ float64, _ core.Color) {}
