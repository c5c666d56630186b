package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// imageSurface draws arena units onto an ebiten image, scaling one unit
// to scale pixels.
type imageSurface struct {
	dst   *ebiten.Image
	scale float32
}

func (s imageSurface) FillRect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(s.dst,
		float32(x)*s.scale, float32(y)*s.scale,
		float32(w)*s.scale, float32(h)*s.scale,
		c.ToRGBA(), false)
}

func (s imageSurface) StrokeRect(x, y, w, h, lineWidth float64, c core.Color) {
	vector.StrokeRect(s.dst,
		float32(x)*s.scale, float32(y)*s.scale,
		float32(w)*s.scale, float32(h)*s.scale,
		float32(lineWidth)*s.scale, c.ToRGBA(), true)
}
