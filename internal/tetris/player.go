package tetris

import (
	"strconv"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Player is the falling piece and the scores it has earned.
type Player struct {
	Pos       core.Point
	Matrix    Grid
	Score     int
	HighScore int
}

// Move shifts the piece one column in dir (-1 or +1). A move that would
// collide is undone.
func (g *Game) Move(dir int) {
	p := &g.player
	p.Pos.X += dir
	if Collides(g.arena, p.Matrix, p.Pos) {
		p.Pos.X -= dir
	}
}

// Drop moves the piece down one row. When it cannot move, the piece is
// locked into the arena, the next piece spawns, full rows are swept and
// the score is pushed to the sink. The gravity counter restarts either way.
func (g *Game) Drop() {
	p := &g.player
	p.Pos.Y++
	if Collides(g.arena, p.Matrix, p.Pos) {
		p.Pos.Y--
		Merge(g.arena, p.Matrix, p.Pos)
		g.Spawn()
		if rows, points := Sweep(g.arena, g.settings.LinePoints); rows > 0 {
			p.Score += points
			g.observer.LinesCleared(rows, points, p.Score)
		}
		g.sink.SetText(strconv.Itoa(p.Score))
	}
	g.dropCounter = 0
}

// Spawn replaces the piece with a random one centered on the top row.
// If it collides there the arena has topped out: every cell is cleared,
// the high score absorbs the current score and the score restarts at 0.
func (g *Game) Spawn() {
	p := &g.player
	p.Matrix = RandomBlock(g.rng)
	p.Pos = core.Point{
		X: g.arena.Width()/2 - p.Matrix.Width()/2,
		Y: 0,
	}

	if !Collides(g.arena, p.Matrix, p.Pos) {
		return
	}

	g.arena.Fill(0)
	final := p.Score
	if p.Score > p.HighScore {
		p.HighScore = p.Score
	}
	p.Score = 0
	g.observer.ToppedOut(final, p.HighScore)
}

// Rotate turns the piece (dir > 0 clockwise). If the new orientation
// collides, the piece is kicked sideways by +1, -2, +3, -4... until it
// fits; once the kick would exceed the piece width the rotation is undone.
func (g *Game) Rotate(dir int) {
	p := &g.player
	x := p.Pos.X
	offset := 1

	Rotate(p.Matrix, dir)
	for Collides(g.arena, p.Matrix, p.Pos) {
		p.Pos.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}
		if offset > p.Matrix.Width() {
			Rotate(p.Matrix, -dir)
			p.Pos.X = x
			return
		}
	}
}
