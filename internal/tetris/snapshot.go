package tetris

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Frames    uint64
	Score     int
	HighScore int
	X, Y      int
	Piece     Grid
	Arena     Grid
	Settled   int // Non-empty arena cells
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frames:    g.frames,
		Score:     g.player.Score,
		HighScore: g.player.HighScore,
		X:         g.player.Pos.X,
		Y:         g.player.Pos.Y,
		Piece:     g.player.Matrix.Clone(),
		Arena:     g.arena.Clone(),
		Settled:   g.arena.Count(),
	}
}
