package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBlockShapes(t *testing.T) {
	tests := []struct {
		name  PieceType
		size  int
		color int
	}{
		{PieceI, 4, 7},
		{PieceO, 2, 1},
		{PieceT, 3, 2},
		{PieceS, 3, 3},
		{PieceZ, 3, 4},
		{PieceJ, 3, 5},
		{PieceL, 3, 6},
	}

	for _, tc := range tests {
		t.Run(string(tc.name), func(t *testing.T) {
			m := NewBlock(tc.name)
			assert.Equal(t, tc.size, m.Height())
			for _, row := range m {
				assert.Len(t, row, tc.size, "piece must be square")
				for _, v := range row {
					assert.Contains(t, []int{0, tc.color}, v)
				}
			}
			assert.Equal(t, 4, m.Count())
		})
	}
}

func TestNewBlockReturnsFreshGrid(t *testing.T) {
	a := NewBlock(PieceS)
	a[1][1] = 0
	Rotate(a, 1)

	assert.Equal(t, Grid{{0, 0, 0}, {0, 3, 3}, {3, 3, 0}}, NewBlock(PieceS))
}

func TestNewBlockFallback(t *testing.T) {
	assert.Equal(t, Grid{{0, 0, 0}, {1, 2, 3}, {0, 4, 0}}, NewBlock("pentomino"))
}

func TestRandomBlockCoversCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[int]bool)

	for range 500 {
		m := RandomBlock(rng)
		for _, row := range m {
			for _, v := range row {
				if v != 0 {
					seen[v] = true
				}
			}
		}
	}

	for v := 1; v <= 7; v++ {
		assert.True(t, seen[v], "color %d never spawned", v)
	}
}
