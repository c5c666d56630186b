package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func fillRow(arena Grid, y, v int) {
	for x := range arena[y] {
		arena[y][x] = v
	}
}

func TestSweepNoFullRows(t *testing.T) {
	arena := NewArena()
	arena[19][0] = 2
	arena[10][5] = 6
	fillRow(arena, 15, 1)
	arena[15][9] = 0
	before := arena.Clone()

	rows, points := Sweep(arena, DefaultLinePoints)

	assert.Zero(t, rows)
	assert.Zero(t, points)
	assert.Equal(t, before, arena)
}

func TestSweepSingleBottomRow(t *testing.T) {
	arena := NewArena()
	fillRow(arena, 19, 1)
	arena[18][0] = 5

	rows, points := Sweep(arena, DefaultLinePoints)

	assert.Equal(t, 1, rows)
	assert.Equal(t, 10, points)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, arena[0])
	assert.Equal(t, []int{5, 0, 0, 0, 0, 0, 0, 0, 0, 0}, arena[19], "rows above move down")
	assert.Equal(t, 1, arena.Count())
	assert.Equal(t, ArenaHeight, arena.Height())
}

func TestSweepDoublesWithinOneCall(t *testing.T) {
	tests := []struct {
		name   string
		full   []int
		rows   int
		points int
	}{
		{"two contiguous rows", []int{18, 19}, 2, 10 + 20},
		{"three contiguous rows", []int{17, 18, 19}, 3, 10 + 20 + 40},
		{"four contiguous rows", []int{16, 17, 18, 19}, 4, 10 + 20 + 40 + 80},
		{"split by a partial row", []int{17, 19}, 2, 10 + 20},
		{"rows high in the stack", []int{5, 6}, 2, 10 + 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			arena := NewArena()
			for y := 10; y < ArenaHeight; y++ {
				arena[y][0] = 4
			}
			for _, y := range tc.full {
				fillRow(arena, y, 2)
			}
			settled := arena.Count()

			rows, points := Sweep(arena, DefaultLinePoints)

			assert.Equal(t, tc.rows, rows)
			assert.Equal(t, tc.points, points)
			assert.Equal(t, settled-tc.rows*ArenaWidth, arena.Count())
			for y := 0; y < tc.rows; y++ {
				assert.Zero(t, arena[y][0], "row %d should be fresh", y)
			}
		})
	}
}

func TestSweepCustomLinePoints(t *testing.T) {
	arena := NewArena()
	fillRow(arena, 18, 1)
	fillRow(arena, 19, 1)

	_, points := Sweep(arena, 100)

	assert.Equal(t, 300, points)
}

func TestSweepSkipsTopRow(t *testing.T) {
	arena := NewArena()
	fillRow(arena, 0, 3)

	rows, points := Sweep(arena, DefaultLinePoints)

	assert.Zero(t, rows)
	assert.Zero(t, points)
	assert.Equal(t, ArenaWidth, arena.Count())
}

func TestMerge(t *testing.T) {
	arena := NewArena()
	Merge(arena, NewBlock(PieceT), core.Point{X: 2, Y: 17})

	assert.Equal(t, []int{0, 0, 2, 2, 2, 0, 0, 0, 0, 0}, arena[18])
	assert.Equal(t, []int{0, 0, 0, 2, 0, 0, 0, 0, 0, 0}, arena[19])
	assert.Equal(t, 4, arena.Count())
}

func TestMergeKeepsExistingCellsUnderEmptyPieceCells(t *testing.T) {
	arena := NewArena()
	arena[17][2] = 6

	Merge(arena, NewBlock(PieceT), core.Point{X: 2, Y: 17})

	assert.Equal(t, 6, arena[17][2])
}

func TestMergeSkipsCellsOutsideArena(t *testing.T) {
	arena := NewArena()

	assert.NotPanics(t, func() {
		Merge(arena, NewBlock(PieceI), core.Point{X: 3, Y: -2})
	})
	assert.Equal(t, 2, arena.Count())
	assert.Equal(t, 7, arena[0][4])
	assert.Equal(t, 7, arena[1][4])
}
