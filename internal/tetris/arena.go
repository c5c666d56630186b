package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Arena dimensions in cells.
const (
	ArenaWidth  = 10
	ArenaHeight = 20
)

// DefaultLinePoints is the base award for the first row cleared by a sweep.
const DefaultLinePoints = 10

// NewArena creates an empty arena.
func NewArena() Grid {
	return NewGrid(ArenaWidth, ArenaHeight)
}

// Merge locks piece m into the arena at pos. Cells that fall outside the
// arena are skipped.
func Merge(arena, m Grid, pos core.Point) {
	for y, row := range m {
		for x, v := range row {
			if v == 0 {
				continue
			}
			if _, ok := arena.At(x+pos.X, y+pos.Y); ok {
				arena[y+pos.Y][x+pos.X] = v
			}
		}
	}
}

// Sweep removes full rows bottom-up, dropping everything above by one row
// per clear. Row 0 is never examined. The first clear in a call is worth
// linePoints and each further clear in the same call is worth double the
// previous one. Returns the number of rows cleared and the points earned.
func Sweep(arena Grid, linePoints int) (rows, points int) {
	rowCount := 1
	for y := len(arena) - 1; y > 0; y-- {
		if !isFull(arena[y]) {
			continue
		}

		row := arena[y]
		for x := range row {
			row[x] = 0
		}
		copy(arena[1:y+1], arena[:y])
		arena[0] = row
		y++

		rows++
		points += rowCount * linePoints
		rowCount *= 2
	}
	return rows, points
}

func isFull(row []int) bool {
	for _, v := range row {
		if v == 0 {
			return false
		}
	}
	return true
}
