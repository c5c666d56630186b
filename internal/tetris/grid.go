package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Grid is a rectangular matrix of cell values indexed [row][column].
// 0 is empty; 1-7 are piece colors.
type Grid [][]int

// NewGrid creates a zeroed grid w columns wide and h rows tall.
func NewGrid(w, h int) Grid {
	g := make(Grid, h)
	for y := range g {
		g[y] = make([]int, w)
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for y, row := range g {
		c[y] = append([]int(nil), row...)
	}
	return c
}

// Fill sets every cell to v.
func (g Grid) Fill(v int) {
	for _, row := range g {
		for x := range row {
			row[x] = v
		}
	}
}

// Count returns the number of non-empty cells.
func (g Grid) Count() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// At returns the value at (x, y) and whether the row exists and the
// column lies inside it.
func (g Grid) At(x, y int) (v int, ok bool) {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return 0, false
	}
	return g[y][x], true
}

// Rotate turns a square matrix 90 degrees in place: clockwise for dir > 0,
// counter-clockwise otherwise. It transposes, then reverses each row (cw) or
// the row order (ccw).
func Rotate(m Grid, dir int) {
	for y := range m {
		for x := y + 1; x < len(m[y]); x++ {
			m[x][y], m[y][x] = m[y][x], m[x][y]
		}
	}

	if dir > 0 {
		for _, row := range m {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
		return
	}
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		m[i], m[j] = m[j], m[i]
	}
}

// Collides reports whether piece m placed with its origin at pos overlaps a
// settled arena cell. Rows above the arena are open sky and never collide;
// cells below the last row or outside the columns hit the floor or a wall.
func Collides(arena, m Grid, pos core.Point) bool {
	for y, row := range m {
		for x, v := range row {
			if v == 0 {
				continue
			}
			ay := y + pos.Y
			if ay < 0 {
				continue
			}
			if cell, ok := arena.At(x+pos.X, ay); !ok || cell != 0 {
				return true
			}
		}
	}
	return false
}
