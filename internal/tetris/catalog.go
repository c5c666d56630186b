package tetris

import "math/rand"

// PieceType names one of the seven pieces.
type PieceType string

const (
	PieceI PieceType = "iBlock"
	PieceO PieceType = "oBlock"
	PieceT PieceType = "tBlock"
	PieceS PieceType = "sBlock"
	PieceZ PieceType = "zBlock"
	PieceJ PieceType = "jBlock"
	PieceL PieceType = "lBlock"
)

// PieceTypes lists every piece in catalog order.
var PieceTypes = []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

// NewBlock builds a fresh shape grid for the named piece. Unknown names get
// a fallback shape. Every shape is square so Rotate can work in place.
func NewBlock(name PieceType) Grid {
	switch name {
	case PieceI:
		return Grid{
			{0, 7, 0, 0},
			{0, 7, 0, 0},
			{0, 7, 0, 0},
			{0, 7, 0, 0},
		}
	case PieceO:
		return Grid{
			{1, 1},
			{1, 1},
		}
	case PieceT:
		return Grid{
			{0, 0, 0},
			{2, 2, 2},
			{0, 2, 0},
		}
	case PieceS:
		return Grid{
			{0, 0, 0},
			{0, 3, 3},
			{3, 3, 0},
		}
	case PieceZ:
		return Grid{
			{0, 0, 0},
			{4, 4, 0},
			{0, 4, 4},
		}
	case PieceJ:
		return Grid{
			{0, 5, 0},
			{0, 5, 0},
			{5, 5, 0},
		}
	case PieceL:
		return Grid{
			{0, 6, 0},
			{0, 6, 0},
			{0, 6, 6},
		}
	}
	return Grid{
		{0, 0, 0},
		{1, 2, 3},
		{0, 4, 0},
	}
}

// RandomBlock picks a piece uniformly at random.
func RandomBlock(rng *rand.Rand) Grid {
	return NewBlock(PieceTypes[rng.Intn(len(PieceTypes))])
}
