package domain

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Board is a fixed 3x3 board stored row-major.
type Board [9]Cell

// Lines lists every winning triple: rows, then columns, then diagonals.
var Lines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the occupant of the first completed line in Lines order,
// or Empty when no line is complete.
func Winner(b Board) Cell {
	for _, ln := range Lines {
		a := b[ln[0]]
		if a != Empty && a == b[ln[1]] && a == b[ln[2]] {
			return a
		}
	}
	return Empty
}

// MarkForStep returns the mark that moves on the board at the given step.
// X always opens, so even steps belong to X.
func MarkForStep(step int) Cell {
	if step%2 == 0 {
		return X
	}
	return O
}
