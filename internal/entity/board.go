package entity

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Mark is the content of one cell.
type Mark string

// Board is one snapshot of the grid, indexed row-major (row*3+col).
// It is a value type, so assigning a Board copies all cells.
type Board [BoardSize]Mark

// Line is a triple of cell indices.
type Line [3]int

// WinLines are the rows, the columns and the two diagonals, in that order.
var WinLines = [...]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that Board) IsOccupied(cell int) bool {
	return that[cell] != Empty
}

// Place returns a copy of the board with mark at cell.
func (that Board) Place(cell int, mark Mark) Board {
	that[cell] = mark
	return that
}

// Diff returns the first index where the two boards differ, or -1.
func (that Board) Diff(other Board) int {
	for i := range that {
		if that[i] != other[i] {
			return i
		}
	}

	return -1
}

// Contains reports whether cell is one of the line's indices.
func (that Line) Contains(cell int) bool {
	for _, idx := range that {
		if idx == cell {
			return true
		}
	}

	return false
}

// MarkFor returns the mark of the player to move.
func MarkFor(xIsNext bool) Mark {
	if xIsNext {
		return X
	}
	return O
}

// Position converts a cell index to a 1-based (row, col) pair.
func Position(cell int) (int, int) {
	return cell/BoardSide + 1, cell%BoardSide + 1
}
