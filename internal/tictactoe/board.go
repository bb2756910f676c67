package tictactoe

import "github.com/rocketscienceinc/tictactoe-tui/internal/entity"

const (
	DefaultColorX = "#e02f1f"
	DefaultColorO = "#1f36e0"

	statusWinner = "Winner: "
	statusDraw   = "Draw"
	statusNext   = "Next player: "
)

// Palette holds the highlight colors of a winning line, keyed by winner.
type Palette struct {
	X string
	O string
}

func DefaultPalette() Palette {
	return Palette{X: DefaultColorX, O: DefaultColorO}
}

func (that Palette) colorFor(mark entity.Mark) string {
	if mark == entity.X {
		return that.X
	}
	return that.O
}

// SquareView is everything needed to draw one cell.
type SquareView struct {
	Index       int
	Value       entity.Mark
	Highlighted bool
	Color       string
}

// BoardView is the board derived from a single snapshot.
type BoardView struct {
	Status string
	Rows   [entity.BoardSide][entity.BoardSide]SquareView
}

// Square returns the view of the cell at index.
func (that BoardView) Square(index int) SquareView {
	return that.Rows[index/entity.BoardSide][index%entity.BoardSide]
}

// HandleClick places the next player's mark at cell on a copy of squares.
// It reports false, and returns squares unchanged, when the game is already
// won, the cell is taken or the index is outside the board.
func HandleClick(squares entity.Board, xIsNext bool, cell int) (entity.Board, bool) {
	if cell < 0 || cell >= entity.BoardSize {
		return squares, false
	}

	if _, won := DetectWinner(squares); won || squares.IsOccupied(cell) {
		return squares, false
	}

	return squares.Place(cell, entity.MarkFor(xIsNext)), true
}

func Status(squares entity.Board, xIsNext bool) string {
	switch winner := Winner(squares); {
	case winner != entity.Empty:
		return statusWinner + string(winner)
	case IsDraw(squares):
		return statusDraw
	default:
		return statusNext + string(entity.MarkFor(xIsNext))
	}
}

// RenderBoard derives the full board view, rows first then columns.
func RenderBoard(squares entity.Board, xIsNext bool, palette Palette) BoardView {
	view := BoardView{Status: Status(squares, xIsNext)}

	line, won := DetectWinner(squares)
	color := palette.colorFor(squares[line[0]])

	for row := 0; row < entity.BoardSide; row++ {
		for col := 0; col < entity.BoardSide; col++ {
			index := row*entity.BoardSide + col

			square := SquareView{
				Index: index,
				Value: squares[index],
			}

			if won && line.Contains(index) {
				square.Highlighted = true
				square.Color = color
			}

			view.Rows[row][col] = square
		}
	}

	return view
}
