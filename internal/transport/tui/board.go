package tui

import (
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
)

// board is the status line above a 3x3 grid of squares.
type board struct {
	*tview.Flex

	status  *tview.TextView
	grid    *tview.Grid
	squares [entity.BoardSize]*square
}

func newBoard(onClick func(int)) *board {
	b := &board{
		Flex:   tview.NewFlex().SetDirection(tview.FlexRow),
		status: tview.NewTextView().SetDynamicColors(false),
		grid:   tview.NewGrid(),
	}

	b.grid.SetBorders(true)
	b.grid.SetRows(squareHeight, squareHeight, squareHeight)
	b.grid.SetColumns(squareWidth, squareWidth, squareWidth)

	for row := 0; row < entity.BoardSide; row++ {
		for col := 0; col < entity.BoardSide; col++ {
			index := row*entity.BoardSide + col
			b.squares[index] = newSquare(index, onClick)
			b.grid.AddItem(b.squares[index], row, col, 1, 1, 0, 0, index == 0)
		}
	}

	gridHeight := entity.BoardSide*squareHeight + entity.BoardSide + 1
	gridWidth := entity.BoardSide*squareWidth + entity.BoardSide + 1

	b.AddItem(b.status, 2, 0, false)
	b.AddItem(tview.NewFlex().
		AddItem(b.grid, gridWidth, 0, true).
		AddItem(nil, 0, 1, false), gridHeight, 0, true)
	b.AddItem(nil, 0, 1, false)

	return b
}

func (that *board) update(view tictactoe.BoardView) {
	that.status.SetText(view.Status)

	for i, sq := range that.squares {
		sq.apply(view.Square(i))
	}
}

// focusables lists the squares in index order for keyboard navigation.
func (that *board) focusables() []tview.Primitive {
	out := make([]tview.Primitive, 0, len(that.squares))
	for _, sq := range that.squares {
		out = append(out, sq)
	}

	return out
}
