package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
)

const (
	squareWidth  = 7
	squareHeight = 3
)

var (
	squareStyle    = tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorWhite).Bold(true)
	squareActStyle = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite).Bold(true)
)

// square is a button holding one cell. It keeps no game state of its own.
type square struct {
	*tview.Button
	index int
}

func newSquare(index int, onClick func(int)) *square {
	s := &square{
		Button: tview.NewButton(" "),
		index:  index,
	}

	s.SetStyle(squareStyle)
	s.SetActivatedStyle(squareActStyle)
	s.SetSelectedFunc(func() { onClick(index) })

	return s
}

// apply redraws the square from its view.
func (that *square) apply(view tictactoe.SquareView) {
	label := string(view.Value)
	if view.Value == entity.Empty {
		label = " "
	}
	that.SetLabel(label)

	if !view.Highlighted {
		that.SetStyle(squareStyle)
		that.SetActivatedStyle(squareActStyle)
		return
	}

	highlight := squareStyle.Background(tcell.GetColor(view.Color))
	that.SetStyle(highlight)
	that.SetActivatedStyle(highlight.Underline(true))
}
