package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
)

const (
	rowSeparator = "---+---+---"
	highlightFg  = "#ffffff"
)

func (that *Server) render() {
	board := that.uGame.Board()

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(that.out.String(board.Status).Bold().String())
	b.WriteString("\n\n")

	for row, squares := range board.Rows {
		cells := make([]string, 0, len(squares))
		for _, square := range squares {
			cells = append(cells, that.square(square))
		}

		b.WriteString(strings.Join(cells, "|"))
		b.WriteString("\n")

		if row < entity.BoardSide-1 {
			b.WriteString(rowSeparator)
			b.WriteString("\n")
		}
	}

	that.printf("%s", b.String())
	that.renderMoves()
}

// square draws one cell three columns wide.
func (that *Server) square(square tictactoe.SquareView) string {
	value := string(square.Value)
	if square.Value == entity.Empty {
		value = " "
	}

	text := " " + value + " "
	if !square.Highlighted {
		return text
	}

	return that.out.String(text).
		Background(that.out.Color(square.Color)).
		Foreground(that.out.Color(highlightFg)).
		Bold().
		String()
}

func (that *Server) renderMoves() {
	var b strings.Builder

	b.WriteString("\n[" + tictactoe.OrderLabel(that.uGame.State()) + "]\n")

	for _, move := range that.uGame.Moves() {
		if move.Current {
			b.WriteString("  * " + move.Label + "\n")
			continue
		}

		b.WriteString("    " + move.Label + "\n")
	}

	that.printf("%s", b.String())
}
