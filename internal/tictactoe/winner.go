package tictactoe

import "github.com/rocketscienceinc/tictactoe-tui/internal/entity"

// DetectWinner returns the first completed line in entity.WinLines order.
func DetectWinner(board entity.Board) (entity.Line, bool) {
	for _, line := range entity.WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.Empty && a == b && b == c {
			return line, true
		}
	}

	return entity.Line{}, false
}

// Winner returns the mark on the winning line, or entity.Empty.
func Winner(board entity.Board) entity.Mark {
	line, ok := DetectWinner(board)
	if !ok {
		return entity.Empty
	}

	return board[line[0]]
}

func IsDraw(board entity.Board) bool {
	_, won := DetectWinner(board)
	return board.IsFull() && !won
}
