package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

const (
	OrderAscending  = "Ascending"
	OrderDescending = "Descending"
)

// MoveEntry is one line of the move list.
// Current entries are informational and cannot be jumped to.
type MoveEntry struct {
	Move    int
	Label   string
	Current bool
}

// Moves derives the move list of state in display order.
func Moves(state State) []MoveEntry {
	entries := make([]MoveEntry, 0, len(state.History))

	for move := range state.History {
		entries = append(entries, MoveEntry{
			Move:    move,
			Label:   moveLabel(state, move),
			Current: move == state.CurrentMove,
		})
	}

	if !state.IsAscending {
		slices.Reverse(entries)
	}

	return entries
}

// OrderLabel is the caption of the order toggle.
func OrderLabel(state State) string {
	if state.IsAscending {
		return OrderAscending
	}
	return OrderDescending
}

func moveLabel(state State, move int) string {
	switch {
	case move == state.CurrentMove:
		return fmt.Sprintf("You are at move #%d", move)
	case move == 0:
		return "Go to game start"
	default:
		cell := state.History[move].Diff(state.History[move-1])
		row, col := entity.Position(cell)
		return fmt.Sprintf("Go to move #%d (%d, %d)", move, row, col)
	}
}
