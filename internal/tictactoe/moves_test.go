package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoves(t *testing.T) {
	t.Run("Labels moves by the changed cell", func(t *testing.T) {
		// Given: marks placed at 4 then 0
		controller := NewGameController()
		play(t, controller, 4, 0)
		require.NoError(t, controller.JumpTo(0))

		// When: deriving the move list
		moves := Moves(controller.State())

		// Then: each label carries the 1-based row and column
		expected := []MoveEntry{
			{Move: 0, Label: "You are at move #0", Current: true},
			{Move: 1, Label: "Go to move #1 (2, 2)"},
			{Move: 2, Label: "Go to move #2 (1, 1)"},
		}
		assert.Equal(t, expected, moves)
	})

	t.Run("Start entry links to game start", func(t *testing.T) {
		controller := NewGameController()
		play(t, controller, 8)

		moves := Moves(controller.State())

		require.Len(t, moves, 2)
		assert.Equal(t, "Go to game start", moves[0].Label)
		assert.False(t, moves[0].Current)
		assert.Equal(t, "You are at move #1", moves[1].Label)
		assert.True(t, moves[1].Current)
	})

	t.Run("Descending order reverses the list", func(t *testing.T) {
		// Given: two moves and the order toggled
		controller := NewGameController()
		play(t, controller, 2, 6)
		controller.ToggleOrder()

		// When: deriving the move list
		moves := Moves(controller.State())

		// Then: the latest move comes first
		require.Len(t, moves, 3)
		assert.Equal(t, []int{2, 1, 0}, []int{moves[0].Move, moves[1].Move, moves[2].Move})
		assert.Equal(t, "You are at move #2", moves[0].Label)
		assert.Equal(t, "Go to move #1 (1, 3)", moves[1].Label)
		assert.Equal(t, "Go to game start", moves[2].Label)
	})
}

func TestOrderLabel(t *testing.T) {
	controller := NewGameController()
	assert.Equal(t, OrderAscending, OrderLabel(controller.State()))

	controller.ToggleOrder()
	assert.Equal(t, OrderDescending, OrderLabel(controller.State()))
}
