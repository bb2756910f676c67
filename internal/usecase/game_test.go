package usecase_test

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tui/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameUseCase_ClickSquare(t *testing.T) {
	t.Run("Places X then O", func(t *testing.T) {
		// Given: a new game
		_, st := suite.New(t)

		// When: clicking two free squares
		require.True(t, st.Game.ClickSquare(0))
		require.True(t, st.Game.ClickSquare(4))

		// Then: the marks alternate
		board := st.Game.Board()
		assert.Equal(t, entity.X, board.Square(0).Value)
		assert.Equal(t, entity.O, board.Square(4).Value)
		assert.Equal(t, "Next player: X", board.Status)
	})

	t.Run("Second click on the same square is ignored", func(t *testing.T) {
		// Given: X played cell 0
		_, st := suite.New(t)
		st.Play(0)
		before := st.Game.State()

		// When: clicking cell 0 again
		ok := st.Game.ClickSquare(0)

		// Then: nothing changes
		assert.False(t, ok)
		assert.Equal(t, before, st.Game.State())
		assert.Equal(t, "Next player: O", st.Game.Board().Status)
	})

	t.Run("Clicks after a win are ignored", func(t *testing.T) {
		// Given: X won on the first column
		_, st := suite.New(t)
		st.Play(0, 1, 3, 4, 6)

		// When: O clicks a free square
		ok := st.Game.ClickSquare(8)

		// Then: it is ignored and the winning line stays highlighted
		assert.False(t, ok)
		board := st.Game.Board()
		assert.Equal(t, "Winner: X", board.Status)
		for _, i := range []int{0, 3, 6} {
			assert.True(t, board.Square(i).Highlighted)
			assert.Equal(t, tictactoe.DefaultColorX, board.Square(i).Color)
		}
	})

	t.Run("Playing after a jump starts a new timeline", func(t *testing.T) {
		// Given: three moves
		_, st := suite.New(t)
		st.Play(0, 1, 2)

		// When: jumping to move 1 and playing
		require.NoError(t, st.Game.JumpTo(1))
		st.Play(8)

		// Then: history has length 3 and ends on the new move
		state := st.Game.State()
		require.Len(t, state.History, 3)
		assert.Equal(t, 2, state.CurrentMove)
		assert.Equal(t, entity.O, state.CurrentSquares()[8])
		assert.Equal(t, entity.Empty, state.CurrentSquares()[1])
	})

	t.Run("Playing on an earlier winning-free snapshot is allowed", func(t *testing.T) {
		// Given: X won
		_, st := suite.New(t)
		st.Play(0, 1, 3, 4, 6)

		// When: jumping before the winning move
		require.NoError(t, st.Game.JumpTo(4))

		// Then: X may play elsewhere
		assert.True(t, st.Game.ClickSquare(8))
		assert.Len(t, st.Game.State().History, 6)
	})
}

func TestGameUseCase_JumpTo(t *testing.T) {
	_, st := suite.New(t)
	st.Play(4)

	err := st.Game.JumpTo(3)

	require.ErrorIs(t, err, apperror.ErrMoveOutOfRange)
	assert.Equal(t, 1, st.Game.State().CurrentMove)
}

func TestGameUseCase_Moves(t *testing.T) {
	// Given: marks at 4 then 0 and the order toggled
	_, st := suite.New(t)
	st.Play(4, 0)
	st.Game.ToggleOrder()

	// When: listing moves
	moves := st.Game.Moves()

	// Then: they come newest first
	require.Len(t, moves, 3)
	assert.Equal(t, "You are at move #2", moves[0].Label)
	assert.Equal(t, "Go to move #1 (2, 2)", moves[1].Label)
	assert.Equal(t, "Go to game start", moves[2].Label)
}

func TestGameUseCase_Subscribe(t *testing.T) {
	_, st := suite.New(t)

	var statuses []string
	st.Game.Subscribe(func(s tictactoe.State) {
		statuses = append(statuses, tictactoe.Status(s.CurrentSquares(), s.XIsNext()))
	})

	st.Play(0)
	st.Game.ClickSquare(0)

	assert.Equal(t, []string{"Next player: O"}, statuses)
}
