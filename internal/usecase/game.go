package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
)

// GameUseCase is what the front ends drive.
type GameUseCase interface {
	ClickSquare(cell int) bool
	JumpTo(move int) error
	ToggleOrder()

	State() tictactoe.State
	Board() tictactoe.BoardView
	Moves() []tictactoe.MoveEntry

	Subscribe(listener tictactoe.Listener) func()
}

type gameController interface {
	Commit(next entity.Board)
	JumpTo(move int) error
	ToggleOrder()
	State() tictactoe.State
	Subscribe(l tictactoe.Listener) func()
}

type gameUseCase struct {
	logger     *slog.Logger
	controller gameController
	palette    tictactoe.Palette
}

func NewGameUseCase(logger *slog.Logger, controller gameController, palette tictactoe.Palette) GameUseCase {
	return &gameUseCase{
		logger:     logger.With("component", "usecase"),
		controller: controller,
		palette:    palette,
	}
}

// ClickSquare commits the next player's mark at cell.
// Clicks on a taken cell or a finished board are ignored and report false.
func (that *gameUseCase) ClickSquare(cell int) bool {
	log := that.logger.With("method", "ClickSquare", "cell", cell)

	state := that.controller.State()

	next, ok := tictactoe.HandleClick(state.CurrentSquares(), state.XIsNext(), cell)
	if !ok {
		log.Debug("click ignored", "move", state.CurrentMove)
		return false
	}

	if dropped := len(state.History) - 1 - state.CurrentMove; dropped > 0 {
		log.Info("new timeline", "from", state.CurrentMove, "dropped", dropped)
	}

	that.controller.Commit(next)

	log.Debug("move committed", "mark", next[cell], "move", state.CurrentMove+1)

	return true
}

func (that *gameUseCase) JumpTo(move int) error {
	if err := that.controller.JumpTo(move); err != nil {
		return fmt.Errorf("failed to jump: %w", err)
	}

	that.logger.Debug("jumped", "method", "JumpTo", "move", move)

	return nil
}

func (that *gameUseCase) ToggleOrder() {
	that.controller.ToggleOrder()
}

func (that *gameUseCase) State() tictactoe.State {
	return that.controller.State()
}

func (that *gameUseCase) Board() tictactoe.BoardView {
	state := that.controller.State()
	return tictactoe.RenderBoard(state.CurrentSquares(), state.XIsNext(), that.palette)
}

func (that *gameUseCase) Moves() []tictactoe.MoveEntry {
	return tictactoe.Moves(that.controller.State())
}

func (that *gameUseCase) Subscribe(listener tictactoe.Listener) func() {
	return that.controller.Subscribe(listener)
}
