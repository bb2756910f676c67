package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tui/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Controller *tictactoe.GameController
	Game       usecase.GameUseCase
}

// New wires a fresh game with a logger that discards its output.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	controller := tictactoe.NewGameController()

	return ctx, &Suite{
		T:          t,
		Logger:     logger,
		Controller: controller,
		Game:       usecase.NewGameUseCase(logger, controller, tictactoe.DefaultPalette()),
	}
}

// Play clicks cells in order and fails the test if any click is ignored.
func (that *Suite) Play(cells ...int) {
	that.Helper()

	for _, cell := range cells {
		if !that.Game.ClickSquare(cell) {
			that.Fatalf("click on cell %d was ignored", cell)
		}
	}
}
