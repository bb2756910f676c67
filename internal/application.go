package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tui/internal/config"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tui/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-tui/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe-tui/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ui, err := ResolveUI(conf.UI, isTerminal(os.Stdin), isTerminal(os.Stdout))
	if err != nil {
		return err
	}

	palette := tictactoe.Palette{X: conf.Colors.WinnerX, O: conf.Colors.WinnerO}
	gameController := tictactoe.NewGameController()
	gameUseCase := usecase.NewGameUseCase(logger, gameController, palette)

	log.Info("Starting game", "ui", ui)

	switch ui {
	case config.UITview:
		err = tui.New(logger, gameUseCase, palette).Start(ctx)
	default:
		err = RunConsole(ctx, logger, gameUseCase, os.Stdin, os.Stdout)
	}

	if err != nil {
		return fmt.Errorf("%s ui error: %w", ui, err)
	}

	log.Info("Game closed", "moves", len(gameUseCase.State().History)-1)

	return nil
}

// RunConsole plays on the line based front end.
func RunConsole(ctx context.Context, logger *slog.Logger, game usecase.GameUseCase, in io.Reader, out io.Writer) error {
	return console.New(logger, game, out).Start(ctx, in)
}

// ResolveUI maps the configured ui to a concrete front end.
// auto picks tview only when both stdin and stdout are terminals.
func ResolveUI(ui string, stdinTTY, stdoutTTY bool) (string, error) {
	switch ui {
	case config.UITview, config.UIConsole:
		return ui, nil
	case config.UIAuto, "":
		if stdinTTY && stdoutTTY {
			return config.UITview, nil
		}
		return config.UIConsole, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownUI, ui)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
