package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
)

var errQuit = errors.New("quit")

type uGame interface {
	ClickSquare(cell int) bool
	JumpTo(move int) error
	ToggleOrder()

	State() tictactoe.State
	Board() tictactoe.BoardView
	Moves() []tictactoe.MoveEntry
}

// Server is a line based front end: one command per line, one redraw per command.
type Server struct {
	logger *slog.Logger
	uGame  uGame
	out    *termenv.Output

	handlers map[string]func(args []string) error
}

func New(logger *slog.Logger, uGame uGame, out io.Writer, opts ...termenv.OutputOption) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		out:    termenv.NewOutput(out, opts...),

		handlers: make(map[string]func([]string) error),
	}

	server.handlers["play"] = server.handlePlay
	server.handlers["p"] = server.handlePlay
	server.handlers["jump"] = server.handleJump
	server.handlers["j"] = server.handleJump
	server.handlers["order"] = server.handleOrder
	server.handlers["o"] = server.handleOrder
	server.handlers["moves"] = server.handleMoves
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["q"] = server.handleQuit

	return server
}

// Start reads commands from in until EOF, quit or ctx is done.
func (that *Server) Start(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Start")

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	that.render()
	that.prompt()

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping console")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}

				log.Info("input closed")
				return nil
			}

			if err := that.dispatch(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}

				log.Debug("command failed", "line", line, "error", err)
				that.printf("error: %v\n", err)
			}

			that.prompt()
		}
	}
}

func (that *Server) dispatch(line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	// a bare cell number is a shortcut for play
	if _, err := strconv.Atoi(fields[0]); err == nil && len(fields) == 1 {
		fields = []string{"play", fields[0]}
	}

	handler, ok := that.handlers[fields[0]]
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrUnknownCommand, fields[0])
	}

	return handler(fields[1:])
}

func (that *Server) handlePlay(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: play <cell 1-%d>", entity.BoardSize)
	}

	cell, err := strconv.Atoi(args[0])
	if err != nil || cell < 1 || cell > entity.BoardSize {
		return fmt.Errorf("%w: %s", apperror.ErrCellOutOfRange, args[0])
	}

	that.uGame.ClickSquare(cell - 1)
	that.render()

	return nil
}

func (that *Server) handleJump(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: jump <move>")
	}

	move, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s", apperror.ErrMoveOutOfRange, args[0])
	}

	if err = that.uGame.JumpTo(move); err != nil {
		return err
	}

	that.render()

	return nil
}

func (that *Server) handleOrder(_ []string) error {
	that.uGame.ToggleOrder()
	that.render()

	return nil
}

func (that *Server) handleMoves(_ []string) error {
	that.renderMoves()
	return nil
}

func (that *Server) handleHelp(_ []string) error {
	that.printf("%s", helpText)
	return nil
}

func (that *Server) handleQuit(_ []string) error {
	return errQuit
}

func (that *Server) prompt() {
	that.printf("> ")
}

func (that *Server) printf(format string, args ...any) {
	// write errors on the terminal are not recoverable here
	_, _ = fmt.Fprintf(that.out, format, args...)
}

const helpText = `commands:
  play <1-9>   mark a cell, numbered left to right, top to bottom (or just the number)
  jump <move>  go back or forward to a move
  order        toggle ascending/descending move list
  moves        print the move list
  quit         leave the game
`
