package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
)

const hintText = "1-9 play · o order · tab focus · q quit"

type uGame interface {
	ClickSquare(cell int) bool
	JumpTo(move int) error
	ToggleOrder()

	State() tictactoe.State

	Subscribe(listener tictactoe.Listener) func()
}

type Option func(*Server)

// WithScreen draws on screen instead of the terminal (useful in tests).
func WithScreen(screen tcell.Screen) Option {
	return func(s *Server) { s.app.SetScreen(screen) }
}

// Server is the interactive front end. Every state change redraws the
// whole view from the emitted state.
type Server struct {
	logger  *slog.Logger
	uGame   uGame
	palette tictactoe.Palette

	app    *tview.Application
	root   *tview.Flex
	board  *board
	info   *info
	focus  []tview.Primitive
	cursor int

	unsubscribe func()
}

func New(logger *slog.Logger, uGame uGame, palette tictactoe.Palette, opts ...Option) *Server {
	server := &Server{
		logger:  logger.With("component", "tui"),
		uGame:   uGame,
		palette: palette,
		app:     tview.NewApplication(),
	}

	server.board = newBoard(server.handleSquare)
	server.info = newInfo(server.handleToggle, server.handleJump)
	server.focus = append(server.board.focusables(), server.info.order, server.info.moves)

	hint := tview.NewTextView().SetText(hintText)

	server.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().
			AddItem(server.board, 0, 1, true).
			AddItem(server.info, 0, 1, false), 0, 1, true).
		AddItem(hint, 1, 0, false)

	server.app.SetRoot(server.root, true).
		EnableMouse(true).
		SetInputCapture(server.handleKey)

	for _, opt := range opts {
		opt(server)
	}

	server.refresh(uGame.State())
	server.unsubscribe = uGame.Subscribe(server.refresh)

	return server
}

// Start runs the UI until the user quits or ctx is done.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	defer that.unsubscribe()

	stop := context.AfterFunc(ctx, func() {
		log.Info("context canceled, stopping ui")
		that.app.Stop()
	})
	defer stop()

	if err := that.app.Run(); err != nil {
		return fmt.Errorf("failed to run ui: %w", err)
	}

	return nil
}

// refresh is the state listener. Transitions are triggered from tview
// event handlers, so it already runs on the UI goroutine.
func (that *Server) refresh(state tictactoe.State) {
	that.board.update(tictactoe.RenderBoard(state.CurrentSquares(), state.XIsNext(), that.palette))
	that.info.update(state, tictactoe.Moves(state))
}

func (that *Server) handleSquare(cell int) {
	if !that.uGame.ClickSquare(cell) {
		that.logger.Debug("square ignored", "cell", cell)
	}
}

func (that *Server) handleToggle() {
	that.uGame.ToggleOrder()
}

func (that *Server) handleJump(move int) {
	if err := that.uGame.JumpTo(move); err != nil {
		that.logger.Error("failed to jump", "move", move, "error", err)
	}
}

func (that *Server) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlC:
		that.app.Stop()
		return nil
	case tcell.KeyTab:
		that.moveFocus(1)
		return nil
	case tcell.KeyBacktab:
		that.moveFocus(-1)
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch r := event.Rune(); {
	case r >= '1' && r <= '0'+entity.BoardSize:
		that.handleSquare(int(r - '1'))
		return nil
	case r == 'o':
		that.handleToggle()
		return nil
	case r == 'q':
		that.app.Stop()
		return nil
	}

	return event
}

func (that *Server) moveFocus(step int) {
	that.cursor = (that.cursor + step + len(that.focus)) % len(that.focus)
	that.app.SetFocus(that.focus[that.cursor])
}
