package tictactoe

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

// State is an immutable copy of the controller state.
type State struct {
	History     []entity.Board
	CurrentMove int
	IsAscending bool
}

func (that State) XIsNext() bool {
	return that.CurrentMove%2 == 0
}

func (that State) CurrentSquares() entity.Board {
	return that.History[that.CurrentMove]
}

// Listener is called with the new state after every transition.
type Listener func(State)

// GameController owns the history of snapshots and the pointer into it.
type GameController struct {
	mu sync.Mutex

	history     []entity.Board
	currentMove int
	isAscending bool

	listeners map[int]Listener
	nextID    int
}

func NewGameController() *GameController {
	return &GameController{
		history:     []entity.Board{{}},
		isAscending: true,
		listeners:   make(map[int]Listener),
	}
}

// Commit drops every snapshot after the current move and appends next.
func (that *GameController) Commit(next entity.Board) {
	that.mu.Lock()
	that.history = append(that.history[:that.currentMove+1:that.currentMove+1], next)
	that.currentMove = len(that.history) - 1
	state := that.stateLocked()
	that.mu.Unlock()

	that.notify(state)
}

// JumpTo moves the pointer without touching the history.
func (that *GameController) JumpTo(move int) error {
	that.mu.Lock()
	if move < 0 || move >= len(that.history) {
		size := len(that.history)
		that.mu.Unlock()

		return fmt.Errorf("%w: move %d, history size %d", apperror.ErrMoveOutOfRange, move, size)
	}

	that.currentMove = move
	state := that.stateLocked()
	that.mu.Unlock()

	that.notify(state)

	return nil
}

func (that *GameController) ToggleOrder() {
	that.mu.Lock()
	that.isAscending = !that.isAscending
	state := that.stateLocked()
	that.mu.Unlock()

	that.notify(state)
}

func (that *GameController) State() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.stateLocked()
}

// Subscribe registers l and returns a function removing it.
func (that *GameController) Subscribe(l Listener) func() {
	that.mu.Lock()
	id := that.nextID
	that.nextID++
	that.listeners[id] = l
	that.mu.Unlock()

	return func() {
		that.mu.Lock()
		delete(that.listeners, id)
		that.mu.Unlock()
	}
}

func (that *GameController) stateLocked() State {
	return State{
		History:     slices.Clone(that.history),
		CurrentMove: that.currentMove,
		IsAscending: that.isAscending,
	}
}

func (that *GameController) notify(state State) {
	that.mu.Lock()
	ids := make([]int, 0, len(that.listeners))
	for id := range that.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, that.listeners[id])
	}
	that.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}
