package tui

import (
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
)

// info is the order toggle above the move list.
type info struct {
	*tview.Flex

	order *tview.Button
	moves *tview.List

	onJump func(int)
}

func newInfo(onToggle func(), onJump func(int)) *info {
	i := &info{
		Flex:   tview.NewFlex().SetDirection(tview.FlexRow),
		order:  tview.NewButton(tictactoe.OrderAscending),
		moves:  tview.NewList().ShowSecondaryText(false),
		onJump: onJump,
	}

	i.order.SetSelectedFunc(onToggle)
	i.moves.SetBorder(true).SetTitle(" History ")

	i.AddItem(i.order, 1, 0, false)
	i.AddItem(nil, 1, 0, false)
	i.AddItem(i.moves, 0, 1, false)

	return i
}

func (that *info) update(state tictactoe.State, entries []tictactoe.MoveEntry) {
	that.order.SetLabel(tictactoe.OrderLabel(state))

	that.moves.Clear()

	current := 0
	for idx, entry := range entries {
		if entry.Current {
			current = idx
			that.moves.AddItem("• "+entry.Label, "", 0, nil)
			continue
		}

		move := entry.Move
		that.moves.AddItem("  "+entry.Label, "", 0, func() { that.onJump(move) })
	}

	that.moves.SetCurrentItem(current)
}
