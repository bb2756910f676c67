package apperror

import "errors"

var (
	ErrMoveOutOfRange = errors.New("move is out of history range")
	ErrCellOutOfRange = errors.New("cell index is out of range")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownUI      = errors.New("unknown ui")
)
