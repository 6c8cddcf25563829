package apperror

import "errors"

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrOutOfRange    = errors.New("cell is out of range")
	ErrInvalidMark   = errors.New("invalid mark")
	ErrRoundFinished = errors.New("round is already finished")
	ErrInvalidInput  = errors.New("invalid input")
)
