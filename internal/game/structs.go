package game

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Round is the state of a single round. It owns its board for the round's duration.
type Round struct {
	Board  *entity.Board
	Turn   entity.Mark
	Status string
	Winner entity.Mark
	Line   entity.WinningLine
}
