package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// NewRound starts an empty round with X to move.
func NewRound() *Round {
	return &Round{
		Board:  entity.NewBoard(),
		Turn:   entity.MarkX,
		Status: StatusOngoing,
		Winner: entity.MarkEmpty,
	}
}

// MakeMove places the active mark and then updates the round status.
func (that *Round) MakeMove(move entity.Move) error {
	if that.IsFinished() {
		return apperror.ErrRoundFinished
	}

	mover := that.Turn
	if err := that.Board.Place(move, mover); err != nil {
		return fmt.Errorf("player %s: %w", mover, err)
	}

	if line, ok := that.Board.HasWin(mover); ok {
		that.Winner = mover
		that.Line = line
		that.Status = StatusFinished
		return nil
	}

	if that.Board.IsFull() {
		that.Status = StatusFinished
		return nil
	}

	that.Turn = entity.Opponent(mover)

	return nil
}

func (that *Round) IsFinished() bool {
	return that.Status == StatusFinished
}

// Outcome is OutcomeNone while the round is still being played.
func (that *Round) Outcome() entity.Outcome {
	if !that.IsFinished() {
		return entity.OutcomeNone
	}

	if that.Winner == entity.MarkEmpty {
		return entity.OutcomeDraw
	}

	return entity.OutcomeFor(that.Winner)
}
