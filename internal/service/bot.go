package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type moveSearcher interface {
	BestMove(ctx context.Context, board *entity.Board, computer entity.Mark) (tictactoe.Result, error)
}

// BotPlayer plays the move the solver finds optimal.
type BotPlayer struct {
	terminal terminal
	solver   moveSearcher
}

func NewBotPlayer(terminal terminal, solver moveSearcher) *BotPlayer {
	return &BotPlayer{
		terminal: terminal,
		solver:   solver,
	}
}

func (that *BotPlayer) SelectMove(ctx context.Context, board *entity.Board, mark entity.Mark) (entity.Move, error) {
	that.terminal.Println("AI is making a move...")

	result, err := that.solver.BestMove(ctx, board, mark)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to find a move: %w", err)
	}

	return *result.Move, nil
}
