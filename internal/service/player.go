package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MoveSelector picks the next move for mark on board.
type MoveSelector interface {
	SelectMove(ctx context.Context, board *entity.Board, mark entity.Mark) (entity.Move, error)
}

type terminal interface {
	ReadLine() (string, error)
	Print(a ...any)
	Println(a ...any)
	Printf(format string, a ...any)
}

// HumanPlayer reads 1-indexed coordinates from the terminal until they name an empty cell.
type HumanPlayer struct {
	logger   *slog.Logger
	terminal terminal
}

func NewHumanPlayer(logger *slog.Logger, terminal terminal) *HumanPlayer {
	return &HumanPlayer{
		logger:   logger.With("component", "human"),
		terminal: terminal,
	}
}

// SelectMove only fails when the input stream ends or ctx is done.
func (that *HumanPlayer) SelectMove(ctx context.Context, board *entity.Board, mark entity.Mark) (entity.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Move{}, err
		}

		that.terminal.Printf("Player %s enter row (1-%d): ", mark, entity.Size)
		row, err := that.readNumber()
		if err != nil {
			return entity.Move{}, err
		}

		that.terminal.Printf("Player %s enter column (1-%d): ", mark, entity.Size)
		col, err := that.readNumber()
		if err != nil {
			return entity.Move{}, err
		}

		move := entity.Move{Row: row - 1, Col: col - 1}

		if !move.InRange() {
			that.logger.Debug("rejected move", "mark", mark, "move", move.String(), "error", apperror.ErrOutOfRange)
			that.terminal.Println("Invalid position. Try again.")
			continue
		}

		if !board.IsEmpty(move) {
			that.logger.Debug("rejected move", "mark", mark, "move", move.String(), "error", apperror.ErrCellOccupied)
			that.terminal.Println("Spot already taken. Try again.")
			continue
		}

		return move, nil
	}
}

func (that *HumanPlayer) readNumber() (int, error) {
	for {
		line, err := that.terminal.ReadLine()
		if err != nil {
			return 0, err
		}

		n, err := parseNumber(line)
		if err == nil {
			return n, nil
		}

		that.logger.Debug("rejected input", "error", err)
		that.terminal.Print("Invalid input. Please enter a number: ")
	}
}

func parseNumber(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, line)
	}

	return n, nil
}
