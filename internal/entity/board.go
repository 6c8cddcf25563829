package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Size is the board dimension. A line needs Size identical marks to win.
const Size = 3

type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

// Opponent returns the other player's mark.
func Opponent(mark Mark) Mark {
	if mark == MarkX {
		return MarkO
	}
	return MarkX
}

func (that Mark) IsPlayer() bool {
	return that == MarkX || that == MarkO
}

// Move is a 0-indexed board coordinate.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// WinningLine holds the cells of a completed line, empty when nobody has won.
type WinningLine []Move

func (that WinningLine) Contains(move Move) bool {
	for _, m := range that {
		if m == move {
			return true
		}
	}
	return false
}

// lines lists every winning line in check order:
// rows top to bottom, columns left to right, main diagonal, anti-diagonal.
var lines = buildLines()

func buildLines() []WinningLine {
	result := make([]WinningLine, 0, 2*Size+2)

	for row := range Size {
		line := make(WinningLine, 0, Size)
		for col := range Size {
			line = append(line, Move{Row: row, Col: col})
		}
		result = append(result, line)
	}

	for col := range Size {
		line := make(WinningLine, 0, Size)
		for row := range Size {
			line = append(line, Move{Row: row, Col: col})
		}
		result = append(result, line)
	}

	mainDiagonal := make(WinningLine, 0, Size)
	antiDiagonal := make(WinningLine, 0, Size)
	for i := range Size {
		mainDiagonal = append(mainDiagonal, Move{Row: i, Col: i})
		antiDiagonal = append(antiDiagonal, Move{Row: i, Col: Size - 1 - i})
	}

	return append(result, mainDiagonal, antiDiagonal)
}

// Board is the grid of marks. The zero value is an empty board.
type Board struct {
	Cells [Size][Size]Mark
}

func NewBoard() *Board {
	return &Board{}
}

// Place puts mark on an empty cell. The board is left untouched on error.
func (that *Board) Place(move Move, mark Mark) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %w %q", apperror.ErrInvalidMove, apperror.ErrInvalidMark, mark)
	}

	if !move.InRange() {
		return fmt.Errorf("%w: %w %s", apperror.ErrInvalidMove, apperror.ErrOutOfRange, move)
	}

	if that.Cells[move.Row][move.Col] != MarkEmpty {
		return fmt.Errorf("%w: %w %s", apperror.ErrInvalidMove, apperror.ErrCellOccupied, move)
	}

	that.Cells[move.Row][move.Col] = mark

	return nil
}

// Undo clears a cell that was previously placed. Out-of-range moves are ignored.
func (that *Board) Undo(move Move) {
	if !move.InRange() {
		return
	}
	that.Cells[move.Row][move.Col] = MarkEmpty
}

func (that *Board) Cell(move Move) Mark {
	if !move.InRange() {
		return MarkEmpty
	}
	return that.Cells[move.Row][move.Col]
}

func (that *Board) IsEmpty(move Move) bool {
	return move.InRange() && that.Cells[move.Row][move.Col] == MarkEmpty
}

func (that *Board) IsFull() bool {
	for row := range Size {
		for col := range Size {
			if that.Cells[row][col] == MarkEmpty {
				return false
			}
		}
	}
	return true
}

// HasWin reports whether mark holds a complete line and returns the first one found.
func (that *Board) HasWin(mark Mark) (WinningLine, bool) {
	if !mark.IsPlayer() {
		return nil, false
	}

	for _, line := range lines {
		if that.holds(line, mark) {
			winning := make(WinningLine, len(line))
			copy(winning, line)
			return winning, true
		}
	}

	return nil, false
}

// Wins is HasWin without building the line.
func (that *Board) Wins(mark Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	for _, line := range lines {
		if that.holds(line, mark) {
			return true
		}
	}

	return false
}

func (that *Board) holds(line WinningLine, mark Mark) bool {
	for _, move := range line {
		if that.Cells[move.Row][move.Col] != mark {
			return false
		}
	}
	return true
}

// EmptyCells returns the empty coordinates in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that.Cells[row][col] == MarkEmpty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if that.Cells[row][col] == mark {
				count++
			}
		}
	}
	return count
}

func (that *Board) Reset() {
	that.Cells = [Size][Size]Mark{}
}

// Key encodes the board row-major, one character per cell, "-" for empty.
func (that *Board) Key() string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for row := range Size {
		for col := range Size {
			if mark := that.Cells[row][col]; mark == MarkEmpty {
				sb.WriteByte('-')
			} else {
				sb.WriteString(string(mark))
			}
		}
	}
	return sb.String()
}
