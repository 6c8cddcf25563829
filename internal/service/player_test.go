package service

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConsole(input string) (*console.Console, *bytes.Buffer) {
	var out bytes.Buffer
	return console.New(strings.NewReader(input), termenv.NewOutput(&out, termenv.WithProfile(termenv.Ascii))), &out
}

func TestHumanPlayer_SelectMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Converts 1-indexed input", func(t *testing.T) {
		// Given: the player types row 2 and column 3
		term, out := newTestConsole("2\n3\n")
		player := NewHumanPlayer(newTestLogger(), term)

		// When: a move is requested
		move, err := player.SelectMove(ctx, entity.NewBoard(), entity.MarkX)

		// Then: the move is 0-indexed
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
		assert.Equal(t, "Player X enter row (1-3): Player X enter column (1-3): ", out.String())
	})

	t.Run("Re-prompts on non-numeric input", func(t *testing.T) {
		// Given: the player types garbage before each number
		term, out := newTestConsole("abc\n 1 \n\n2\n")
		player := NewHumanPlayer(newTestLogger(), term)

		// When: a move is requested
		move, err := player.SelectMove(ctx, entity.NewBoard(), entity.MarkO)

		// Then: the numbers are accepted after the error messages
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 1}, move)
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid input. Please enter a number: "))
	})

	t.Run("Re-prompts on out of range coordinates", func(t *testing.T) {
		term, out := newTestConsole("4\n1\n0\n1\n3\n3\n")
		player := NewHumanPlayer(newTestLogger(), term)

		move, err := player.SelectMove(ctx, entity.NewBoard(), entity.MarkX)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid position. Try again.\n"))
	})

	t.Run("Re-prompts on occupied cell", func(t *testing.T) {
		// Given: the center is taken
		board := entity.NewBoard()
		require.NoError(t, board.Place(entity.Move{Row: 1, Col: 1}, entity.MarkX))
		term, out := newTestConsole("2\n2\n1\n1\n")
		player := NewHumanPlayer(newTestLogger(), term)

		// When: the player first picks the center
		move, err := player.SelectMove(ctx, board, entity.MarkO)

		// Then: the turn does not advance until a free cell is chosen
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
		assert.Contains(t, out.String(), "Spot already taken. Try again.\n")
		assert.Equal(t, 1, board.Count(entity.MarkX))
		assert.Zero(t, board.Count(entity.MarkO))
	})

	t.Run("Oversized input line is re-prompted", func(t *testing.T) {
		// Given: a line of 70000 letters before a valid row and column
		term, out := newTestConsole(strings.Repeat("a", 70000) + "\n1\n1\n")
		player := NewHumanPlayer(newTestLogger(), term)

		// When: X selects a move
		move, err := player.SelectMove(ctx, entity.NewBoard(), entity.MarkX)

		// Then: the line is rejected like any other non-number and the move is accepted
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
		assert.Equal(t, 1, strings.Count(out.String(), "Invalid input. Please enter a number: "))
	})

	t.Run("Error when input ends", func(t *testing.T) {
		term, _ := newTestConsole("1\n")
		player := NewHumanPlayer(newTestLogger(), term)

		_, err := player.SelectMove(ctx, entity.NewBoard(), entity.MarkX)

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Error when context is done", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		term, out := newTestConsole("1\n1\n")
		player := NewHumanPlayer(newTestLogger(), term)

		_, err := player.SelectMove(cancelled, entity.NewBoard(), entity.MarkX)

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, out.String())
	})
}

func TestParseNumber(t *testing.T) {
	n, err := parseNumber("  3\t")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = parseNumber("1 2")
	require.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = parseNumber("")
	require.ErrorIs(t, err, apperror.ErrInvalidInput)
}
