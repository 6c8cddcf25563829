package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, moves map[entity.Move]entity.Mark) *entity.Board {
	t.Helper()

	board := entity.NewBoard()
	for move, mark := range moves {
		require.NoError(t, board.Place(move, mark))
	}

	return board
}

func TestFormatBoard(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		// When: an empty board is formatted
		out := FormatBoard(entity.NewBoard(), nil, nil)

		// Then: every cell is padded with spaces
		expected := "\n" +
			"    |   |   \n" +
			" ---+---+---\n" +
			"    |   |   \n" +
			" ---+---+---\n" +
			"    |   |   \n" +
			"\n"
		assert.Equal(t, expected, out)
	})

	t.Run("Winning line is wrapped in brackets", func(t *testing.T) {
		// Given: X holds the top row
		board := newBoard(t, map[entity.Move]entity.Mark{
			{Row: 0, Col: 0}: entity.MarkX, {Row: 0, Col: 1}: entity.MarkX, {Row: 0, Col: 2}: entity.MarkX,
			{Row: 1, Col: 0}: entity.MarkO, {Row: 1, Col: 1}: entity.MarkO,
		})
		line, ok := board.HasWin(entity.MarkX)
		require.True(t, ok)

		// When: the board is formatted with the line
		out := FormatBoard(board, line, nil)

		// Then: the top row cells use brackets
		expected := "\n" +
			" [X]|[X]|[X]\n" +
			" ---+---+---\n" +
			"  O | O |   \n" +
			" ---+---+---\n" +
			"    |   |   \n" +
			"\n"
		assert.Equal(t, expected, out)
	})

	t.Run("Style applies only to winning cells", func(t *testing.T) {
		board := newBoard(t, map[entity.Move]entity.Mark{
			{Row: 0, Col: 0}: entity.MarkO, {Row: 1, Col: 1}: entity.MarkO, {Row: 2, Col: 2}: entity.MarkO,
			{Row: 0, Col: 1}: entity.MarkX,
		})

		out := FormatBoard(board, entity.WinningLine{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}, strings.ToLower)

		assert.Contains(t, out, " [o]| X |   \n")
		assert.Contains(t, out, "    |[o]|   \n")
		assert.Contains(t, out, "    |   |[o]\n")
	})
}

func TestConsole_RenderBoard(t *testing.T) {
	line := entity.WinningLine{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}
	board := newBoard(t, map[entity.Move]entity.Mark{
		{Row: 2, Col: 0}: entity.MarkX, {Row: 2, Col: 1}: entity.MarkX, {Row: 2, Col: 2}: entity.MarkX,
	})

	t.Run("ASCII profile prints plain brackets", func(t *testing.T) {
		// Given: a console without color support
		var buf bytes.Buffer
		c := New(strings.NewReader(""), termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)))

		// When: the board is rendered
		c.RenderBoard(board, line)

		// Then: the output matches the plain format
		assert.Equal(t, FormatBoard(board, line, nil), buf.String())
	})

	t.Run("Color profile styles the winning cells", func(t *testing.T) {
		// Given: a console with color support
		var buf bytes.Buffer
		c := New(strings.NewReader(""), termenv.NewOutput(&buf, termenv.WithProfile(termenv.ANSI256)))

		// When: the board is rendered
		c.RenderBoard(board, line)

		// Then: escape sequences surround the bracketed cells
		assert.Contains(t, buf.String(), "\x1b[")
		assert.Contains(t, buf.String(), "[X]")
	})
}

func TestConsole_ReadLine(t *testing.T) {
	// Given: two lines of input
	c := New(strings.NewReader("1\r\n  y \n"), termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.Ascii)))

	// When: reading past the end of input
	first, err := c.ReadLine()
	require.NoError(t, err)
	second, err := c.ReadLine()
	require.NoError(t, err)
	_, err = c.ReadLine()

	// Then: lines come back without terminators and EOF ends the stream
	assert.Equal(t, "1", first)
	assert.Equal(t, "  y ", second)
	require.ErrorIs(t, err, io.EOF)
}

func TestConsole_ReadLineLongInput(t *testing.T) {
	// Given: a line far longer than a default scanner buffer, then a last line without a newline
	long := strings.Repeat("a", 70000)
	c := New(strings.NewReader(long+"\n2"), termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.Ascii)))

	// When: reading every line
	first, err := c.ReadLine()
	require.NoError(t, err)
	second, err := c.ReadLine()
	require.NoError(t, err)
	_, err = c.ReadLine()

	// Then: the long line comes back whole and reading continues
	assert.Equal(t, long, first)
	assert.Equal(t, "2", second)
	require.ErrorIs(t, err, io.EOF)
}
