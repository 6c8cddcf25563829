package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const highlightColor = "2"

// Console is the line-oriented terminal the game is played on.
type Console struct {
	reader *bufio.Reader
	output *termenv.Output
}

func New(in io.Reader, output *termenv.Output) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		output: output,
	}
}

// ReadLine returns the next input line without its terminator, or io.EOF once input ends.
// Lines of any length are returned whole.
func (that *Console) ReadLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	if err != nil && line == "" {
		return "", io.EOF
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

func (that *Console) Print(a ...any) {
	fmt.Fprint(that.output, a...)
}

func (that *Console) Println(a ...any) {
	fmt.Fprintln(that.output, a...)
}

func (that *Console) Printf(format string, a ...any) {
	fmt.Fprintf(that.output, format, a...)
}

// RenderBoard prints the grid; cells of line are wrapped in brackets.
func (that *Console) RenderBoard(board *entity.Board, line entity.WinningLine) {
	that.Print(FormatBoard(board, line, that.highlight))
}

func (that *Console) highlight(cell string) string {
	if that.output.Profile == termenv.Ascii {
		return cell
	}

	return that.output.String(cell).Bold().Foreground(that.output.Color(highlightColor)).String()
}

// FormatBoard draws the board the way it is shown between moves. style is applied to
// the bracketed winning cells and may be nil.
func FormatBoard(board *entity.Board, line entity.WinningLine, style func(string) string) string {
	var sb strings.Builder

	sb.WriteString("\n")
	for row := range entity.Size {
		sb.WriteString(" ")
		for col := range entity.Size {
			move := entity.Move{Row: row, Col: col}
			mark := string(board.Cell(move))
			if mark == "" {
				mark = " "
			}

			if line.Contains(move) {
				cell := "[" + mark + "]"
				if style != nil {
					cell = style(cell)
				}
				sb.WriteString(cell)
			} else {
				sb.WriteString(" " + mark + " ")
			}

			if col < entity.Size-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		if row < entity.Size-1 {
			sb.WriteString(" ")
			sb.WriteString(strings.Repeat("---+", entity.Size-1))
			sb.WriteString("---\n")
		}
	}
	sb.WriteString("\n")

	return sb.String()
}
