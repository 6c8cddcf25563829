package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/game"
)

const (
	modeMultiplayer = "1"
	modeVersusAI    = "2"
)

type screen interface {
	ReadLine() (string, error)
	Print(a ...any)
	Println(a ...any)
	Printf(format string, a ...any)
	RenderBoard(board *entity.Board, line entity.WinningLine)
}

type moveSelector interface {
	SelectMove(ctx context.Context, board *entity.Board, mark entity.Mark) (entity.Move, error)
}

type seat struct {
	player   *entity.Player
	selector moveSelector
}

// GameManager runs a session of rounds and keeps the score between them.
type GameManager struct {
	logger *slog.Logger
	screen screen

	human moveSelector
	bot   moveSelector

	tally entity.Tally
}

func NewGameManager(logger *slog.Logger, screen screen, human, bot moveSelector) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		screen: screen,

		human: human,
		bot:   bot,
	}
}

// Run plays rounds until the player declines another one or input ends.
// It returns the final tally; only selector failures and cancellation are errors.
func (that *GameManager) Run(ctx context.Context) (entity.Tally, error) {
	that.screen.Println("Welcome to Tic Tac Toe! ")

	vsAI, err := that.chooseMode()
	if err != nil {
		return that.finish(err)
	}

	seats := that.seats(vsAI)
	that.logger.Info("session started", "vs_ai", vsAI)

	for {
		outcome, err := that.playRound(ctx, seats)
		if err != nil {
			return that.finish(err)
		}

		that.tally.Record(outcome)
		that.logger.Info("round finished", "outcome", outcome, "rounds", that.tally.Rounds())

		that.printScores(seats)

		that.screen.Print("\nPlay another round? (y/n): ")
		answer, err := that.screen.ReadLine()
		if err != nil || !strings.EqualFold(strings.TrimSpace(answer), "y") {
			return that.finish(err)
		}
	}
}

// Tally returns the score so far.
func (that *GameManager) Tally() entity.Tally {
	return that.tally
}

func (that *GameManager) finish(err error) (entity.Tally, error) {
	if err != nil && !errors.Is(err, io.EOF) {
		return that.tally, err
	}

	that.screen.Println("Thanks for playing!")

	return that.tally, nil
}

func (that *GameManager) chooseMode() (bool, error) {
	for {
		that.screen.Print("Choose mode: 1. Multiplayer  2. Play vs AI : ")

		line, err := that.screen.ReadLine()
		if err != nil {
			return false, err
		}

		switch line {
		case modeMultiplayer:
			return false, nil
		case modeVersusAI:
			return true, nil
		default:
			that.screen.Println("Invalid choice.")
		}
	}
}

func (that *GameManager) seats(vsAI bool) map[entity.Mark]seat {
	seats := map[entity.Mark]seat{
		entity.MarkX: {player: entity.NewHumanPlayer("Player 1", entity.MarkX), selector: that.human},
		entity.MarkO: {player: entity.NewHumanPlayer("Player 2", entity.MarkO), selector: that.human},
	}

	if vsAI {
		seats[entity.MarkO] = seat{player: entity.NewComputerPlayer(entity.MarkO), selector: that.bot}
	}

	return seats
}

func (that *GameManager) playRound(ctx context.Context, seats map[entity.Mark]seat) (entity.Outcome, error) {
	round := game.NewRound()

	for !round.IsFinished() {
		mark := round.Turn

		current := seats[mark]

		move, err := current.selector.SelectMove(ctx, round.Board, mark)
		if err != nil {
			return entity.OutcomeNone, fmt.Errorf("failed to select move for %s: %w", mark, err)
		}

		if err = round.MakeMove(move); err != nil {
			return entity.OutcomeNone, fmt.Errorf("failed to make move: %w", err)
		}

		that.logger.Debug("move made", "mark", mark, "move", move.String(), "computer", current.player.IsComputer())
		that.screen.RenderBoard(round.Board, nil)
	}

	if round.Outcome() == entity.OutcomeDraw {
		that.screen.Println("It's a draw!")
		return entity.OutcomeDraw, nil
	}

	that.screen.Printf("Player %s wins!\n", round.Winner)
	that.screen.Println("\nWinning line highlighted below (in brackets []):")
	that.screen.RenderBoard(round.Board, round.Line)

	return round.Outcome(), nil
}

func (that *GameManager) printScores(seats map[entity.Mark]seat) {
	that.screen.Println("\nScores:")
	that.screen.Printf("Player 1 (X): %d\n", that.tally.XWins)
	that.screen.Printf("Player 2 (O): %s: %d\n", seats[entity.MarkO].player.Name, that.tally.OWins)
	that.screen.Printf("Draws: %d\n", that.tally.Draws)
}
