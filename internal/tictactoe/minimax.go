package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
)

// winScore is the value of a win at depth 0. Every win within Size*Size plies stays positive.
const winScore = 10

var ErrNoMoves = errors.New("no moves available")

type positionCache interface {
	Get(ctx context.Context, key string) (entity.Position, error)
	Save(ctx context.Context, key string, position entity.Position) error
}

// Result is the outcome of a search node. Move is nil only at terminal positions.
type Result struct {
	Score int
	Move  *entity.Move
}

// candidate is one evaluated child of a search node.
type candidate struct {
	score int
	move  entity.Move
}

// Solver chooses optimal moves with an exhaustive minimax search.
type Solver struct {
	logger *slog.Logger
	cache  positionCache
}

// NewSolver returns a Solver. A nil cache searches every node from scratch.
func NewSolver(logger *slog.Logger, cache positionCache) *Solver {
	return &Solver{
		logger: logger.With("component", "solver"),
		cache:  cache,
	}
}

// BestMove searches the position with computer as the maximizing side to move.
// board is mutated during the search and restored before BestMove returns.
func (that *Solver) BestMove(ctx context.Context, board *entity.Board, computer entity.Mark) (Result, error) {
	if !computer.IsPlayer() {
		return Result{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, computer)
	}

	s := &search{
		ctx:      ctx,
		logger:   that.logger,
		board:    board,
		computer: computer,
		opponent: entity.Opponent(computer),
		cache:    that.cache,
	}

	result := s.minimax(0, computer)
	if result.Move == nil {
		return result, ErrNoMoves
	}

	that.logger.Debug("search finished",
		"mark", computer,
		"move", result.Move.String(),
		"score", result.Score,
		"nodes", s.nodes,
		"cache_hits", s.hits,
	)

	return result, nil
}

type search struct {
	ctx    context.Context
	logger *slog.Logger

	board    *entity.Board
	computer entity.Mark
	opponent entity.Mark
	cache    positionCache

	nodes int
	hits  int
}

func (that *search) minimax(depth int, player entity.Mark) Result {
	if that.board.Wins(that.opponent) {
		return Result{Score: -winScore + depth}
	}
	if that.board.Wins(that.computer) {
		return Result{Score: winScore - depth}
	}
	if that.board.IsFull() {
		return Result{Score: 0}
	}

	key, position, ok := that.lookup(player)
	if ok {
		that.hits++
		return Result{Score: denormalize(position.Score, depth), Move: position.Move}
	}

	that.nodes++

	moves := that.board.EmptyCells()
	candidates := make([]candidate, 0, len(moves))
	for _, move := range moves {
		if err := that.board.Place(move, player); err != nil {
			continue
		}
		score := that.minimax(depth+1, entity.Opponent(player)).Score
		that.board.Undo(move)

		candidates = append(candidates, candidate{score: score, move: move})
	}

	best := selectBest(candidates, player == that.computer)
	that.store(key, best, depth)

	return best
}

// selectBest keeps the first candidate with the strictly greatest score when maximizing,
// the strictly smallest otherwise.
func selectBest(candidates []candidate, maximize bool) Result {
	if len(candidates) == 0 {
		return Result{}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if (maximize && c.score > best.score) || (!maximize && c.score < best.score) {
			best = c
		}
	}

	move := best.move
	return Result{Score: best.score, Move: &move}
}

func (that *search) key(player entity.Mark) string {
	return string(that.computer) + ":" + that.board.Key() + ":" + string(player)
}

// lookup returns the cache key for the node and the stored position, if any.
func (that *search) lookup(player entity.Mark) (string, entity.Position, bool) {
	if that.cache == nil {
		return "", entity.Position{}, false
	}

	key := that.key(player)

	position, err := that.cache.Get(that.ctx, key)
	if errors.Is(err, repository.ErrPositionNotFound) {
		return key, entity.Position{}, false
	}
	if err != nil {
		that.disableCache(err)
		return key, entity.Position{}, false
	}

	if position.Move == nil || !that.board.IsEmpty(*position.Move) {
		return key, entity.Position{}, false
	}

	return key, position, true
}

func (that *search) store(key string, result Result, depth int) {
	if that.cache == nil || result.Move == nil {
		return
	}

	position := entity.Position{Score: normalize(result.Score, depth), Move: result.Move}
	if err := that.cache.Save(that.ctx, key, position); err != nil {
		that.disableCache(err)
	}
}

// disableCache drops the cache for the rest of this search.
func (that *search) disableCache(err error) {
	that.logger.Warn("position cache unavailable", "error", err)
	that.cache = nil
}

// normalize rewrites a score found at depth as if the node were the search root.
func normalize(score, depth int) int {
	switch {
	case score > 0:
		return score + depth
	case score < 0:
		return score - depth
	default:
		return 0
	}
}

func denormalize(score, depth int) int {
	switch {
	case score > 0:
		return score - depth
	case score < 0:
		return score + depth
	default:
		return 0
	}
}
