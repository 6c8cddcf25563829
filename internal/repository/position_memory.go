package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type memPosition struct {
	mu        sync.RWMutex
	positions map[string]entity.Position
}

func NewMemoryPositionRepository() PositionRepository {
	return &memPosition{
		positions: make(map[string]entity.Position),
	}
}

func (that *memPosition) Save(_ context.Context, key string, position entity.Position) error {
	if position.Move != nil {
		move := *position.Move
		position.Move = &move
	}

	that.mu.Lock()
	that.positions[key] = position
	that.mu.Unlock()

	return nil
}

func (that *memPosition) Get(_ context.Context, key string) (entity.Position, error) {
	that.mu.RLock()
	position, ok := that.positions[key]
	that.mu.RUnlock()

	if !ok {
		return entity.Position{}, ErrPositionNotFound
	}

	if position.Move != nil {
		move := *position.Move
		position.Move = &move
	}

	return position, nil
}
