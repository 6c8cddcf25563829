package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// tieredPosition answers from local first and only reaches shared on a local miss.
// Hits from shared are copied into local, so each position costs at most one remote read
// per process.
type tieredPosition struct {
	local  PositionRepository
	shared PositionRepository
}

func NewTieredPositionRepository(local, shared PositionRepository) PositionRepository {
	return &tieredPosition{
		local:  local,
		shared: shared,
	}
}

func (that *tieredPosition) Get(ctx context.Context, key string) (entity.Position, error) {
	position, err := that.local.Get(ctx, key)
	if err == nil {
		return position, nil
	}
	if !errors.Is(err, ErrPositionNotFound) {
		return entity.Position{}, fmt.Errorf("local position lookup failed: %w", err)
	}

	position, err = that.shared.Get(ctx, key)
	if err != nil {
		return entity.Position{}, err
	}

	if err = that.local.Save(ctx, key, position); err != nil {
		return entity.Position{}, fmt.Errorf("failed to keep shared position locally: %w", err)
	}

	return position, nil
}

func (that *tieredPosition) Save(ctx context.Context, key string, position entity.Position) error {
	if err := that.local.Save(ctx, key, position); err != nil {
		return fmt.Errorf("failed to save position locally: %w", err)
	}

	return that.shared.Save(ctx, key, position)
}
