package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrPositionNotFound = errors.New("position not found")

const positionKeyPrefix = "position:"

type PositionRepository interface {
	Get(ctx context.Context, key string) (entity.Position, error)
	Save(ctx context.Context, key string, position entity.Position) error
}

type dbPosition struct {
	client *redis.Client
}

// NewPositionRepository keeps solved positions in redis so several processes can share them.
func NewPositionRepository(client *redis.Client) PositionRepository {
	return &dbPosition{
		client: client,
	}
}

func (that *dbPosition) Save(ctx context.Context, key string, position entity.Position) error {
	positionJSON, err := json.Marshal(position)
	if err != nil {
		return fmt.Errorf("could not marshal position: %w", err)
	}

	err = that.client.Set(ctx, positionKeyPrefix+key, positionJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set position: %w", err)
	}

	return nil
}

func (that *dbPosition) Get(ctx context.Context, key string) (entity.Position, error) {
	response, err := that.client.Get(ctx, positionKeyPrefix+key).Result()

	if errors.Is(err, redis.Nil) {
		return entity.Position{}, ErrPositionNotFound
	}

	if err != nil {
		return entity.Position{}, fmt.Errorf("failed to get position by key: %w", err)
	}

	var position entity.Position
	if err = json.Unmarshal([]byte(response), &position); err != nil {
		return entity.Position{}, fmt.Errorf("failed to unmarshal position: %w", err)
	}

	return position, nil
}
