package repository

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	positionRepo := NewPositionRepository(st.Client)

	// Given: a solved position
	position := entity.Position{Score: 8, Move: &entity.Move{Row: 0, Col: 2}}

	// When: Save is called
	err := positionRepo.Save(ctx, "O:XX-OO----:O", position)

	// Then: no error should be returned, and position is stored
	require.NoError(t, err)
}

func TestPositionRepository_Get(t *testing.T) {
	t.Run("Get_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		positionRepo := NewPositionRepository(st.Client)

		// Given: a stored position
		position := entity.Position{Score: -7, Move: &entity.Move{Row: 1, Col: 1}}
		err := positionRepo.Save(ctx, "O:X--------:O", position)
		require.NoError(t, err)

		// When: Get is called with the same key
		retrieved, err := positionRepo.Get(ctx, "O:X--------:O")

		// Then: the retrieved position should match the saved one
		require.NoError(t, err)
		assert.Equal(t, position, retrieved)
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		positionRepo := NewPositionRepository(st.Client)

		// When: Get is called with an unknown key
		retrieved, err := positionRepo.Get(ctx, "O:---------:X")

		// Then: an ErrPositionNotFound error should be returned
		require.ErrorIs(t, err, ErrPositionNotFound)
		assert.Nil(t, retrieved.Move)
	})
}
