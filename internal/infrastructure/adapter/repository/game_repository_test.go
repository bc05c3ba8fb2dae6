package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/logger"
)

var gameColumns = []string{"id", "code", "name", "rtp_theoretical"}

func TestGameRepository_GetByCode(t *testing.T) {
	ctx := context.Background()
	roulette := entity.DefaultGames()[1]

	t.Run("should load the game", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGameRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "games" WHERE code = \$1`).
			WillReturnRows(sqlmock.NewRows(gameColumns).AddRow(roulette.ID.String(), "roulette", "Roulette", "97.30"))

		game, err := repo.GetByCode(ctx, entity.GameRoulette)

		require.NoError(t, err)
		assert.Equal(t, roulette.ID, game.ID)
		assert.Equal(t, "97.3", game.RTPTheoretical.String())
	})

	t.Run("should return game not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGameRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "games"`).WillReturnRows(sqlmock.NewRows(gameColumns))

		_, err := repo.GetByCode(ctx, entity.GameSlots)

		assert.ErrorIs(t, err, errs.ErrGameNotFound)
	})
}

func TestGameRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGameRepository(db, logger.NewNoopLogger())

	rows := sqlmock.NewRows(gameColumns)
	for _, g := range entity.DefaultGames() {
		rows.AddRow(g.ID.String(), string(g.Code), g.Name, g.RTPTheoretical.String())
	}
	mock.ExpectQuery(`SELECT \* FROM "games" ORDER BY code ASC`).WillReturnRows(rows)

	games, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, games, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}
