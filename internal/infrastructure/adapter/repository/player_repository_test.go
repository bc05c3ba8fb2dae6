package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/logger"
)

var playerColumns = []string{"id", "email", "balance_cents", "version", "transaction_count", "created_at", "updated_at"}

func TestPlayerRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.MustParse("0b6f4c1e-8a55-4f5e-9a7b-2c1d3e4f5a6b")
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should map the row to a player", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlayerRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "players" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(playerColumns).
				AddRow(playerID.String(), "alice@example.com", int64(100000), int64(1), uint64(1), created, created))

		player, err := repo.GetByID(ctx, playerID)

		require.NoError(t, err)
		assert.Equal(t, playerID, player.ID)
		assert.Equal(t, "alice@example.com", player.Email)
		assert.Equal(t, int64(100000), player.BalanceCents())
		assert.Equal(t, int64(1), player.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return player not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlayerRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "players"`).WillReturnRows(sqlmock.NewRows(playerColumns))

		_, err := repo.GetByID(ctx, playerID)

		assert.ErrorIs(t, err, errs.ErrPlayerNotFound)
	})
}

func TestPlayerRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()
	now := time.Now().UTC()

	t.Run("should lock the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlayerRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "players" WHERE id = \$1 .*FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(playerColumns).
				AddRow(playerID.String(), nil, int64(500), int64(3), uint64(3), now, now))

		player, err := repo.GetForUpdate(ctx, playerID)

		require.NoError(t, err)
		assert.Empty(t, player.Email)
		assert.Equal(t, int64(500), player.BalanceCents())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should report a deadlock as a concurrency conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlayerRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(`FOR UPDATE`).WillReturnError(&pgconn.PgError{Code: "40P01"})

		_, err := repo.GetForUpdate(ctx, playerID)

		assert.True(t, errs.IsConcurrencyConflict(err))
	})
}

func TestPlayerRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	player := entity.RestorePlayer(uuid.New(), "bob@example.com", 0, 0, 0, now, now)

	t.Run("should insert the player", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlayerRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(`INSERT INTO "players"`).
			WithArgs(player.ID, "bob@example.com", int64(0), int64(0), uint64(0), now, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(ctx, player))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should map a unique violation to duplicate player", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlayerRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(`INSERT INTO "players"`).WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.Create(ctx, player)

		assert.ErrorIs(t, err, errs.ErrDuplicatePlayer)
	})
}

func TestPlayerRepository_UpdateBalance(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	player := entity.RestorePlayer(uuid.New(), "", 1500, 4, 4, now, now)

	t.Run("should update when the version matches", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlayerRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(`UPDATE "players" SET .* WHERE id = \$\d+ AND version = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateBalance(ctx, player, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should report a conflict when no row matched", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlayerRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(`UPDATE "players"`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateBalance(ctx, player, 3)

		assert.True(t, errs.IsConcurrencyConflict(err))
	})

	t.Run("should report connection failures as store unavailable", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlayerRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(`UPDATE "players"`).WillReturnError(errors.New("connection reset by peer"))

		err := repo.UpdateBalance(ctx, player, 3)

		assert.True(t, errs.IsStoreUnavailable(err))
	})
}
