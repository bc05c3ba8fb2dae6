package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/model"
)

// PlayerRepository implements PlayerRepository interface using GORM
type PlayerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.PlayerRepository = (*PlayerRepository)(nil)

// NewPlayerRepository creates a new PlayerRepository instance
func NewPlayerRepository(db *gorm.DB, logger coreport.Logger) *PlayerRepository {
	return &PlayerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// PlayerToModel converts a player entity to its database model
func PlayerToModel(player *entity.Player) *model.Player {
	var email *string
	if player.Email != "" {
		e := player.Email
		email = &e
	}
	return &model.Player{
		ID:               player.ID,
		Email:            email,
		BalanceCents:     player.BalanceCents(),
		Version:          player.Version,
		TransactionCount: player.TransactionCount,
		CreatedAt:        player.CreatedAt,
		UpdatedAt:        player.UpdatedAt,
	}
}

// PlayerFromModel rebuilds a player entity from its database model
func PlayerFromModel(m *model.Player) *entity.Player {
	var email string
	if m.Email != nil {
		email = *m.Email
	}
	return entity.RestorePlayer(m.ID, email, m.BalanceCents, m.Version, m.TransactionCount, m.CreatedAt, m.UpdatedAt)
}

// handleDatabaseError standardizes database error handling
func (r *PlayerRepository) handleDatabaseError(operation string, err error, playerID uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Player not found", map[string]any{
			"player_id": playerID.String(),
			"operation": operation,
		})
		return errs.ErrPlayerNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate player", map[string]any{
			"player_id": playerID.String(),
		})
		return fmt.Errorf("%w: %w", errs.ErrDuplicatePlayer, err)
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"player_id": playerID.String(),
		"error":     err.Error(),
	})
	return r.errorClassifier.ToDomainError(operation, err)
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Player, error) {
	var m model.Player
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting player", err, id)
	}
	return PlayerFromModel(&m), nil
}

// GetForUpdate retrieves a player holding a row lock until the transaction ends
func (r *PlayerRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.Player, error) {
	var m model.Player
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking player", err, id)
	}
	return PlayerFromModel(&m), nil
}

// Create inserts a new player
func (r *PlayerRepository) Create(ctx context.Context, player *entity.Player) error {
	if err := r.db.WithContext(ctx).Create(PlayerToModel(player)).Error; err != nil {
		return r.handleDatabaseError("creating player", err, player.ID)
	}

	r.logger.Debug("Player row inserted", map[string]any{
		"player_id": player.ID.String(),
	})
	return nil
}

// UpdateBalance writes balance, version and counters guarded by the expected version
func (r *PlayerRepository) UpdateBalance(ctx context.Context, player *entity.Player, expectedVersion int64) error {
	result := r.db.WithContext(ctx).Model(&model.Player{}).
		Where("id = ? AND version = ?", player.ID, expectedVersion).
		Updates(map[string]any{
			"balance_cents":     player.BalanceCents(),
			"version":           player.Version,
			"transaction_count": player.TransactionCount,
			"updated_at":        player.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating balance", result.Error, player.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Player version moved on during update", map[string]any{
			"player_id":        player.ID.String(),
			"expected_version": expectedVersion,
		})
		return fmt.Errorf("%w: player %s is no longer at version %d",
			errs.ErrConcurrencyConflict, player.ID, expectedVersion)
	}
	return nil
}
