package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/model"
)

// acquireLockSQL inserts the lease or takes over one that expired or that the owner already holds
const acquireLockSQL = `
INSERT INTO player_locks (player_id, owner, locked_at, expires_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (player_id) DO UPDATE
SET owner = EXCLUDED.owner,
    locked_at = EXCLUDED.locked_at,
    expires_at = EXCLUDED.expires_at,
    updated_at = EXCLUDED.updated_at
WHERE player_locks.expires_at <= ? OR player_locks.owner = EXCLUDED.owner`

// PlayerLockRepository implements lease locks using GORM
type PlayerLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.PlayerLockRepository = (*PlayerLockRepository)(nil)

// NewPlayerLockRepository creates a new PlayerLockRepository instance
func NewPlayerLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *PlayerLockRepository {
	return &PlayerLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock takes the player's lease for owner
func (r *PlayerLockRepository) AcquireLock(ctx context.Context, playerID uuid.UUID, owner string, duration time.Duration) error {
	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)

	result := r.db.WithContext(ctx).Exec(acquireLockSQL,
		playerID, owner, now, expiresAt, now, now,
		now,
	)
	if result.Error != nil {
		r.logger.Error("Database error acquiring lock", map[string]any{
			"player_id": playerID.String(),
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.ToDomainError("acquiring lock", result.Error)
	}

	// The conflict branch updates nothing while another owner's lease is live
	if result.RowsAffected == 0 {
		r.logger.Debug("Player is locked by another owner", map[string]any{
			"player_id": playerID.String(),
		})
		return errs.ErrPlayerLocked
	}

	r.logger.Debug("Lock acquired", map[string]any{
		"player_id":  playerID.String(),
		"owner":      owner,
		"expires_at": expiresAt,
	})
	return nil
}

// ReleaseLock deletes the lease if owner still holds it
func (r *PlayerLockRepository) ReleaseLock(ctx context.Context, playerID uuid.UUID, owner string) error {
	result := r.db.WithContext(ctx).
		Where("player_id = ? AND owner = ?", playerID, owner).
		Delete(&model.PlayerLock{})

	if result.Error != nil {
		// An unreleased lease expires on its own
		if r.errorClassifier.IsContextError(result.Error) {
			r.logger.Warn("Context ended before lock release, lease will expire", map[string]any{
				"player_id": playerID.String(),
			})
			return nil
		}
		r.logger.Error("Failed to release lock", map[string]any{
			"player_id": playerID.String(),
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.ToDomainError("releasing lock", result.Error)
	}
	return nil
}

// CleanupExpiredLocks removes all expired leases
func (r *PlayerLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", r.timeProvider.Now()).Delete(&model.PlayerLock{})
	if result.Error != nil {
		return 0, r.errorClassifier.ToDomainError("cleaning up locks", result.Error)
	}

	r.logger.Info("Expired locks cleanup completed", map[string]any{
		"locks_removed": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
