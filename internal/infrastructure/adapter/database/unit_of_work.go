package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// ErrNoTransaction is returned when Commit or Rollback find no transaction in the context
var ErrNoTransaction = errors.New("no transaction found in context")

// UnitOfWork keeps a gorm transaction in the context so that repositories
// created from that context share it
type UnitOfWork struct {
	db        *gorm.DB
	logger    coreport.Logger
	isolation sql.IsolationLevel
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, isolation sql.IsolationLevel) *UnitOfWork {
	return &UnitOfWork{
		db:        db,
		logger:    logger,
		isolation: isolation,
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return ctx, errors.New("transaction already in progress")
	}

	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: u.isolation})
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the transaction in the context
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return ErrNoTransaction
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the transaction in the context. Rolling back a
// finished transaction is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return ErrNoTransaction
	}

	err := tx.Rollback().Error
	if errors.Is(err, sql.ErrTxDone) {
		u.logger.Warn("Transaction has already been committed or rolled back", nil)
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// GetPlayerRepository returns a player repository in the current transaction
func (u *UnitOfWork) GetPlayerRepository(ctx context.Context) persistence.PlayerRepository {
	return repository.NewPlayerRepository(u.getDbFromContext(ctx), u.logger)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext returns the transaction in ctx or the pool bound to ctx
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
