package repository

import (
	"context"
	"fmt"
	"maps"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/model"
)

// signedAmountSQL folds the log into the balance it implies
const signedAmountSQL = `SELECT COALESCE(SUM(CASE WHEN type IN ('DEPOSIT', 'PAYOUT') THEN amount_cents ELSE -amount_cents END), 0)
FROM transactions WHERE player_id = ?`

// TransactionRepository implements the append-only log using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// TransactionToModel converts a transaction entity to a database model
func TransactionToModel(tx *entity.Transaction) *model.Transaction {
	m := &model.Transaction{
		ID:                tx.ID,
		PlayerID:          tx.PlayerID,
		Type:              string(tx.Type),
		AmountCents:       tx.AmountCents,
		BalanceAfterCents: tx.BalanceAfterCents,
		GameID:            tx.GameID,
		CreatedAt:         tx.CreatedAt,
	}
	if tx.GameCode != "" {
		code := string(tx.GameCode)
		m.GameCode = &code
	}
	if len(tx.Meta) > 0 {
		m.Meta = datatypes.JSONMap(maps.Clone(tx.Meta))
	}
	if tx.IdempotencyKey != "" {
		key := tx.IdempotencyKey
		m.IdempotencyKey = &key
	}
	return m
}

// TransactionFromModel converts a database model to a transaction entity
func TransactionFromModel(m *model.Transaction) *entity.Transaction {
	tx := &entity.Transaction{
		ID:                m.ID,
		PlayerID:          m.PlayerID,
		Type:              entity.TransactionType(m.Type),
		AmountCents:       m.AmountCents,
		BalanceAfterCents: m.BalanceAfterCents,
		GameID:            m.GameID,
		CreatedAt:         m.CreatedAt,
	}
	if m.GameCode != nil {
		tx.GameCode = entity.GameCode(*m.GameCode)
	}
	if len(m.Meta) > 0 {
		tx.Meta = map[string]any(m.Meta)
	}
	if m.IdempotencyKey != nil {
		tx.IdempotencyKey = *m.IdempotencyKey
	}
	return tx
}

// Append inserts a new log entry
func (r *TransactionRepository) Append(ctx context.Context, transaction *entity.Transaction) error {
	err := r.db.WithContext(ctx).Create(TransactionToModel(transaction)).Error
	if err == nil {
		return nil
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Idempotency key already committed", map[string]any{
			"player_id":       transaction.PlayerID.String(),
			"idempotency_key": transaction.IdempotencyKey,
		})
		return fmt.Errorf("%w: %w", errs.ErrDuplicateRequest, err)
	}

	r.logger.Error("Failed to append transaction", map[string]any{
		"transaction_id": transaction.ID,
		"player_id":      transaction.PlayerID.String(),
		"error":          err.Error(),
	})
	return r.errorClassifier.ToDomainError("appending transaction", err)
}

// filtered applies the non-paging parts of a filter
func (r *TransactionRepository) filtered(ctx context.Context, filter persistence.TransactionFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("player_id = ?", filter.PlayerID)
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.GameCode != "" {
		query = query.Where("game_code = ?", string(filter.GameCode))
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}
	return query
}

// List returns the entries matching the filter, newest first
func (r *TransactionRepository) List(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.filtered(ctx, filter).Order("created_at DESC").Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset())
	}

	var models []model.Transaction
	if err := query.Find(&models).Error; err != nil {
		return nil, r.errorClassifier.ToDomainError("listing transactions", err)
	}

	items := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		items = append(items, TransactionFromModel(&models[i]))
	}
	return items, nil
}

// Count returns the number of entries matching the filter
func (r *TransactionRepository) Count(ctx context.Context, filter persistence.TransactionFilter) (int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, r.errorClassifier.ToDomainError("counting transactions", err)
	}
	return total, nil
}

// SumSignedAmounts returns the balance implied by a player's log
func (r *TransactionRepository) SumSignedAmounts(ctx context.Context, playerID uuid.UUID) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Raw(signedAmountSQL, playerID).Scan(&sum).Error
	if err != nil {
		return 0, r.errorClassifier.ToDomainError("summing transactions", err)
	}
	return sum, nil
}

// FindByIdempotencyKey returns the entries written under key or its payout key, oldest first
func (r *TransactionRepository) FindByIdempotencyKey(ctx context.Context, playerID uuid.UUID, key string) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("player_id = ? AND idempotency_key IN ?", playerID, []string{key, entity.PayoutIdempotencyKey(key)}).
		Order("created_at ASC").Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomainError("finding idempotency key", err)
	}

	items := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		items = append(items, TransactionFromModel(&models[i]))
	}
	return items, nil
}
