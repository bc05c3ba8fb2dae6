package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
)

// TransactionFilter narrows a player's transaction history
type TransactionFilter struct {
	PlayerID uuid.UUID
	Type     entity.TransactionType // Empty means any type
	GameCode entity.GameCode        // Empty means any game
	From     *time.Time             // Inclusive
	To       *time.Time             // Inclusive
	Page     int                    // 1-based
	Limit    int
}

// Offset returns the number of rows to skip for the filter's page
func (f TransactionFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// TransactionPage is one page of history ordered by createdAt DESC, id DESC
type TransactionPage struct {
	Page  int
	Limit int
	Total int64
	Items []*entity.Transaction
}

// TransactionRepository defines methods for the append-only transaction log.
// There is intentionally no Update or Delete.
type TransactionRepository interface {
	// Append inserts a new log entry
	//
	// Possible errors:
	// - ErrDuplicateRequest: If the player already has an entry with the same idempotency key
	// - ErrStoreUnavailable: If database connection fails
	Append(ctx context.Context, transaction *entity.Transaction) error

	// List returns the entries matching the filter, newest first
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Count returns the number of entries matching the filter, ignoring paging
	Count(ctx context.Context, filter TransactionFilter) (int64, error)

	// SumSignedAmounts returns Σ(+DEPOSIT, +PAYOUT, -WITHDRAWAL, -BET) for a player
	SumSignedAmounts(ctx context.Context, playerID uuid.UUID) (int64, error)

	// FindByIdempotencyKey returns the entries written under a key, oldest first.
	// A play writes its payout under "<key>#payout", which is matched as well.
	FindByIdempotencyKey(ctx context.Context, playerID uuid.UUID, key string) ([]*entity.Transaction, error)
}
