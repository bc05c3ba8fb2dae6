package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
)

// LedgerStore owns player balances and the transaction log and keeps
// balance == Σ signed(amount) for every player
type LedgerStore interface {
	// ApplyMutation atomically checks sufficiency, moves the balance by deltaCents
	// and appends record. Either both writes commit or neither does. On success the
	// store fills record.ID, record.BalanceAfterCents and record.CreatedAt.
	//
	// Possible errors:
	// - ErrPlayerNotFound
	// - ErrInsufficientFunds: If the balance would become negative
	// - ErrConcurrencyConflict: If another writer won the race; safe to retry
	// - ErrDuplicateRequest: If the idempotency key was already committed
	// - ErrStoreUnavailable: If the outcome could not be committed
	ApplyMutation(ctx context.Context, playerID uuid.UUID, deltaCents int64, record *entity.Transaction) (int64, error)

	// GetBalance returns the committed balance in cents
	GetBalance(ctx context.Context, playerID uuid.UUID) (int64, error)

	// ListTransactions returns a page of history plus the total match count
	ListTransactions(ctx context.Context, filter TransactionFilter) (*TransactionPage, error)

	// FindByIdempotencyKey returns the entries committed under a key, oldest first
	FindByIdempotencyKey(ctx context.Context, playerID uuid.UUID, key string) ([]*entity.Transaction, error)

	// CreateAccount inserts the player and, when initialCredit is not nil, applies
	// it to the player and appends it as the first DEPOSIT in one atomic unit
	//
	// Possible errors:
	// - ErrDuplicatePlayer: If the ID or email is already registered
	// - ErrStoreUnavailable
	CreateAccount(ctx context.Context, player *entity.Player, initialCredit *entity.Transaction) error

	// SumSignedAmounts returns the balance implied by the player's log
	SumSignedAmounts(ctx context.Context, playerID uuid.UUID) (int64, error)
}
