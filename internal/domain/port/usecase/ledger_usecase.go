package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
)

// DepositCommand credits a player's wallet
type DepositCommand struct {
	PlayerID       uuid.UUID
	AmountCents    int64
	IdempotencyKey string
}

// WithdrawCommand debits a player's wallet
type WithdrawCommand struct {
	PlayerID       uuid.UUID
	AmountCents    int64
	IdempotencyKey string
}

// BetCommand debits a stake against a game
type BetCommand struct {
	PlayerID       uuid.UUID
	GameCode       entity.GameCode
	AmountCents    int64
	IdempotencyKey string
}

// SettleCommand applies the outcome of a previously placed bet
type SettleCommand struct {
	PlayerID       uuid.UUID
	GameCode       entity.GameCode
	Outcome        entity.Outcome
	StakeCents     int64
	PayoutCents    int64
	IdempotencyKey string
}

// PlayCommand places a bet and settles it in one serialized step.
// A nil PayoutCents on WIN pays twice the stake.
type PlayCommand struct {
	PlayerID       uuid.UUID
	GameCode       entity.GameCode
	AmountCents    int64
	Outcome        entity.Outcome
	PayoutCents    *int64
	IdempotencyKey string
}

// MutationResult is returned by every single-entry mutation.
// Transaction is nil when nothing was appended (a LOSS settlement).
type MutationResult struct {
	Transaction  *entity.Transaction
	BalanceCents int64
	Replayed     bool
}

// PlayResult is returned by Play. Payout is nil on LOSS.
type PlayResult struct {
	Bet          *entity.Transaction
	Payout       *entity.Transaction
	BalanceCents int64
	Replayed     bool
}

// BalanceResult is a point-in-time balance read
type BalanceResult struct {
	PlayerID     uuid.UUID
	BalanceCents int64
}

// TransactionQuery is the caller-facing history query before defaults are applied
type TransactionQuery struct {
	PlayerID uuid.UUID
	Type     string
	GameCode string
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

// ReconcileResult compares the stored balance with the log
type ReconcileResult struct {
	PlayerID       uuid.UUID
	BalanceCents   int64
	LedgerSumCents int64
	Consistent     bool
}

// LedgerUseCase is the only mutation path for player balances
type LedgerUseCase interface {
	Deposit(ctx context.Context, cmd DepositCommand) (*MutationResult, error)
	Withdraw(ctx context.Context, cmd WithdrawCommand) (*MutationResult, error)
	PlaceBet(ctx context.Context, cmd BetCommand) (*MutationResult, error)
	SettleOutcome(ctx context.Context, cmd SettleCommand) (*MutationResult, error)
	Play(ctx context.Context, cmd PlayCommand) (*PlayResult, error)

	// GetBalance reads the committed balance without waiting behind queued mutations
	GetBalance(ctx context.Context, playerID uuid.UUID) (*BalanceResult, error)

	// ListTransactions returns a filtered page of the player's history, newest first
	ListTransactions(ctx context.Context, query TransactionQuery) (*persistence.TransactionPage, error)

	// Reconcile checks that the stored balance equals the sum of the log
	Reconcile(ctx context.Context, playerID uuid.UUID) (*ReconcileResult, error)
}
