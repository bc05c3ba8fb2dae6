package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
)

// TransactionType classifies a ledger entry
type TransactionType string

// Transaction types
const (
	TransactionDeposit    TransactionType = "DEPOSIT"
	TransactionWithdrawal TransactionType = "WITHDRAWAL"
	TransactionBet        TransactionType = "BET"
	TransactionPayout     TransactionType = "PAYOUT"
)

// Outcome is the caller-supplied result of a play
type Outcome string

// Outcomes
const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
)

// Meta keys written by the ledger
const (
	MetaReason     = "reason"
	MetaOutcome    = "outcome"
	MetaStakeCents = "stakeCents"

	ReasonInitialCredit = "initial_credit"
)

// payoutKeySuffix marks the PAYOUT row a play writes under the caller's idempotency key
const payoutKeySuffix = "#payout"

// PayoutIdempotencyKey derives the key stored on a play's PAYOUT row
func PayoutIdempotencyKey(key string) string {
	return key + payoutKeySuffix
}

// IsPayoutIdempotencyKey reports whether key is in the namespace reserved for PAYOUT rows
func IsPayoutIdempotencyKey(key string) bool {
	return strings.HasSuffix(key, payoutKeySuffix)
}

// ParseTransactionType validates a transaction type string
func ParseTransactionType(value string) (TransactionType, error) {
	switch t := TransactionType(value); t {
	case TransactionDeposit, TransactionWithdrawal, TransactionBet, TransactionPayout:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, value)
	}
}

// ParseOutcome validates an outcome string
func ParseOutcome(value string) (Outcome, error) {
	switch o := Outcome(value); o {
	case OutcomeWin, OutcomeLoss:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidOutcome, value)
	}
}

// IsCredit returns true if this type increases the balance
func (t TransactionType) IsCredit() bool {
	return t == TransactionDeposit || t == TransactionPayout
}

// Sign returns +1 for credits and -1 for debits
func (t TransactionType) Sign() int64 {
	if t.IsCredit() {
		return 1
	}
	return -1
}

// Transaction is an immutable ledger entry
type Transaction struct {
	ID                string          // ULID, sortable by creation order
	PlayerID          uuid.UUID       // Owning player
	Type              TransactionType // Direction of the balance change
	AmountCents       int64           // Positive magnitude; sign implied by Type
	BalanceAfterCents int64           // Balance snapshot right after this entry was applied
	GameID            *uuid.UUID      // Optional game reference
	GameCode          GameCode        // Empty for deposits and withdrawals
	Meta              map[string]any  // Optional free-form metadata
	IdempotencyKey    string          // Optional caller-supplied key
	CreatedAt         time.Time
}

// NewTransaction creates an entry that has not been committed yet.
// ID, BalanceAfterCents and CreatedAt are assigned by the ledger store.
func NewTransaction(playerID uuid.UUID, txType TransactionType, amountCents int64) (*Transaction, error) {
	if playerID == uuid.Nil {
		return nil, errs.ErrInvalidPlayerID
	}
	if _, err := ParseTransactionType(string(txType)); err != nil {
		return nil, err
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d", errs.ErrInvalidAmount, amountCents)
	}

	return &Transaction{
		PlayerID:    playerID,
		Type:        txType,
		AmountCents: amountCents,
	}, nil
}

// ForGame attaches a game reference
func (t *Transaction) ForGame(game *Game) *Transaction {
	if game != nil {
		id := game.ID
		t.GameID = &id
		t.GameCode = game.Code
	}
	return t
}

// WithMeta sets a metadata value
func (t *Transaction) WithMeta(key string, value any) *Transaction {
	if t.Meta == nil {
		t.Meta = make(map[string]any)
	}
	t.Meta[key] = value
	return t
}

// WithIdempotencyKey sets the caller-supplied idempotency key
func (t *Transaction) WithIdempotencyKey(key string) *Transaction {
	t.IdempotencyKey = key
	return t
}

// SignedAmount returns the balance delta this entry represents
func (t *Transaction) SignedAmount() int64 {
	return t.Type.Sign() * t.AmountCents
}

// SumSignedAmounts folds a set of entries into the balance they imply
func SumSignedAmounts(transactions []*Transaction) int64 {
	var sum int64
	for _, tx := range transactions {
		sum += tx.SignedAmount()
	}
	return sum
}
