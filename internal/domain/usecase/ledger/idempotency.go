package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
)

// expectedEntry describes a log entry a request would write
type expectedEntry struct {
	txType   entity.TransactionType
	amount   int64
	gameCode entity.GameCode
}

// matches reports whether a committed entry carries the same payload
func (e expectedEntry) matches(tx *entity.Transaction) bool {
	return tx.Type == e.txType && tx.AmountCents == e.amount && tx.GameCode == e.gameCode
}

// priorEntries holds what was already committed under an idempotency key
type priorEntries struct {
	primary *entity.Transaction
	payout  *entity.Transaction
}

// empty reports whether nothing was committed under the key
func (p priorEntries) empty() bool {
	return p.primary == nil && p.payout == nil
}

// IdempotencyHandler looks up and checks previously committed requests
type IdempotencyHandler struct {
	store persistence.LedgerStore
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(store persistence.LedgerStore) *IdempotencyHandler {
	return &IdempotencyHandler{
		store: store,
	}
}

// Lookup returns the entries committed under key for the player
func (h *IdempotencyHandler) Lookup(ctx context.Context, playerID uuid.UUID, key string) (priorEntries, error) {
	var prior priorEntries
	if key == "" {
		return prior, nil
	}

	found, err := h.store.FindByIdempotencyKey(ctx, playerID, key)
	if err != nil {
		return prior, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	for _, tx := range found {
		switch tx.IdempotencyKey {
		case key:
			prior.primary = tx
		case entity.PayoutIdempotencyKey(key):
			prior.payout = tx
		}
	}

	return prior, nil
}

// CheckSingle verifies that a single-entry request replays the committed entry
func (h *IdempotencyHandler) CheckSingle(prior priorEntries, expected expectedEntry) (*entity.Transaction, error) {
	if prior.primary == nil || prior.payout != nil || !expected.matches(prior.primary) {
		return nil, errs.ErrIdempotencyKeyReuse
	}
	return prior.primary, nil
}

// CheckPlay verifies that a play replays its committed BET and, on WIN, its PAYOUT.
// A missing PAYOUT after a committed BET is reported through payoutPending so the
// caller can finish the play.
func (h *IdempotencyHandler) CheckPlay(
	prior priorEntries,
	bet expectedEntry,
	payout *expectedEntry,
) (payoutPending bool, err error) {
	if prior.primary == nil || !bet.matches(prior.primary) {
		return false, errs.ErrIdempotencyKeyReuse
	}

	if payout == nil {
		if prior.payout != nil {
			return false, errs.ErrIdempotencyKeyReuse
		}
		return false, nil
	}

	if prior.payout == nil {
		return true, nil
	}
	if !payout.matches(prior.payout) {
		return false, errs.ErrIdempotencyKeyReuse
	}
	return false, nil
}
