package ledger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
)

// Paging bounds for history queries
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// MaxIdempotencyKeyLength bounds the caller-supplied key. The "#payout" suffix
// written by a play must still fit the column.
const MaxIdempotencyKeyLength = 120

// Validator checks ledger commands before any state is touched
type Validator struct {
	maxAmountCents int64
}

// NewValidator creates a new Validator with the given amount ceiling
func NewValidator(maxAmountCents int64) *Validator {
	return &Validator{maxAmountCents: maxAmountCents}
}

// ValidatePlayerID rejects the zero UUID
func (v *Validator) ValidatePlayerID(playerID uuid.UUID) error {
	if playerID == uuid.Nil {
		return errs.ErrInvalidPlayerID
	}
	return nil
}

// ValidateAmount checks that an amount is a positive count of cents within the ceiling
func (v *Validator) ValidateAmount(amountCents int64) error {
	return entity.ValidateAmountCents(amountCents, v.maxAmountCents)
}

// ValidateIdempotencyKey checks the optional key's length and keeps callers out of
// the suffix reserved for play payouts
func (v *Validator) ValidateIdempotencyKey(key string) error {
	if len(key) > MaxIdempotencyKeyLength {
		return fmt.Errorf("%w: idempotency key longer than %d characters", errs.ErrInvalidRequest, MaxIdempotencyKeyLength)
	}
	if entity.IsPayoutIdempotencyKey(key) {
		return fmt.Errorf("%w: idempotency key uses a reserved suffix", errs.ErrInvalidRequest)
	}
	return nil
}

// ValidateMutation validates the fields shared by deposit and withdraw
func (v *Validator) ValidateMutation(playerID uuid.UUID, amountCents int64, key string) error {
	if err := v.ValidatePlayerID(playerID); err != nil {
		return err
	}
	if err := v.ValidateAmount(amountCents); err != nil {
		return err
	}
	return v.ValidateIdempotencyKey(key)
}

// ValidateSettlement checks outcome and payout consistency
func (v *Validator) ValidateSettlement(cmd usecase.SettleCommand) error {
	if err := v.ValidatePlayerID(cmd.PlayerID); err != nil {
		return err
	}
	if _, err := entity.ParseOutcome(string(cmd.Outcome)); err != nil {
		return err
	}
	if _, err := entity.ParseGameCode(string(cmd.GameCode)); err != nil {
		return err
	}
	if err := v.ValidateAmount(cmd.StakeCents); err != nil {
		return fmt.Errorf("stake: %w", err)
	}

	switch cmd.Outcome {
	case entity.OutcomeWin:
		if err := v.ValidateAmount(cmd.PayoutCents); err != nil {
			return fmt.Errorf("payout: %w", err)
		}
	case entity.OutcomeLoss:
		if cmd.PayoutCents != 0 {
			return fmt.Errorf("%w: payout must be 0 on LOSS, got %d", errs.ErrInvalidAmount, cmd.PayoutCents)
		}
	}

	return v.ValidateIdempotencyKey(cmd.IdempotencyKey)
}

// ResolvePlayPayout validates a play and returns the payout it will credit.
// WIN without an explicit payout pays twice the stake; LOSS pays nothing.
func (v *Validator) ResolvePlayPayout(cmd usecase.PlayCommand) (int64, error) {
	if err := v.ValidatePlayerID(cmd.PlayerID); err != nil {
		return 0, err
	}
	if _, err := entity.ParseGameCode(string(cmd.GameCode)); err != nil {
		return 0, err
	}
	if _, err := entity.ParseOutcome(string(cmd.Outcome)); err != nil {
		return 0, err
	}
	if err := v.ValidateAmount(cmd.AmountCents); err != nil {
		return 0, err
	}
	if err := v.ValidateIdempotencyKey(cmd.IdempotencyKey); err != nil {
		return 0, err
	}

	if cmd.Outcome == entity.OutcomeLoss {
		if cmd.PayoutCents != nil && *cmd.PayoutCents != 0 {
			return 0, fmt.Errorf("%w: payout must be 0 on LOSS, got %d", errs.ErrInvalidAmount, *cmd.PayoutCents)
		}
		return 0, nil
	}

	if cmd.PayoutCents == nil {
		payout := cmd.AmountCents * 2
		if err := v.ValidateAmount(payout); err != nil {
			return 0, fmt.Errorf("payout: %w", err)
		}
		return payout, nil
	}

	if err := v.ValidateAmount(*cmd.PayoutCents); err != nil {
		return 0, fmt.Errorf("payout: %w", err)
	}
	return *cmd.PayoutCents, nil
}

// BuildFilter applies defaults and bounds to a history query
func (v *Validator) BuildFilter(query usecase.TransactionQuery) (persistence.TransactionFilter, error) {
	if err := v.ValidatePlayerID(query.PlayerID); err != nil {
		return persistence.TransactionFilter{}, err
	}

	filter := persistence.TransactionFilter{
		PlayerID: query.PlayerID,
		From:     query.From,
		To:       query.To,
		Page:     query.Page,
		Limit:    query.Limit,
	}

	if query.Type != "" {
		txType, err := entity.ParseTransactionType(query.Type)
		if err != nil {
			return persistence.TransactionFilter{}, err
		}
		filter.Type = txType
	}

	if query.GameCode != "" {
		code, err := entity.ParseGameCode(query.GameCode)
		if err != nil {
			return persistence.TransactionFilter{}, err
		}
		filter.GameCode = code
	}

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return persistence.TransactionFilter{}, fmt.Errorf("%w: from is after to", errs.ErrInvalidRequest)
	}

	if filter.Page < 1 {
		filter.Page = DefaultPage
	}
	switch {
	case filter.Limit == 0:
		filter.Limit = DefaultLimit
	case filter.Limit < 1:
		filter.Limit = 1
	case filter.Limit > MaxLimit:
		filter.Limit = MaxLimit
	}

	return filter, nil
}
