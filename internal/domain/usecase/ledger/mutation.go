package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
)

// Operation names used in logs and wrapped errors
const (
	opDeposit  = "deposit"
	opWithdraw = "withdraw"
	opBet      = "place_bet"
	opSettle   = "settle_outcome"
	opPlay     = "play"
)

// entrySpec describes one log entry a request wants to append
type entrySpec struct {
	operation string
	playerID  uuid.UUID
	txType    entity.TransactionType
	amount    int64
	game      *entity.Game
	meta      map[string]any
	key       string
}

// expected returns the payload an idempotent replay must match
func (e entrySpec) expected() expectedEntry {
	entry := expectedEntry{txType: e.txType, amount: e.amount}
	if e.game != nil {
		entry.gameCode = e.game.Code
	}
	return entry
}

// Deposit credits the player's wallet
func (s *Service) Deposit(ctx context.Context, cmd usecase.DepositCommand) (*usecase.MutationResult, error) {
	if err := s.validator.ValidateMutation(cmd.PlayerID, cmd.AmountCents, cmd.IdempotencyKey); err != nil {
		return nil, err
	}

	return s.applySingle(ctx, entrySpec{
		operation: opDeposit,
		playerID:  cmd.PlayerID,
		txType:    entity.TransactionDeposit,
		amount:    cmd.AmountCents,
		key:       cmd.IdempotencyKey,
	})
}

// Withdraw debits the player's wallet if the balance covers the amount
func (s *Service) Withdraw(ctx context.Context, cmd usecase.WithdrawCommand) (*usecase.MutationResult, error) {
	if err := s.validator.ValidateMutation(cmd.PlayerID, cmd.AmountCents, cmd.IdempotencyKey); err != nil {
		return nil, err
	}

	return s.applySingle(ctx, entrySpec{
		operation: opWithdraw,
		playerID:  cmd.PlayerID,
		txType:    entity.TransactionWithdrawal,
		amount:    cmd.AmountCents,
		key:       cmd.IdempotencyKey,
	})
}

// PlaceBet debits a stake and records a BET against the game
func (s *Service) PlaceBet(ctx context.Context, cmd usecase.BetCommand) (*usecase.MutationResult, error) {
	if err := s.validator.ValidateMutation(cmd.PlayerID, cmd.AmountCents, cmd.IdempotencyKey); err != nil {
		return nil, err
	}
	if _, err := entity.ParseGameCode(string(cmd.GameCode)); err != nil {
		return nil, err
	}

	game, err := s.lookupGame(ctx, cmd.GameCode)
	if err != nil {
		return nil, err
	}

	return s.applySingle(ctx, entrySpec{
		operation: opBet,
		playerID:  cmd.PlayerID,
		txType:    entity.TransactionBet,
		amount:    cmd.AmountCents,
		game:      game,
		key:       cmd.IdempotencyKey,
	})
}

// SettleOutcome credits the payout of a winning bet. A LOSS appends nothing and
// returns the current balance.
func (s *Service) SettleOutcome(ctx context.Context, cmd usecase.SettleCommand) (*usecase.MutationResult, error) {
	if err := s.validator.ValidateSettlement(cmd); err != nil {
		return nil, err
	}

	game, err := s.lookupGame(ctx, cmd.GameCode)
	if err != nil {
		return nil, err
	}

	if cmd.Outcome == entity.OutcomeLoss {
		return s.settleLoss(ctx, cmd)
	}

	return s.applySingle(ctx, entrySpec{
		operation: opSettle,
		playerID:  cmd.PlayerID,
		txType:    entity.TransactionPayout,
		amount:    cmd.PayoutCents,
		game:      game,
		meta: map[string]any{
			entity.MetaOutcome:    string(cmd.Outcome),
			entity.MetaStakeCents: entity.FormatCentsString(cmd.StakeCents),
		},
		key: cmd.IdempotencyKey,
	})
}

// settleLoss reads the balance in the player's window so it reflects every
// mutation queued before the settlement
func (s *Service) settleLoss(ctx context.Context, cmd usecase.SettleCommand) (*usecase.MutationResult, error) {
	var balance int64

	err := s.serialize(ctx, cmd.PlayerID, func(ctx context.Context) error {
		var err error
		balance, err = s.store.GetBalance(ctx, cmd.PlayerID)
		return err
	})
	if err != nil {
		return nil, s.fail(opSettle, cmd.PlayerID, entity.TransactionPayout, 0, err)
	}

	return &usecase.MutationResult{BalanceCents: balance}, nil
}

// applySingle runs a one-entry mutation inside the player's serialized window
func (s *Service) applySingle(ctx context.Context, req entrySpec) (*usecase.MutationResult, error) {
	var result *usecase.MutationResult

	err := s.serialize(ctx, req.playerID, func(ctx context.Context) error {
		replayed, err := s.replaySingle(ctx, req)
		if err != nil {
			return err
		}
		if replayed != nil {
			result = replayed
			return nil
		}

		tx, err := s.appendEntry(ctx, req)
		if errors.Is(err, errs.ErrDuplicateRequest) {
			// Another instance committed the same key after our lookup
			if replayed, replayErr := s.replaySingle(ctx, req); replayErr != nil || replayed != nil {
				result = replayed
				return replayErr
			}
		}
		if err != nil {
			return err
		}

		result = &usecase.MutationResult{Transaction: tx, BalanceCents: tx.BalanceAfterCents}
		s.publish(tx)
		return nil
	})
	if err != nil {
		return nil, s.fail(req.operation, req.playerID, req.txType, req.amount, err)
	}

	return result, nil
}

// replaySingle returns the committed result for a repeated idempotency key, or nil
// if the key has not been used
func (s *Service) replaySingle(ctx context.Context, req entrySpec) (*usecase.MutationResult, error) {
	if req.key == "" {
		return nil, nil
	}

	prior, err := s.idempotency.Lookup(ctx, req.playerID, req.key)
	if err != nil || prior.empty() {
		return nil, err
	}

	tx, err := s.idempotency.CheckSingle(prior, req.expected())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Replaying idempotent request", map[string]any{
		"operation":      req.operation,
		"player_id":      req.playerID.String(),
		"transaction_id": tx.ID,
	})

	return &usecase.MutationResult{
		Transaction:  tx,
		BalanceCents: tx.BalanceAfterCents,
		Replayed:     true,
	}, nil
}

// appendEntry writes one entry through the store, retrying on conflicts
func (s *Service) appendEntry(ctx context.Context, req entrySpec) (*entity.Transaction, error) {
	record, err := entity.NewTransaction(req.playerID, req.txType, req.amount)
	if err != nil {
		return nil, err
	}
	record.ForGame(req.game).WithIdempotencyKey(req.key)
	for key, value := range req.meta {
		record.WithMeta(key, value)
	}

	var committed *entity.Transaction
	err = s.retryOnConflict(ctx, req.operation, req.playerID, func() error {
		attempt := *record
		if _, err := s.store.ApplyMutation(ctx, req.playerID, attempt.SignedAmount(), &attempt); err != nil {
			return err
		}
		committed = &attempt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Ledger entry committed", map[string]any{
		"operation":           req.operation,
		"player_id":           req.playerID.String(),
		"transaction_id":      committed.ID,
		"type":                string(committed.Type),
		"amount_cents":        committed.AmountCents,
		"balance_after_cents": committed.BalanceAfterCents,
	})

	return committed, nil
}

// fail wraps and logs a failed mutation
func (s *Service) fail(
	operation string,
	playerID uuid.UUID,
	txType entity.TransactionType,
	amountCents int64,
	err error,
) error {
	ledgerErr := &errs.LedgerError{
		Operation:       operation,
		PlayerID:        playerID.String(),
		TransactionType: string(txType),
		AmountCents:     amountCents,
		Err:             err,
	}
	fields := ledgerErr.LogFields()

	switch {
	case errs.IsInsufficientFundsError(err), errs.IsNotFoundError(err), errs.IsValidationError(err),
		errors.Is(err, errs.ErrIdempotencyKeyReuse), errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		s.logger.Warn("Ledger operation rejected", fields)
	default:
		s.logger.Error("Ledger operation failed", fields)
	}

	return ledgerErr
}
