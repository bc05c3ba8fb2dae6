package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
)

// GetBalance reads the committed balance. It does not wait for queued mutations.
func (s *Service) GetBalance(ctx context.Context, playerID uuid.UUID) (*usecase.BalanceResult, error) {
	if err := s.validator.ValidatePlayerID(playerID); err != nil {
		return nil, err
	}

	balance, err := s.store.GetBalance(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return &usecase.BalanceResult{
		PlayerID:     playerID,
		BalanceCents: balance,
	}, nil
}

// ListTransactions returns a page of the player's history, newest first.
// Ties on createdAt are broken by id so paging is stable.
func (s *Service) ListTransactions(ctx context.Context, query usecase.TransactionQuery) (*persistence.TransactionPage, error) {
	filter, err := s.validator.BuildFilter(query)
	if err != nil {
		return nil, err
	}

	// Unknown players get an explicit not-found rather than an empty page
	if _, err := s.store.GetBalance(ctx, filter.PlayerID); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	page, err := s.store.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return page, nil
}

// Reconcile compares the stored balance with the signed sum of the log.
// The two reads run in the player's window so no mutation lands between them.
func (s *Service) Reconcile(ctx context.Context, playerID uuid.UUID) (*usecase.ReconcileResult, error) {
	if err := s.validator.ValidatePlayerID(playerID); err != nil {
		return nil, err
	}

	result := &usecase.ReconcileResult{PlayerID: playerID}

	err := s.serializer.Do(ctx, playerID, func(ctx context.Context) error {
		balance, err := s.store.GetBalance(ctx, playerID)
		if err != nil {
			return err
		}
		sum, err := s.store.SumSignedAmounts(ctx, playerID)
		if err != nil {
			return err
		}

		result.BalanceCents = balance
		result.LedgerSumCents = sum
		result.Consistent = balance == sum
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile: %w", err)
	}

	if !result.Consistent {
		s.logger.Error("Ledger drift detected", map[string]any{
			"player_id":        playerID.String(),
			"balance_cents":    result.BalanceCents,
			"ledger_sum_cents": result.LedgerSumCents,
		})
	}

	return result, nil
}
