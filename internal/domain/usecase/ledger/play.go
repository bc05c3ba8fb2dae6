package ledger

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
)

// playPlan holds the entries a play will append. payout is nil on LOSS.
type playPlan struct {
	bet    entrySpec
	payout *entrySpec
}

// Play places a bet and settles it in one serialized window, so no other
// mutation for the player runs between the BET and the PAYOUT.
// The two entries are separate atomic writes; if the PAYOUT cannot be committed
// the BET stays and the error is returned. Repeating the request with the same
// idempotency key completes the missing PAYOUT.
func (s *Service) Play(ctx context.Context, cmd usecase.PlayCommand) (*usecase.PlayResult, error) {
	payoutCents, err := s.validator.ResolvePlayPayout(cmd)
	if err != nil {
		return nil, err
	}

	game, err := s.lookupGame(ctx, cmd.GameCode)
	if err != nil {
		return nil, err
	}

	plan := playPlan{
		bet: entrySpec{
			operation: opPlay,
			playerID:  cmd.PlayerID,
			txType:    entity.TransactionBet,
			amount:    cmd.AmountCents,
			game:      game,
			key:       cmd.IdempotencyKey,
		},
	}
	if cmd.Outcome == entity.OutcomeWin {
		payout := entrySpec{
			operation: opPlay,
			playerID:  cmd.PlayerID,
			txType:    entity.TransactionPayout,
			amount:    payoutCents,
			game:      game,
			meta: map[string]any{
				entity.MetaOutcome:    string(cmd.Outcome),
				entity.MetaStakeCents: entity.FormatCentsString(cmd.AmountCents),
			},
		}
		if cmd.IdempotencyKey != "" {
			payout.key = entity.PayoutIdempotencyKey(cmd.IdempotencyKey)
		}
		plan.payout = &payout
	}

	var result *usecase.PlayResult

	err = s.serialize(ctx, cmd.PlayerID, func(ctx context.Context) error {
		var (
			committed []*entity.Transaction
			err       error
		)
		for pass := 0; pass < 2; pass++ {
			var fresh []*entity.Transaction
			result, fresh, err = s.playWithin(ctx, plan)
			committed = append(committed, fresh...)
			// Another instance committed the same key after our lookup; the next pass replays it
			if !errors.Is(err, errs.ErrDuplicateRequest) || cmd.IdempotencyKey == "" {
				break
			}
		}

		// A committed BET is announced even if its PAYOUT failed
		s.publish(committed...)
		return err
	})
	if err != nil {
		return nil, s.fail(opPlay, cmd.PlayerID, entity.TransactionBet, cmd.AmountCents, err)
	}

	return result, nil
}

// playWithin runs the play inside the serialized window and returns the result
// together with the entries it newly committed
func (s *Service) playWithin(ctx context.Context, plan playPlan) (*usecase.PlayResult, []*entity.Transaction, error) {
	var committed []*entity.Transaction

	prior, payoutPending, err := s.replayPlay(ctx, plan)
	if err != nil {
		return nil, nil, err
	}

	bet := prior.primary
	replayed := bet != nil

	if replayed && !payoutPending {
		s.logger.Info("Replaying idempotent request", map[string]any{
			"operation":      opPlay,
			"player_id":      plan.bet.playerID.String(),
			"transaction_id": bet.ID,
		})
		result := &usecase.PlayResult{
			Bet:          bet,
			Payout:       prior.payout,
			BalanceCents: bet.BalanceAfterCents,
			Replayed:     true,
		}
		if prior.payout != nil {
			result.BalanceCents = prior.payout.BalanceAfterCents
		}
		return result, nil, nil
	}

	if bet == nil {
		bet, err = s.appendEntry(ctx, plan.bet)
		if err != nil {
			return nil, nil, err
		}
		committed = append(committed, bet)
	}

	result := &usecase.PlayResult{
		Bet:          bet,
		BalanceCents: bet.BalanceAfterCents,
		Replayed:     replayed,
	}

	if plan.payout == nil {
		return result, committed, nil
	}

	payout, err := s.appendEntry(ctx, *plan.payout)
	if err != nil {
		return nil, committed, err
	}
	committed = append(committed, payout)

	result.Payout = payout
	result.BalanceCents = payout.BalanceAfterCents
	return result, committed, nil
}

// replayPlay checks a repeated key. It returns what was committed under the key
// and whether the PAYOUT of a winning play is still missing.
func (s *Service) replayPlay(ctx context.Context, plan playPlan) (priorEntries, bool, error) {
	if plan.bet.key == "" {
		return priorEntries{}, false, nil
	}

	prior, err := s.idempotency.Lookup(ctx, plan.bet.playerID, plan.bet.key)
	if err != nil || prior.empty() {
		return priorEntries{}, false, err
	}

	var expectedPayout *expectedEntry
	if plan.payout != nil {
		entry := plan.payout.expected()
		expectedPayout = &entry
	}

	payoutPending, err := s.idempotency.CheckPlay(prior, plan.bet.expected(), expectedPayout)
	if err != nil {
		return priorEntries{}, false, err
	}

	if payoutPending {
		s.logger.Warn("Completing play with a missing payout", map[string]any{
			"player_id":      plan.bet.playerID.String(),
			"transaction_id": prior.primary.ID,
		})
	}

	return prior, payoutPending, nil
}
