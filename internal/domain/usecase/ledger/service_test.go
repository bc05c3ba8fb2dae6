package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/notification"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	mockcore "github.com/amirhossein-jamali/casino-wallet/mocks/port/core"
	mocknotification "github.com/amirhossein-jamali/casino-wallet/mocks/port/notification"
	mockpersistence "github.com/amirhossein-jamali/casino-wallet/mocks/port/persistence"
)

var commitTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// recordingDispatcher keeps every dispatched event for assertions
type recordingDispatcher struct {
	mu     sync.Mutex
	events []notification.Event
}

func (d *recordingDispatcher) Dispatch(events ...notification.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, events...)
}

func (d *recordingDispatcher) recorded() []notification.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]notification.Event(nil), d.events...)
}

func (d *recordingDispatcher) revenueTicks() []int64 {
	var ticks []int64
	for _, e := range d.recorded() {
		if tick, ok := e.(notification.RevenueTickEvent); ok {
			ticks = append(ticks, tick.GGRDeltaCents)
		}
	}
	return ticks
}

type serviceDeps struct {
	store  *mockpersistence.MockLedgerStore
	games  *mockpersistence.MockGameRepository
	locks  *mockpersistence.MockPlayerLockRepository
	events *recordingDispatcher
}

func newTestService(t *testing.T, configure func(*Config)) (*Service, serviceDeps) {
	deps := serviceDeps{
		store:  mockpersistence.NewMockLedgerStore(t),
		games:  mockpersistence.NewMockGameRepository(t),
		locks:  mockpersistence.NewMockPlayerLockRepository(t),
		events: &recordingDispatcher{},
	}

	cfg := DefaultConfig()
	cfg.ConflictBackoff = 0
	cfg.InstanceID = "instance-1"
	if configure != nil {
		configure(&cfg)
	}

	svc := NewService(deps.store, deps.games, deps.locks, deps.events,
		mockcore.NewMockTimeProvider(t), newMockLogger(t), cfg)
	t.Cleanup(svc.Shutdown)

	return svc, deps
}

// commitAt simulates a successful store write
func commitAt(balance int64) func(context.Context, uuid.UUID, int64, *entity.Transaction) (int64, error) {
	return func(_ context.Context, _ uuid.UUID, _ int64, record *entity.Transaction) (int64, error) {
		record.ID = "01JNX5" + uuid.NewString()[:8]
		record.BalanceAfterCents = balance
		record.CreatedAt = commitTime
		return balance, nil
	}
}

func isEntry(txType entity.TransactionType, amount int64) any {
	return mock.MatchedBy(func(r *entity.Transaction) bool {
		return r.Type == txType && r.AmountCents == amount
	})
}

func slotsGame() *entity.Game {
	return entity.DefaultGames()[0]
}

func TestService_Deposit(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	t.Run("should credit and announce the new balance", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.store.EXPECT().
			ApplyMutation(mock.Anything, playerID, int64(5000), isEntry(entity.TransactionDeposit, 5000)).
			RunAndReturn(commitAt(105000)).Once()

		result, err := svc.Deposit(ctx, usecase.DepositCommand{PlayerID: playerID, AmountCents: 5000})

		require.NoError(t, err)
		assert.Equal(t, int64(105000), result.BalanceCents)
		require.NotNil(t, result.Transaction)
		assert.Equal(t, int64(105000), result.Transaction.BalanceAfterCents)
		assert.False(t, result.Replayed)

		events := deps.events.recorded()
		require.Len(t, events, 3)
		assert.IsType(t, notification.TransactionCreatedEvent{}, events[0])
		assert.Equal(t, notification.BalanceChangedEvent{PlayerID: playerID, BalanceCents: 105000, At: commitTime}, events[1])
		assert.Equal(t, notification.AggregateChangedEvent{Kind: notification.AggregatePlayer, At: commitTime}, events[2])
	})

	t.Run("should reject invalid amounts before touching the store", func(t *testing.T) {
		svc, deps := newTestService(t, nil)

		for _, amount := range []int64{0, -5, entity.DefaultMaxAmountCents + 1} {
			_, err := svc.Deposit(ctx, usecase.DepositCommand{PlayerID: playerID, AmountCents: amount})
			assert.ErrorIs(t, err, errs.ErrInvalidAmount, "amount %d", amount)
		}
		assert.Empty(t, deps.events.recorded())
	})

	t.Run("should reject a nil player", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		_, err := svc.Deposit(ctx, usecase.DepositCommand{PlayerID: uuid.Nil, AmountCents: 100})

		assert.ErrorIs(t, err, errs.ErrInvalidPlayerID)
	})
}

func TestService_Withdraw(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	t.Run("should debit", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.store.EXPECT().
			ApplyMutation(mock.Anything, playerID, int64(-2000), isEntry(entity.TransactionWithdrawal, 2000)).
			RunAndReturn(commitAt(3000)).Once()

		result, err := svc.Withdraw(ctx, usecase.WithdrawCommand{PlayerID: playerID, AmountCents: 2000})

		require.NoError(t, err)
		assert.Equal(t, int64(3000), result.BalanceCents)
	})

	t.Run("should report insufficient funds without retrying or notifying", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.store.EXPECT().
			ApplyMutation(mock.Anything, playerID, int64(-600), mock.Anything).
			Return(int64(0), errs.NewInsufficientFundsError(playerID.String(), 600, 500)).Once()

		result, err := svc.Withdraw(ctx, usecase.WithdrawCommand{PlayerID: playerID, AmountCents: 600})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		var ledgerErr *errs.LedgerError
		require.ErrorAs(t, err, &ledgerErr)
		assert.Equal(t, "withdraw", ledgerErr.Operation)
		assert.Empty(t, deps.events.recorded())
	})
}

func TestService_ConflictRetry(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	t.Run("should retry conflicts and succeed", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(100), mock.Anything).
			Return(int64(0), errs.ErrConcurrencyConflict).Twice()
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(100), mock.Anything).
			RunAndReturn(commitAt(100)).Once()

		result, err := svc.Deposit(ctx, usecase.DepositCommand{PlayerID: playerID, AmountCents: 100})

		require.NoError(t, err)
		assert.Equal(t, int64(100), result.BalanceCents)
	})

	t.Run("should surface exhausted retries as store unavailable", func(t *testing.T) {
		svc, deps := newTestService(t, func(cfg *Config) { cfg.MaxConflictRetries = 2 })
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(100), mock.Anything).
			Return(int64(0), errs.ErrConcurrencyConflict).Times(3)

		_, err := svc.Deposit(ctx, usecase.DepositCommand{PlayerID: playerID, AmountCents: 100})

		assert.True(t, errs.IsStoreUnavailable(err))
		assert.False(t, errs.IsConcurrencyConflict(err))
	})

	t.Run("should not retry store unavailable", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(100), mock.Anything).
			Return(int64(0), errs.StoreUnavailable("commit", nil)).Once()

		_, err := svc.Deposit(ctx, usecase.DepositCommand{PlayerID: playerID, AmountCents: 100})

		assert.True(t, errs.IsStoreUnavailable(err))
	})
}

func TestService_PlaceBet(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	t.Run("should debit the stake against the game", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.games.EXPECT().GetByCode(mock.Anything, entity.GameSlots).Return(slotsGame(), nil).Once()
		deps.store.EXPECT().
			ApplyMutation(mock.Anything, playerID, int64(-1000), mock.MatchedBy(func(r *entity.Transaction) bool {
				return r.Type == entity.TransactionBet && r.GameCode == entity.GameSlots && r.GameID != nil
			})).
			RunAndReturn(commitAt(99000)).Once()

		result, err := svc.PlaceBet(ctx, usecase.BetCommand{PlayerID: playerID, GameCode: entity.GameSlots, AmountCents: 1000})

		require.NoError(t, err)
		assert.Equal(t, int64(99000), result.BalanceCents)
		assert.Equal(t, []int64{1000}, deps.events.revenueTicks())
		assert.Len(t, deps.events.recorded(), 6)
	})

	t.Run("should reject an unknown game code", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		_, err := svc.PlaceBet(ctx, usecase.BetCommand{PlayerID: playerID, GameCode: "poker", AmountCents: 1000})

		assert.ErrorIs(t, err, errs.ErrInvalidGame)
	})

	t.Run("should report a game missing from the catalogue", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.games.EXPECT().GetByCode(mock.Anything, entity.GameRoulette).Return(nil, errs.ErrGameNotFound).Once()

		_, err := svc.PlaceBet(ctx, usecase.BetCommand{PlayerID: playerID, GameCode: entity.GameRoulette, AmountCents: 1000})

		assert.ErrorIs(t, err, errs.ErrGameNotFound)
	})
}

func TestService_SettleOutcome(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	t.Run("should credit a win with outcome meta", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.games.EXPECT().GetByCode(mock.Anything, entity.GameSlots).Return(slotsGame(), nil).Once()
		deps.store.EXPECT().
			ApplyMutation(mock.Anything, playerID, int64(2000), mock.MatchedBy(func(r *entity.Transaction) bool {
				return r.Type == entity.TransactionPayout &&
					r.Meta[entity.MetaOutcome] == "WIN" &&
					r.Meta[entity.MetaStakeCents] == "1000"
			})).
			RunAndReturn(commitAt(101000)).Once()

		result, err := svc.SettleOutcome(ctx, usecase.SettleCommand{
			PlayerID:    playerID,
			GameCode:    entity.GameSlots,
			Outcome:     entity.OutcomeWin,
			StakeCents:  1000,
			PayoutCents: 2000,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(101000), result.BalanceCents)
		assert.Equal(t, []int64{-2000}, deps.events.revenueTicks())
	})

	t.Run("should append nothing on a loss", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.games.EXPECT().GetByCode(mock.Anything, entity.GameSlots).Return(slotsGame(), nil).Once()
		deps.store.EXPECT().GetBalance(mock.Anything, playerID).Return(int64(9000), nil).Once()

		result, err := svc.SettleOutcome(ctx, usecase.SettleCommand{
			PlayerID:   playerID,
			GameCode:   entity.GameSlots,
			Outcome:    entity.OutcomeLoss,
			StakeCents: 1000,
		})

		require.NoError(t, err)
		assert.Nil(t, result.Transaction)
		assert.Equal(t, int64(9000), result.BalanceCents)
		assert.Empty(t, deps.events.recorded())
	})

	t.Run("should validate outcome and payout", func(t *testing.T) {
		svc, _ := newTestService(t, nil)
		base := usecase.SettleCommand{PlayerID: playerID, GameCode: entity.GameSlots, StakeCents: 1000}

		loss := base
		loss.Outcome = entity.OutcomeLoss
		loss.PayoutCents = 500
		_, err := svc.SettleOutcome(ctx, loss)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		win := base
		win.Outcome = entity.OutcomeWin
		_, err = svc.SettleOutcome(ctx, win)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		draw := base
		draw.Outcome = "DRAW"
		_, err = svc.SettleOutcome(ctx, draw)
		assert.ErrorIs(t, err, errs.ErrInvalidOutcome)
	})
}

func TestService_Play(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	t.Run("should pay twice the stake on a win by default", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.games.EXPECT().GetByCode(mock.Anything, entity.GameSlots).Return(slotsGame(), nil).Once()
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(-1000), isEntry(entity.TransactionBet, 1000)).
			RunAndReturn(commitAt(9000)).Once()
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(2000), isEntry(entity.TransactionPayout, 2000)).
			RunAndReturn(commitAt(11000)).Once()

		result, err := svc.Play(ctx, usecase.PlayCommand{
			PlayerID:    playerID,
			GameCode:    entity.GameSlots,
			AmountCents: 1000,
			Outcome:     entity.OutcomeWin,
		})

		require.NoError(t, err)
		require.NotNil(t, result.Bet)
		require.NotNil(t, result.Payout)
		assert.Equal(t, int64(9000), result.Bet.BalanceAfterCents)
		assert.Equal(t, int64(11000), result.BalanceCents)
		assert.Equal(t, []int64{-1000}, deps.events.revenueTicks())
	})

	t.Run("should only bet on a loss", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.games.EXPECT().GetByCode(mock.Anything, entity.GameSlots).Return(slotsGame(), nil).Once()
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(-1000), isEntry(entity.TransactionBet, 1000)).
			RunAndReturn(commitAt(9000)).Once()

		result, err := svc.Play(ctx, usecase.PlayCommand{
			PlayerID:    playerID,
			GameCode:    entity.GameSlots,
			AmountCents: 1000,
			Outcome:     entity.OutcomeLoss,
		})

		require.NoError(t, err)
		assert.Nil(t, result.Payout)
		assert.Equal(t, int64(9000), result.BalanceCents)
		assert.Equal(t, []int64{1000}, deps.events.revenueTicks())
	})

	t.Run("should honour an explicit payout", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		payout := int64(3500)
		deps.games.EXPECT().GetByCode(mock.Anything, entity.GameSlots).Return(slotsGame(), nil).Once()
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(-1000), mock.Anything).
			RunAndReturn(commitAt(9000)).Once()
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(3500), mock.Anything).
			RunAndReturn(commitAt(12500)).Once()

		result, err := svc.Play(ctx, usecase.PlayCommand{
			PlayerID:    playerID,
			GameCode:    entity.GameSlots,
			AmountCents: 1000,
			Outcome:     entity.OutcomeWin,
			PayoutCents: &payout,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(12500), result.BalanceCents)
	})

	t.Run("should keep and announce the bet when the payout fails", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.games.EXPECT().GetByCode(mock.Anything, entity.GameSlots).Return(slotsGame(), nil).Once()
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(-1000), mock.Anything).
			RunAndReturn(commitAt(9000)).Once()
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(2000), mock.Anything).
			Return(int64(0), errs.StoreUnavailable("commit", nil)).Once()

		_, err := svc.Play(ctx, usecase.PlayCommand{
			PlayerID:    playerID,
			GameCode:    entity.GameSlots,
			AmountCents: 1000,
			Outcome:     entity.OutcomeWin,
		})

		assert.True(t, errs.IsStoreUnavailable(err))
		assert.Equal(t, []int64{1000}, deps.events.revenueTicks())
	})
}

func TestService_Idempotency(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	committedDeposit := func(key string, amount, balance int64) *entity.Transaction {
		return &entity.Transaction{
			ID:                "01JNX5PRIOR",
			PlayerID:          playerID,
			Type:              entity.TransactionDeposit,
			AmountCents:       amount,
			BalanceAfterCents: balance,
			IdempotencyKey:    key,
			CreatedAt:         commitTime,
		}
	}

	t.Run("should replay a repeated request without writing", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.store.EXPECT().FindByIdempotencyKey(mock.Anything, playerID, "k-1").
			Return([]*entity.Transaction{committedDeposit("k-1", 5000, 105000)}, nil).Once()

		result, err := svc.Deposit(ctx, usecase.DepositCommand{PlayerID: playerID, AmountCents: 5000, IdempotencyKey: "k-1"})

		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Equal(t, "01JNX5PRIOR", result.Transaction.ID)
		assert.Equal(t, int64(105000), result.BalanceCents)
		assert.Empty(t, deps.events.recorded())
	})

	t.Run("should reject a key reused with a different payload", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.store.EXPECT().FindByIdempotencyKey(mock.Anything, playerID, "k-1").
			Return([]*entity.Transaction{committedDeposit("k-1", 5000, 105000)}, nil).Once()

		_, err := svc.Deposit(ctx, usecase.DepositCommand{PlayerID: playerID, AmountCents: 7000, IdempotencyKey: "k-1"})

		assert.ErrorIs(t, err, errs.ErrIdempotencyKeyReuse)
	})

	t.Run("should store the key on first use", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.store.EXPECT().FindByIdempotencyKey(mock.Anything, playerID, "k-2").Return(nil, nil).Once()
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(5000), mock.MatchedBy(func(r *entity.Transaction) bool {
			return r.IdempotencyKey == "k-2"
		})).RunAndReturn(commitAt(105000)).Once()

		result, err := svc.Deposit(ctx, usecase.DepositCommand{PlayerID: playerID, AmountCents: 5000, IdempotencyKey: "k-2"})

		require.NoError(t, err)
		assert.False(t, result.Replayed)
	})

	t.Run("should replay when another instance wins the race", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.store.EXPECT().FindByIdempotencyKey(mock.Anything, playerID, "k-3").Return(nil, nil).Once()
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(5000), mock.Anything).
			Return(int64(0), errs.ErrDuplicateRequest).Once()
		deps.store.EXPECT().FindByIdempotencyKey(mock.Anything, playerID, "k-3").
			Return([]*entity.Transaction{committedDeposit("k-3", 5000, 105000)}, nil).Once()

		result, err := svc.Deposit(ctx, usecase.DepositCommand{PlayerID: playerID, AmountCents: 5000, IdempotencyKey: "k-3"})

		require.NoError(t, err)
		assert.True(t, result.Replayed)
	})

	t.Run("should finish a play whose payout is missing", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		bet := &entity.Transaction{
			ID:                "01JNX5BET",
			PlayerID:          playerID,
			Type:              entity.TransactionBet,
			AmountCents:       1000,
			BalanceAfterCents: 9000,
			GameCode:          entity.GameSlots,
			IdempotencyKey:    "k-4",
		}
		deps.games.EXPECT().GetByCode(mock.Anything, entity.GameSlots).Return(slotsGame(), nil).Once()
		deps.store.EXPECT().FindByIdempotencyKey(mock.Anything, playerID, "k-4").
			Return([]*entity.Transaction{bet}, nil).Once()
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(2000), mock.MatchedBy(func(r *entity.Transaction) bool {
			return r.IdempotencyKey == "k-4#payout"
		})).RunAndReturn(commitAt(11000)).Once()

		result, err := svc.Play(ctx, usecase.PlayCommand{
			PlayerID:       playerID,
			GameCode:       entity.GameSlots,
			AmountCents:    1000,
			Outcome:        entity.OutcomeWin,
			IdempotencyKey: "k-4",
		})

		require.NoError(t, err)
		assert.Equal(t, "01JNX5BET", result.Bet.ID)
		require.NotNil(t, result.Payout)
		assert.Equal(t, int64(11000), result.BalanceCents)
	})
}

func TestService_ListTransactions(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	t.Run("should apply paging defaults and bounds", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.store.EXPECT().GetBalance(mock.Anything, playerID).Return(int64(0), nil).Twice()
		deps.store.EXPECT().ListTransactions(mock.Anything, mock.MatchedBy(func(f persistence.TransactionFilter) bool {
			return f.Page == 1 && f.Limit == 20
		})).Return(&persistence.TransactionPage{Page: 1, Limit: 20}, nil).Once()
		deps.store.EXPECT().ListTransactions(mock.Anything, mock.MatchedBy(func(f persistence.TransactionFilter) bool {
			return f.Page == 3 && f.Limit == 100 && f.Type == entity.TransactionBet && f.GameCode == entity.GameRoulette
		})).Return(&persistence.TransactionPage{Page: 3, Limit: 100}, nil).Once()

		page, err := svc.ListTransactions(ctx, usecase.TransactionQuery{PlayerID: playerID, Page: -2})
		require.NoError(t, err)
		assert.Equal(t, 20, page.Limit)

		page, err = svc.ListTransactions(ctx, usecase.TransactionQuery{
			PlayerID: playerID,
			Type:     "BET",
			GameCode: "roulette",
			Page:     3,
			Limit:    500,
		})
		require.NoError(t, err)
		assert.Equal(t, 100, page.Limit)
	})

	t.Run("should reject bad filters", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		_, err := svc.ListTransactions(ctx, usecase.TransactionQuery{PlayerID: playerID, Type: "REFUND"})
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)

		from := commitTime
		to := commitTime.Add(-time.Hour)
		_, err = svc.ListTransactions(ctx, usecase.TransactionQuery{PlayerID: playerID, From: &from, To: &to})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("should report an unknown player", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.store.EXPECT().GetBalance(mock.Anything, playerID).Return(int64(0), errs.ErrPlayerNotFound).Once()

		_, err := svc.ListTransactions(ctx, usecase.TransactionQuery{PlayerID: playerID})

		assert.ErrorIs(t, err, errs.ErrPlayerNotFound)
	})
}

func TestService_Reconcile(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	t.Run("should report a consistent ledger", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.store.EXPECT().GetBalance(mock.Anything, playerID).Return(int64(104000), nil).Once()
		deps.store.EXPECT().SumSignedAmounts(mock.Anything, playerID).Return(int64(104000), nil).Once()

		result, err := svc.Reconcile(ctx, playerID)

		require.NoError(t, err)
		assert.True(t, result.Consistent)
		assert.Equal(t, int64(104000), result.LedgerSumCents)
	})

	t.Run("should flag drift", func(t *testing.T) {
		svc, deps := newTestService(t, nil)
		deps.store.EXPECT().GetBalance(mock.Anything, playerID).Return(int64(104000), nil).Once()
		deps.store.EXPECT().SumSignedAmounts(mock.Anything, playerID).Return(int64(103000), nil).Once()

		result, err := svc.Reconcile(ctx, playerID)

		require.NoError(t, err)
		assert.False(t, result.Consistent)
	})
}

func TestService_DistributedLock(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()
	lease := 5 * time.Second

	t.Run("should hold the lease around the write", func(t *testing.T) {
		svc, deps := newTestService(t, func(cfg *Config) { cfg.DistributedLock = true })
		deps.locks.EXPECT().AcquireLock(mock.Anything, playerID, "instance-1", lease).Return(nil).Once()
		deps.store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(100), mock.Anything).
			RunAndReturn(commitAt(100)).Once()
		deps.locks.EXPECT().ReleaseLock(mock.Anything, playerID, "instance-1").Return(nil).Once()

		_, err := svc.Deposit(ctx, usecase.DepositCommand{PlayerID: playerID, AmountCents: 100})

		require.NoError(t, err)
	})

	t.Run("should give up when another instance keeps the lease", func(t *testing.T) {
		svc, deps := newTestService(t, func(cfg *Config) {
			cfg.DistributedLock = true
			cfg.MaxConflictRetries = 1
		})
		deps.locks.EXPECT().AcquireLock(mock.Anything, playerID, "instance-1", lease).
			Return(errs.ErrPlayerLocked).Times(2)

		_, err := svc.Deposit(ctx, usecase.DepositCommand{PlayerID: playerID, AmountCents: 100})

		assert.True(t, errs.IsPlayerLockedError(err))
	})
}

func TestService_NoEventsOnRejectedWrite(t *testing.T) {
	store := mockpersistence.NewMockLedgerStore(t)
	dispatcher := mocknotification.NewMockDispatcher(t)
	cfg := DefaultConfig()
	cfg.ConflictBackoff = 0

	svc := NewService(store, mockpersistence.NewMockGameRepository(t), nil, dispatcher,
		mockcore.NewMockTimeProvider(t), newMockLogger(t), cfg)
	defer svc.Shutdown()

	playerID := uuid.New()
	store.EXPECT().ApplyMutation(mock.Anything, playerID, int64(-100), mock.Anything).
		Return(int64(0), errs.NewInsufficientFundsError(playerID.String(), 100, 0)).Once()

	_, err := svc.Withdraw(context.Background(), usecase.WithdrawCommand{PlayerID: playerID, AmountCents: 100})

	assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	dispatcher.AssertNotCalled(t, "Dispatch")
}
