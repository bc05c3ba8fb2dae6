package database

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/logger"
)

func newIntegrationStore(t *testing.T, mode LockingMode) (*LedgerStore, *TestDBManager) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.TruncateLedger(t)

	uow, err := testDB.Manager.CreateUnitOfWork()
	require.NoError(t, err)

	store := NewLedgerStore(uow, idgen.NewULIDGenerator(testDB.TimeProvider), testDB.TimeProvider, testDB.Logger, LedgerStoreOptions{
		LockingMode: mode,
		Retry:       DefaultRetryConfig(),
	})
	return store, testDB
}

func TestLedgerStore_PostgresConcurrentDebits(t *testing.T) {
	store, testDB := newIntegrationStore(t, LockingPessimistic)
	ctx := context.Background()

	player, err := entity.NewPlayer(idgen.NewULIDGenerator(testDB.TimeProvider).NewPlayerID(), "", testDB.TimeProvider)
	require.NoError(t, err)
	credit, err := entity.NewTransaction(player.ID, entity.TransactionDeposit, 1000)
	require.NoError(t, err)
	require.NoError(t, store.CreateAccount(ctx, player, credit))

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bet, err := entity.NewTransaction(player.ID, entity.TransactionBet, 100)
			if err != nil {
				return
			}
			_, err = store.ApplyMutation(ctx, player.ID, -100, bet)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.IsInsufficientFundsError(err):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 10, rejected)

	balance, err := store.GetBalance(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	sum, err := store.SumSignedAmounts(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, balance, sum)

	page, err := store.ListTransactions(ctx, persistence.TransactionFilter{PlayerID: player.ID, Page: 1, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(11), page.Total)
	assert.Len(t, page.Items, 5)
}

func TestLedgerStore_PostgresAppendOnly(t *testing.T) {
	_, testDB := newIntegrationStore(t, LockingOptimistic)

	playerID := testDB.CreateTestPlayer(t, 0)
	require.NoError(t, testDB.Manager.DB().Exec(
		`INSERT INTO transactions (id, player_id, type, amount_cents, balance_after_cents, created_at)
		 VALUES ('01JNB3Q6X8S9T0V1W2X3Y4Z5A6', ?, 'DEPOSIT', 100, 100, now())`, playerID).Error)

	err := testDB.Manager.DB().Exec(`UPDATE transactions SET amount_cents = 1 WHERE player_id = ?`, playerID).Error
	require.Error(t, err)
	assert.ErrorIs(t, NewErrorMapper().MapError(err, "rewrite"), errs.ErrAppendOnly)

	err = testDB.Manager.DB().Exec(`DELETE FROM transactions WHERE player_id = ?`, playerID).Error
	assert.ErrorIs(t, NewErrorMapper().MapError(err, "delete"), errs.ErrAppendOnly)
}

func TestLedgerStore_PostgresDetectsDrift(t *testing.T) {
	store, testDB := newIntegrationStore(t, LockingPessimistic)
	ctx := context.Background()

	playerID := testDB.CreateTestPlayer(t, 500)

	balance, err := store.GetBalance(ctx, playerID)
	require.NoError(t, err)
	sum, err := store.SumSignedAmounts(ctx, playerID)
	require.NoError(t, err)

	assert.Equal(t, int64(500), balance)
	assert.Equal(t, int64(0), sum)
}
