package database

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
)

// LockingMode selects how ApplyMutation reads the player row
type LockingMode string

const (
	// LockingPessimistic reads the row with SELECT ... FOR UPDATE
	LockingPessimistic LockingMode = "pessimistic"
	// LockingOptimistic reads without a lock and relies on the version check
	LockingOptimistic LockingMode = "optimistic"
)

// ParseLockingMode validates a locking mode name
func ParseLockingMode(value string) (LockingMode, error) {
	switch mode := LockingMode(value); mode {
	case LockingPessimistic, LockingOptimistic:
		return mode, nil
	case "":
		return LockingPessimistic, nil
	default:
		return "", fmt.Errorf("invalid locking mode: %s", value)
	}
}

const (
	opApplyMutation    = "apply_mutation"
	opCreateAccount    = "create_account"
	opGetBalance       = "get_balance"
	opListTransactions = "list_transactions"
	opFindIdempotency  = "find_idempotency_key"
	opSumSigned        = "sum_signed_amounts"
)

// LedgerStoreOptions tunes a LedgerStore
type LedgerStoreOptions struct {
	LockingMode   LockingMode
	Retry         RetryConfig
	SlowThreshold time.Duration
}

// LedgerStore is the PostgreSQL LedgerStore. Every write runs in one database
// transaction that updates the player row under a version check and appends
// the log entry.
type LedgerStore struct {
	uow          persistence.UnitOfWork
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
	metrics      *MetricsCollector
	lockingMode  LockingMode
	retry        RetryConfig
}

var _ persistence.LedgerStore = (*LedgerStore)(nil)

// NewLedgerStore creates a LedgerStore on top of a unit of work
func NewLedgerStore(
	uow persistence.UnitOfWork,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts LedgerStoreOptions,
) *LedgerStore {
	mode := opts.LockingMode
	if mode == "" {
		mode = LockingPessimistic
	}
	return &LedgerStore{
		uow:          uow,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		metrics:      NewMetricsCollector(logger, timeProvider, opts.SlowThreshold),
		lockingMode:  mode,
		retry:        opts.Retry,
	}
}

// inTransaction runs fn inside a database transaction and commits when fn succeeds
func (s *LedgerStore) inTransaction(ctx context.Context, operation string, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return s.errorMapper.MapError(err, operation+": begin")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = s.uow.Rollback(txCtx)
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Warn("Rollback failed", map[string]any{
				"operation": operation,
				"error":     rbErr.Error(),
			})
		}
		return s.errorMapper.MapError(err, operation)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return s.errorMapper.MapError(err, operation+": commit")
	}
	return nil
}

// readPlayer loads the player according to the locking mode
func (s *LedgerStore) readPlayer(txCtx context.Context, players persistence.PlayerRepository, playerID uuid.UUID) (*entity.Player, error) {
	if s.lockingMode == LockingOptimistic {
		return players.GetByID(txCtx, playerID)
	}
	return players.GetForUpdate(txCtx, playerID)
}

// stamp builds the committed copy of record for the post-mutation player state
func (s *LedgerStore) stamp(record *entity.Transaction, player *entity.Player) *entity.Transaction {
	entry := *record
	if record.Meta != nil {
		entry.Meta = maps.Clone(record.Meta)
	}
	entry.ID = s.idGenerator.NewTransactionID()
	entry.BalanceAfterCents = player.BalanceCents()
	entry.CreatedAt = player.UpdatedAt
	return &entry
}

// ApplyMutation checks sufficiency, moves the balance and appends record in one transaction
func (s *LedgerStore) ApplyMutation(
	ctx context.Context,
	playerID uuid.UUID,
	deltaCents int64,
	record *entity.Transaction,
) (int64, error) {
	if record == nil || record.PlayerID != playerID || record.SignedAmount() != deltaCents {
		return 0, fmt.Errorf("%w: record does not match delta %d", errs.ErrInvalidAmount, deltaCents)
	}

	var (
		committed *entity.Transaction
		balance   int64
	)

	_, err := s.metrics.MeasureQuery(ctx, opApplyMutation, func() (int64, error) {
		return 2, s.inTransaction(ctx, opApplyMutation, func(txCtx context.Context) error {
			players := s.uow.GetPlayerRepository(txCtx)

			player, err := s.readPlayer(txCtx, players, playerID)
			if err != nil {
				return err
			}

			expectedVersion := player.Version
			next := *player
			if err := next.Apply(deltaCents, s.timeProvider); err != nil {
				return err
			}

			entry := s.stamp(record, &next)
			if err := players.UpdateBalance(txCtx, &next, expectedVersion); err != nil {
				return err
			}
			if err := s.uow.GetTransactionRepository(txCtx).Append(txCtx, entry); err != nil {
				return err
			}

			committed = entry
			balance = next.BalanceCents()
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	*record = *committed
	s.logger.Debug("Mutation committed", map[string]any{
		"player_id":      playerID.String(),
		"transaction_id": committed.ID,
		"delta_cents":    deltaCents,
		"balance_cents":  balance,
	})
	return balance, nil
}

// CreateAccount inserts the player and its optional initial credit in one transaction
func (s *LedgerStore) CreateAccount(ctx context.Context, player *entity.Player, initialCredit *entity.Transaction) error {
	if initialCredit != nil && (initialCredit.PlayerID != player.ID || initialCredit.Type != entity.TransactionDeposit) {
		return fmt.Errorf("%w: initial credit must be a DEPOSIT for the new player", errs.ErrInvalidRequest)
	}

	next := *player
	var entry *entity.Transaction

	err := s.inTransaction(ctx, opCreateAccount, func(txCtx context.Context) error {
		if initialCredit != nil {
			if err := next.Apply(initialCredit.SignedAmount(), s.timeProvider); err != nil {
				return err
			}
			entry = s.stamp(initialCredit, &next)
		}

		if err := s.uow.GetPlayerRepository(txCtx).Create(txCtx, &next); err != nil {
			return err
		}
		if entry != nil {
			return s.uow.GetTransactionRepository(txCtx).Append(txCtx, entry)
		}
		return nil
	})
	if err != nil {
		return err
	}

	*player = next
	if entry != nil {
		*initialCredit = *entry
	}
	return nil
}

// read retries a non-transactional read on transient failures
func (s *LedgerStore) read(ctx context.Context, operation string, fn func() error) error {
	err := RetryOnTransientError(ctx, s.retry, fn, s.errorMapper, s.timeProvider, s.logger)
	return s.errorMapper.MapError(err, operation)
}

// GetBalance returns the committed balance
func (s *LedgerStore) GetBalance(ctx context.Context, playerID uuid.UUID) (int64, error) {
	var balance int64
	err := s.read(ctx, opGetBalance, func() error {
		player, err := s.uow.GetPlayerRepository(ctx).GetByID(ctx, playerID)
		if err != nil {
			return err
		}
		balance = player.BalanceCents()
		return nil
	})
	return balance, err
}

// ListTransactions returns one page of the player's history and the total match count
func (s *LedgerStore) ListTransactions(ctx context.Context, filter persistence.TransactionFilter) (*persistence.TransactionPage, error) {
	page := &persistence.TransactionPage{Page: filter.Page, Limit: filter.Limit}

	err := s.read(ctx, opListTransactions, func() error {
		if _, err := s.uow.GetPlayerRepository(ctx).GetByID(ctx, filter.PlayerID); err != nil {
			return err
		}

		transactions := s.uow.GetTransactionRepository(ctx)
		total, err := transactions.Count(ctx, filter)
		if err != nil {
			return err
		}
		items, err := transactions.List(ctx, filter)
		if err != nil {
			return err
		}

		page.Total = total
		page.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// FindByIdempotencyKey returns entries stored under key or its payout key, oldest first
func (s *LedgerStore) FindByIdempotencyKey(ctx context.Context, playerID uuid.UUID, key string) ([]*entity.Transaction, error) {
	var found []*entity.Transaction
	err := s.read(ctx, opFindIdempotency, func() error {
		var err error
		found, err = s.uow.GetTransactionRepository(ctx).FindByIdempotencyKey(ctx, playerID, key)
		return err
	})
	return found, err
}

// SumSignedAmounts returns the balance implied by the player's log
func (s *LedgerStore) SumSignedAmounts(ctx context.Context, playerID uuid.UUID) (int64, error) {
	var sum int64
	err := s.read(ctx, opSumSigned, func() error {
		if _, err := s.uow.GetPlayerRepository(ctx).GetByID(ctx, playerID); err != nil {
			return err
		}
		var err error
		sum, err = s.uow.GetTransactionRepository(ctx).SumSignedAmounts(ctx, playerID)
		return err
	})
	return sum, err
}
