package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/notification"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
)

// Config tunes the ledger service
type Config struct {
	MaxAmountCents     int64
	MaxConflictRetries int
	ConflictBackoff    time.Duration
	MaxConflictBackoff time.Duration
	QueueSize          int

	// DistributedLock holds a player_locks lease for the serialized window
	DistributedLock bool
	LockLease       time.Duration
	InstanceID      string
}

// DefaultConfig returns the default ledger configuration
func DefaultConfig() Config {
	return Config{
		MaxAmountCents:     entity.DefaultMaxAmountCents,
		MaxConflictRetries: 5,
		ConflictBackoff:    10 * time.Millisecond,
		MaxConflictBackoff: 500 * time.Millisecond,
		QueueSize:          DefaultQueueSize,
		LockLease:          5 * time.Second,
	}
}

// Service is the ledger use case. It is the only code path that mutates balances.
type Service struct {
	store        persistence.LedgerStore
	games        persistence.GameRepository
	locks        persistence.PlayerLockRepository
	dispatcher   notification.Dispatcher
	serializer   *PlayerSerializer
	validator    *Validator
	idempotency  *IdempotencyHandler
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// NewService creates a new ledger service.
// locks may be nil; it is only used when cfg.DistributedLock is set.
func NewService(
	store persistence.LedgerStore,
	games persistence.GameRepository,
	locks persistence.PlayerLockRepository,
	dispatcher notification.Dispatcher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	if cfg.DistributedLock && locks == nil {
		panic("distributed lock enabled without a lock repository")
	}
	if cfg.InstanceID == "" {
		cfg.InstanceID = uuid.NewString()
	}

	return &Service{
		store:        store,
		games:        games,
		locks:        locks,
		dispatcher:   dispatcher,
		serializer:   NewPlayerSerializer(logger, cfg.QueueSize),
		validator:    NewValidator(cfg.MaxAmountCents),
		idempotency:  NewIdempotencyHandler(store),
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// Shutdown drains queued mutations. Call it after the transport has stopped
// accepting requests.
func (s *Service) Shutdown() {
	s.serializer.Shutdown()
}

// serialize runs work inside the player's serialized window, holding the
// distributed lease when one is configured
func (s *Service) serialize(ctx context.Context, playerID uuid.UUID, work WorkFunc) error {
	return s.serializer.Do(ctx, playerID, func(ctx context.Context) error {
		if !s.cfg.DistributedLock {
			return work(ctx)
		}

		if err := s.acquireLease(ctx, playerID); err != nil {
			return err
		}
		defer func() {
			if err := s.locks.ReleaseLock(ctx, playerID, s.cfg.InstanceID); err != nil {
				s.logger.Warn("Failed to release player lease", map[string]any{
					"player_id": playerID.String(),
					"error":     err.Error(),
				})
			}
		}()

		return work(ctx)
	})
}

// lookupGame resolves a game code against the catalogue
func (s *Service) lookupGame(ctx context.Context, code entity.GameCode) (*entity.Game, error) {
	game, err := s.games.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve game %s: %w", code, err)
	}
	return game, nil
}
