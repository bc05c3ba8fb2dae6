package ledger

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
)

// retryOnConflict reruns operation while the store reports a concurrency conflict.
// Once the retry budget is spent the conflict is reported as ErrStoreUnavailable.
// Any other error is returned as is.
func (s *Service) retryOnConflict(ctx context.Context, operation string, playerID uuid.UUID, attempt func() error) error {
	var err error

	for try := 0; ; try++ {
		err = attempt()
		if !errs.IsConcurrencyConflict(err) {
			return err
		}

		if try >= s.cfg.MaxConflictRetries {
			break
		}

		backoff := s.backoff(try)
		s.logger.Warn("Concurrent modification detected, retrying", map[string]any{
			"operation":   operation,
			"player_id":   playerID.String(),
			"attempt":     try + 1,
			"max_retries": s.cfg.MaxConflictRetries,
			"retry_after": backoff.String(),
		})
		s.wait(ctx, backoff)
	}

	s.logger.Error("Conflict retries exhausted", map[string]any{
		"operation":   operation,
		"player_id":   playerID.String(),
		"max_retries": s.cfg.MaxConflictRetries,
		"error":       err.Error(),
	})
	return errs.StoreUnavailable(operation, err)
}

// acquireLease takes the player's distributed lease, retrying while another
// instance holds it
func (s *Service) acquireLease(ctx context.Context, playerID uuid.UUID) error {
	var err error

	for try := 0; try <= s.cfg.MaxConflictRetries; try++ {
		err = s.locks.AcquireLock(ctx, playerID, s.cfg.InstanceID, s.cfg.LockLease)
		if !errs.IsPlayerLockedError(err) {
			return err
		}
		s.wait(ctx, s.backoff(try))
	}

	s.logger.Warn("Player lease held by another instance", map[string]any{
		"player_id": playerID.String(),
		"owner":     s.cfg.InstanceID,
	})
	return err
}

// backoff returns an exponential delay for the given attempt with up to 50% jitter
func (s *Service) backoff(attempt int) time.Duration {
	base := s.cfg.ConflictBackoff
	if base <= 0 {
		return 0
	}

	delay := base << uint(attempt)
	if s.cfg.MaxConflictBackoff > 0 && (delay > s.cfg.MaxConflictBackoff || delay <= 0) {
		delay = s.cfg.MaxConflictBackoff
	}

	return delay + time.Duration(rand.Int64N(int64(delay)/2+1))
}

// wait sleeps for d. The serialized window runs under a non-cancelable context,
// so ctx only matters for callers outside it.
func (s *Service) wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-s.timeProvider.After(coreport.Duration(d)):
	case <-ctx.Done():
	}
}
