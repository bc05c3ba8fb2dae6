package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
)

// DefaultQueueSize is the per-player backlog used when none is configured
const DefaultQueueSize = 100

var errSerializerClosed = errors.New("player serializer is shut down")

// Request states. A request leaves stateQueued exactly once.
const (
	stateQueued int32 = iota
	stateRunning
	stateAbandoned
)

// WorkFunc is a unit of work executed inside a player's serialized window
type WorkFunc func(ctx context.Context) error

// PlayerSerializer provides sequential processing of work per player
type PlayerSerializer struct {
	logger    coreport.Logger
	queueSize int

	// Player-based queues for strict FIFO ordering
	playerQueues   sync.Map // map[uuid.UUID]chan *serialRequest
	queueWaitGroup sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// serialRequest represents a queued unit of work
type serialRequest struct {
	ctx      context.Context
	playerID uuid.UUID
	work     WorkFunc
	done     chan error
	state    atomic.Int32
}

// NewPlayerSerializer creates a new player serializer
func NewPlayerSerializer(logger coreport.Logger, queueSize int) *PlayerSerializer {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	return &PlayerSerializer{
		logger:    logger,
		queueSize: queueSize,
	}
}

// Do runs work after every earlier request for the same player has finished.
// If ctx is done before the work starts, the work is skipped and ctx.Err() is
// returned. Once started the work runs to completion under a context that ignores
// cancellation, and Do returns its result.
func (s *PlayerSerializer) Do(ctx context.Context, playerID uuid.UUID, work WorkFunc) error {
	req := &serialRequest{
		ctx:      ctx,
		playerID: playerID,
		work:     work,
		done:     make(chan error, 1),
	}

	if err := s.enqueue(req); err != nil {
		return err
	}

	select {
	case err := <-req.done:
		return err
	case <-ctx.Done():
	}

	if !req.state.CompareAndSwap(stateQueued, stateAbandoned) {
		// The worker already owns the request; its outcome is the caller's outcome
		return <-req.done
	}

	s.logger.Warn("Context canceled while waiting for serialized operation", map[string]any{
		"player_id": playerID.String(),
		"error":     ctx.Err().Error(),
	})
	return ctx.Err()
}

// enqueue adds a request to the player's queue, starting a worker for new players
func (s *PlayerSerializer) enqueue(req *serialRequest) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return errs.StoreUnavailable("serialize", errSerializerClosed)
	}

	queue := s.queueFor(req.playerID)

	select {
	case queue <- req:
		return nil
	case <-req.ctx.Done():
		s.logger.Warn("Context canceled while enqueueing operation", map[string]any{
			"player_id": req.playerID.String(),
			"error":     req.ctx.Err().Error(),
		})
		return req.ctx.Err()
	}
}

// queueFor returns the player's queue, creating it and its worker on first use
func (s *PlayerSerializer) queueFor(playerID uuid.UUID) chan *serialRequest {
	if existing, ok := s.playerQueues.Load(playerID); ok {
		return existing.(chan *serialRequest)
	}

	queueIface, loaded := s.playerQueues.LoadOrStore(playerID, make(chan *serialRequest, s.queueSize))
	queue := queueIface.(chan *serialRequest)

	if !loaded {
		s.logger.Debug("Starting queue worker for player", map[string]any{
			"player_id": playerID.String(),
		})
		s.queueWaitGroup.Add(1)
		go s.processPlayerQueue(playerID, queue)
	}

	return queue
}

// processPlayerQueue handles the worker goroutine for a player's queue
func (s *PlayerSerializer) processPlayerQueue(playerID uuid.UUID, queue chan *serialRequest) {
	defer s.queueWaitGroup.Done()

	for req := range queue {
		if err := req.ctx.Err(); err != nil {
			req.state.CompareAndSwap(stateQueued, stateAbandoned)
		}
		if !req.state.CompareAndSwap(stateQueued, stateRunning) {
			s.logger.Debug("Skipping operation canceled before its turn", map[string]any{
				"player_id": playerID.String(),
			})
			req.done <- req.ctx.Err()
			continue
		}

		req.done <- s.execute(req)
	}

	s.logger.Debug("Queue worker stopped", map[string]any{
		"player_id": playerID.String(),
	})
}

// execute runs one unit of work, converting a panic into an error so the worker survives
func (s *PlayerSerializer) execute(req *serialRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Serialized operation panicked", map[string]any{
				"player_id": req.playerID.String(),
				"panic":     fmt.Sprint(r),
			})
			err = fmt.Errorf("%w: %v", errs.ErrInternalServer, r)
		}
	}()

	return req.work(context.WithoutCancel(req.ctx))
}

// Shutdown stops accepting work and waits for queued work to drain
func (s *PlayerSerializer) Shutdown() {
	s.logger.Info("Shutting down player serializer", nil)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.playerQueues.Range(func(_, queueIface any) bool {
		close(queueIface.(chan *serialRequest))
		return true
	})
	s.mu.Unlock()

	s.queueWaitGroup.Wait()
	s.logger.Info("Player serializer shut down successfully", nil)
}
