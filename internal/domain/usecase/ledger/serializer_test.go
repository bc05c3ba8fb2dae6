package ledger

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/casino-wallet/mocks/port/core"
)

func newMockLogger(t *testing.T) *mockcore.MockLogger {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestNewPlayerSerializer(t *testing.T) {
	t.Run("Non-positive queue size falls back to default", func(t *testing.T) {
		s := NewPlayerSerializer(newMockLogger(t), 0)
		assert.Equal(t, DefaultQueueSize, s.queueSize)
	})
}

func TestPlayerSerializer_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the work result", func(t *testing.T) {
		s := NewPlayerSerializer(newMockLogger(t), 10)
		defer s.Shutdown()

		expectedErr := errs.ErrInsufficientFunds
		err := s.Do(ctx, uuid.New(), func(ctx context.Context) error { return expectedErr })

		assert.ErrorIs(t, err, expectedErr)
	})

	t.Run("Same player runs one at a time in arrival order", func(t *testing.T) {
		s := NewPlayerSerializer(newMockLogger(t), 100)
		defer s.Shutdown()
		playerID := uuid.New()

		var (
			mu      sync.Mutex
			order   []int
			running atomic.Int32
			overlap atomic.Bool
		)

		// Block the worker so the next requests queue up in a known order
		release := make(chan struct{})
		firstDone := make(chan error, 1)
		go func() {
			firstDone <- s.Do(ctx, playerID, func(ctx context.Context) error {
				<-release
				return nil
			})
		}()
		require.Eventually(t, func() bool {
			_, ok := s.playerQueues.Load(playerID)
			return ok
		}, time.Second, time.Millisecond)

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_ = s.Do(ctx, playerID, func(ctx context.Context) error {
					if running.Add(1) > 1 {
						overlap.Store(true)
					}
					time.Sleep(2 * time.Millisecond)
					mu.Lock()
					order = append(order, n)
					mu.Unlock()
					running.Add(-1)
					return nil
				})
			}(i)
			// Give each goroutine time to enqueue before the next one
			time.Sleep(5 * time.Millisecond)
		}

		close(release)
		require.NoError(t, <-firstDone)
		wg.Wait()

		assert.False(t, overlap.Load(), "work for one player must never overlap")
		assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	})

	t.Run("Different players do not block each other", func(t *testing.T) {
		s := NewPlayerSerializer(newMockLogger(t), 10)
		defer s.Shutdown()

		blocked := make(chan struct{})
		defer close(blocked)
		go func() {
			_ = s.Do(ctx, uuid.New(), func(ctx context.Context) error {
				<-blocked
				return nil
			})
		}()

		done := make(chan error, 1)
		go func() {
			done <- s.Do(ctx, uuid.New(), func(ctx context.Context) error { return nil })
		}()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("second player was blocked by the first")
		}
	})

	t.Run("Request canceled before its turn is skipped", func(t *testing.T) {
		s := NewPlayerSerializer(newMockLogger(t), 10)
		defer s.Shutdown()
		playerID := uuid.New()

		release := make(chan struct{})
		go func() {
			_ = s.Do(ctx, playerID, func(ctx context.Context) error {
				<-release
				return nil
			})
		}()
		require.Eventually(t, func() bool {
			_, ok := s.playerQueues.Load(playerID)
			return ok
		}, time.Second, time.Millisecond)

		cancelCtx, cancel := context.WithCancel(ctx)
		var ran atomic.Bool
		result := make(chan error, 1)
		go func() {
			result <- s.Do(cancelCtx, playerID, func(ctx context.Context) error {
				ran.Store(true)
				return nil
			})
		}()
		time.Sleep(10 * time.Millisecond)
		cancel()

		assert.ErrorIs(t, <-result, context.Canceled)

		close(release)
		// A follow-up request proves the worker has passed the canceled one
		require.NoError(t, s.Do(ctx, playerID, func(ctx context.Context) error { return nil }))
		assert.False(t, ran.Load())
	})

	t.Run("Started work reports its own result after caller cancellation", func(t *testing.T) {
		s := NewPlayerSerializer(newMockLogger(t), 10)
		defer s.Shutdown()

		cancelCtx, cancel := context.WithCancel(ctx)
		started := make(chan struct{})
		finished := make(chan error, 1)
		workErr := errors.New("work result")

		result := make(chan error, 1)
		go func() {
			result <- s.Do(cancelCtx, uuid.New(), func(ctx context.Context) error {
				close(started)
				time.Sleep(20 * time.Millisecond)
				finished <- ctx.Err()
				return workErr
			})
		}()

		<-started
		cancel()

		err := <-result
		assert.ErrorIs(t, err, workErr)
		assert.NotErrorIs(t, err, context.Canceled)
		assert.NoError(t, <-finished, "work context must not be canceled")
	})

	t.Run("Started work that succeeds returns nil after caller cancellation", func(t *testing.T) {
		s := NewPlayerSerializer(newMockLogger(t), 10)
		defer s.Shutdown()

		cancelCtx, cancel := context.WithCancel(ctx)
		var ran atomic.Bool
		err := s.Do(cancelCtx, uuid.New(), func(ctx context.Context) error {
			cancel()
			time.Sleep(10 * time.Millisecond)
			ran.Store(true)
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, ran.Load())
	})

	t.Run("Panicking work becomes an internal error", func(t *testing.T) {
		s := NewPlayerSerializer(newMockLogger(t), 10)
		defer s.Shutdown()
		playerID := uuid.New()

		err := s.Do(ctx, playerID, func(ctx context.Context) error { panic("boom") })
		assert.ErrorIs(t, err, errs.ErrInternalServer)

		assert.NoError(t, s.Do(ctx, playerID, func(ctx context.Context) error { return nil }))
	})
}

func TestPlayerSerializer_Shutdown(t *testing.T) {
	ctx := context.Background()
	s := NewPlayerSerializer(newMockLogger(t), 10)
	playerID := uuid.New()

	var completed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(ctx, playerID, func(ctx context.Context) error {
				time.Sleep(5 * time.Millisecond)
				completed.Add(1)
				return nil
			})
		}()
	}
	wg.Wait()

	s.Shutdown()
	assert.Equal(t, int32(3), completed.Load())

	err := s.Do(ctx, playerID, func(ctx context.Context) error { return nil })
	assert.True(t, errors.Is(err, errs.ErrStoreUnavailable))

	// A second shutdown is a no-op
	s.Shutdown()
}
