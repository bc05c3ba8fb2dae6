package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockcore "github.com/amirhossein-jamali/casino-wallet/mocks/port/core"
)

func TestRetryOnTransientError(t *testing.T) {
	mapper := NewErrorMapper()

	t.Run("should retry transient failures until success", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), RetryConfig{MaxRetries: 3}, func() error {
			calls++
			if calls < 3 {
				return errors.New("read: connection reset by peer")
			}
			return nil
		}, mapper, newFixedClock(t), noopLogger())

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("should not retry a permanent failure", func(t *testing.T) {
		calls := 0
		permanent := errors.New("syntax error at or near")
		err := RetryOnTransientError(context.Background(), RetryConfig{MaxRetries: 5}, func() error {
			calls++
			return permanent
		}, mapper, newFixedClock(t), noopLogger())

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("should stop waiting when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		clock := mockcore.NewMockTimeProvider(t)
		clock.EXPECT().After(mock.Anything).Return(make(chan time.Time))

		err := RetryOnTransientError(ctx, RetryConfig{MaxRetries: 3}, func() error {
			return errors.New("i/o timeout")
		}, mapper, clock, noopLogger())

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("should run at least once with zero retries configured", func(t *testing.T) {
		calls := 0
		_ = RetryOnTransientError(context.Background(), RetryConfig{}, func() error {
			calls++
			return nil
		}, mapper, newFixedClock(t), noopLogger())

		assert.Equal(t, 1, calls)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 50 * time.Millisecond, MaxInterval: 150 * time.Millisecond, JitterFactor: 0.2}

	assert.GreaterOrEqual(t, calculateBackoffWithJitter(0, config), 50*time.Millisecond)
	assert.LessOrEqual(t, calculateBackoffWithJitter(0, config), 60*time.Millisecond)
	assert.GreaterOrEqual(t, calculateBackoffWithJitter(5, config), 150*time.Millisecond)
	assert.LessOrEqual(t, calculateBackoffWithJitter(5, config), 180*time.Millisecond)

	config.JitterFactor = 0
	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(1, config))
}
