package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/notification"
	mockcore "github.com/amirhossein-jamali/casino-wallet/mocks/port/core"
	mocknotification "github.com/amirhossein-jamali/casino-wallet/mocks/port/notification"
)

func TestAsyncDispatcher(t *testing.T) {
	t.Run("should deliver events in order", func(t *testing.T) {
		n := mocknotification.NewMockNotifier(t)
		log := mockcore.NewMockLogger(t)

		var order []string
		n.EXPECT().TransactionCreated(mock.Anything, mock.Anything).
			Run(func(context.Context, notification.TransactionCreatedEvent) { order = append(order, "tx") }).
			Return(nil).Once()
		n.EXPECT().BalanceChanged(mock.Anything, mock.Anything).
			Run(func(context.Context, notification.BalanceChangedEvent) { order = append(order, "balance") }).
			Return(nil).Once()
		n.EXPECT().AggregateChanged(mock.Anything, notification.AggregateChangedEvent{Kind: notification.AggregatePlayer}).
			Run(func(context.Context, notification.AggregateChangedEvent) { order = append(order, "aggregate") }).
			Return(nil).Once()

		d := NewAsyncDispatcher(n, log, 8, time.Second)
		d.Dispatch(
			notification.TransactionCreatedEvent{PlayerID: playerID},
			notification.BalanceChangedEvent{PlayerID: playerID},
			notification.AggregateChangedEvent{Kind: notification.AggregatePlayer},
		)
		d.Close()

		assert.Equal(t, []string{"tx", "balance", "aggregate"}, order)
	})

	t.Run("should log delivery failures and keep going", func(t *testing.T) {
		n := mocknotification.NewMockNotifier(t)
		log := mockcore.NewMockLogger(t)
		n.EXPECT().RevenueTick(mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
		n.EXPECT().BalanceChanged(mock.Anything, mock.Anything).Return(nil).Once()
		log.EXPECT().Warn("Failed to deliver notification", mock.Anything).Once()

		d := NewAsyncDispatcher(n, log, 8, time.Second)
		d.Dispatch(notification.RevenueTickEvent{GGRDeltaCents: 500}, notification.BalanceChangedEvent{PlayerID: playerID})
		d.Close()
	})

	t.Run("should drop events when the buffer is full", func(t *testing.T) {
		n := mocknotification.NewMockNotifier(t)
		log := mockcore.NewMockLogger(t)

		started := make(chan struct{})
		release := make(chan struct{})
		n.EXPECT().RevenueTick(mock.Anything, mock.Anything).RunAndReturn(
			func(context.Context, notification.RevenueTickEvent) error {
				close(started)
				<-release
				return nil
			}).Once()
		n.EXPECT().BalanceChanged(mock.Anything, mock.Anything).Return(nil).Once()
		log.EXPECT().Warn("Notification buffer full, dropping event", mock.Anything).Once()

		d := NewAsyncDispatcher(n, log, 1, time.Second)
		d.Dispatch(notification.RevenueTickEvent{})
		<-started

		// The worker is busy; one event fits, the next is dropped
		d.Dispatch(notification.BalanceChangedEvent{PlayerID: playerID}, notification.AggregateChangedEvent{})
		close(release)
		d.Close()
	})

	t.Run("should ignore events after close", func(t *testing.T) {
		n := mocknotification.NewMockNotifier(t)
		d := NewAsyncDispatcher(n, mockcore.NewMockLogger(t), 8, time.Second)
		d.Close()

		d.Dispatch(notification.BalanceChangedEvent{PlayerID: playerID})
		d.Close()
	})
}
