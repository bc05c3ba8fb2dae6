package notifier

import (
	"context"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/notification"
)

// NoopNotifier discards every event
type NoopNotifier struct{}

var _ notification.Notifier = NoopNotifier{}

func (NoopNotifier) BalanceChanged(context.Context, notification.BalanceChangedEvent) error {
	return nil
}

func (NoopNotifier) TransactionCreated(context.Context, notification.TransactionCreatedEvent) error {
	return nil
}

func (NoopNotifier) AggregateChanged(context.Context, notification.AggregateChangedEvent) error {
	return nil
}

func (NoopNotifier) RevenueTick(context.Context, notification.RevenueTickEvent) error {
	return nil
}

func (NoopNotifier) Close() error {
	return nil
}
