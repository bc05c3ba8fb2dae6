package notifier

import (
	"context"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/notification"
)

// LogNotifier writes events to the application log. It is used when Redis is disabled.
type LogNotifier struct {
	logger core.Logger
}

var _ notification.Notifier = (*LogNotifier)(nil)

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier(logger core.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) BalanceChanged(_ context.Context, event notification.BalanceChangedEvent) error {
	n.logger.Info("Balance changed", map[string]any{
		"event":         event.Name(),
		"room":          event.Room(),
		"balance_cents": event.BalanceCents,
	})
	return nil
}

func (n *LogNotifier) TransactionCreated(_ context.Context, event notification.TransactionCreatedEvent) error {
	fields := map[string]any{
		"event": event.Name(),
		"room":  event.Room(),
	}
	if tx := event.Transaction; tx != nil {
		fields["transaction_id"] = tx.ID
		fields["type"] = string(tx.Type)
		fields["amount_cents"] = tx.AmountCents
	}
	n.logger.Info("Transaction created", fields)
	return nil
}

func (n *LogNotifier) AggregateChanged(_ context.Context, event notification.AggregateChangedEvent) error {
	n.logger.Debug("Aggregate changed", map[string]any{
		"event": event.Name(),
		"kind":  string(event.Kind),
	})
	return nil
}

func (n *LogNotifier) RevenueTick(_ context.Context, event notification.RevenueTickEvent) error {
	n.logger.Debug("Revenue tick", map[string]any{
		"event":           event.Name(),
		"ggr_delta_cents": event.GGRDeltaCents,
	})
	return nil
}

func (n *LogNotifier) Close() error {
	return nil
}
