package ledger

import (
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/notification"
)

// publish hands post-commit events for newly committed entries to the dispatcher.
// It is called at the end of the player's window so events leave in commit order.
// Dispatch never blocks.
func (s *Service) publish(entries ...*entity.Transaction) {
	if len(entries) == 0 || s.dispatcher == nil {
		return
	}

	last := entries[len(entries)-1]
	events := make([]notification.Event, 0, len(entries)+5)

	var gameDelta int64
	gameplay := false
	for _, tx := range entries {
		events = append(events, notification.TransactionCreatedEvent{
			PlayerID:    tx.PlayerID,
			Transaction: tx,
		})
		if tx.Type == entity.TransactionBet || tx.Type == entity.TransactionPayout {
			gameplay = true
			gameDelta += tx.SignedAmount()
		}
	}

	events = append(events, notification.BalanceChangedEvent{
		PlayerID:     last.PlayerID,
		BalanceCents: last.BalanceAfterCents,
		At:           last.CreatedAt,
	})

	if gameplay {
		events = append(events,
			notification.AggregateChangedEvent{Kind: notification.AggregateRevenue, At: last.CreatedAt},
			notification.AggregateChangedEvent{Kind: notification.AggregateGame, At: last.CreatedAt},
			notification.AggregateChangedEvent{Kind: notification.AggregatePlayer, At: last.CreatedAt},
			// The house gains what the player loses
			notification.RevenueTickEvent{GGRDeltaCents: -gameDelta, At: last.CreatedAt},
		)
	} else {
		events = append(events, notification.AggregateChangedEvent{
			Kind: notification.AggregatePlayer,
			At:   last.CreatedAt,
		})
	}

	s.dispatcher.Dispatch(events...)
}
