package notifier

import (
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/notification"
)

// envelope is the message published for every event
type envelope struct {
	Event string `json:"event"`
	Room  string `json:"room"`
	Data  any    `json:"data"`
}

type balancePayload struct {
	PlayerID     string    `json:"playerId"`
	BalanceCents string    `json:"balanceCents"`
	Balance      string    `json:"balance"`
	At           time.Time `json:"at"`
}

type transactionPayload struct {
	ID                string         `json:"id"`
	PlayerID          string         `json:"playerId"`
	Type              string         `json:"type"`
	AmountCents       string         `json:"amountCents"`
	BalanceAfterCents string         `json:"balanceAfterCents"`
	Game              string         `json:"game,omitempty"`
	Meta              map[string]any `json:"meta,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
}

type aggregatePayload struct {
	Kind string    `json:"kind"`
	At   time.Time `json:"at"`
}

type revenuePayload struct {
	GGRDeltaCents string    `json:"ggrDeltaCents"`
	At            time.Time `json:"at"`
}

// Cents travel as strings so JavaScript clients never lose precision
func payloadFor(event notification.Event) any {
	switch e := event.(type) {
	case notification.BalanceChangedEvent:
		return balancePayload{
			PlayerID:     e.PlayerID.String(),
			BalanceCents: entity.FormatCentsString(e.BalanceCents),
			Balance:      entity.FormatCents(e.BalanceCents),
			At:           e.At,
		}
	case notification.TransactionCreatedEvent:
		tx := e.Transaction
		if tx == nil {
			return nil
		}
		return transactionPayload{
			ID:                tx.ID,
			PlayerID:          tx.PlayerID.String(),
			Type:              string(tx.Type),
			AmountCents:       entity.FormatCentsString(tx.AmountCents),
			BalanceAfterCents: entity.FormatCentsString(tx.BalanceAfterCents),
			Game:              string(tx.GameCode),
			Meta:              tx.Meta,
			CreatedAt:         tx.CreatedAt,
		}
	case notification.AggregateChangedEvent:
		return aggregatePayload{Kind: string(e.Kind), At: e.At}
	case notification.RevenueTickEvent:
		return revenuePayload{GGRDeltaCents: entity.FormatCentsString(e.GGRDeltaCents), At: e.At}
	default:
		return nil
	}
}

// encode renders the wire message for an event
func encode(event notification.Event) (string, error) {
	data, err := json.Marshal(envelope{
		Event: event.Name(),
		Room:  event.Room(),
		Data:  payloadFor(event),
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
