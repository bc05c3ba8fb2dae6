package notification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
)

// Event names as seen by subscribers
const (
	EventBalanceUpdate  = "balance:update"
	EventTransactionNew = "transaction:new"
	EventMetricsChanged = "metrics:changed"
	EventRevenueTick    = "revenue:tick"
)

// OperatorRoom receives aggregate events for all players
const OperatorRoom = "operator:all"

// PlayerRoom returns the room that receives a player's own events
func PlayerRoom(playerID uuid.UUID) string {
	return "player:" + playerID.String()
}

// AggregateKind names an operator-level aggregate that may have changed
type AggregateKind string

// Aggregate kinds
const (
	AggregateRevenue AggregateKind = "revenue"
	AggregateGame    AggregateKind = "game"
	AggregatePlayer  AggregateKind = "player"
)

// Event is anything the ledger hands to the dispatcher after a commit
type Event interface {
	Name() string
	Room() string
}

// BalanceChangedEvent is emitted after every committed balance change
type BalanceChangedEvent struct {
	PlayerID     uuid.UUID
	BalanceCents int64
	At           time.Time
}

func (e BalanceChangedEvent) Name() string { return EventBalanceUpdate }
func (e BalanceChangedEvent) Room() string { return PlayerRoom(e.PlayerID) }

// TransactionCreatedEvent is emitted for every appended log entry
type TransactionCreatedEvent struct {
	PlayerID    uuid.UUID
	Transaction *entity.Transaction
}

func (e TransactionCreatedEvent) Name() string { return EventTransactionNew }
func (e TransactionCreatedEvent) Room() string { return PlayerRoom(e.PlayerID) }

// AggregateChangedEvent tells operator dashboards to refresh an aggregate
type AggregateChangedEvent struct {
	Kind AggregateKind
	At   time.Time
}

func (e AggregateChangedEvent) Name() string { return EventMetricsChanged }
func (e AggregateChangedEvent) Room() string { return OperatorRoom }

// RevenueTickEvent carries the gross gaming revenue delta (stake - payout)
type RevenueTickEvent struct {
	GGRDeltaCents int64
	At            time.Time
}

func (e RevenueTickEvent) Name() string { return EventRevenueTick }
func (e RevenueTickEvent) Room() string { return OperatorRoom }

// Notifier pushes ledger events to connected clients. Delivery is best-effort.
type Notifier interface {
	BalanceChanged(ctx context.Context, event BalanceChangedEvent) error
	TransactionCreated(ctx context.Context, event TransactionCreatedEvent) error
	AggregateChanged(ctx context.Context, event AggregateChangedEvent) error
	RevenueTick(ctx context.Context, event RevenueTickEvent) error
	Close() error
}

// Dispatcher hands events to a Notifier without blocking the caller
type Dispatcher interface {
	// Dispatch enqueues events in order. Events that do not fit are dropped.
	Dispatch(events ...Event)
}
