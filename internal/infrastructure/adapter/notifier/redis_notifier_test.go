package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/notification"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/logger"
)

var (
	eventTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	playerID  = uuid.MustParse("0b6f4c1e-7a2d-4e55-9c3a-5d8e2f1a9b70")
)

func TestRedisNotifier_BalanceChanged(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	n := NewRedisNotifierWithClient(client, "", logger.NewNoopLogger())

	expected := `{"event":"balance:update","room":"player:0b6f4c1e-7a2d-4e55-9c3a-5d8e2f1a9b70",` +
		`"data":{"playerId":"0b6f4c1e-7a2d-4e55-9c3a-5d8e2f1a9b70","balanceCents":"101500","balance":"1015.00",` +
		`"at":"2025-03-01T12:00:00Z"}}`
	redisMock.ExpectPublish("casino-wallet:player:0b6f4c1e-7a2d-4e55-9c3a-5d8e2f1a9b70", expected).SetVal(1)

	err := n.BalanceChanged(context.Background(), notification.BalanceChangedEvent{
		PlayerID:     playerID,
		BalanceCents: 101500,
		At:           eventTime,
	})

	require.NoError(t, err)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestRedisNotifier_RoutesByRoom(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	n := NewRedisNotifierWithClient(client, "wallet", logger.NewNoopLogger())

	tx := &entity.Transaction{
		ID:                "01JNX5A",
		PlayerID:          playerID,
		Type:              entity.TransactionBet,
		AmountCents:       1000,
		BalanceAfterCents: 99000,
		GameCode:          entity.GameSlots,
		CreatedAt:         eventTime,
	}
	created := notification.TransactionCreatedEvent{PlayerID: playerID, Transaction: tx}
	tick := notification.RevenueTickEvent{GGRDeltaCents: 1000, At: eventTime}

	createdMsg, err := encode(created)
	require.NoError(t, err)
	tickMsg, err := encode(tick)
	require.NoError(t, err)
	assert.Contains(t, createdMsg, `"amountCents":"1000"`)
	assert.Contains(t, tickMsg, `"ggrDeltaCents":"1000"`)

	redisMock.ExpectPublish("wallet:player:"+playerID.String(), createdMsg).SetVal(1)
	redisMock.ExpectPublish("wallet:operator:all", tickMsg).SetVal(0)

	require.NoError(t, n.TransactionCreated(context.Background(), created))
	require.NoError(t, n.RevenueTick(context.Background(), tick))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestRedisNotifier_PublishError(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	n := NewRedisNotifierWithClient(client, "", logger.NewNoopLogger())

	event := notification.AggregateChangedEvent{Kind: notification.AggregateGame, At: eventTime}
	msg, err := encode(event)
	require.NoError(t, err)
	redisMock.ExpectPublish("casino-wallet:operator:all", msg).SetErr(errors.New("connection refused"))

	err = n.AggregateChanged(context.Background(), event)

	assert.ErrorContains(t, err, "connection refused")
}
