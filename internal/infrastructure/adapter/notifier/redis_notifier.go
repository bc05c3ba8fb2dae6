package notifier

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/notification"
)

// DefaultChannelPrefix namespaces the pub/sub channels
const DefaultChannelPrefix = "casino-wallet"

// RedisOptions configures the Redis notifier
type RedisOptions struct {
	Addr          string
	Password      string
	DB            int
	ChannelPrefix string
}

// RedisNotifier publishes ledger events to Redis channels named <prefix>:<room>.
// A socket gateway subscribes to these channels and relays to its rooms.
type RedisNotifier struct {
	client *redis.Client
	prefix string
	logger core.Logger
}

var _ notification.Notifier = (*RedisNotifier)(nil)

// NewRedisNotifier connects to Redis and verifies the connection
func NewRedisNotifier(ctx context.Context, opts RedisOptions, logger core.Logger) (*RedisNotifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	logger.Info("Redis notifier connected", map[string]any{
		"addr": opts.Addr,
		"db":   opts.DB,
	})

	return NewRedisNotifierWithClient(client, opts.ChannelPrefix, logger), nil
}

// NewRedisNotifierWithClient wraps an existing client
func NewRedisNotifierWithClient(client *redis.Client, prefix string, logger core.Logger) *RedisNotifier {
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	return &RedisNotifier{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

// Channel returns the Redis channel for a room
func (n *RedisNotifier) Channel(room string) string {
	return n.prefix + ":" + room
}

func (n *RedisNotifier) BalanceChanged(ctx context.Context, event notification.BalanceChangedEvent) error {
	return n.publish(ctx, event)
}

func (n *RedisNotifier) TransactionCreated(ctx context.Context, event notification.TransactionCreatedEvent) error {
	return n.publish(ctx, event)
}

func (n *RedisNotifier) AggregateChanged(ctx context.Context, event notification.AggregateChangedEvent) error {
	return n.publish(ctx, event)
}

func (n *RedisNotifier) RevenueTick(ctx context.Context, event notification.RevenueTickEvent) error {
	return n.publish(ctx, event)
}

// Close closes the Redis client
func (n *RedisNotifier) Close() error {
	return n.client.Close()
}

func (n *RedisNotifier) publish(ctx context.Context, event notification.Event) error {
	message, err := encode(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Name(), err)
	}

	channel := n.Channel(event.Room())
	if err := n.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", event.Name(), channel, err)
	}

	n.logger.Debug("Event published", map[string]any{
		"event":   event.Name(),
		"channel": channel,
	})
	return nil
}
