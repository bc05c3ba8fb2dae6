package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/notification"
)

// Defaults for the async dispatcher
const (
	DefaultBufferSize      = 1024
	DefaultDeliveryTimeout = 2 * time.Second
)

// AsyncDispatcher delivers events to a Notifier from a single background worker.
// Dispatch never blocks: events that do not fit in the buffer are dropped.
type AsyncDispatcher struct {
	notifier notification.Notifier
	logger   core.Logger
	timeout  time.Duration

	events chan notification.Event
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

var _ notification.Dispatcher = (*AsyncDispatcher)(nil)

// NewAsyncDispatcher creates a dispatcher and starts its worker
func NewAsyncDispatcher(n notification.Notifier, logger core.Logger, bufferSize int, timeout time.Duration) *AsyncDispatcher {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if timeout <= 0 {
		timeout = DefaultDeliveryTimeout
	}

	d := &AsyncDispatcher{
		notifier: n,
		logger:   logger,
		timeout:  timeout,
		events:   make(chan notification.Event, bufferSize),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// Dispatch enqueues events in order
func (d *AsyncDispatcher) Dispatch(events ...notification.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	for _, event := range events {
		select {
		case d.events <- event:
		default:
			d.logger.Warn("Notification buffer full, dropping event", map[string]any{
				"event": event.Name(),
				"room":  event.Room(),
			})
		}
	}
}

// Close stops accepting events and waits until the buffered ones are delivered
func (d *AsyncDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.events)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *AsyncDispatcher) run() {
	defer d.wg.Done()

	for event := range d.events {
		d.deliver(event)
	}
}

func (d *AsyncDispatcher) deliver(event notification.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	var err error
	switch e := event.(type) {
	case notification.BalanceChangedEvent:
		err = d.notifier.BalanceChanged(ctx, e)
	case notification.TransactionCreatedEvent:
		err = d.notifier.TransactionCreated(ctx, e)
	case notification.AggregateChangedEvent:
		err = d.notifier.AggregateChanged(ctx, e)
	case notification.RevenueTickEvent:
		err = d.notifier.RevenueTick(ctx, e)
	default:
		err = fmt.Errorf("unsupported event %T", event)
	}

	if err != nil {
		d.logger.Warn("Failed to deliver notification", map[string]any{
			"event": event.Name(),
			"room":  event.Room(),
			"error": err.Error(),
		})
	}
}
