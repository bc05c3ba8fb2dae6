package idgen

import (
	"crypto/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
)

// ULIDGenerator issues ULIDs for transactions and random UUIDs for players.
// Transaction IDs are strictly increasing within a process, even inside one millisecond.
type ULIDGenerator struct {
	timeProvider core.TimeProvider

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewULIDGenerator creates a new ULID generator
func NewULIDGenerator(timeProvider core.TimeProvider) core.IDGenerator {
	return &ULIDGenerator{
		timeProvider: timeProvider,
		entropy:      ulid.Monotonic(rand.Reader, 0),
	}
}

// NewTransactionID returns a new lexicographically sortable identifier
func (g *ULIDGenerator) NewTransactionID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(g.timeProvider.Now()), g.entropy).String()
}

// NewPlayerID returns a new random UUID
func (g *ULIDGenerator) NewPlayerID() uuid.UUID {
	return uuid.New()
}
