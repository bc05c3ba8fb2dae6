package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
)

// Player represents a player account with a balance
type Player struct {
	ID               uuid.UUID // Unique identifier for the player
	Email            string    // Optional, unique when present
	balanceCents     int64     // Balance in cents (private, changed only through Apply)
	Version          int64     // Incremented on every balance mutation
	TransactionCount uint64    // Count of ledger entries applied to this player
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewPlayer creates a new player with a zero balance
func NewPlayer(id uuid.UUID, email string, timeProvider coreport.TimeProvider) (*Player, error) {
	if id == uuid.Nil {
		return nil, errs.ErrInvalidPlayerID
	}

	now := timeProvider.Now()
	return &Player{
		ID:        id,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestorePlayer rebuilds a player from persisted state
func RestorePlayer(
	id uuid.UUID,
	email string,
	balanceCents int64,
	version int64,
	transactionCount uint64,
	createdAt, updatedAt time.Time,
) *Player {
	return &Player{
		ID:               id,
		Email:            email,
		balanceCents:     balanceCents,
		Version:          version,
		TransactionCount: transactionCount,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

// BalanceCents returns the current balance in cents
func (p *Player) BalanceCents() int64 {
	return p.balanceCents
}

// Balance returns the balance as a string with 2 decimal places
func (p *Player) Balance() string {
	return FormatCents(p.balanceCents)
}

// CanDebit checks if the player has enough balance for a debit
func (p *Player) CanDebit(amountCents int64) bool {
	return p.balanceCents >= amountCents
}

// Apply changes the balance by delta and bumps the version.
// A debit that would make the balance negative is rejected and leaves the player untouched.
func (p *Player) Apply(deltaCents int64, timeProvider coreport.TimeProvider) error {
	if deltaCents < 0 && !p.CanDebit(-deltaCents) {
		return errs.NewInsufficientFundsError(p.ID.String(), -deltaCents, p.balanceCents)
	}

	p.balanceCents += deltaCents
	p.Version++
	p.TransactionCount++
	p.UpdatedAt = timeProvider.Now()
	return nil
}
