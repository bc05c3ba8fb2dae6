package usecase

import (
	"context"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
)

// RegisterPlayerCommand opens a new player account
type RegisterPlayerCommand struct {
	Email string
}

// PlayerUseCase defines methods for player account management
type PlayerUseCase interface {
	// Register creates the account and records the configured initial credit
	Register(ctx context.Context, cmd RegisterPlayerCommand) (*entity.Player, error)
}
