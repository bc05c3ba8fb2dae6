package persistence

import (
	"context"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
)

// GameRepository provides read-only access to the game catalogue
type GameRepository interface {
	// GetByCode retrieves a game by its code
	//
	// Possible errors:
	// - ErrGameNotFound: If no game with this code is seeded
	GetByCode(ctx context.Context, code entity.GameCode) (*entity.Game, error)

	// List returns all games ordered by code
	List(ctx context.Context) ([]*entity.Game, error)
}
