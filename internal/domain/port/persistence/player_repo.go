package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
)

// PlayerRepository defines essential methods to interact with player account data
type PlayerRepository interface {
	// GetByID retrieves a player by ID without locking the row
	//
	// Possible errors:
	// - ErrPlayerNotFound: If player with specified ID doesn't exist
	// - ErrStoreUnavailable: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Player, error)

	// GetForUpdate retrieves a player and locks the row until the surrounding
	// database transaction ends
	//
	// Possible errors:
	// - ErrPlayerNotFound: If player with specified ID doesn't exist
	// - ErrConcurrencyConflict: If the lock wait ended in a deadlock or serialization failure
	// - ErrStoreUnavailable: If database connection fails
	GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.Player, error)

	// Create inserts a new player
	//
	// Possible errors:
	// - ErrDuplicatePlayer: If the ID or email is already registered
	// - ErrStoreUnavailable: If database connection fails
	Create(ctx context.Context, player *entity.Player) error

	// UpdateBalance writes the player's balance and version if the stored version
	// still equals expectedVersion
	//
	// Possible errors:
	// - ErrConcurrencyConflict: If the stored version moved on
	// - ErrStoreUnavailable: If database connection fails
	UpdateBalance(ctx context.Context, player *entity.Player, expectedVersion int64) error
}
