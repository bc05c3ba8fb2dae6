package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PlayerLockRepository manages lease locks that serialize a player's
// mutations across service instances
type PlayerLockRepository interface {
	// AcquireLock takes the lease for owner until now+duration. An expired lease
	// held by someone else is taken over.
	//
	// Possible errors:
	// - ErrPlayerLocked: If another owner holds an unexpired lease
	// - ErrStoreUnavailable: If database connection fails
	AcquireLock(ctx context.Context, playerID uuid.UUID, owner string, duration time.Duration) error

	// ReleaseLock releases a lease held by owner. Releasing a lease that is not
	// held is not an error.
	ReleaseLock(ctx context.Context, playerID uuid.UUID, owner string) error
}
