package model

import (
	"time"

	"github.com/google/uuid"
)

// PlayerLock is a lease that serializes a player's mutations across instances
type PlayerLock struct {
	PlayerID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Owner     string    `gorm:"size:64;not null"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index:idx_player_locks_expires_at"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for PlayerLock
func (PlayerLock) TableName() string {
	return "player_locks"
}
