package model

import (
	"time"

	"github.com/google/uuid"
)

// Player represents the database model for player accounts
type Player struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email            *string   `gorm:"size:320;uniqueIndex:idx_players_email"`
	BalanceCents     int64     `gorm:"not null;check:chk_players_balance_non_negative,balance_cents >= 0"`
	Version          int64     `gorm:"not null"`
	TransactionCount uint64    `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for Player
func (Player) TableName() string {
	return "players"
}
