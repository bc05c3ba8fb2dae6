package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Game represents a row of the static game catalogue
type Game struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code           string          `gorm:"size:32;not null;uniqueIndex:idx_games_code"`
	Name           string          `gorm:"size:64;not null"`
	RTPTheoretical decimal.Decimal `gorm:"type:numeric(5,2);not null"`
}

// TableName specifies the table name for Game
func (Game) TableName() string {
	return "games"
}
