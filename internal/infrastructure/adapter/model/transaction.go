package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Transaction represents one row of the append-only transaction log
type Transaction struct {
	ID                string            `gorm:"primaryKey;size:26"`
	PlayerID          uuid.UUID         `gorm:"type:uuid;not null;index:idx_transactions_player_created,priority:1"`
	Type              string            `gorm:"type:varchar(16);not null"`
	AmountCents       int64             `gorm:"not null;check:chk_transactions_amount_positive,amount_cents > 0"`
	BalanceAfterCents int64             `gorm:"not null;check:chk_transactions_balance_after_non_negative,balance_after_cents >= 0"`
	GameID            *uuid.UUID        `gorm:"type:uuid"`
	GameCode          *string           `gorm:"size:32"`
	Meta              datatypes.JSONMap `gorm:"type:jsonb"`
	IdempotencyKey    *string           `gorm:"size:128"`
	CreatedAt         time.Time         `gorm:"not null;index:idx_transactions_player_created,priority:2,sort:desc"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
