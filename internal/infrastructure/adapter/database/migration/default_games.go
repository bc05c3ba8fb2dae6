package migration

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/model"
)

// SeedDefaultGames inserts the game catalogue, leaving existing codes untouched
func SeedDefaultGames(ctx context.Context, db *gorm.DB) error {
	games := make([]model.Game, 0, len(entity.DefaultGames()))
	for _, g := range entity.DefaultGames() {
		games = append(games, model.Game{
			ID:             g.ID,
			Code:           string(g.Code),
			Name:           g.Name,
			RTPTheoretical: g.RTPTheoretical,
		})
	}

	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		Create(&games).Error
}
