package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/model"
)

// GameRepository reads the seeded game catalogue
type GameRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.GameRepository = (*GameRepository)(nil)

// NewGameRepository creates a new GameRepository instance
func NewGameRepository(db *gorm.DB, logger coreport.Logger) *GameRepository {
	return &GameRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// GameToModel converts a game entity to its database model
func GameToModel(game *entity.Game) *model.Game {
	return &model.Game{
		ID:             game.ID,
		Code:           string(game.Code),
		Name:           game.Name,
		RTPTheoretical: game.RTPTheoretical,
	}
}

func gameFromModel(m *model.Game) *entity.Game {
	return &entity.Game{
		ID:             m.ID,
		Code:           entity.GameCode(m.Code),
		Name:           m.Name,
		RTPTheoretical: m.RTPTheoretical,
	}
}

// GetByCode retrieves a game by its code
func (r *GameRepository) GetByCode(ctx context.Context, code entity.GameCode) (*entity.Game, error) {
	var m model.Game
	err := r.db.WithContext(ctx).Where("code = ?", string(code)).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", errs.ErrGameNotFound, code)
	}
	if err != nil {
		r.logger.Error("Failed to load game", map[string]any{
			"game_code": string(code),
			"error":     err.Error(),
		})
		return nil, r.errorClassifier.ToDomainError("getting game", err)
	}
	return gameFromModel(&m), nil
}

// List returns all games ordered by code
func (r *GameRepository) List(ctx context.Context) ([]*entity.Game, error) {
	var models []model.Game
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&models).Error; err != nil {
		return nil, r.errorClassifier.ToDomainError("listing games", err)
	}

	games := make([]*entity.Game, 0, len(models))
	for i := range models {
		games = append(games, gameFromModel(&models[i]))
	}
	return games, nil
}
