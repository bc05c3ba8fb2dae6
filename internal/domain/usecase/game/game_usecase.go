package game

import (
	"context"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
)

// GameUseCase serves the read-only game catalogue
type GameUseCase struct {
	games persistence.GameRepository
}

var _ usecase.GameUseCase = (*GameUseCase)(nil)

// NewGameUseCase creates a new GameUseCase
func NewGameUseCase(games persistence.GameRepository) *GameUseCase {
	return &GameUseCase{games: games}
}

// ListGames returns every seeded game
func (u *GameUseCase) ListGames(ctx context.Context) ([]*entity.Game, error) {
	return u.games.List(ctx)
}

// GetGame returns a game by code
func (u *GameUseCase) GetGame(ctx context.Context, code string) (*entity.Game, error) {
	gameCode, err := entity.ParseGameCode(code)
	if err != nil {
		return nil, err
	}
	return u.games.GetByCode(ctx, gameCode)
}
