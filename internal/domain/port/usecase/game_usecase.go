package usecase

import (
	"context"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
)

// GameUseCase exposes the read-only game catalogue
type GameUseCase interface {
	ListGames(ctx context.Context) ([]*entity.Game, error)
	GetGame(ctx context.Context, code string) (*entity.Game, error)
}
