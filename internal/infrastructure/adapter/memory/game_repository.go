package memory

import (
	"context"
	"sort"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
)

// GameRepository serves a fixed game catalogue from memory
type GameRepository struct {
	games map[entity.GameCode]*entity.Game
}

var _ persistence.GameRepository = (*GameRepository)(nil)

// NewGameRepository creates a catalogue of the given games, or the default
// catalogue when none are given
func NewGameRepository(games ...*entity.Game) *GameRepository {
	if len(games) == 0 {
		games = entity.DefaultGames()
	}

	byCode := make(map[entity.GameCode]*entity.Game, len(games))
	for _, g := range games {
		byCode[g.Code] = g
	}
	return &GameRepository{games: byCode}
}

// GetByCode retrieves a game by code
func (r *GameRepository) GetByCode(ctx context.Context, code entity.GameCode) (*entity.Game, error) {
	game, ok := r.games[code]
	if !ok {
		return nil, errs.ErrGameNotFound
	}
	copied := *game
	return &copied, nil
}

// List returns all games ordered by code
func (r *GameRepository) List(ctx context.Context) ([]*entity.Game, error) {
	games := make([]*entity.Game, 0, len(r.games))
	for _, g := range r.games {
		copied := *g
		games = append(games, &copied)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].Code < games[j].Code })
	return games, nil
}
