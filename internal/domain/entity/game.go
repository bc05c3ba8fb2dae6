package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
)

// GameCode identifies a game type
type GameCode string

// Game codes
const (
	GameSlots     GameCode = "slots"
	GameRoulette  GameCode = "roulette"
	GameBlackjack GameCode = "blackjack"
)

// ParseGameCode validates a game code string
func ParseGameCode(value string) (GameCode, error) {
	switch c := GameCode(value); c {
	case GameSlots, GameRoulette, GameBlackjack:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidGame, value)
	}
}

// Game is static reference data for a playable game
type Game struct {
	ID             uuid.UUID
	Code           GameCode
	Name           string
	RTPTheoretical decimal.Decimal // Percentage, e.g. 96.00
}

// NewGame creates a game definition
func NewGame(id uuid.UUID, code GameCode, name string, rtp decimal.Decimal) (*Game, error) {
	if _, err := ParseGameCode(string(code)); err != nil {
		return nil, err
	}
	if rtp.IsNegative() || rtp.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: rtp %s out of range", errs.ErrInvalidGame, rtp.String())
	}

	return &Game{
		ID:             id,
		Code:           code,
		Name:           name,
		RTPTheoretical: rtp.Round(2),
	}, nil
}

// DefaultGames returns the seeded game catalogue with stable IDs
func DefaultGames() []*Game {
	return []*Game{
		{
			ID:             uuid.MustParse("5b0f8a52-3c1e-4f7a-9d41-0c6a2f9e1a01"),
			Code:           GameSlots,
			Name:           "Slots",
			RTPTheoretical: decimal.RequireFromString("96.00"),
		},
		{
			ID:             uuid.MustParse("5b0f8a52-3c1e-4f7a-9d41-0c6a2f9e1a02"),
			Code:           GameRoulette,
			Name:           "Roulette",
			RTPTheoretical: decimal.RequireFromString("97.30"),
		},
		{
			ID:             uuid.MustParse("5b0f8a52-3c1e-4f7a-9d41-0c6a2f9e1a03"),
			Code:           GameBlackjack,
			Name:           "Blackjack",
			RTPTheoretical: decimal.RequireFromString("99.50"),
		},
	}
}
