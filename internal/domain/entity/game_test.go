package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
)

func TestNewGame(t *testing.T) {
	t.Run("Valid game", func(t *testing.T) {
		id := uuid.New()
		game, err := NewGame(id, GameSlots, "Slots", decimal.RequireFromString("96"))

		require.NoError(t, err)
		assert.Equal(t, id, game.ID)
		assert.Equal(t, GameSlots, game.Code)
		assert.Equal(t, "96.00", game.RTPTheoretical.StringFixed(2))
	})

	t.Run("Unknown code", func(t *testing.T) {
		_, err := NewGame(uuid.New(), GameCode("poker"), "Poker", decimal.NewFromInt(95))
		assert.ErrorIs(t, err, errs.ErrInvalidGame)
	})

	t.Run("RTP out of range", func(t *testing.T) {
		_, err := NewGame(uuid.New(), GameBlackjack, "Blackjack", decimal.NewFromInt(101))
		assert.ErrorIs(t, err, errs.ErrInvalidGame)

		_, err = NewGame(uuid.New(), GameBlackjack, "Blackjack", decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, errs.ErrInvalidGame)
	})
}

func TestParseGameCode(t *testing.T) {
	for _, code := range []string{"slots", "roulette", "blackjack"} {
		parsed, err := ParseGameCode(code)
		require.NoError(t, err)
		assert.Equal(t, GameCode(code), parsed)
	}

	_, err := ParseGameCode("SLOTS")
	assert.ErrorIs(t, err, errs.ErrInvalidGame)
}

func TestDefaultGames(t *testing.T) {
	games := DefaultGames()

	require.Len(t, games, 3)
	rtp := map[GameCode]string{}
	for _, g := range games {
		rtp[g.Code] = g.RTPTheoretical.StringFixed(2)
	}

	assert.Equal(t, "96.00", rtp[GameSlots])
	assert.Equal(t, "97.30", rtp[GameRoulette])
	assert.Equal(t, "99.50", rtp[GameBlackjack])
}
