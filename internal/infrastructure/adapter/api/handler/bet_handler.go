package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/dto"
)

// BetHandler handles bets, settlements and plays
type BetHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewBetHandler creates a new bet handler instance
func NewBetHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *BetHandler {
	return &BetHandler{
		ledger: ledger,
		logger: logger,
	}
}

// PlaceBet handles the POST /players/:playerId/bets endpoint
func (h *BetHandler) PlaceBet(c *gin.Context) {
	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	var req dto.BetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	amountCents, err := entity.ParseAmountCents(req.AmountCents)
	if err != nil {
		respondError(c, h.logger, "place_bet", err)
		return
	}

	result, err := h.ledger.PlaceBet(c.Request.Context(), usecase.BetCommand{
		PlayerID:       playerID,
		GameCode:       entity.GameCode(req.GameCode),
		AmountCents:    amountCents,
		IdempotencyKey: idempotencyKey(c),
	})
	if err != nil {
		respondError(c, h.logger, "place_bet", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMutation(result))
}

// Settle handles the POST /players/:playerId/bets/settle endpoint
func (h *BetHandler) Settle(c *gin.Context) {
	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	stakeCents, err := entity.ParseAmountCents(req.StakeCents)
	if err != nil {
		respondError(c, h.logger, "settle", err)
		return
	}
	payoutCents, err := parseCents(req.PayoutCents)
	if err != nil {
		respondError(c, h.logger, "settle", err)
		return
	}

	result, err := h.ledger.SettleOutcome(c.Request.Context(), usecase.SettleCommand{
		PlayerID:       playerID,
		GameCode:       entity.GameCode(req.GameCode),
		Outcome:        entity.Outcome(req.Outcome),
		StakeCents:     stakeCents,
		PayoutCents:    payoutCents,
		IdempotencyKey: idempotencyKey(c),
	})
	if err != nil {
		respondError(c, h.logger, "settle", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMutation(result))
}

// Play handles the POST /players/:playerId/bets/play endpoint
func (h *BetHandler) Play(c *gin.Context) {
	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	var req dto.PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	amountCents, err := entity.ParseAmountCents(req.AmountCents)
	if err != nil {
		respondError(c, h.logger, "play", err)
		return
	}

	cmd := usecase.PlayCommand{
		PlayerID:       playerID,
		GameCode:       entity.GameCode(req.GameCode),
		AmountCents:    amountCents,
		Outcome:        entity.Outcome(req.Outcome),
		IdempotencyKey: idempotencyKey(c),
	}
	if req.PayoutCents != nil {
		payoutCents, err := parseCents(*req.PayoutCents)
		if err != nil {
			respondError(c, h.logger, "play", err)
			return
		}
		cmd.PayoutCents = &payoutCents
	}

	result, err := h.ledger.Play(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.logger, "play", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPlay(result))
}
