package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/dto"
)

// PlayerHandler handles player account HTTP requests
type PlayerHandler struct {
	playerUseCase usecase.PlayerUseCase
	ledger        usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewPlayerHandler creates a new player handler instance
func NewPlayerHandler(
	playerUseCase usecase.PlayerUseCase,
	ledger usecase.LedgerUseCase,
	logger coreport.Logger,
) *PlayerHandler {
	return &PlayerHandler{
		playerUseCase: playerUseCase,
		ledger:        ledger,
		logger:        logger,
	}
}

// Register handles the POST /players endpoint. The body is optional.
func (h *PlayerHandler) Register(c *gin.Context) {
	var req dto.RegisterPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindingError(c, err)
		return
	}

	player, err := h.playerUseCase.Register(c.Request.Context(), usecase.RegisterPlayerCommand{Email: req.Email})
	if err != nil {
		respondError(c, h.logger, "register", err)
		return
	}

	c.JSON(http.StatusCreated, dto.PlayerResponse{
		PlayerID:     player.ID.String(),
		Email:        player.Email,
		BalanceCents: entity.FormatCentsString(player.BalanceCents()),
		Balance:      player.Balance(),
	})
}

// GetBalance handles the GET /players/:playerId/balance endpoint
func (h *PlayerHandler) GetBalance(c *gin.Context) {
	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	result, err := h.ledger.GetBalance(c.Request.Context(), playerID)
	if err != nil {
		respondError(c, h.logger, "get_balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		PlayerID:     result.PlayerID.String(),
		BalanceCents: entity.FormatCentsString(result.BalanceCents),
		Balance:      entity.FormatCents(result.BalanceCents),
	})
}

// Reconcile handles the GET /players/:playerId/reconcile endpoint
func (h *PlayerHandler) Reconcile(c *gin.Context) {
	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	result, err := h.ledger.Reconcile(c.Request.Context(), playerID)
	if err != nil {
		respondError(c, h.logger, "reconcile", err)
		return
	}

	c.JSON(http.StatusOK, dto.ReconcileResponse{
		PlayerID:       result.PlayerID.String(),
		BalanceCents:   entity.FormatCentsString(result.BalanceCents),
		LedgerSumCents: entity.FormatCentsString(result.LedgerSumCents),
		Consistent:     result.Consistent,
	})
}
