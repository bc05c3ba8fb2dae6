package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler serves a player's transaction history
type TransactionHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledger: ledger,
		logger: logger,
	}
}

// ListTransactions handles the GET /players/:playerId/transactions endpoint
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	var req dto.TransactionQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	from, err := parseTimeParam("from", req.From)
	if err != nil {
		respondError(c, h.logger, "list_transactions", err)
		return
	}
	to, err := parseTimeParam("to", req.To)
	if err != nil {
		respondError(c, h.logger, "list_transactions", err)
		return
	}

	page, err := h.ledger.ListTransactions(c.Request.Context(), usecase.TransactionQuery{
		PlayerID: playerID,
		Type:     req.Type,
		GameCode: req.Game,
		From:     from,
		To:       to,
		Page:     req.Page,
		Limit:    req.Limit,
	})
	if err != nil {
		respondError(c, h.logger, "list_transactions", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPage(page))
}

// parseTimeParam parses an optional RFC3339 query value
func parseTimeParam(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an RFC3339 timestamp", errs.ErrInvalidRequest, name)
	}
	return &t, nil
}
