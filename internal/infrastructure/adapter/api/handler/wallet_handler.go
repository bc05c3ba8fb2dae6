package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/dto"
)

// WalletHandler handles deposits and withdrawals
type WalletHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		ledger: ledger,
		logger: logger,
	}
}

// bindAmount reads the player id and amount shared by both endpoints
func (h *WalletHandler) bindAmount(c *gin.Context) (usecase.DepositCommand, bool) {
	playerID, ok := parsePlayerID(c)
	if !ok {
		return usecase.DepositCommand{}, false
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return usecase.DepositCommand{}, false
	}

	amountCents, err := entity.ParseAmountCents(req.AmountCents)
	if err != nil {
		respondError(c, h.logger, "parse_amount", err)
		return usecase.DepositCommand{}, false
	}

	return usecase.DepositCommand{
		PlayerID:       playerID,
		AmountCents:    amountCents,
		IdempotencyKey: idempotencyKey(c),
	}, true
}

// Deposit handles the POST /players/:playerId/wallet/deposit endpoint
func (h *WalletHandler) Deposit(c *gin.Context) {
	cmd, ok := h.bindAmount(c)
	if !ok {
		return
	}

	result, err := h.ledger.Deposit(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.logger, "deposit", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMutation(result))
}

// Withdraw handles the POST /players/:playerId/wallet/withdraw endpoint
func (h *WalletHandler) Withdraw(c *gin.Context) {
	cmd, ok := h.bindAmount(c)
	if !ok {
		return
	}

	result, err := h.ledger.Withdraw(c.Request.Context(), usecase.WithdrawCommand(cmd))
	if err != nil {
		respondError(c, h.logger, "withdraw", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMutation(result))
}
