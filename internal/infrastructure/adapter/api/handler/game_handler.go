package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/dto"
)

// GameHandler serves the game catalogue
type GameHandler struct {
	games  usecase.GameUseCase
	logger coreport.Logger
}

// NewGameHandler creates a new game handler instance
func NewGameHandler(games usecase.GameUseCase, logger coreport.Logger) *GameHandler {
	return &GameHandler{
		games:  games,
		logger: logger,
	}
}

// ListGames handles the GET /games endpoint
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.games.ListGames(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list_games", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromGames(games))
}
