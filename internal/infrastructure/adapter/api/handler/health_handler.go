package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/dto"
)

// Pinger checks that a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and store reachability
type HealthHandler struct {
	store  Pinger
	logger coreport.Logger
}

// NewHealthHandler creates a health handler. store may be nil for the in-memory store.
func NewHealthHandler(store Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

// Healthz handles the GET /healthz endpoint
func (h *HealthHandler) Healthz(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			h.logger.Error("Health check failed", map[string]any{"error": err.Error()})
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
