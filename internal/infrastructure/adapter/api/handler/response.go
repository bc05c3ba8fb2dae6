package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/validation"
)

// IdempotencyKeyHeader carries the caller's optional idempotency key
const IdempotencyKeyHeader = "Idempotency-Key"

// StatusForError maps a ledger error to its HTTP status
func StatusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrInvalidOutcome),
		errors.Is(err, errs.ErrInvalidRequest),
		errors.Is(err, errs.ErrInvalidPlayerID),
		errors.Is(err, errs.ErrInvalidTransactionType),
		errors.Is(err, errs.ErrInvalidGame):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrPlayerNotFound), errors.Is(err, errs.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrDuplicatePlayer),
		errors.Is(err, errs.ErrIdempotencyKeyReuse),
		errors.Is(err, errs.ErrDuplicateRequest):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPlayerLocked):
		return http.StatusLocked
	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes the matching ErrorResponse
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := StatusForError(err)

	fields := map[string]any{
		"operation":  operation,
		"status":     status,
		"error":      err.Error(),
		"request_id": coreport.RequestIDFromContext(c.Request.Context()),
	}
	var detailed interface{ LogFields() map[string]any }
	if errors.As(err, &detailed) {
		for k, v := range detailed.LogFields() {
			fields[k] = v
		}
	}

	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		message = "Internal server error"
		logger.Error("Request failed", fields)
	case http.StatusServiceUnavailable:
		message = "Ledger temporarily unavailable, the request can be retried"
		logger.Error("Request failed", fields)
	default:
		logger.Warn("Request rejected", fields)
	}

	c.JSON(status, dto.NewErrorResponse(err, message))
}

// respondBindingError reports a malformed request body or query
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errs.ErrInvalidRequest, "Invalid request format: " + validation.Describe(err)))
}

// parsePlayerID reads the :playerId path parameter and writes a 400 when it is not a UUID
func parsePlayerID(c *gin.Context) (uuid.UUID, bool) {
	playerID, err := uuid.Parse(c.Param("playerId"))
	if err != nil || playerID == uuid.Nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errs.ErrInvalidPlayerID, "Invalid player ID format"))
		return uuid.Nil, false
	}
	return playerID, true
}

// parseCents converts a validated cents string; empty means zero
func parseCents(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	cents, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errs.ErrInvalidAmount
	}
	return cents, nil
}

func idempotencyKey(c *gin.Context) string {
	return c.GetHeader(IdempotencyKeyHeader)
}
