package dto

import (
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
)

// ErrorResponse is the body of every non-2xx wallet response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse pairs the ledger error code of err with a caller-facing message
func NewErrorResponse(err error, message string) ErrorResponse {
	return ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	}
}
