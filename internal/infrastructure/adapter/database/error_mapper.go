package database

import (
	"errors"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/repository"
)

// ledgerErrors are outcomes the store passes through unchanged
var ledgerErrors = []error{
	errs.ErrPlayerNotFound,
	errs.ErrInsufficientFunds,
	errs.ErrConcurrencyConflict,
	errs.ErrDuplicateRequest,
	errs.ErrDuplicatePlayer,
	errs.ErrStoreUnavailable,
	errs.ErrInvalidAmount,
	errs.ErrInvalidRequest,
	errs.ErrConstraintViolation,
	errs.ErrAppendOnly,
}

// ErrorMapper maps errors escaping a database transaction to ledger errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError leaves ledger errors alone and classifies everything else.
// Begin and commit failures that are not lock races become ErrStoreUnavailable.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	for _, known := range ledgerErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	return m.classifier.ToDomainError(operation, err)
}

// IsTransient reports whether a read that failed with err may be retried
func (m *ErrorMapper) IsTransient(err error) bool {
	return m.classifier.IsTransientError(err)
}
