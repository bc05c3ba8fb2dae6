package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	AppendOnlyError   ErrorType = "append_only"
	ContextError      ErrorType = "context"
)

// PostgreSQL error codes the ledger reacts to
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgNotNullViolation     = "23502"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgRaiseException       = "P0001"
	pgConnectionClass      = "08"
	pgAdminShutdown        = "57P01"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsContextError(err):
		return ContextError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsAppendOnlyError(err):
		return AppendOnlyError
	case c.IsLockError(err):
		return LockError
	case c.IsConstraintError(err):
		return ConstraintError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsTransientError(err):
		return TransientError
	default:
		return ""
	}
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if code, ok := pgCode(err); ok {
		return code == pgUniqueViolation
	}
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}

// IsLockError checks if the transaction lost a lock race and may be retried
func (c *ErrorClassifier) IsLockError(err error) bool {
	if code, ok := pgCode(err); ok {
		return code == pgSerializationFailure || code == pgDeadlockDetected || code == pgLockNotAvailable
	}
	return err != nil && (strings.Contains(err.Error(), "deadlock") ||
		strings.Contains(err.Error(), "could not serialize access"))
}

// IsAppendOnlyError checks if the append-only trigger rejected a rewrite of the log
func (c *ErrorClassifier) IsAppendOnlyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgRaiseException && strings.Contains(pgErr.Message, "append-only")
	}
	return false
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if code, ok := pgCode(err); ok {
		switch code {
		case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
			return true
		}
		return false
	}
	return err != nil && strings.Contains(err.Error(), "violates")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if code, ok := pgCode(err); ok {
		return strings.HasPrefix(code, pgConnectionClass) || code == pgAdminShutdown
	}
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "broken pipe")
}

// IsTransientError checks if an error is transient and a read can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil || c.IsContextError(err) {
		return false
	}
	if c.IsConnectionError(err) || c.IsLockError(err) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "server closed")
}

// IsContextError checks if an error is caused by context timeout or cancellation
func (c *ErrorClassifier) IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ToDomainError maps a database error that the caller did not handle itself
// onto the ledger's error vocabulary. The driver error stays reachable via
// errors.As.
func (c *ErrorClassifier) ToDomainError(operation string, err error) error {
	switch c.Classify(err) {
	case LockError:
		return fmt.Errorf("%w: %s: %w", errs.ErrConcurrencyConflict, operation, err)
	case AppendOnlyError:
		return fmt.Errorf("%w: %s: %w", errs.ErrAppendOnly, operation, err)
	case ConstraintError, DuplicateKeyError:
		return fmt.Errorf("%w: %s: %w", errs.ErrConstraintViolation, operation, err)
	default:
		return fmt.Errorf("%w: %s: %w", errs.ErrStoreUnavailable, operation, err)
	}
}

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}
