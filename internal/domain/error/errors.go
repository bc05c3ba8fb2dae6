package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest         = 4000
	CodeInsufficientFunds      = 4001
	CodeInvalidAmount          = 4002
	CodeInvalidPlayerID        = 4003
	CodeIdempotencyKeyReuse    = 4004
	CodeConstraintViolation    = 4005
	CodeInvalidOutcome         = 4006
	CodeInvalidTransactionType = 4007
	CodeInvalidGame            = 4008
	CodeDuplicateRequest       = 4009
	CodePlayerNotFound         = 4040
	CodeGameNotFound           = 4041
	CodeDuplicatePlayer        = 4090
	CodeConcurrencyConflict    = 4091
	CodePlayerLocked           = 4230

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeStoreUnavailable = 5030
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is not a positive integer count of cents within the allowed ceiling
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds is returned when a withdrawal or bet exceeds the current balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidPlayerID is returned when the player ID is not a valid UUID
	ErrInvalidPlayerID = errors.New("invalid player ID")

	// ErrPlayerNotFound is returned when the requested player doesn't exist
	ErrPlayerNotFound = errors.New("player not found")

	// ErrDuplicatePlayer is returned when trying to register a player that already exists
	ErrDuplicatePlayer = errors.New("player already exists")

	// ErrGameNotFound is returned when the referenced game doesn't exist
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidGame is returned when the game code is not one of the known codes
	ErrInvalidGame = errors.New("invalid game code")

	// ErrInvalidOutcome is returned when the outcome is neither WIN nor LOSS
	ErrInvalidOutcome = errors.New("invalid outcome")

	// ErrInvalidTransactionType is returned when a transaction type filter is not recognised
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrIdempotencyKeyReuse is returned when an idempotency key is replayed with a different payload
	ErrIdempotencyKeyReuse = errors.New("idempotency key already used for a different request")

	// ErrDuplicateRequest is returned by a store when an idempotency key has already been committed
	ErrDuplicateRequest = errors.New("request with this idempotency key already committed")

	// ErrConcurrencyConflict is returned when an optimistic version check fails or the
	// database aborts a transaction because of a concurrent writer
	ErrConcurrencyConflict = errors.New("concurrent modification detected")

	// ErrStoreUnavailable is returned when a write could not be durably committed
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	// ErrPlayerLocked is returned when a player is locked by another instance
	ErrPlayerLocked = errors.New("player is locked by another operation")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrAppendOnly is returned when something tries to rewrite the transaction log
	ErrAppendOnly = errors.New("transaction log is append-only")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidPlayerID):
		return CodeInvalidPlayerID
	case errors.Is(err, ErrIdempotencyKeyReuse):
		return CodeIdempotencyKeyReuse
	case errors.Is(err, ErrDuplicateRequest):
		return CodeDuplicateRequest
	case errors.Is(err, ErrInvalidOutcome):
		return CodeInvalidOutcome
	case errors.Is(err, ErrInvalidTransactionType):
		return CodeInvalidTransactionType
	case errors.Is(err, ErrInvalidGame):
		return CodeInvalidGame
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrPlayerNotFound):
		return CodePlayerNotFound
	case errors.Is(err, ErrGameNotFound):
		return CodeGameNotFound
	case errors.Is(err, ErrDuplicatePlayer):
		return CodeDuplicatePlayer
	case errors.Is(err, ErrConcurrencyConflict):
		return CodeConcurrencyConflict
	case errors.Is(err, ErrPlayerLocked):
		return CodePlayerLocked
	case errors.Is(err, ErrConstraintViolation), errors.Is(err, ErrAppendOnly):
		return CodeConstraintViolation
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError carries the balance context of a rejected debit
type InsufficientFundsError struct {
	PlayerID       string
	RequestedCents int64
	BalanceCents   int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for player %s: requested %d cents, available %d cents",
		e.PlayerID, e.RequestedCents, e.BalanceCents)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"player_id":       e.PlayerID,
		"requested_cents": e.RequestedCents,
		"balance_cents":   e.BalanceCents,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(playerID string, requestedCents, balanceCents int64) error {
	return &InsufficientFundsError{
		PlayerID:       playerID,
		RequestedCents: requestedCents,
		BalanceCents:   balanceCents,
	}
}

// LedgerError represents a failed ledger operation
type LedgerError struct {
	Operation       string
	PlayerID        string
	TransactionType string
	AmountCents     int64
	Err             error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("%s failed for player %s (type: %s, amount: %d cents): %v",
		e.Operation, e.PlayerID, e.TransactionType, e.AmountCents, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":       "ledger_error",
		"operation":        e.Operation,
		"player_id":        e.PlayerID,
		"transaction_type": e.TransactionType,
		"amount_cents":     e.AmountCents,
		"error":            e.Err.Error(),
		"error_code":       ErrorCode(e.Err),
	}

	var fundsErr *InsufficientFundsError
	if errors.As(e.Err, &fundsErr) {
		fields["balance_cents"] = fundsErr.BalanceCents
	}

	return fields
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(operation, playerID, transactionType string, amountCents int64, err error) error {
	return &LedgerError{
		Operation:       operation,
		PlayerID:        playerID,
		TransactionType: transactionType,
		AmountCents:     amountCents,
		Err:             err,
	}
}

// StoreUnavailable wraps a persistence failure so that callers see ErrStoreUnavailable
func StoreUnavailable(operation string, cause error) error {
	if cause == nil {
		return ErrStoreUnavailable
	}
	return fmt.Errorf("%w: %s: %s", ErrStoreUnavailable, operation, cause.Error())
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsPlayerNotFoundError checks if the error is a player not found error
func IsPlayerNotFoundError(err error) bool {
	return errors.Is(err, ErrPlayerNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrPlayerNotFound) ||
		errors.Is(err, ErrGameNotFound)
}

// IsConcurrencyConflict checks if the error should trigger an internal retry
func IsConcurrencyConflict(err error) bool {
	return errors.Is(err, ErrConcurrencyConflict)
}

// IsStoreUnavailable checks if the error is a durability failure the caller may retry
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsValidationError checks if the error was caused by caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidPlayerID) ||
		errors.Is(err, ErrInvalidOutcome) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrInvalidGame) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsPlayerLockedError checks if the error is related to a locked player
func IsPlayerLockedError(err error) bool {
	return errors.Is(err, ErrPlayerLocked)
}
