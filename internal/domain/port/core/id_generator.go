package core

import "github.com/google/uuid"

// IDGenerator produces identifiers for ledger records
type IDGenerator interface {
	// NewTransactionID returns a unique identifier that sorts by creation order
	NewTransactionID() string
	// NewPlayerID returns a new random player identifier
	NewPlayerID() uuid.UUID
}
