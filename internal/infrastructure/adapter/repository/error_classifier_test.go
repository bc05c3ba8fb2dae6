package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
)

func TestErrorClassifier_Classify(t *testing.T) {
	classifier := NewErrorClassifier()

	testCases := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"nil", nil, ""},
		{"unique violation", &pgconn.PgError{Code: "23505"}, DuplicateKeyError},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, LockError},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, LockError},
		{"lock not available", &pgconn.PgError{Code: "55P03"}, LockError},
		{"check violation", &pgconn.PgError{Code: "23514"}, ConstraintError},
		{"foreign key violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), ConstraintError},
		{"append-only trigger", &pgconn.PgError{Code: "P0001", Message: "transactions are append-only"}, AppendOnlyError},
		{"connection failure", &pgconn.PgError{Code: "08006"}, ConnectionError},
		{"dial error", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), ConnectionError},
		{"canceled", fmt.Errorf("query: %w", context.Canceled), ContextError},
		{"unknown", errors.New("something odd"), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifier.Classify(tc.err))
		})
	}
}

func TestErrorClassifier_IsTransientError(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("should treat connection and lock errors as transient", func(t *testing.T) {
		assert.True(t, classifier.IsTransientError(errors.New("read: connection reset by peer")))
		assert.True(t, classifier.IsTransientError(&pgconn.PgError{Code: "40001"}))
		assert.True(t, classifier.IsTransientError(errors.New("unexpected EOF")))
	})

	t.Run("should not retry context or constraint errors", func(t *testing.T) {
		assert.False(t, classifier.IsTransientError(context.DeadlineExceeded))
		assert.False(t, classifier.IsTransientError(&pgconn.PgError{Code: "23514"}))
		assert.False(t, classifier.IsTransientError(nil))
	})
}

func TestErrorClassifier_ToDomainError(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("should map lock errors to concurrency conflicts", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "40P01"}
		err := classifier.ToDomainError("commit", pgErr)

		assert.True(t, errs.IsConcurrencyConflict(err))
		var target *pgconn.PgError
		assert.True(t, errors.As(err, &target))
		assert.Equal(t, "40P01", target.Code)
	})

	t.Run("should map the append-only trigger", func(t *testing.T) {
		err := classifier.ToDomainError("update", &pgconn.PgError{Code: "P0001", Message: "transactions are append-only"})
		assert.ErrorIs(t, err, errs.ErrAppendOnly)
	})

	t.Run("should map constraint violations", func(t *testing.T) {
		err := classifier.ToDomainError("update", &pgconn.PgError{Code: "23514"})
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})

	t.Run("should map everything else to store unavailable", func(t *testing.T) {
		err := classifier.ToDomainError("query", errors.New("server closed the connection"))
		assert.True(t, errs.IsStoreUnavailable(err))
		assert.Contains(t, err.Error(), "query")
	})
}
