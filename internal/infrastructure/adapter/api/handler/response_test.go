package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
)

func TestStatusForError(t *testing.T) {
	testCases := []struct {
		err    error
		status int
	}{
		{errs.ErrInvalidAmount, http.StatusBadRequest},
		{errs.ErrInvalidOutcome, http.StatusBadRequest},
		{errs.ErrInvalidRequest, http.StatusBadRequest},
		{errs.ErrInvalidPlayerID, http.StatusBadRequest},
		{errs.ErrPlayerNotFound, http.StatusNotFound},
		{errs.ErrGameNotFound, http.StatusNotFound},
		{errs.NewInsufficientFundsError("p", 2, 1), http.StatusUnprocessableEntity},
		{errs.ErrDuplicatePlayer, http.StatusConflict},
		{errs.ErrIdempotencyKeyReuse, http.StatusConflict},
		{errs.ErrPlayerLocked, http.StatusLocked},
		{errs.StoreUnavailable("commit", nil), http.StatusServiceUnavailable},
		{fmt.Errorf("wrapped: %w", errs.ErrPlayerNotFound), http.StatusNotFound},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.status, StatusForError(tc.err))
		})
	}
}

func TestParseCents(t *testing.T) {
	cents, err := parseCents("")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), cents)

	cents, err = parseCents("2500")
	assert.NoError(t, err)
	assert.Equal(t, int64(2500), cents)

	_, err = parseCents("99999999999999999999")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}
