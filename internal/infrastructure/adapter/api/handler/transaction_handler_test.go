package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	mockusecase "github.com/amirhossein-jamali/casino-wallet/mocks/port/usecase"
)

func newTransactionRouter(ledger *mockusecase.MockLedgerUseCase) *gin.Engine {
	h := NewTransactionHandler(ledger, noopLogger)
	return newRouter(func(r *gin.Engine) {
		r.GET("/players/:playerId/transactions", h.ListTransactions)
	})
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	path := "/players/" + testPlayerID.String() + "/transactions"

	t.Run("should forward filters and render the page", func(t *testing.T) {
		from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

		bet := committedEntry(entity.TransactionBet, 1000, 99000)
		bet.GameCode = entity.GameSlots

		ledger := mockusecase.NewMockLedgerUseCase(t)
		ledger.EXPECT().ListTransactions(mock.Anything, mock.MatchedBy(func(q usecase.TransactionQuery) bool {
			return q.PlayerID == testPlayerID && q.Type == "BET" && q.GameCode == "slots" &&
				q.From != nil && q.From.Equal(from) && q.To != nil && q.To.Equal(to) &&
				q.Page == 2 && q.Limit == 10
		})).Return(&persistence.TransactionPage{
			Page:  2,
			Limit: 10,
			Total: 11,
			Items: []*entity.Transaction{bet},
		}, nil)

		recorder := performRequest(newTransactionRouter(ledger), http.MethodGet,
			path+"?type=BET&game=slots&from=2025-02-01T00:00:00Z&to=2025-03-01T00:00:00Z&page=2&limit=10", "", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, float64(11), body["total"])
		items := body["items"].([]any)
		assert.Len(t, items, 1)
		assert.Equal(t, "slots", items[0].(map[string]any)["game"])
	})

	t.Run("should return an empty list rather than null", func(t *testing.T) {
		ledger := mockusecase.NewMockLedgerUseCase(t)
		ledger.EXPECT().ListTransactions(mock.Anything, mock.Anything).
			Return(&persistence.TransactionPage{Page: 1, Limit: 20}, nil)

		recorder := performRequest(newTransactionRouter(ledger), http.MethodGet, path, "", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"page":1,"limit":20,"total":0,"items":[]}`, recorder.Body.String())
	})

	t.Run("should reject a timestamp that is not RFC3339", func(t *testing.T) {
		ledger := mockusecase.NewMockLedgerUseCase(t)

		recorder := performRequest(newTransactionRouter(ledger), http.MethodGet, path+"?from=yesterday", "", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, float64(errs.CodeInvalidRequest), decodeBody(t, recorder)["code"])
	})

	t.Run("should map an unknown type filter to 400", func(t *testing.T) {
		ledger := mockusecase.NewMockLedgerUseCase(t)
		ledger.EXPECT().ListTransactions(mock.Anything, mock.Anything).Return(nil, errs.ErrInvalidTransactionType)

		recorder := performRequest(newTransactionRouter(ledger), http.MethodGet, path+"?type=REFUND", "", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, float64(errs.CodeInvalidTransactionType), decodeBody(t, recorder)["code"])
	})
}
