package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/validation"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/logger"
)

var (
	testPlayerID = uuid.MustParse("3f2c6a8e-1b4d-4e7f-9a0c-5d6e7f8a9b0c")
	testNow      = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	noopLogger   = logger.NewNoopLogger()
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterValidators(); err != nil {
		panic(err)
	}
}

func newRouter(register func(r *gin.Engine)) *gin.Engine {
	router := gin.New()
	register(router)
	return router
}

func performRequest(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func committedEntry(txType entity.TransactionType, amount, balanceAfter int64) *entity.Transaction {
	return &entity.Transaction{
		ID:                "01JNB3Q6X8S9T0V1W2X3Y4Z5A6",
		PlayerID:          testPlayerID,
		Type:              txType,
		AmountCents:       amount,
		BalanceAfterCents: balanceAfter,
		CreatedAt:         testNow,
	}
}
