package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/game"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/player"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/validation"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/notifier"
	timeprovider "github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/time"
)

// newTestServer wires the full stack on the in-memory store
func newTestServer(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterValidators())

	appLogger := logger.NewNoopLogger()
	clock := timeprovider.NewRealTimeProvider()
	ids := idgen.NewULIDGenerator(clock)

	store := memory.NewLedgerStore(ids, clock)
	games := memory.NewGameRepository(entity.DefaultGames()...)
	dispatcher := notifier.NewAsyncDispatcher(notifier.NoopNotifier{}, appLogger, 0, 0)

	ledgerService := ledger.NewService(store, games, nil, dispatcher, clock, appLogger, ledger.DefaultConfig())
	t.Cleanup(func() {
		ledgerService.Shutdown()
		dispatcher.Close()
	})

	playerUseCase := player.NewPlayerUseCase(store, dispatcher, ids, clock, appLogger, player.DefaultInitialCreditCents)

	router := gin.New()
	SetupMiddlewares(router, appLogger, clock, middleware.DefaultCORSConfig())
	SetupRoutes(router, Handlers{
		Player:      handler.NewPlayerHandler(playerUseCase, ledgerService, appLogger),
		Wallet:      handler.NewWalletHandler(ledgerService, appLogger),
		Bet:         handler.NewBetHandler(ledgerService, appLogger),
		Transaction: handler.NewTransactionHandler(ledgerService, appLogger),
		Game:        handler.NewGameHandler(game.NewGameUseCase(games), appLogger),
		Health:      handler.NewHealthHandler(nil, appLogger),
	})
	return router
}

func call(t *testing.T, router *gin.Engine, method, path, body string, headers map[string]string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var decoded map[string]any
	if strings.HasPrefix(strings.TrimSpace(recorder.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder.Code, decoded
}

func TestRoutes_WalletLifecycle(t *testing.T) {
	router := newTestServer(t)

	status, created := call(t, router, http.MethodPost, "/players", "", nil)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "100000", created["balanceCents"])
	base := "/players/" + created["playerId"].(string)

	status, deposit := call(t, router, http.MethodPost, base+"/wallet/deposit", `{"amountCents":"5000"}`,
		map[string]string{handler.IdempotencyKeyHeader: "dep-1"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "105000", deposit["balanceCents"])

	status, replay := call(t, router, http.MethodPost, base+"/wallet/deposit", `{"amountCents":"5000"}`,
		map[string]string{handler.IdempotencyKeyHeader: "dep-1"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "105000", replay["balanceCents"])
	assert.Equal(t, true, replay["replayed"])

	status, play := call(t, router, http.MethodPost, base+"/bets/play",
		`{"gameCode":"slots","amountCents":"1000","outcome":"WIN"}`, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "106000", play["balanceCents"])

	status, overdraft := call(t, router, http.MethodPost, base+"/wallet/withdraw", `{"amountCents":"99999999"}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, float64(4001), overdraft["code"])

	status, balance := call(t, router, http.MethodGet, base+"/balance", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1060.00", balance["balance"])

	status, reconcile := call(t, router, http.MethodGet, base+"/reconcile", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, reconcile["consistent"])
	assert.Equal(t, "106000", reconcile["ledgerSumCents"])

	status, history := call(t, router, http.MethodGet, base+"/transactions?limit=2", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(4), history["total"])
	items := history["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "PAYOUT", items[0].(map[string]any)["type"])
	assert.Equal(t, "BET", items[1].(map[string]any)["type"])
}

func TestRoutes_UnknownPlayer(t *testing.T) {
	router := newTestServer(t)

	status, body := call(t, router, http.MethodGet, "/players/8d9e0f1a-2b3c-4d5e-8f70-8192a3b4c5d6/balance", "", nil)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, float64(4040), body["code"])
}

func TestRoutes_Healthz(t *testing.T) {
	router := newTestServer(t)

	status, body := call(t, router, http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
