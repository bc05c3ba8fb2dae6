package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Player      *handler.PlayerHandler
	Wallet      *handler.WalletHandler
	Bet         *handler.BetHandler
	Transaction *handler.TransactionHandler
	Game        *handler.GameHandler
	Health      *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/healthz", h.Health.Healthz)
	router.GET("/games", h.Game.ListGames)

	router.POST("/players", h.Player.Register)

	playerRoutes := router.Group("/players/:playerId")
	{
		playerRoutes.GET("/balance", h.Player.GetBalance)
		playerRoutes.GET("/reconcile", h.Player.Reconcile)
		playerRoutes.GET("/transactions", h.Transaction.ListTransactions)

		playerRoutes.POST("/wallet/deposit", h.Wallet.Deposit)
		playerRoutes.POST("/wallet/withdraw", h.Wallet.Withdraw)

		playerRoutes.POST("/bets", h.Bet.PlaceBet)
		playerRoutes.POST("/bets/settle", h.Bet.Settle)
		playerRoutes.POST("/bets/play", h.Bet.Play)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, cors middleware.CORSConfig) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(cors))
}
