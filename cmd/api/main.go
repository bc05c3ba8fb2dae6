package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/notification"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/game"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/player"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/validation"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/notifier"
	timeprovider "github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/config"
)

// storage is whatever backs the ledger for this process
type storage struct {
	ledger persistence.LedgerStore
	games  persistence.GameRepository
	locks  persistence.PlayerLockRepository
	pinger handler.Pinger
	close  func() error
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Service:    cfg.Logger.Service,
	})
	defer appLogger.Flush()

	for _, warning := range cfg.Warnings() {
		appLogger.Warn("Potential issue in production configuration", map[string]any{"warning": warning})
	}

	tp := timeprovider.NewRealTimeProvider()
	ids := idgen.NewULIDGenerator(tp)
	ctx := context.Background()

	store, err := openStorage(ctx, cfg, appLogger, tp, ids)
	if err != nil {
		appLogger.Error("Failed to initialise ledger storage", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	eventNotifier, err := openNotifier(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialise notifier", map[string]any{"error": err.Error()})
		_ = store.close()
		os.Exit(1)
	}
	dispatcher := notifier.NewAsyncDispatcher(eventNotifier, appLogger, cfg.Ledger.NotifierBuffer, cfg.Ledger.NotifierTimeout)

	ledgerConfig := ledger.DefaultConfig()
	ledgerConfig.MaxAmountCents = cfg.Ledger.MaxAmountCents
	ledgerConfig.MaxConflictRetries = cfg.Ledger.MaxConflictRetries
	ledgerConfig.ConflictBackoff = cfg.Ledger.ConflictBackoff
	ledgerConfig.QueueSize = cfg.Ledger.QueueSize
	ledgerConfig.DistributedLock = cfg.Ledger.DistributedLock
	ledgerConfig.LockLease = cfg.Ledger.LockLease

	ledgerService := ledger.NewService(store.ledger, store.games, store.locks, dispatcher, tp, appLogger, ledgerConfig)
	playerUseCase := player.NewPlayerUseCase(store.ledger, dispatcher, ids, tp, appLogger, cfg.Ledger.InitialCreditCents)
	gameUseCase := game.NewGameUseCase(store.games)

	if err := validation.RegisterValidators(); err != nil {
		appLogger.Error("Failed to register request validators", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	router := gin.New()
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.CORS.AllowedOrigins
	corsConfig.MaxAge = cfg.CORS.MaxAge
	routes.SetupMiddlewares(router, appLogger, tp, corsConfig)
	routes.SetupRoutes(router, routes.Handlers{
		Player:      handler.NewPlayerHandler(playerUseCase, ledgerService, appLogger),
		Wallet:      handler.NewWalletHandler(ledgerService, appLogger),
		Bet:         handler.NewBetHandler(ledgerService, appLogger),
		Transaction: handler.NewTransactionHandler(ledgerService, appLogger),
		Game:        handler.NewGameHandler(gameUseCase, appLogger),
		Health:      handler.NewHealthHandler(store.pinger, appLogger),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": cfg.Database.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting requests before draining the player queues
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Draining ledger queues...", nil)
	ledgerService.Shutdown()
	dispatcher.Close()

	if err := eventNotifier.Close(); err != nil {
		appLogger.Warn("Failed to close notifier", map[string]any{"error": err.Error()})
	}
	if err := store.close(); err != nil {
		appLogger.Warn("Failed to close ledger storage", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// openStorage builds the ledger store selected by database.driver
func openStorage(
	ctx context.Context,
	cfg *config.Config,
	appLogger coreport.Logger,
	tp coreport.TimeProvider,
	ids coreport.IDGenerator,
) (*storage, error) {
	if cfg.Database.Driver == database.DriverMemory {
		appLogger.Warn("Using in-memory ledger store; balances are not durable", nil)
		return &storage{
			ledger: memory.NewLedgerStore(ids, tp),
			games:  memory.NewGameRepository(entity.DefaultGames()...),
			close:  func() error { return nil },
		}, nil
	}

	dbConfig := databaseConfig(cfg)
	if err := dbConfig.Validate(); err != nil {
		return nil, err
	}
	mode, err := database.ParseLockingMode(cfg.Ledger.LockingMode)
	if err != nil {
		return nil, err
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, err
	}
	if err := dbManager.Migrate(ctx); err != nil {
		_ = dbManager.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	uow, err := dbManager.CreateUnitOfWork()
	if err != nil {
		_ = dbManager.Close()
		return nil, err
	}

	locks := dbManager.PlayerLockRepository()
	if removed, err := locks.CleanupExpiredLocks(ctx); err != nil {
		appLogger.Warn("Failed to clean up expired player leases", map[string]any{"error": err.Error()})
	} else if removed > 0 {
		appLogger.Info("Removed expired player leases", map[string]any{"count": removed})
	}

	retry := database.DefaultRetryConfig()
	retry.MaxRetries = dbConfig.RetryAttempts

	return &storage{
		ledger: database.NewLedgerStore(uow, ids, tp, appLogger, database.LedgerStoreOptions{
			LockingMode:   mode,
			Retry:         retry,
			SlowThreshold: dbConfig.SlowThreshold,
		}),
		games:  dbManager.GameRepository(),
		locks:  locks,
		pinger: dbManager,
		close:  dbManager.Close,
	}, nil
}

// databaseConfig maps the application config onto the database adapter's config
func databaseConfig(cfg *config.Config) *database.Config {
	port, _ := strconv.Atoi(cfg.Database.Port)

	dbConfig := database.DefaultConfig()
	dbConfig.Host = cfg.Database.Host
	dbConfig.Port = port
	dbConfig.Username = cfg.Database.Username
	dbConfig.Password = cfg.Database.Password
	dbConfig.Database = cfg.Database.Database
	dbConfig.SSLMode = cfg.Database.SSLMode
	dbConfig.Isolation = cfg.Database.Isolation
	dbConfig.MaxOpenConns = cfg.Database.MaxOpenConns
	dbConfig.MaxIdleConns = cfg.Database.MaxIdleConns
	dbConfig.ConnMaxLifetime = cfg.Database.ConnMaxLifetime
	dbConfig.ConnMaxIdleTime = cfg.Database.ConnMaxIdleTime
	dbConfig.QueryTimeout = cfg.Database.QueryTimeout
	dbConfig.SlowThreshold = cfg.Database.SlowThreshold
	dbConfig.RetryAttempts = cfg.Database.RetryAttempts
	dbConfig.RetryDelay = cfg.Database.RetryDelay
	dbConfig.LogLevel = cfg.Logger.Level
	return dbConfig
}

// openNotifier publishes to Redis when enabled and otherwise logs events
func openNotifier(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) (notification.Notifier, error) {
	if !cfg.Redis.Enabled {
		return notifier.NewLogNotifier(appLogger), nil
	}

	redisNotifier, err := notifier.NewRedisNotifier(ctx, notifier.RedisOptions{
		Addr:          cfg.Redis.Addr,
		Password:      cfg.Redis.Password,
		DB:            cfg.Redis.DB,
		ChannelPrefix: cfg.Redis.ChannelPrefix,
	}, appLogger)
	if err != nil {
		return nil, err
	}
	return redisNotifier, nil
}
