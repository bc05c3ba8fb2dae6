package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/repository"
)

// poolMonitorInterval is how often connection pool statistics are sampled
const poolMonitorInterval = 30 * time.Second

// Manager manages the database connection and everything bound to it
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	timeProvider      coreport.TimeProvider
	connectionMonitor *ConnectionPoolMonitor
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect opens the connection pool, retrying the first connection
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	gormConfig := &gorm.Config{
		Logger:  NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold),
		NowFunc: func() time.Time { return m.timeProvider.Now().UTC() },
		// Every ledger write manages its own transaction
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	var (
		gormDB *gorm.DB
		err    error
	)
	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      m.config.RetryAttempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-m.timeProvider.After(coreport.Duration(m.config.RetryDelay)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		gormDB, err = gorm.Open(postgres.Open(m.config.DSN()), gormConfig)
		if err == nil {
			err = m.ping(ctx, gormDB)
		}
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"isolation":      m.config.Isolation,
	})

	m.db = gormDB
	m.connectionMonitor = NewConnectionPoolMonitor(sqlDB, m.logger)
	m.connectionMonitor.Start(poolMonitorInterval)

	return m.db, nil
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database not connected")
	}
	return m.ping(ctx, m.db)
}

func (m *Manager) ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	pingCtx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// Close stops monitoring and closes the connection pool
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context bounded by the query timeout
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, coreport.Duration(m.config.QueryTimeout))
}

// CreateUnitOfWork creates a UnitOfWork at the configured isolation level
func (m *Manager) CreateUnitOfWork() (*UnitOfWork, error) {
	isolation, err := m.config.IsolationLevel()
	if err != nil {
		return nil, err
	}
	return NewUnitOfWork(m.db, m.logger, isolation), nil
}

// GameRepository returns the catalogue repository
func (m *Manager) GameRepository() *repository.GameRepository {
	return repository.NewGameRepository(m.db, m.logger)
}

// PlayerLockRepository returns the lease repository
func (m *Manager) PlayerLockRepository() *repository.PlayerLockRepository {
	return repository.NewPlayerLockRepository(m.db, m.timeProvider, m.logger)
}
