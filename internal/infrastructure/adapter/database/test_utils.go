package database

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/time"
)

// TestDBHostEnv names the variable that enables tests against a real PostgreSQL
const TestDBHostEnv = "CW_TEST_DB_HOST"

// TestDBManager provides utilities for testing with a real database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to the test database and migrates it. The test is
// skipped when CW_TEST_DB_HOST is not set.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	host := os.Getenv(TestDBHostEnv)
	if host == "" {
		t.Skipf("%s not set, skipping PostgreSQL test", TestDBHostEnv)
	}

	timeProvider := timeprovider.NewRealTimeProvider()

	config := DefaultConfig()
	config.Host = host
	config.Port = getEnvIntOrDefault("CW_TEST_DB_PORT", 5432)
	config.Username = getEnvOrDefault("CW_TEST_DB_USERNAME", "postgres")
	config.Password = getEnvOrDefault("CW_TEST_DB_PASSWORD", "postgres")
	config.Database = getEnvOrDefault("CW_TEST_DB_DATABASE", "casino_wallet_test")
	config.MaxOpenConns = 20
	config.MaxIdleConns = 10
	config.LogLevel = "silent"
	config.RetryAttempts = 1

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// TruncateLedger empties players, the log and leases. TRUNCATE does not fire
// the append-only row trigger.
func (m *TestDBManager) TruncateLedger(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec(`TRUNCATE TABLE transactions, player_locks, players CASCADE`).Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// CreateTestPlayer inserts a player row with the given balance and no log entries
func (m *TestDBManager) CreateTestPlayer(t *testing.T, balanceCents int64) uuid.UUID {
	t.Helper()

	now := time.Now().UTC()
	player := model.Player{
		ID:           uuid.New(),
		BalanceCents: balanceCents,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := m.Manager.DB().Create(&player).Error; err != nil {
		t.Fatalf("Failed to create test player: %v", err)
	}
	return player.ID
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}
