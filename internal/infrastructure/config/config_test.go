package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
database:
  driver: postgres
  host: db.internal
  username: wallet
  password: secret
  database: wallet
ledger:
  initialCreditCents: 50000
  lockingMode: optimistic
redis:
  enabled: true
  addr: redis:6379
`

// useConfigDir points the loader at a temp directory holding <env>.yaml
func useConfigDir(t *testing.T, env, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))

	originalConfig, originalDotEnv := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = []string{filepath.Join(dir, ".env")}
	t.Cleanup(func() {
		ConfigPaths, DotEnvPaths = originalConfig, originalDotEnv
	})

	t.Setenv("CW_ENV", env)
}

func validConfig() *Config {
	return &Config{
		Environment: Development,
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:       "postgres",
			Host:         "localhost",
			Port:         "5432",
			Username:     "wallet",
			Password:     "secret",
			Database:     "wallet",
			SSLMode:      "disable",
			QueryTimeout: 5 * time.Second,
		},
		Logger: LoggerConfig{Level: "info"},
		Ledger: LedgerConfig{
			InitialCreditCents: 100000,
			MaxAmountCents:     100_000_000_000,
			QueueSize:          256,
			LockingMode:        "pessimistic",
		},
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("should merge file, defaults and durations", func(t *testing.T) {
		useConfigDir(t, Test, testYAML)

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
		assert.Equal(t, int64(50000), cfg.Ledger.InitialCreditCents)
		assert.Equal(t, int64(100_000_000_000), cfg.Ledger.MaxAmountCents)
		assert.Equal(t, "optimistic", cfg.Ledger.LockingMode)
		assert.Equal(t, 10*time.Millisecond, cfg.Ledger.ConflictBackoff)
		assert.Equal(t, 5*time.Second, cfg.Ledger.LockLease)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, "wallet", cfg.Redis.ChannelPrefix)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("should let environment variables win", func(t *testing.T) {
		useConfigDir(t, Test, testYAML)
		t.Setenv("CW_DB_HOST", "override.internal")
		t.Setenv("CW_SERVER_PORT", "7070")
		t.Setenv("CW_LEDGER_INITIAL_CREDIT_CENTS", "0")
		t.Setenv("CW_REDIS_ENABLED", "false")
		t.Setenv("CW_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "override.internal", cfg.Database.Host)
		assert.Equal(t, 7070, cfg.Server.Port)
		assert.Equal(t, int64(0), cfg.Ledger.InitialCreditCents)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("should fail when the environment file is missing", func(t *testing.T) {
		useConfigDir(t, Test, testYAML)
		t.Setenv("CW_ENV", Production)

		_, err := LoadConfig()

		assert.Error(t, err)
	})

	t.Run("should load a .env file before reading the environment", func(t *testing.T) {
		useConfigDir(t, Test, testYAML)
		os.Unsetenv("CW_DB_NAME")
		t.Cleanup(func() { os.Unsetenv("CW_DB_NAME") })
		require.NoError(t, os.WriteFile(DotEnvPaths[0], []byte("CW_DB_NAME=from_dotenv\n"), 0o600))

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "from_dotenv", cfg.Database.Database)
	})
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"memory driver needs no credentials", func(c *Config) {
			c.Database = DatabaseConfig{Driver: "memory"}
		}, ""},
		{"unknown environment", func(c *Config) { c.Environment = "staging" }, "invalid environment value"},
		{"missing port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"missing host", func(c *Config) { c.Database.Host = "" }, "database.host"},
		{"non numeric port", func(c *Config) { c.Database.Port = "abc" }, "database.port (numeric)"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "invalid database.driver"},
		{"negative initial credit", func(c *Config) { c.Ledger.InitialCreditCents = -1 }, "initialCreditCents"},
		{"zero initial credit", func(c *Config) { c.Ledger.InitialCreditCents = 0 }, ""},
		{"unknown locking mode", func(c *Config) { c.Ledger.LockingMode = "eventual" }, "invalid ledger.lockingMode"},
		{"distributed lock on memory", func(c *Config) {
			c.Database = DatabaseConfig{Driver: "memory"}
			c.Ledger.DistributedLock = true
		}, "requires the postgres driver"},
		{"redis without address", func(c *Config) { c.Redis = RedisConfig{Enabled: true} }, "redis.addr"},
		{"cors origin without scheme", func(c *Config) { c.CORS.AllowedOrigins = []string{"lobby.example.com"} }, "cors.allowedOrigins"},
		{"cors origin with scheme", func(c *Config) { c.CORS.AllowedOrigins = []string{"https://lobby.example.com"} }, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()

			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	t.Run("should accept production credentials from the environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = Production
		cfg.Database.Password = ""
		t.Setenv("CW_DB_PASSWORD", "from-env")

		assert.NoError(t, cfg.Validate())
	})
}

func TestConfig_Warnings(t *testing.T) {
	t.Run("should stay quiet outside production", func(t *testing.T) {
		assert.Empty(t, validConfig().Warnings())
	})

	t.Run("should flag plaintext database connections in production", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = Production

		warnings := cfg.Warnings()

		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "sslMode")
	})
}
