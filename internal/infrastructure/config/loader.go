package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CW"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables still apply
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.isolation", "read_committed")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.slowThresholdMs", 200)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.service", "casino-wallet")

	v.SetDefault("ledger.initialCreditCents", 100000)
	v.SetDefault("ledger.maxAmountCents", int64(100_000_000_000))
	v.SetDefault("ledger.maxConflictRetries", 5)
	v.SetDefault("ledger.conflictBackoffMs", 10)
	v.SetDefault("ledger.queueSize", 256)
	v.SetDefault("ledger.notifierBuffer", 1024)
	v.SetDefault("ledger.notifierTimeoutMs", 2000)
	v.SetDefault("ledger.lockingMode", "pessimistic")
	v.SetDefault("ledger.distributedLock", false)
	v.SetDefault("ledger.lockLeaseMs", 5000)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channelPrefix", "wallet")

	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.maxAge", 86400)
}

// getEnvironment determines the environment from CW_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes environment variables win over config file values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"CW_DB_DRIVER":      "database.driver",
		"CW_DB_HOST":        "database.host",
		"CW_DB_PORT":        "database.port",
		"CW_DB_USERNAME":    "database.username",
		"CW_DB_PASSWORD":    "database.password",
		"CW_DB_NAME":        "database.database",
		"CW_DB_SSL_MODE":    "database.sslMode",
		"CW_DB_ISOLATION":   "database.isolation",
		"CW_SERVER_HOST":    "server.host",
		"CW_LOGGER_LEVEL":   "logger.level",
		"CW_LEDGER_LOCKING": "ledger.lockingMode",
		"CW_REDIS_ADDR":     "redis.addr",
		"CW_REDIS_PASSWORD": "redis.password",
		"CW_REDIS_CHANNEL":  "redis.channelPrefix",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if origins := os.Getenv("CW_CORS_ALLOWED_ORIGINS"); origins != "" {
		v.Set("cors.allowedOrigins", strings.Split(origins, ","))
	}

	// Numeric settings only override when positive
	intOverrides := map[string]string{
		"CW_SERVER_PORT":                 "server.port",
		"CW_DB_MAX_OPEN_CONNS":           "database.maxOpenConns",
		"CW_DB_MAX_IDLE_CONNS":           "database.maxIdleConns",
		"CW_DB_QUERY_TIMEOUT_SECONDS":    "database.queryTimeout",
		"CW_DB_RETRY_ATTEMPTS":           "database.retryAttempts",
		"CW_LEDGER_INITIAL_CREDIT_CENTS": "ledger.initialCreditCents",
		"CW_LEDGER_MAX_AMOUNT_CENTS":     "ledger.maxAmountCents",
		"CW_LEDGER_MAX_CONFLICT_RETRIES": "ledger.maxConflictRetries",
		"CW_LEDGER_QUEUE_SIZE":           "ledger.queueSize",
		"CW_LEDGER_LOCK_LEASE_MS":        "ledger.lockLeaseMs",
		"CW_REDIS_DB":                    "redis.db",
	}
	for env, key := range intOverrides {
		if value := getEnvInt64(env, 0); value > 0 {
			v.Set(key, value)
		}
	}

	// An initial credit of zero is a valid choice
	if value, ok := os.LookupEnv("CW_LEDGER_INITIAL_CREDIT_CENTS"); ok && strings.TrimSpace(value) == "0" {
		v.Set("ledger.initialCreditCents", 0)
	}

	boolOverrides := map[string]string{
		"CW_REDIS_ENABLED":           "redis.enabled",
		"CW_LEDGER_DISTRIBUTED_LOCK": "ledger.distributedLock",
	}
	for env, key := range boolOverrides {
		if value := os.Getenv(env); value != "" {
			if enabled, err := strconv.ParseBool(value); err == nil {
				v.Set(key, enabled)
			}
		}
	}
}

// getEnvInt64 reads an environment variable as int64
func getEnvInt64(name string, defaultVal int64) int64 {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Ledger.ConflictBackoff = time.Duration(config.Ledger.ConflictBackoff) * time.Millisecond
	config.Ledger.NotifierTimeout = time.Duration(config.Ledger.NotifierTimeout) * time.Millisecond
	config.Ledger.LockLease = time.Duration(config.Ledger.LockLease) * time.Millisecond
}
