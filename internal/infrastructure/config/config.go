package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Ledger      LedgerConfig   `mapstructure:"ledger"`
	Redis       RedisConfig    `mapstructure:"redis"`
	CORS        CORSConfig     `mapstructure:"cors"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or memory
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	Isolation       string        `mapstructure:"isolation"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowThreshold   time.Duration `mapstructure:"slowThresholdMs"` // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"` // json or console
	Service string `mapstructure:"service"`
}

// LedgerConfig contains ledger processing settings
type LedgerConfig struct {
	InitialCreditCents int64         `mapstructure:"initialCreditCents"`
	MaxAmountCents     int64         `mapstructure:"maxAmountCents"`
	MaxConflictRetries int           `mapstructure:"maxConflictRetries"`
	ConflictBackoff    time.Duration `mapstructure:"conflictBackoffMs"` // milliseconds
	QueueSize          int           `mapstructure:"queueSize"`
	NotifierBuffer     int           `mapstructure:"notifierBuffer"`
	NotifierTimeout    time.Duration `mapstructure:"notifierTimeoutMs"` // milliseconds
	LockingMode        string        `mapstructure:"lockingMode"`       // pessimistic or optimistic
	DistributedLock    bool          `mapstructure:"distributedLock"`
	LockLease          time.Duration `mapstructure:"lockLeaseMs"` // milliseconds
}

// RedisConfig contains the Redis pub/sub notifier settings
type RedisConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Addr          string `mapstructure:"addr"`
	Password      string `mapstructure:"password"`
	DB            int    `mapstructure:"db"`
	ChannelPrefix string `mapstructure:"channelPrefix"`
}

// CORSConfig contains cross-origin settings for the HTTP API
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
	MaxAge         int      `mapstructure:"maxAge"` // seconds
}

// IsProduction reports whether the production profile is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
