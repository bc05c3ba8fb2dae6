package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Validate ensures all required configuration values are present
func (c *Config) Validate() error {
	var missingConfigs []string

	switch c.Environment {
	case "":
		missingConfigs = append(missingConfigs, "environment")
	case Development, Production, Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if c.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if c.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if c.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if c.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch c.Database.Driver {
	case "memory":
	case "postgres":
		missingConfigs = append(missingConfigs, c.missingDatabaseSettings()...)
	default:
		return fmt.Errorf("invalid database.driver: %s, must be postgres or memory", c.Database.Driver)
	}

	if c.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if c.Ledger.InitialCreditCents < 0 {
		return fmt.Errorf("ledger.initialCreditCents must not be negative, got: %d", c.Ledger.InitialCreditCents)
	}
	if c.Ledger.MaxAmountCents <= 0 {
		missingConfigs = append(missingConfigs, "ledger.maxAmountCents")
	}
	if c.Ledger.QueueSize <= 0 {
		missingConfigs = append(missingConfigs, "ledger.queueSize")
	}
	switch strings.ToLower(c.Ledger.LockingMode) {
	case "pessimistic", "optimistic":
	default:
		return fmt.Errorf("invalid ledger.lockingMode: %s, must be pessimistic or optimistic", c.Ledger.LockingMode)
	}
	if c.Ledger.DistributedLock && c.Database.Driver != "postgres" {
		return fmt.Errorf("ledger.distributedLock requires the postgres driver")
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		missingConfigs = append(missingConfigs, "redis.addr")
	}

	for _, origin := range c.CORS.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid cors.allowedOrigins entry: %q, must be * or start with http:// or https://", origin)
		}
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}
	return nil
}

func (c *Config) missingDatabaseSettings() []string {
	var missing []string

	required := []struct {
		key   string
		env   string
		value string
	}{
		{"database.host", "CW_DB_HOST", c.Database.Host},
		{"database.port", "CW_DB_PORT", c.Database.Port},
		{"database.username", "CW_DB_USERNAME", c.Database.Username},
		{"database.password", "CW_DB_PASSWORD", c.Database.Password},
		{"database.database", "CW_DB_NAME", c.Database.Database},
	}
	for _, r := range required {
		if r.value != "" {
			continue
		}
		if c.Environment == Production && os.Getenv(r.env) == "" {
			missing = append(missing, fmt.Sprintf("%s (or %s environment variable)", r.key, r.env))
		} else if c.Environment != Production {
			missing = append(missing, r.key)
		}
	}

	if c.Database.Port != "" {
		if _, err := strconv.Atoi(c.Database.Port); err != nil {
			missing = append(missing, "database.port (numeric)")
		}
	}
	if c.Database.QueryTimeout == 0 {
		missing = append(missing, "database.queryTimeout")
	}
	return missing
}

// Warnings lists settings that are valid but risky in production
func (c *Config) Warnings() []string {
	if !c.IsProduction() {
		return nil
	}

	var warnings []string
	if c.Database.Driver == "memory" {
		warnings = append(warnings, "database.driver is memory; balances are lost on restart")
	}
	if c.Database.Driver == "postgres" {
		switch strings.ToLower(c.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
	}
	if c.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if c.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}
	return warnings
}
