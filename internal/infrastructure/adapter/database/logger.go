package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
)

// DatabaseLogger is a GORM logger that writes through the core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

var _ logger.Interface = (*DatabaseLogger)(nil)

// ParseGormLogLevel maps a configuration string to a GORM log level
func ParseGormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn", "warning":
		return logger.Warn
	default:
		return logger.Info
	}
}

// NewDatabaseLogger creates a new database logger
func NewDatabaseLogger(
	coreLogger coreport.Logger,
	timeProvider coreport.TimeProvider,
	level string,
	slowThreshold time.Duration,
) *DatabaseLogger {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      ParseGormLogLevel(level),
		slowThreshold: slowThreshold,
		timeProvider:  timeProvider,
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Trace logs SQL operations
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := l.timeProvider.Since(begin).Std()
	notFound := errors.Is(err, gorm.ErrRecordNotFound)

	switch {
	case err != nil && !notFound && l.logLevel >= logger.Error:
		sql, rows := fc()
		fields := l.queryFields(ctx, sql, rows, elapsed)
		fields["error"] = err.Error()
		l.coreLogger.Error("SQL Error", fields)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		sql, rows := fc()
		l.coreLogger.Warn("Slow SQL Query", l.queryFields(ctx, sql, rows, elapsed))
	case l.logLevel >= logger.Info:
		sql, rows := fc()
		l.coreLogger.Debug("SQL Query", l.queryFields(ctx, sql, rows, elapsed))
	}
}

func (l *DatabaseLogger) baseFields(ctx context.Context) map[string]any {
	fields := map[string]any{"source": "database"}
	if requestID := coreport.RequestIDFromContext(ctx); requestID != "" {
		fields["request_id"] = requestID
	}
	return fields
}

func (l *DatabaseLogger) queryFields(ctx context.Context, sql string, rows int64, elapsed time.Duration) map[string]any {
	fields := l.baseFields(ctx)
	fields["elapsed"] = elapsed.String()
	fields["rows"] = rows
	fields["sql"] = sql
	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}
	if table := extractTableName(sql); table != "" {
		fields["table"] = table
	}
	return fields
}

// extractQueryType returns the leading SQL verb
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))
	for _, verb := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sqlUpper, verb) {
			return verb
		}
	}
	return ""
}

// extractTableName finds the table after FROM, INTO or UPDATE.
// It does not parse SQL and misses joins and subqueries.
func extractTableName(sql string) string {
	trimmed := strings.TrimSpace(sql)
	sqlUpper := strings.ToUpper(trimmed)

	var start int
	switch {
	case strings.HasPrefix(sqlUpper, "UPDATE "):
		start = len("UPDATE ")
	case strings.Contains(sqlUpper, " INTO "):
		start = strings.Index(sqlUpper, " INTO ") + len(" INTO ")
	case strings.Contains(sqlUpper, " FROM "):
		start = strings.Index(sqlUpper, " FROM ") + len(" FROM ")
	default:
		return ""
	}

	remainder := strings.TrimSpace(trimmed[start:])
	if end := strings.IndexAny(remainder, " \n\t("); end != -1 {
		remainder = remainder[:end]
	}
	return strings.ToLower(strings.Trim(remainder, `"`))
}
