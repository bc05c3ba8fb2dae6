package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
)

// QueryMetrics holds metrics about a database operation
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	RowsAffected int64
	Failed       bool
	ErrorMessage string
}

// MetricsCollector times ledger operations and reports slow ones
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider, slowThreshold time.Duration) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: slowThreshold,
	}
}

// MeasureQuery measures the execution time of fn
func (c *MetricsCollector) MeasureQuery(ctx context.Context, operation string, fn func() (int64, error)) (*QueryMetrics, error) {
	start := c.timeProvider.Now()

	rowsAffected, err := fn()

	metrics := &QueryMetrics{
		Operation:    operation,
		Duration:     c.timeProvider.Since(start).Std(),
		RowsAffected: rowsAffected,
		Failed:       err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if c.slowThreshold > 0 && metrics.Duration > c.slowThreshold {
		fields := map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"rows_affected": rowsAffected,
			"failed":        metrics.Failed,
		}
		if requestID := coreport.RequestIDFromContext(ctx); requestID != "" {
			fields["request_id"] = requestID
		}
		c.logger.Warn("Slow ledger operation detected", fields)
	}

	return metrics, err
}
