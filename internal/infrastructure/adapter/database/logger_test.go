package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/casino-wallet/mocks/port/core"
)

func newTraceClock(t *testing.T, elapsed time.Duration) *mockcore.MockTimeProvider {
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Since(mock.Anything).Return(coreport.Duration(elapsed)).Maybe()
	return clock
}

func TestDatabaseLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return `SELECT * FROM "players" WHERE id = 'x'`, 1 }
	ctx := coreport.WithRequestID(context.Background(), "req-7")

	t.Run("should log errors with the query context", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		coreLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["table"] == "players" && fields["type"] == "SELECT" &&
				fields["request_id"] == "req-7" && fields["error"] == "boom"
		})).Once()

		dbLogger := NewDatabaseLogger(coreLogger, newTraceClock(t, time.Millisecond), "warn", time.Second)
		dbLogger.Trace(ctx, testNow, query, errors.New("boom"))
	})

	t.Run("should not treat a missing record as an error", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)

		dbLogger := NewDatabaseLogger(coreLogger, newTraceClock(t, time.Millisecond), "warn", time.Second)
		dbLogger.Trace(ctx, testNow, query, gorm.ErrRecordNotFound)
	})

	t.Run("should warn about slow queries", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		coreLogger.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		dbLogger := NewDatabaseLogger(coreLogger, newTraceClock(t, 2*time.Second), "warn", time.Second)
		dbLogger.Trace(ctx, testNow, query, nil)
	})

	t.Run("should log every query at info level", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		coreLogger.EXPECT().Debug("SQL Query", mock.Anything).Once()

		dbLogger := NewDatabaseLogger(coreLogger, newTraceClock(t, time.Millisecond), "info", time.Second)
		dbLogger.Trace(ctx, testNow, query, nil)
	})

	t.Run("should stay quiet when silenced", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)

		dbLogger := NewDatabaseLogger(coreLogger, newTraceClock(t, 2*time.Second), "info", time.Second).
			LogMode(logger.Silent)
		dbLogger.Trace(ctx, testNow, query, errors.New("boom"))
	})
}

func TestParseGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, ParseGormLogLevel("silent"))
	assert.Equal(t, logger.Error, ParseGormLogLevel("ERROR"))
	assert.Equal(t, logger.Warn, ParseGormLogLevel("warning"))
	assert.Equal(t, logger.Info, ParseGormLogLevel(""))
}

func TestExtractQueryParts(t *testing.T) {
	testCases := []struct {
		sql       string
		queryType string
		table     string
	}{
		{`SELECT * FROM "players" WHERE id = $1`, "SELECT", "players"},
		{`  INSERT INTO "transactions" ("id") VALUES ($1)`, "INSERT", "transactions"},
		{`UPDATE "players" SET "version"=$1`, "UPDATE", "players"},
		{`DELETE FROM player_locks WHERE expires_at <= $1`, "DELETE", "player_locks"},
		{`SET statement_timeout = 0`, "", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.queryType, extractQueryType(tc.sql), tc.sql)
		assert.Equal(t, tc.table, extractTableName(tc.sql), tc.sql)
	}
}
