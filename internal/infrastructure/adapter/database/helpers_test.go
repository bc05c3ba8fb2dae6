package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/casino-wallet/mocks/port/core"
)

var (
	testNow        = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	playerColumns  = []string{"id", "email", "balance_cents", "version", "transaction_count", "created_at", "updated_at"}
	transactionIDs = []string{"01JNB3Q6X8S9T0V1W2X3Y4Z5A6", "01JNB3Q6X8S9T0V1W2X3Y4Z5A7"}
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	return db, sqlMock
}

// newFixedClock returns a clock frozen at testNow whose After fires immediately
func newFixedClock(t *testing.T) *mockcore.MockTimeProvider {
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(testNow).Maybe()
	clock.EXPECT().Since(mock.Anything).Return(coreport.Duration(0)).Maybe()
	clock.EXPECT().After(mock.Anything).RunAndReturn(func(coreport.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- testNow
		return ch
	}).Maybe()
	return clock
}

func newSequentialIDs(t *testing.T) *mockcore.MockIDGenerator {
	ids := mockcore.NewMockIDGenerator(t)
	next := 0
	ids.EXPECT().NewTransactionID().RunAndReturn(func() string {
		id := transactionIDs[next%len(transactionIDs)]
		next++
		return id
	}).Maybe()
	return ids
}

func newUnitOfWork(db *gorm.DB) *UnitOfWork {
	return NewUnitOfWork(db, noopLogger(), sql.LevelReadCommitted)
}
