package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/model"
)

// step is one versioned schema change. Steps run in order and each is
// recorded in migration_versions once it succeeds.
type step struct {
	version string
	details string
	run     func(ctx context.Context, db *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
	steps            []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
	m.steps = []step{
		{version: "1.0.0", details: "ledger constraints and append-only trigger", run: createLedgerConstraints},
		{version: "1.1.0", details: "default game catalogue", run: SeedDefaultGames},
		{version: "1.2.0", details: "history and idempotency indexes", run: m.advancedIndexMgr.CreateAdvancedIndexes},
	}
	return m
}

// CurrentSchemaVersion is the version MigrateAll brings the schema to
func (m *MigrationManager) CurrentSchemaVersion() string {
	return m.steps[len(m.steps)-1].version
}

// MigrateAll creates the tables and applies every step newer than the recorded version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	target := m.CurrentSchemaVersion()
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": target,
	})

	db := m.db.WithContext(ctx)
	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("create migration version table: %w", err)
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if currentVersion == target {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := db.AutoMigrate(&model.Player{}, &model.Game{}, &model.Transaction{}, &model.PlayerLock{}); err != nil {
		return fmt.Errorf("auto-migrate models: %w", err)
	}

	pending, err := m.pendingSteps(currentVersion)
	if err != nil {
		return err
	}
	for _, s := range pending {
		m.logger.Info("Applying migration", map[string]any{
			"version": s.version,
			"details": s.details,
		})
		if err := s.run(ctx, db); err != nil {
			return fmt.Errorf("migration %s: %w", s.version, err)
		}
		if err := m.setVersion(ctx, s.version, s.details); err != nil {
			return fmt.Errorf("record migration %s: %w", s.version, err)
		}
	}

	m.advancedIndexMgr.CreatePerformanceTweaks(ctx)

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"from":    currentVersion,
		"version": target,
	})
	return nil
}

// pendingSteps returns the steps after currentVersion
func (m *MigrationManager) pendingSteps(currentVersion string) ([]step, error) {
	if currentVersion == "" {
		return m.steps, nil
	}
	for i, s := range m.steps {
		if s.version == currentVersion {
			return m.steps[i+1:], nil
		}
	}
	return nil, fmt.Errorf("unknown schema version %q", currentVersion)
}

// GetCurrentVersion returns the latest recorded version, or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").Take(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version.Version, nil
}

// setVersion records an applied version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

// createLedgerConstraints adds what AutoMigrate cannot express
func createLedgerConstraints(ctx context.Context, db *gorm.DB) error {
	statements := []string{
		`DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_transactions_player') THEN
				ALTER TABLE transactions ADD CONSTRAINT fk_transactions_player
					FOREIGN KEY (player_id) REFERENCES players (id);
			END IF;
		END $$`,
		`DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_transactions_type') THEN
				ALTER TABLE transactions ADD CONSTRAINT chk_transactions_type
					CHECK (type IN ('DEPOSIT', 'WITHDRAWAL', 'BET', 'PAYOUT'));
			END IF;
		END $$`,
		`CREATE OR REPLACE FUNCTION transactions_append_only() RETURNS trigger AS $$
		BEGIN
			RAISE EXCEPTION 'transactions are append-only';
		END;
		$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS trg_transactions_append_only ON transactions`,
		`CREATE TRIGGER trg_transactions_append_only
			BEFORE UPDATE OR DELETE ON transactions
			FOR EACH ROW EXECUTE FUNCTION transactions_append_only()`,
	}

	for _, statement := range statements {
		if err := db.WithContext(ctx).Exec(statement).Error; err != nil {
			return err
		}
	}
	return nil
}
