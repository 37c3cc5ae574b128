package database

import (
	"fmt"
	"log"
	"time"

	"church-admin/internal/config"
	"church-admin/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// AutoMigrate creates the ledger tables. Parents come before the tables
// referencing them.
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Church{},
		&models.Membership{},
		&models.Invitation{},
		&models.Movement{},
		&models.AuditLog{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateIndexes adds the composite indexes used by the balance and audit
// queries. Failures are logged, not returned.
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_movements_church_occurred ON movements(church_id, occurred_at)",
		"CREATE INDEX IF NOT EXISTS idx_movements_church_status ON movements(church_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_movements_exchange_group ON movements(exchange_group_id) WHERE exchange_group_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_memberships_church_role ON memberships(church_id, role)",
		"CREATE INDEX IF NOT EXISTS idx_memberships_user_id ON memberships(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_invitations_pending ON invitations(church_id, expires_at) WHERE accepted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_church_created ON audit_logs(church_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_user_id ON audit_logs(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_action ON audit_logs(action)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize connects, migrates and indexes the database. SQL migrations
// run when AUTO_MIGRATE=true; gorm AutoMigrate is the fallback.
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db, nil
}
