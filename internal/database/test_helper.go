package database

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"church-admin/internal/config"
	"church-admin/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// cleanupTables is ordered children first.
var cleanupTables = []string{
	"audit_logs",
	"movements",
	"invitations",
	"memberships",
	"churches",
}

// Identity-provider subjects look like "auth0|123"; the separator is not
// valid in an email local part.
var subjectUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._%+-]+`)

// SetupTestDB opens a migrated in-memory sqlite database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection to :memory: would otherwise get its own database
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range cleanupTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CreateTestChurch(t *testing.T, db *DB, slug string) *models.Church {
	t.Helper()

	church := &models.Church{
		Name:   "Iglesia " + slug,
		Slug:   slug,
		Active: true,
	}

	if err := db.Create(church).Error; err != nil {
		t.Fatalf("failed to create test church: %v", err)
	}

	return church
}

func CreateTestMembership(t *testing.T, db *DB, churchID uuid.UUID, userID, role string) *models.Membership {
	t.Helper()

	membership := &models.Membership{
		ChurchID:    churchID,
		UserID:      userID,
		Email:       subjectUnsafe.ReplaceAllString(userID, "-") + "@example.com",
		DisplayName: "Test " + role,
		Role:        role,
	}

	if err := db.Create(membership).Error; err != nil {
		t.Fatalf("failed to create test membership: %v", err)
	}

	return membership
}

// CreateTestMovement stores an active movement. amount must parse as a decimal.
func CreateTestMovement(t *testing.T, db *DB, churchID uuid.UUID, kind models.MovementKind, currency models.Currency, amount string, at time.Time) *models.Movement {
	t.Helper()

	movement := &models.Movement{
		ChurchID:    churchID,
		Kind:        kind,
		Currency:    currency,
		Amount:      decimal.RequireFromString(amount),
		OccurredAt:  at,
		Description: "test movement",
		CreatedBy:   "test-user",
	}

	if err := db.Create(movement).Error; err != nil {
		t.Fatalf("failed to create test movement: %v", err)
	}

	return movement
}
