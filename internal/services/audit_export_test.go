package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"church-admin/internal/database"
	"church-admin/internal/models"
	"church-admin/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// busyAuditRepo records a dashboard view after every page it serves, the
// way balance reads do while an export is running.
type busyAuditRepo struct {
	repositories.AuditLogRepositoryInterface
	church *models.Church
	pages  int
}

func (r *busyAuditRepo) List(ctx context.Context, filters models.AuditLogFilters) ([]*models.AuditLog, int64, error) {
	logs, total, err := r.AuditLogRepositoryInterface.List(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	r.pages++
	churchID := r.church.ID
	view := &models.AuditLog{
		ChurchID:  &churchID,
		UserID:    "auth0|viewer",
		Action:    models.AuditActionBalanceViewed,
		Resource:  models.AuditResourceBalance,
		CreatedAt: time.Now().Add(time.Second),
	}
	if err := r.Create(ctx, view); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func TestExportCSV_ConcurrentWritesDoNotShiftPages(t *testing.T) {
	db := database.SetupTestDB(t)
	defer db.Close()

	church := database.CreateTestChurch(t, db, "central")
	// every entry shares one timestamp so page boundaries fall inside a tie
	at := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	seeded := make([]*models.AuditLog, exportBatchSize+100)
	for i := range seeded {
		seeded[i] = &models.AuditLog{
			ChurchID:  &church.ID,
			UserID:    "auth0|treasurer",
			Action:    models.AuditActionMovementCreated,
			Resource:  models.AuditResourceMovement,
			CreatedAt: at,
		}
	}
	require.NoError(t, db.CreateInBatches(seeded, 100).Error)

	repo := &busyAuditRepo{AuditLogRepositoryInterface: repositories.NewAuditLogRepository(db.DB), church: church}
	service := NewAuditService(repo, repositories.NewMembershipRepository(db.DB))

	var buf bytes.Buffer
	written, err := service.ExportCSV(context.Background(), models.AuditLogFilters{ChurchID: church.ID}, &buf)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	rows := records[1:]

	assert.Equal(t, 2, repo.pages)
	assert.Equal(t, len(seeded), written)
	require.Len(t, rows, len(seeded))
	for _, row := range rows {
		assert.Equal(t, models.AuditActionMovementCreated, row[5])
	}

	var stored int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&stored).Error)
	assert.Equal(t, int64(len(seeded)+repo.pages), stored)
}
