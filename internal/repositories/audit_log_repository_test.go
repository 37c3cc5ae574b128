package repositories

import (
	"context"
	"testing"
	"time"

	"church-admin/internal/database"
	"church-admin/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	ctx    context.Context
	db     *database.DB
	repo   AuditLogRepositoryInterface
	church *models.Church
	base   time.Time
}

func (s *AuditLogRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditLogRepository(s.db.DB)
	s.church = database.CreateTestChurch(s.T(), s.db, "central")
	s.base = time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
}

func (s *AuditLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
	s.db.Close()
}

func (s *AuditLogRepositorySuite) create(userID, action string, at time.Time) *models.AuditLog {
	log := &models.AuditLog{
		ChurchID:   &s.church.ID,
		UserID:     userID,
		Action:     action,
		Resource:   models.AuditResourceMovement,
		ResourceID: uuid.New().String(),
		IPAddress:  "192.168.1.1",
		UserAgent:  "Mozilla/5.0",
		CreatedAt:  at,
	}
	s.Require().NoError(s.repo.Create(s.ctx, log))
	return log
}

func (s *AuditLogRepositorySuite) TestCreate() {
	log := s.create("auth0|1", models.AuditActionMovementCreated, time.Time{})

	s.NotEqual(uuid.Nil, log.ID)
	s.NotZero(log.CreatedAt)
}

func (s *AuditLogRepositorySuite) TestCreate_Nil() {
	s.Error(s.repo.Create(s.ctx, nil))
}

func (s *AuditLogRepositorySuite) TestCreate_MetadataRoundTrip() {
	log := &models.AuditLog{
		ChurchID: &s.church.ID,
		UserID:   "auth0|1",
		Action:   models.AuditActionMovementCancelled,
		Resource: models.AuditResourceMovement,
	}
	log.SetMetadata("reason", "duplicado")
	s.Require().NoError(s.repo.Create(s.ctx, log))

	logs, _, err := s.repo.List(s.ctx, models.AuditLogFilters{ChurchID: s.church.ID})

	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	s.Equal("duplicado", logs[0].GetMetadata("reason", ""))
}

func (s *AuditLogRepositorySuite) TestList_Filters() {
	s.create("auth0|1", models.AuditActionMovementCreated, s.base)
	s.create("auth0|1", models.AuditActionMovementCancelled, s.base.Add(time.Hour))
	s.create("auth0|2", models.AuditActionMovementCreated, s.base.Add(2*time.Hour))

	other := database.CreateTestChurch(s.T(), s.db, "norte")
	s.Require().NoError(s.repo.Create(s.ctx, &models.AuditLog{
		ChurchID: &other.ID,
		UserID:   "auth0|1",
		Action:   models.AuditActionMovementCreated,
		Resource: models.AuditResourceMovement,
	}))

	logs, total, err := s.repo.List(s.ctx, models.AuditLogFilters{ChurchID: s.church.ID, UserID: "auth0|1"})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Equal(models.AuditActionMovementCancelled, logs[0].Action)

	_, total, err = s.repo.List(s.ctx, models.AuditLogFilters{ChurchID: s.church.ID, Action: models.AuditActionMovementCreated})
	s.Require().NoError(err)
	s.Equal(int64(2), total)

	start := s.base.Add(30 * time.Minute)
	end := s.base.Add(90 * time.Minute)
	logs, total, err = s.repo.List(s.ctx, models.AuditLogFilters{ChurchID: s.church.ID, StartDate: &start, EndDate: &end})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal(models.AuditActionMovementCancelled, logs[0].Action)
}

func (s *AuditLogRepositorySuite) TestList_Pagination() {
	for i := 0; i < 5; i++ {
		s.create("auth0|1", models.AuditActionBalanceViewed, s.base.Add(time.Duration(i)*time.Minute))
	}

	logs, total, err := s.repo.List(s.ctx, models.AuditLogFilters{ChurchID: s.church.ID, Offset: 2, Limit: 2})

	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Len(logs, 2)
}

func (s *AuditLogRepositorySuite) TestList_CursorResumesInsideTies() {
	for i := 0; i < 5; i++ {
		s.create("auth0|1", models.AuditActionBalanceViewed, s.base)
	}
	s.create("auth0|1", models.AuditActionBalanceViewed, s.base.Add(time.Minute))

	filters := models.AuditLogFilters{ChurchID: s.church.ID, Limit: 2}
	seen := map[uuid.UUID]bool{}
	var order []time.Time
	for page := 0; page < 5; page++ {
		logs, _, err := s.repo.List(s.ctx, filters)
		s.Require().NoError(err)
		for _, l := range logs {
			s.False(seen[l.ID], "entry %s listed twice", l.ID)
			seen[l.ID] = true
			order = append(order, l.CreatedAt)
		}
		if len(logs) < filters.Limit {
			break
		}
		filters.Cursor = models.CursorOf(logs[len(logs)-1])
	}

	s.Len(seen, 6)
	s.True(order[0].Equal(s.base.Add(time.Minute)))
}

func (s *AuditLogRepositorySuite) TestDeleteOlderThan() {
	s.create("auth0|1", models.AuditActionBalanceViewed, s.base.AddDate(0, -13, 0))
	s.create("auth0|1", models.AuditActionBalanceViewed, s.base.AddDate(0, -2, 0))
	s.create("auth0|1", models.AuditActionBalanceViewed, s.base)

	deleted, err := s.repo.DeleteOlderThan(s.ctx, s.base.AddDate(-1, 0, 0))

	s.Require().NoError(err)
	s.Equal(int64(1), deleted)
	_, total, err := s.repo.List(s.ctx, models.AuditLogFilters{ChurchID: s.church.ID})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}
