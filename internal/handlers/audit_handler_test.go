package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"church-admin/internal/dto"
	apierrors "church-admin/internal/errors"
	"church-admin/internal/models"
	"church-admin/internal/services"
	"church-admin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuditHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	service  *service_mocks.MockAuditServiceInterface
	handler  *AuditHandler
	echo     *echo.Echo
	churchID uuid.UUID
}

func (s *AuditHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.handler = NewAuditHandler(s.service, time.UTC, nil)
	s.handler.now = func() time.Time { return time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC) }
	s.echo = newTestEcho()
	s.churchID = uuid.New()
}

func (s *AuditHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuditHandlerSuite))
}

func (s *AuditHandlerSuite) TestListAuditLogs_Filters() {
	s.service.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.AuditLogFilters) ([]*models.EnrichedAuditLog, int64, error) {
			s.Equal(s.churchID, f.ChurchID)
			s.Equal("admin-1", f.UserID)
			s.Equal(models.AuditActionMovementCreated, f.Action)
			s.Equal(models.AuditResourceMovement, f.Resource)
			s.Require().NotNil(f.StartDate)
			s.Require().NotNil(f.EndDate)
			s.True(f.StartDate.Equal(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)))
			s.True(f.EndDate.Equal(time.Date(2026, time.October, 1, 23, 59, 59, 999999999, time.UTC)))
			s.Equal(50, f.Limit)
			s.Equal(0, f.Offset)

			entry := &models.AuditLog{ID: uuid.New(), Action: f.Action, Resource: f.Resource}
			return []*models.EnrichedAuditLog{{AuditLog: entry, ActorEmail: "admin@example.com"}}, 1, nil
		})

	c, rec := newContext(s.echo, http.MethodGet,
		"/audit-logs?user_id=admin-1&action=movement_created&resource=movement&start_date=2026-10-01&end_date=2026-10-01", nil)
	authenticate(c, "admin-1", s.churchID)

	s.NoError(s.handler.ListAuditLogs(c))
	s.Equal(http.StatusOK, rec.Code)

	var got dto.AuditLogListResponse
	decodeData(s.T(), rec, &got)
	s.Require().Len(got.AuditLogs, 1)
	s.Equal("admin@example.com", got.AuditLogs[0].ActorEmail)
	s.Equal(int64(1), got.Pagination.Total)
}

func (s *AuditHandlerSuite) TestListAuditLogs_TimestampEndDateKeptAsIs() {
	s.service.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.AuditLogFilters) ([]*models.EnrichedAuditLog, int64, error) {
			s.True(f.EndDate.Equal(time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)))
			return nil, 0, nil
		})

	c, rec := newContext(s.echo, http.MethodGet, "/audit-logs?end_date=2026-10-01T12:00:00Z", nil)
	authenticate(c, "admin-1", s.churchID)

	s.NoError(s.handler.ListAuditLogs(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"audit_logs":[]`)
}

func (s *AuditHandlerSuite) TestListAuditLogs_InvalidDate() {
	c, rec := newContext(s.echo, http.MethodGet, "/audit-logs?start_date=ayer", nil)
	authenticate(c, "admin-1", s.churchID)

	s.NoError(s.handler.ListAuditLogs(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ValidationInvalidDate), decodeError(s.T(), rec).Error.Code)
}

func (s *AuditHandlerSuite) TestListAuditLogs_InvertedRange() {
	s.service.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, int64(0), services.ErrAuditDateRange)

	c, rec := newContext(s.echo, http.MethodGet, "/audit-logs?start_date=2026-10-10&end_date=2026-10-01", nil)
	authenticate(c, "admin-1", s.churchID)

	s.NoError(s.handler.ListAuditLogs(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ValidationInvalidDate), decodeError(s.T(), rec).Error.Code)
}

func (s *AuditHandlerSuite) TestExportAuditLogs_WritesCSVAndAuditsExport() {
	csvBody := "id,created_at,user_id\n1,2026-10-01T00:00:00Z,admin-1\n"

	gomock.InOrder(
		s.service.EXPECT().
			ExportCSV(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f models.AuditLogFilters, w io.Writer) (int, error) {
				s.Equal(s.churchID, f.ChurchID)
				_, err := io.WriteString(w, csvBody)
				return 1, err
			}),
		s.service.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *models.AuditLog) error {
				s.Equal(models.AuditActionAuditExported, log.Action)
				s.Equal(models.AuditResourceAuditLog, log.Resource)
				s.Equal(1, log.GetMetadata("rows", 0))
				return nil
			}),
	)

	c, rec := newContext(s.echo, http.MethodGet, "/audit-logs/export", nil)
	authenticate(c, "admin-1", s.churchID)

	s.NoError(s.handler.ExportAuditLogs(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(csvBody, rec.Body.String())
	s.Contains(rec.Header().Get(echo.HeaderContentType), "text/csv")
	s.Equal(fmt.Sprintf(`attachment; filename="audit-%s-20261015.csv"`, s.churchID),
		rec.Header().Get(echo.HeaderContentDisposition))
}

func (s *AuditHandlerSuite) TestExportAuditLogs_FailureReturnsJSONError() {
	s.service.EXPECT().
		ExportCSV(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.AuditLogFilters, w io.Writer) (int, error) {
			_, _ = io.WriteString(w, "id,created_at\n")
			return 0, errors.New("cursor closed")
		})

	c, rec := newContext(s.echo, http.MethodGet, "/audit-logs/export", nil)
	authenticate(c, "admin-1", s.churchID)

	s.NoError(s.handler.ExportAuditLogs(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "id,created_at")
}

func (s *AuditHandlerSuite) TestExportAuditLogs_Unauthenticated() {
	c, rec := newContext(s.echo, http.MethodGet, "/audit-logs/export", nil)
	c.Set(ChurchIDContextKey, s.churchID)

	s.NoError(s.handler.ExportAuditLogs(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
