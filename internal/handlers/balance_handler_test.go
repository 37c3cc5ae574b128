package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	apierrors "church-admin/internal/errors"
	"church-admin/internal/models"
	"church-admin/internal/services"
	"church-admin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BalanceHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	balanceService *service_mocks.MockBalanceServiceInterface
	auditService   *service_mocks.MockAuditServiceInterface
	handler        *BalanceHandler
	echo           *echo.Echo
	churchID       uuid.UUID
}

func (s *BalanceHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.balanceService = service_mocks.NewMockBalanceServiceInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.handler = NewBalanceHandler(s.balanceService, s.auditService, nil)
	s.echo = newTestEcho()
	s.churchID = uuid.New()
}

func (s *BalanceHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBalanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(BalanceHandlerSuite))
}

func (s *BalanceHandlerSuite) report(year int) *models.BalanceReport {
	return &models.BalanceReport{
		ChurchID: s.churchID,
		Year:     year,
		AsOf:     time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
		CurrentBalance: models.Balances{
			models.CurrencyARS: decimal.RequireFromString("900"),
			models.CurrencyUSD: decimal.RequireFromString("30"),
		},
	}
}

func (s *BalanceHandlerSuite) TestGetBalance_Success() {
	s.balanceService.EXPECT().
		GetBalanceReport(gomock.Any(), s.churchID, 2025).
		Return(s.report(2025), nil)
	s.auditService.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log *models.AuditLog) error {
			s.Equal(models.AuditActionBalanceViewed, log.Action)
			s.Equal(models.AuditResourceBalance, log.Resource)
			s.Equal("2025", log.ResourceID)
			s.Equal("member-1", log.UserID)
			s.Equal(s.churchID, *log.ChurchID)
			return nil
		})

	c, rec := newContext(s.echo, http.MethodGet, "/balance?year=2025", nil)
	authenticate(c, "member-1", s.churchID)

	s.NoError(s.handler.GetBalance(c))
	s.Equal(http.StatusOK, rec.Code)

	var report models.BalanceReport
	decodeData(s.T(), rec, &report)
	s.Equal(2025, report.Year)
	s.True(report.CurrentBalance[models.CurrencyARS].Equal(decimal.RequireFromString("900")))
}

func (s *BalanceHandlerSuite) TestGetBalance_DefaultYearPassesZero() {
	s.balanceService.EXPECT().
		GetBalanceReport(gomock.Any(), s.churchID, 0).
		Return(s.report(2026), nil)
	s.auditService.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	c, rec := newContext(s.echo, http.MethodGet, "/balance", nil)
	authenticate(c, "member-1", s.churchID)

	s.NoError(s.handler.GetBalance(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *BalanceHandlerSuite) TestGetBalance_AuditFailureDoesNotFailRequest() {
	s.balanceService.EXPECT().GetBalanceReport(gomock.Any(), s.churchID, 0).Return(s.report(2026), nil)
	s.auditService.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("audit store down"))

	c, rec := newContext(s.echo, http.MethodGet, "/balance", nil)
	authenticate(c, "member-1", s.churchID)

	s.NoError(s.handler.GetBalance(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *BalanceHandlerSuite) TestGetBalance_NonNumericYear() {
	c, rec := newContext(s.echo, http.MethodGet, "/balance?year=last", nil)
	authenticate(c, "member-1", s.churchID)

	s.NoError(s.handler.GetBalance(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ValidationInvalidFormat), decodeError(s.T(), rec).Error.Code)
}

func (s *BalanceHandlerSuite) TestGetBalance_YearOutOfRange() {
	s.balanceService.EXPECT().
		GetBalanceReport(gomock.Any(), s.churchID, 1800).
		Return(nil, fmt.Errorf("%w: 1800", services.ErrInvalidYear))

	c, rec := newContext(s.echo, http.MethodGet, "/balance?year=1800", nil)
	authenticate(c, "member-1", s.churchID)

	s.NoError(s.handler.GetBalance(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	resp := decodeError(s.T(), rec)
	s.Equal(string(apierrors.ValidationOutOfRange), resp.Error.Code)
	s.Equal("trace-123", resp.Error.TraceID)
}

func (s *BalanceHandlerSuite) TestGetBalance_ServiceFailure() {
	s.balanceService.EXPECT().
		GetBalanceReport(gomock.Any(), s.churchID, 0).
		Return(nil, errors.New("connection reset"))

	c, rec := newContext(s.echo, http.MethodGet, "/balance", nil)
	authenticate(c, "member-1", s.churchID)

	s.NoError(s.handler.GetBalance(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection reset")
}

func (s *BalanceHandlerSuite) TestGetBalance_InvalidChurchID() {
	c, rec := newContext(s.echo, http.MethodGet, "/balance", nil)
	authenticate(c, "member-1", uuid.Nil)
	c.SetParamNames("churchId")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.GetBalance(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ChurchInvalidID), decodeError(s.T(), rec).Error.Code)
}

func (s *BalanceHandlerSuite) TestGetBalance_Unauthenticated() {
	c, rec := newContext(s.echo, http.MethodGet, "/balance", nil)
	c.Set(ChurchIDContextKey, s.churchID)

	s.NoError(s.handler.GetBalance(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
