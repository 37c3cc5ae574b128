package handlers

import (
	"context"
	"errors"
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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MovementHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	service  *service_mocks.MockMovementServiceInterface
	handler  *MovementHandler
	echo     *echo.Echo
	churchID uuid.UUID
	art      *time.Location
}

func (s *MovementHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = service_mocks.NewMockMovementServiceInterface(s.ctrl)
	s.art = time.FixedZone("ART", -3*60*60)
	s.handler = NewMovementHandler(s.service, s.art)
	s.echo = newTestEcho()
	s.churchID = uuid.New()
}

func (s *MovementHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMovementHandlerSuite(t *testing.T) {
	suite.Run(t, new(MovementHandlerSuite))
}

func (s *MovementHandlerSuite) movement(kind models.MovementKind, currency models.Currency, amount string) models.Movement {
	return models.Movement{
		ID:          uuid.New(),
		ChurchID:    s.churchID,
		Kind:        kind,
		Currency:    currency,
		Amount:      decimal.RequireFromString(amount),
		OccurredAt:  time.Date(2026, time.March, 1, 3, 0, 0, 0, time.UTC),
		Description: "Ofrenda",
		Status:      models.MovementStatusActive,
		CreatedBy:   "treasurer-1",
	}
}

func (s *MovementHandlerSuite) TestCreateMovement_Success() {
	stored := s.movement(models.MovementKindIncome, models.CurrencyARS, "1500.50")

	s.service.EXPECT().
		Record(gomock.Any(), s.churchID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, actor models.Actor, in models.MovementInput) (*models.Movement, error) {
			s.Equal("treasurer-1", actor.UserID)
			s.Equal("handler-test", actor.UserAgent)
			s.Equal(models.MovementKindIncome, in.Kind)
			s.Equal(models.Currency("ars"), in.Currency)
			s.True(in.Amount.Equal(decimal.RequireFromString("1500.50")))
			s.True(in.OccurredAt.Equal(time.Date(2026, time.March, 1, 3, 0, 0, 0, time.UTC)))
			s.Equal("Ofrenda", in.Description)
			s.Equal("offering", in.Category)
			return &stored, nil
		})

	c, rec := newContext(s.echo, http.MethodPost, "/movements", dto.RecordMovementRequest{
		Kind:        "income",
		Currency:    "ars",
		Amount:      "1500.50",
		OccurredAt:  "2026-03-01",
		Description: "Ofrenda",
		Category:    "offering",
	})
	authenticate(c, "treasurer-1", s.churchID)

	s.NoError(s.handler.CreateMovement(c))
	s.Equal(http.StatusCreated, rec.Code)

	var got models.Movement
	env := decodeData(s.T(), rec, &got)
	s.Equal(stored.ID, got.ID)
	s.Equal("Movement recorded", env.Message)
}

func (s *MovementHandlerSuite) TestCreateMovement_ValidationErrors() {
	tests := []struct {
		name string
		body interface{}
	}{
		{"malformed json", `{"kind":`},
		{"missing amount", dto.RecordMovementRequest{Kind: "INCOME", OccurredAt: "2026-03-01", Description: "x"}},
		{"three decimals", dto.RecordMovementRequest{Kind: "INCOME", Amount: "1.005", OccurredAt: "2026-03-01", Description: "x"}},
		{"unsupported currency", dto.RecordMovementRequest{Kind: "INCOME", Currency: "EUR", Amount: "1", OccurredAt: "2026-03-01", Description: "x"}},
		{"unknown kind", dto.RecordMovementRequest{Kind: "GIFT", Amount: "1", OccurredAt: "2026-03-01", Description: "x"}},
		{"bad date", dto.RecordMovementRequest{Kind: "INCOME", Amount: "1", OccurredAt: "01/03/2026", Description: "x"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := newContext(s.echo, http.MethodPost, "/movements", tt.body)
			authenticate(c, "treasurer-1", s.churchID)

			s.NoError(s.handler.CreateMovement(c))
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (s *MovementHandlerSuite) TestCreateMovement_FutureDate() {
	s.service.EXPECT().
		Record(gomock.Any(), s.churchID, gomock.Any(), gomock.Any()).
		Return(nil, services.ErrFutureMovement)

	c, rec := newContext(s.echo, http.MethodPost, "/movements", dto.RecordMovementRequest{
		Kind: "EXPENSE", Amount: "10", OccurredAt: "2099-01-01", Description: "Luz",
	})
	authenticate(c, "treasurer-1", s.churchID)

	s.NoError(s.handler.CreateMovement(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal(string(apierrors.MovementFutureDate), decodeError(s.T(), rec).Error.Code)
}

func (s *MovementHandlerSuite) TestCreateExchange_Success() {
	outgoing := s.movement(models.MovementKindExpense, models.CurrencyUSD, "100")
	incoming := s.movement(models.MovementKindIncome, models.CurrencyARS, "87533.33")

	s.service.EXPECT().
		RecordExchange(gomock.Any(), s.churchID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.Actor, in models.ExchangeInput) ([]models.Movement, error) {
			s.Equal(models.Currency("USD"), in.FromCurrency)
			s.Equal(models.Currency("ARS"), in.ToCurrency)
			s.True(in.Rate.Equal(decimal.RequireFromString("875.333333")))
			return []models.Movement{outgoing, incoming}, nil
		})

	c, rec := newContext(s.echo, http.MethodPost, "/exchanges", dto.RecordExchangeRequest{
		FromCurrency: "USD",
		ToCurrency:   "ARS",
		Amount:       "100",
		Rate:         "875.333333",
		OccurredAt:   "2026-03-01T10:00:00-03:00",
		Description:  "Cambio",
	})
	authenticate(c, "treasurer-1", s.churchID)

	s.NoError(s.handler.CreateExchange(c))
	s.Equal(http.StatusCreated, rec.Code)

	var got dto.ExchangeResponse
	decodeData(s.T(), rec, &got)
	s.Equal(outgoing.ID, got.Outgoing.ID)
	s.Equal(incoming.ID, got.Incoming.ID)
}

func (s *MovementHandlerSuite) TestCreateExchange_SameCurrency() {
	s.service.EXPECT().
		RecordExchange(gomock.Any(), s.churchID, gomock.Any(), gomock.Any()).
		Return(nil, services.ErrSameCurrency)

	c, rec := newContext(s.echo, http.MethodPost, "/exchanges", dto.RecordExchangeRequest{
		FromCurrency: "ARS", ToCurrency: "ARS", Amount: "1", Rate: "1", OccurredAt: "2026-03-01", Description: "x",
	})
	authenticate(c, "treasurer-1", s.churchID)

	s.NoError(s.handler.CreateExchange(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal(string(apierrors.MovementSameCurrency), decodeError(s.T(), rec).Error.Code)
}

func (s *MovementHandlerSuite) TestCreateExchange_UnexpectedLegCount() {
	s.service.EXPECT().
		RecordExchange(gomock.Any(), s.churchID, gomock.Any(), gomock.Any()).
		Return([]models.Movement{s.movement(models.MovementKindExpense, models.CurrencyUSD, "1")}, nil)

	c, rec := newContext(s.echo, http.MethodPost, "/exchanges", dto.RecordExchangeRequest{
		FromCurrency: "USD", ToCurrency: "ARS", Amount: "1", Rate: "900", OccurredAt: "2026-03-01", Description: "x",
	})
	authenticate(c, "treasurer-1", s.churchID)

	s.NoError(s.handler.CreateExchange(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *MovementHandlerSuite) TestListMovements_Filters() {
	s.service.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.MovementFilters) ([]models.Movement, int64, error) {
			s.Equal(s.churchID, f.ChurchID)
			s.Equal(models.MovementKindExpense, f.Kind)
			s.Equal(models.CurrencyUSD, f.Currency)
			s.Equal("utilities", f.Category)
			s.True(f.IncludeCancelled)
			s.Require().NotNil(f.From)
			s.Require().NotNil(f.To)
			s.True(f.From.Equal(time.Date(2026, time.January, 1, 3, 0, 0, 0, time.UTC)))
			// date-only "to" is exclusive of the next local midnight
			s.True(f.To.Equal(time.Date(2026, time.February, 1, 3, 0, 0, 0, time.UTC)))
			s.Equal(10, f.Limit)
			s.Equal(10, f.Offset)
			return []models.Movement{s.movement(models.MovementKindExpense, models.CurrencyUSD, "5")}, 11, nil
		})

	c, rec := newContext(s.echo, http.MethodGet,
		"/movements?kind=expense&currency=usd&category=utilities&include_cancelled=true&from=2026-01-01&to=2026-01-31&page=2&limit=10", nil)
	authenticate(c, "viewer-1", s.churchID)

	s.NoError(s.handler.ListMovements(c))
	s.Equal(http.StatusOK, rec.Code)

	var got dto.MovementListResponse
	decodeData(s.T(), rec, &got)
	s.Len(got.Movements, 1)
	s.Equal(int64(11), got.Pagination.Total)
	s.Equal(2, got.Pagination.TotalPages)
	s.False(got.Pagination.HasMore)
}

func (s *MovementHandlerSuite) TestListMovements_EmptyIsArray() {
	s.service.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil)

	c, rec := newContext(s.echo, http.MethodGet, "/movements", nil)
	authenticate(c, "viewer-1", s.churchID)

	s.NoError(s.handler.ListMovements(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"movements":[]`)
}

func (s *MovementHandlerSuite) TestListMovements_BadQuery() {
	tests := []struct {
		query string
		code  apierrors.ErrorCode
	}{
		{"kind=gift", apierrors.MovementInvalidKind},
		{"currency=EUR", apierrors.MovementInvalidCurrency},
		{"from=yesterday", apierrors.ValidationInvalidDate},
		{"to=31-01-2026", apierrors.ValidationInvalidDate},
	}

	for _, tt := range tests {
		s.Run(tt.query, func() {
			c, rec := newContext(s.echo, http.MethodGet, "/movements?"+tt.query, nil)
			authenticate(c, "viewer-1", s.churchID)

			s.NoError(s.handler.ListMovements(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(string(tt.code), decodeError(s.T(), rec).Error.Code)
		})
	}
}

func (s *MovementHandlerSuite) TestCancelMovement_Success() {
	movementID := uuid.New()
	cancelled := s.movement(models.MovementKindIncome, models.CurrencyARS, "10")
	cancelled.ID = movementID
	cancelled.Status = models.MovementStatusCancelled

	s.service.EXPECT().
		Cancel(gomock.Any(), s.churchID, movementID, gomock.Any(), "duplicado").
		Return([]models.Movement{cancelled}, nil)

	c, rec := newContext(s.echo, http.MethodPost, "/cancel", dto.CancelMovementRequest{Reason: "duplicado"})
	authenticate(c, "treasurer-1", s.churchID)
	c.SetParamNames("movementId")
	c.SetParamValues(movementID.String())

	s.NoError(s.handler.CancelMovement(c))
	s.Equal(http.StatusOK, rec.Code)

	var got dto.CancelMovementResponse
	decodeData(s.T(), rec, &got)
	s.Require().Len(got.Cancelled, 1)
	s.Equal(models.MovementStatusCancelled, got.Cancelled[0].Status)
}

func (s *MovementHandlerSuite) TestCancelMovement_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
		code   apierrors.ErrorCode
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound, apierrors.MovementNotFound},
		{"already cancelled", services.ErrAlreadyCancelled, http.StatusConflict, apierrors.MovementAlreadyCancelled},
		{"unexpected", errors.New("deadlock"), http.StatusInternalServerError, apierrors.SystemInternalError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			movementID := uuid.New()
			s.service.EXPECT().
				Cancel(gomock.Any(), s.churchID, movementID, gomock.Any(), "").
				Return(nil, tt.err)

			c, rec := newContext(s.echo, http.MethodPost, "/cancel", nil)
			authenticate(c, "treasurer-1", s.churchID)
			c.SetParamNames("movementId")
			c.SetParamValues(movementID.String())

			s.NoError(s.handler.CancelMovement(c))
			s.Equal(tt.status, rec.Code)
			s.Equal(string(tt.code), decodeError(s.T(), rec).Error.Code)
		})
	}
}

func (s *MovementHandlerSuite) TestCancelMovement_InvalidID() {
	c, rec := newContext(s.echo, http.MethodPost, "/cancel", nil)
	authenticate(c, "treasurer-1", s.churchID)
	c.SetParamNames("movementId")
	c.SetParamValues("abc")

	s.NoError(s.handler.CancelMovement(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
