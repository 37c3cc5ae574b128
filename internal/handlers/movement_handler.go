package handlers

import (
	"net/http"
	"strings"
	"time"

	"church-admin/internal/dto"
	"church-admin/internal/errors"
	"church-admin/internal/models"
	"church-admin/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const defaultMovementLimit = 50

// MovementHandler handles ledger movement endpoints
type MovementHandler struct {
	movementService services.MovementServiceInterface
	location        *time.Location
}

// NewMovementHandler creates a movement handler. Dates without a time are
// read as midnight in loc.
func NewMovementHandler(movementService services.MovementServiceInterface, loc *time.Location) *MovementHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &MovementHandler{
		movementService: movementService,
		location:        loc,
	}
}

// ListMovements returns the movements of a church, newest first
//
// Method: GET /api/v1/churches/:churchId/movements
// Query parameters:
//   - kind: INCOME or EXPENSE
//   - currency: ARS or USD
//   - category: exact category
//   - from, to: date or RFC 3339 bounds; a date-only "to" includes that day
//   - include_cancelled: true to include cancelled movements
//   - page, limit: pagination (default limit 50, max 200)
//
// @Summary List movements
// @Tags Movements
// @Security BearerAuth
// @Produce json
// @Param churchId path string true "Church ID (UUID)"
// @Param kind query string false "Movement kind" Enums(INCOME, EXPENSE)
// @Param currency query string false "Currency" Enums(ARS, USD)
// @Param from query string false "Lower bound (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "Upper bound (YYYY-MM-DD or RFC 3339)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Results per page (max 200)" default(50)
// @Success 200 {object} SuccessResponse{data=dto.MovementListResponse}
// @Failure 400 {object} ErrorResponse
// @Router /churches/{churchId}/movements [get]
func (h *MovementHandler) ListMovements(c echo.Context) error {
	churchID, err := getChurchID(c)
	if err != nil {
		return SendError(c, errors.ChurchInvalidID)
	}

	filters := models.MovementFilters{
		ChurchID:         churchID,
		Category:         strings.TrimSpace(c.QueryParam("category")),
		IncludeCancelled: c.QueryParam("include_cancelled") == "true",
	}

	if raw := c.QueryParam("kind"); raw != "" {
		kind, err := models.ParseMovementKind(raw)
		if err != nil {
			return SendError(c, errors.MovementInvalidKind)
		}
		filters.Kind = kind
	}

	if raw := c.QueryParam("currency"); raw != "" {
		currency := models.NormalizeCurrency(raw)
		if !models.IsSupportedCurrency(currency) {
			return SendError(c, errors.MovementInvalidCurrency)
		}
		filters.Currency = currency
	}

	if filters.From, err = optionalTimeQuery(c, "from", h.location); err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	if filters.To, err = h.rangeEnd(c.QueryParam("to")); err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	page, limit, offset := pageParams(c, defaultMovementLimit)
	filters.Limit = limit
	filters.Offset = offset

	movements, total, err := h.movementService.List(c.Request().Context(), filters)
	if err != nil {
		return sendServiceError(c, err, errors.ChurchNotFound)
	}
	if movements == nil {
		movements = []models.Movement{}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.MovementListResponse{
			Movements:  movements,
			Pagination: dto.NewPaginationInfo(page, limit, total),
		},
	})
}

// CreateMovement records an income or expense
//
// Method: POST /api/v1/churches/:churchId/movements
// Roles: admin, treasurer
//
// Success Response: 201 Created with the stored movement
//
// @Summary Record a movement
// @Tags Movements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param churchId path string true "Church ID (UUID)"
// @Param request body dto.RecordMovementRequest true "Movement"
// @Success 201 {object} SuccessResponse{data=models.Movement}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /churches/{churchId}/movements [post]
func (h *MovementHandler) CreateMovement(c echo.Context) error {
	churchID, err := getChurchID(c)
	if err != nil {
		return SendError(c, errors.ChurchInvalidID)
	}
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.RecordMovementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	kind, err := models.ParseMovementKind(req.Kind)
	if err != nil {
		return SendError(c, errors.MovementInvalidKind)
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.MovementInvalidAmount)
	}
	occurredAt, err := parseTimeParam(req.OccurredAt, h.location)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("occurred_at must be a date or RFC 3339 timestamp"))
	}

	movement, err := h.movementService.Record(c.Request().Context(), churchID, actor, models.MovementInput{
		Kind:        kind,
		Currency:    models.Currency(req.Currency),
		Amount:      amount,
		OccurredAt:  occurredAt,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return sendServiceError(c, err, errors.ChurchNotFound)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    movement,
		Message: "Movement recorded",
	})
}

// CreateExchange records a currency exchange as two linked movements
//
// Method: POST /api/v1/churches/:churchId/exchanges
// Roles: admin, treasurer
func (h *MovementHandler) CreateExchange(c echo.Context) error {
	churchID, err := getChurchID(c)
	if err != nil {
		return SendError(c, errors.ChurchInvalidID)
	}
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.RecordExchangeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.MovementInvalidAmount)
	}
	rate, err := decimal.NewFromString(req.Rate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("rate must be a decimal number"))
	}
	occurredAt, err := parseTimeParam(req.OccurredAt, h.location)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("occurred_at must be a date or RFC 3339 timestamp"))
	}

	legs, err := h.movementService.RecordExchange(c.Request().Context(), churchID, actor, models.ExchangeInput{
		FromCurrency: models.Currency(req.FromCurrency),
		ToCurrency:   models.Currency(req.ToCurrency),
		Amount:       amount,
		Rate:         rate,
		OccurredAt:   occurredAt,
		Description:  req.Description,
	})
	if err != nil {
		return sendServiceError(c, err, errors.ChurchNotFound)
	}
	if len(legs) != 2 {
		return SendSystemError(c, ErrUnexpectedExchange)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.ExchangeResponse{Outgoing: legs[0], Incoming: legs[1]},
		Message: "Exchange recorded",
	})
}

// CancelMovement cancels a movement, or both legs of an exchange
//
// Method: POST /api/v1/churches/:churchId/movements/:movementId/cancel
// Roles: admin, treasurer
func (h *MovementHandler) CancelMovement(c echo.Context) error {
	churchID, err := getChurchID(c)
	if err != nil {
		return SendError(c, errors.ChurchInvalidID)
	}
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	movementID, err := uuid.Parse(c.Param("movementId"))
	if err != nil {
		return SendError(c, errors.MovementNotFound, errors.WithDetails("invalid movement ID"))
	}

	var req dto.CancelMovementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	cancelled, err := h.movementService.Cancel(c.Request().Context(), churchID, movementID, actor, req.Reason)
	if err != nil {
		return sendServiceError(c, err, errors.MovementNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.CancelMovementResponse{Cancelled: cancelled},
		Message: "Movement cancelled",
	})
}

// rangeEnd parses an exclusive upper bound. A bare date covers that whole day.
func (h *MovementHandler) rangeEnd(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if day, err := time.ParseInLocation(dateLayout, raw, h.location); err == nil {
		end := day.AddDate(0, 0, 1)
		return &end, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
