package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"church-admin/internal/errors"
	"church-admin/internal/models"
	"church-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// BalanceHandler serves the dashboard balance report
type BalanceHandler struct {
	balanceService services.BalanceServiceInterface
	auditService   services.AuditServiceInterface
	logger         *slog.Logger
}

func NewBalanceHandler(balanceService services.BalanceServiceInterface, auditService services.AuditServiceInterface, logger *slog.Logger) *BalanceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BalanceHandler{
		balanceService: balanceService,
		auditService:   auditService,
		logger:         logger,
	}
}

// GetBalance returns base balances, the trailing twelve-month evolution,
// the current balance and the annual summary of a church.
//
// Method: GET /api/v1/churches/:churchId/balance
// Query parameters:
//   - year: summary year (default: current year)
//
// Error Responses:
//   - 400: Invalid church ID or year
//   - 401/403: Missing token or membership
//   - 500: Internal server error
//
// @Summary Church balance report
// @Tags Balance
// @Security BearerAuth
// @Produce json
// @Param churchId path string true "Church ID (UUID)"
// @Param year query int false "Summary year"
// @Success 200 {object} SuccessResponse{data=models.BalanceReport}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /churches/{churchId}/balance [get]
func (h *BalanceHandler) GetBalance(c echo.Context) error {
	churchID, err := getChurchID(c)
	if err != nil {
		return SendError(c, errors.ChurchInvalidID)
	}

	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	year := 0
	if raw := c.QueryParam("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("year must be an integer"))
		}
	}

	report, err := h.balanceService.GetBalanceReport(c.Request().Context(), churchID, year)
	if err != nil {
		return sendServiceError(c, err, errors.ChurchNotFound)
	}

	entry := &models.AuditLog{
		ChurchID:   &churchID,
		UserID:     actor.UserID,
		Action:     models.AuditActionBalanceViewed,
		Resource:   models.AuditResourceBalance,
		ResourceID: strconv.Itoa(report.Year),
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	}
	if err := h.auditService.Record(c.Request().Context(), entry); err != nil {
		h.logger.WarnContext(c.Request().Context(), "failed to audit balance view",
			"error", err,
			"church_id", churchID)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: report})
}
