package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"church-admin/internal/dto"
	"church-admin/internal/errors"
	"church-admin/internal/models"
	"church-admin/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultAuditLimit = 50

// AuditHandler exposes the audit trail of a church to its admins
type AuditHandler struct {
	auditService services.AuditServiceInterface
	location     *time.Location
	logger       *slog.Logger
	now          func() time.Time
}

func NewAuditHandler(auditService services.AuditServiceInterface, loc *time.Location, logger *slog.Logger) *AuditHandler {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditHandler{
		auditService: auditService,
		location:     loc,
		logger:       logger,
		now:          time.Now,
	}
}

// ListAuditLogs returns audit entries with the actor resolved
//
// Method: GET /api/v1/churches/:churchId/audit-logs
// Query parameters: user_id, action, resource, start_date, end_date, page, limit
// Roles: admin
func (h *AuditHandler) ListAuditLogs(c echo.Context) error {
	filters, err := h.filters(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	page, limit, offset := pageParams(c, defaultAuditLimit)
	filters.Limit = limit
	filters.Offset = offset

	logs, total, err := h.auditService.List(c.Request().Context(), filters)
	if err != nil {
		return sendServiceError(c, err, errors.ChurchNotFound)
	}
	if logs == nil {
		logs = []*models.EnrichedAuditLog{}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.AuditLogListResponse{
			AuditLogs:  logs,
			Pagination: dto.NewPaginationInfo(page, limit, total),
		},
	})
}

// ExportAuditLogs downloads every matching audit entry as CSV
//
// Method: GET /api/v1/churches/:churchId/audit-logs/export
// Query parameters: user_id, action, resource, start_date, end_date
// Roles: admin
func (h *AuditHandler) ExportAuditLogs(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := h.filters(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	// Buffered so a failure halfway still produces a proper error response.
	var buf bytes.Buffer
	rows, err := h.auditService.ExportCSV(c.Request().Context(), filters, &buf)
	if err != nil {
		return sendServiceError(c, err, errors.ChurchNotFound)
	}

	entry := &models.AuditLog{
		ChurchID:  &filters.ChurchID,
		UserID:    actor.UserID,
		Action:    models.AuditActionAuditExported,
		Resource:  models.AuditResourceAuditLog,
		IPAddress: actor.IPAddress,
		UserAgent: actor.UserAgent,
	}
	entry.SetMetadata("rows", rows)
	if err := h.auditService.Record(c.Request().Context(), entry); err != nil {
		h.logger.WarnContext(c.Request().Context(), "failed to audit export",
			"error", err,
			"church_id", filters.ChurchID)
	}

	filename := fmt.Sprintf("audit-%s-%s.csv", filters.ChurchID, h.now().In(h.location).Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *AuditHandler) filters(c echo.Context) (models.AuditLogFilters, error) {
	churchID, err := getChurchID(c)
	if err != nil {
		return models.AuditLogFilters{}, fmt.Errorf("invalid church ID")
	}

	filters := models.AuditLogFilters{
		ChurchID: churchID,
		UserID:   strings.TrimSpace(c.QueryParam("user_id")),
		Action:   strings.TrimSpace(c.QueryParam("action")),
		Resource: strings.TrimSpace(c.QueryParam("resource")),
	}

	if filters.StartDate, err = optionalTimeQuery(c, "start_date", h.location); err != nil {
		return filters, err
	}
	if filters.EndDate, err = optionalTimeQuery(c, "end_date", h.location); err != nil {
		return filters, err
	}
	// end_date is inclusive, so a bare date covers the whole day.
	if raw := strings.TrimSpace(c.QueryParam("end_date")); filters.EndDate != nil && len(raw) == len(dateLayout) {
		end := filters.EndDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filters.EndDate = &end
	}

	return filters, nil
}
