package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"church-admin/internal/errors"
	"church-admin/internal/services"
	"church-admin/internal/validation"

	"github.com/labstack/echo/v4"
)

// All handlers answer errors through SendError (4xx, business rules) or
// SendSystemError (5xx, internal details are logged, never returned).
// Service errors go through sendServiceError, which maps them to codes.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Path(),
		"error", internal)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError answers a failed bind or validation with field details
func SendValidationError(c echo.Context, err error) error {
	if fields := validation.FieldErrors(err); len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, errors.NewValidationError(fields, getTraceID(c)))
	}
	return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
}

// serviceErrorCodes maps service sentinel errors to API error codes.
// Order matters: the first match wins.
var serviceErrorCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{services.ErrInvalidYear, errors.ValidationOutOfRange},
	{services.ErrFutureMovement, errors.MovementFutureDate},
	{services.ErrSameCurrency, errors.MovementSameCurrency},
	{services.ErrInvalidMovement, errors.ValidationGeneral},
	{services.ErrAlreadyCancelled, errors.MovementAlreadyCancelled},
	{services.ErrLastAdmin, errors.ChurchLastAdmin},
	{services.ErrInvalidRole, errors.ValidationInvalidFormat},
	{services.ErrInvitationExpired, errors.InvitationExpired},
	{services.ErrInvitationEmailMismatch, errors.InvitationEmailMismatch},
	{services.ErrInvalidInvitation, errors.InvitationInvalid},
	{services.ErrAuditDateRange, errors.ValidationInvalidDate},
	{services.ErrUnauthorized, errors.AuthInsufficientPermission},
}

// sendServiceError answers err with its mapped code, using notFound for
// services.ErrNotFound. Unmapped errors become system errors.
func sendServiceError(c echo.Context, err error, notFound errors.ErrorCode) error {
	if stderrors.Is(err, services.ErrNotFound) {
		return SendError(c, notFound)
	}
	for _, m := range serviceErrorCodes {
		if stderrors.Is(err, m.err) {
			return SendError(c, m.code, errors.WithDetails(err.Error()))
		}
	}
	return SendSystemError(c, err)
}
