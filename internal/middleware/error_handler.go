package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"church-admin/internal/errors"
	"church-admin/internal/handlers"
	"church-admin/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "API error responses by code, route and status",
	},
	[]string{"code", "endpoint", "status"},
)

var httpStatusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusMethodNotAllowed:      errors.ValidationGeneral,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ValidationGeneral,
	http.StatusUnsupportedMediaType:  errors.ValidationGeneral,
	http.StatusUnauthorized:          errors.AuthMissingToken,
	http.StatusForbidden:             errors.AuthInsufficientPermission,
	http.StatusNotFound:              errors.SystemRouteNotFound,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// NewHTTPErrorHandler renders errors that escaped the handlers (router
// misses, middleware rejections, validator failures and unexpected errors)
// as the standard error body.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}
		body := errorBody(err, traceID)
		status := body.GetHTTPStatus()
		var echoErr *echo.HTTPError
		if stderrors.As(err, &echoErr) {
			status = echoErr.Code
		}

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		attrs := []any{
			"trace_id", traceID,
			"error_code", body.Error.Code,
			"status", status,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		}
		if churchID := c.Get(handlers.ChurchIDContextKey); churchID != nil {
			attrs = append(attrs, "church_id", fmt.Sprint(churchID))
		}
		logger.Log(c.Request().Context(), level, "request failed", attrs...)

		apiErrorsTotal.WithLabelValues(body.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

		if err := c.JSON(status, body); err != nil {
			logger.Error("failed to write error response", "trace_id", traceID, "error", err)
		}
	}
}

func errorBody(err error, traceID string) *errors.ErrorResponse {
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		code, ok := httpStatusCodes[echoErr.Code]
		if !ok {
			code = errors.SystemUnexpectedError
		}
		return errors.NewErrorResponse(code, traceID, errors.WithMessage(fmt.Sprint(echoErr.Message)))
	}
	if fields := validation.FieldErrors(err); fields != nil {
		return errors.NewValidationError(fields, traceID)
	}
	body, _ := errors.WrapSystemError(err, traceID)
	return body
}
