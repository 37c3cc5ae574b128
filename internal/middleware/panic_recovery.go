package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"church-admin/internal/errors"
	"church-admin/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery is a middleware that recovers from panics and returns a
// standardized error response. The church and user of the request, when
// known, are logged with the stack trace.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				attrs := []any{
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				}
				if userID, ok := c.Get(handlers.UserIDContextKey).(string); ok {
					attrs = append(attrs, "user_id", userID)
				}
				if churchID := c.Get(handlers.ChurchIDContextKey); churchID != nil {
					attrs = append(attrs, "church_id", fmt.Sprint(churchID))
				}
				logger.ErrorContext(c.Request().Context(), "panic recovered", attrs...)

				if c.Response().Committed {
					return
				}
				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
					logger.Error("failed to send panic recovery response",
						"trace_id", traceID,
						"error", err.Error(),
					)
				}
			}()

			return next(c)
		}
	}
}
