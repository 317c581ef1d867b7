package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"spendtrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts handler panics into a SYSTEM_001 response so
// one bad request cannot take the process down. The stack trace goes
// to the log, never to the client.
func PanicRecovery() echo.MiddlewareFunc {
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

				slog.Error("panic recovered",
					"trace_id", traceID,
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)

				resp := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, resp); err != nil {
					slog.Error("failed to write panic response",
						"trace_id", traceID,
						"error", err.Error(),
					)
				}
			}()

			return next(c)
		}
	}
}
