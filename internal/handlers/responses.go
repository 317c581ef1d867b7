package handlers

import (
	"net/http"

	"spendtrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// All handlers use the standardized error response helpers below:
//
//   SendError       - client errors and business rule violations (4xx)
//   SendSystemError - internal errors (500); hides details from the client
//
// Handlers never call echo.NewHTTPError or c.JSON directly for errors.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response envelope for
// CRUD resources. The summary and insights endpoints return their
// documented shapes directly.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

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

// SendSystemError wraps a system error with a generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
