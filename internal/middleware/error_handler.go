package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"spendtrack/internal/errors"
	"spendtrack/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

// CustomHTTPErrorHandler is a custom error handler for Echo that formats errors
// as standardized error responses and logs them appropriately
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *errors.ErrorResponse
	var httpStatus int

	if echoErr, ok := err.(*echo.HTTPError); ok {
		errorCode := mapHTTPStatusToErrorCode(echoErr.Code)
		message := fmt.Sprintf("%v", echoErr.Message)

		errorResponse = errors.NewErrorResponse(
			errorCode,
			traceID,
			errors.WithMessage(message),
		)
		httpStatus = echoErr.Code
	} else if validationErrs, ok := err.(validator.ValidationErrors); ok {
		errorResponse = errors.NewValidationError(validation.FormatValidationErrors(validationErrs), traceID)
		httpStatus = http.StatusBadRequest
	} else {
		errorResponse, _ = errors.WrapSystemError(err, traceID)
		httpStatus = errorResponse.GetHTTPStatus()
	}

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"message", errorResponse.Error.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(
		errorResponse.Error.Code,
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthNoUserIdentity
	case http.StatusNotFound:
		return errors.ExpenseNotFound
	case http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	default:
		return errors.SystemInternalError
	}
}
