package handlers

import (
	"net/http"
	"time"

	"spendtrack/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck handles GET /health. Reports database connectivity.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		errorResponse := errors.NewErrorResponse(
			errors.SystemDatabaseError,
			getTraceID(c),
			errors.WithDetails("Database connection failed"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
