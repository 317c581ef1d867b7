package handlers

import (
	"net/http"
	"time"

	apierrors "spendtrack/internal/errors"

	"spendtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints. Registered only when
// the server runs in the development environment.
type DevHandler struct {
	generator services.ExpenseGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(generator services.ExpenseGeneratorInterface) *DevHandler {
	return &DevHandler{generator: generator}
}

// SeedExpenses handles POST /api/v1/dev/seed-expenses
//
// Query parameters:
//   - count: number of expenses to generate (default 100, max 1000)
//   - days:  days of history (default 90, max 365)
func (h *DevHandler) SeedExpenses(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthNoUserIdentity)
	}

	count := intQueryParam(c, "count", 100)
	if count < 1 || count > 1000 {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("count must be between 1 and 1000"))
	}
	days := intQueryParam(c, "days", 90)
	if days < 1 || days > 365 {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("days must be between 1 and 365"))
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	expenses, err := h.generator.GenerateExpenses(userID, start, end, count)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "expenses generated",
		Data:    map[string]int{"expenses_created": len(expenses)},
	})
}
