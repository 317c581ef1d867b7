package handlers

import (
	"errors"
	"net/http"

	apierrors "spendtrack/internal/errors"

	"spendtrack/internal/dto"
	"spendtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// SummaryHandler handles the summary and insights endpoints
type SummaryHandler struct {
	summaryService services.SummaryServiceInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService services.SummaryServiceInterface) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetSummary handles GET /api/v1/expenses/summary
//
// Query parameters:
//   - period:    weekly | monthly | all | explicit (default monthly)
//   - date:      reference date, YYYY-MM-DD (default today)
//   - start,end: explicit range; wins over period when both parse
//   - start_day: monthly anchor day, clamped to [1,28] (default 1)
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthNoUserIdentity)
	}

	query, err := h.bindQuery(c)
	if err != nil {
		return err
	}

	summary, err := h.summaryService.GetSummary(userID, query)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetInsights handles GET /api/v1/expenses/insights
func (h *SummaryHandler) GetInsights(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthNoUserIdentity)
	}

	query, err := h.bindQuery(c)
	if err != nil {
		return err
	}

	insights, err := h.summaryService.GetInsights(c.Request().Context(), userID, query)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, insights)
}

func (h *SummaryHandler) bindQuery(c echo.Context) (*dto.PeriodQuery, error) {
	var query dto.PeriodQuery
	if err := c.Bind(&query); err != nil {
		return nil, SendError(c, apierrors.ValidationInvalidFormat)
	}
	return &query, nil
}

func (h *SummaryHandler) mapServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidPeriod):
		return SendError(c, apierrors.ValidationInvalidPeriod)
	case errors.Is(err, services.ErrInvalidDate):
		return SendError(c, apierrors.ValidationInvalidDate)
	default:
		return SendSystemError(c, err)
	}
}
