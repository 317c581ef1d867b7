package handlers

import (
	"errors"
	"net/http"

	apierrors "spendtrack/internal/errors"

	"spendtrack/internal/dto"
	"spendtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense CRUD endpoints
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpense handles POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthNoUserIdentity)
	}

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	expense, err := h.expenseService.CreateExpense(c.Request().Context(), userID, &req)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.ToExpenseResponse(expense),
	})
}

// ListExpenses handles GET /api/v1/expenses. Anonymous callers get an
// empty list rather than an error.
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusOK, SuccessResponse{Data: []dto.ExpenseResponse{}})
	}

	var query dto.ListExpensesQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	expenses, err := h.expenseService.ListExpenses(userID, &query)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToExpenseListResponse(expenses),
	})
}

// GetExpense handles GET /api/v1/expenses/:id
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.ExpenseNotFound)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ExpenseInvalidID)
	}

	expense, err := h.expenseService.GetExpense(userID, id)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToExpenseResponse(expense),
	})
}

// UpdateExpense handles PUT /api/v1/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthNoUserIdentity)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ExpenseInvalidID)
	}

	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	expense, err := h.expenseService.UpdateExpense(c.Request().Context(), userID, id, &req)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToExpenseResponse(expense),
	})
}

// DeleteExpense handles DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthNoUserIdentity)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ExpenseInvalidID)
	}

	if err := h.expenseService.DeleteExpense(userID, id); err != nil {
		return h.mapServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ExpenseHandler) mapServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrExpenseNotFound):
		return SendError(c, apierrors.ExpenseNotFound)
	case errors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, apierrors.CategoryNotFound)
	case errors.Is(err, services.ErrInvalidAmount):
		return SendError(c, apierrors.ExpenseInvalidAmount)
	case errors.Is(err, services.ErrInvalidDate):
		return SendError(c, apierrors.ValidationInvalidDate)
	default:
		return SendSystemError(c, err)
	}
}
