package handlers

import (
	"errors"
	"net/http"

	apierrors "spendtrack/internal/errors"

	"spendtrack/internal/dto"
	"spendtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory handles POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthNoUserIdentity)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryService.CreateCategory(userID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrCategoryExists) {
			return SendError(c, apierrors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.ToCategoryResponse(category),
	})
}

// ListCategories handles GET /api/v1/categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusOK, SuccessResponse{Data: []dto.CategoryResponse{}})
	}

	categories, err := h.categoryService.GetCategories(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToCategoryListResponse(categories),
	})
}

// DeleteCategory handles DELETE /api/v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthNoUserIdentity)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}

	if err := h.categoryService.DeleteCategory(userID, id); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return SendError(c, apierrors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
