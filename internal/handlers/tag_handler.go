package handlers

import (
	"errors"
	"net/http"

	apierrors "spendtrack/internal/errors"

	"spendtrack/internal/dto"
	"spendtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// TagHandler handles tag endpoints
type TagHandler struct {
	tagService services.TagServiceInterface
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService services.TagServiceInterface) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// CreateTag handles POST /api/v1/tags
func (h *TagHandler) CreateTag(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthNoUserIdentity)
	}

	var req dto.CreateTagRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tag, err := h.tagService.CreateTag(userID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrTagExists) {
			return SendError(c, apierrors.TagAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.ToTagResponse(tag),
	})
}

// ListTags handles GET /api/v1/tags
func (h *TagHandler) ListTags(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusOK, SuccessResponse{Data: []dto.TagResponse{}})
	}

	tags, err := h.tagService.GetTags(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToTagListResponse(tags),
	})
}

// DeleteTag handles DELETE /api/v1/tags/:id
func (h *TagHandler) DeleteTag(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthNoUserIdentity)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}

	if err := h.tagService.DeleteTag(userID, id); err != nil {
		if errors.Is(err, services.ErrTagNotFound) {
			return SendError(c, apierrors.TagNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
