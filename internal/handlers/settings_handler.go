package handlers

import (
	"net/http"

	apierrors "spendtrack/internal/errors"

	"spendtrack/internal/dto"
	"spendtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// SettingsHandler handles user settings endpoints
type SettingsHandler struct {
	settingService services.UserSettingServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingService services.UserSettingServiceInterface) *SettingsHandler {
	return &SettingsHandler{settingService: settingService}
}

// GetSettings handles GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthNoUserIdentity)
	}

	setting, err := h.settingService.GetSettings(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToSettingsResponse(setting),
	})
}

// UpdateSettings handles PUT /api/v1/settings
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthNoUserIdentity)
	}

	var req dto.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	setting, err := h.settingService.UpdateSettings(userID, req.Theme)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToSettingsResponse(setting),
	})
}
