package dto

import (
	"spendtrack/internal/models"
)

// UpdateSettingsRequest is the payload for updating user settings
type UpdateSettingsRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// SettingsResponse is the wire representation of user settings
type SettingsResponse struct {
	Theme string `json:"theme"`
}

func ToSettingsResponse(setting *models.UserSetting) SettingsResponse {
	return SettingsResponse{
		Theme: setting.Theme,
	}
}
