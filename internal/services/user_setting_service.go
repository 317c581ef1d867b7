package services

import (
	"errors"
	"log/slog"

	"spendtrack/internal/models"
	"spendtrack/internal/repositories"
)

type userSettingService struct {
	settingRepo repositories.UserSettingRepositoryInterface
}

func NewUserSettingService(settingRepo repositories.UserSettingRepositoryInterface) UserSettingServiceInterface {
	return &userSettingService{
		settingRepo: settingRepo,
	}
}

// GetSettings returns the user's settings row, creating it with
// defaults on first access so callers never see a missing row.
func (s *userSettingService) GetSettings(userID string) (*models.UserSetting, error) {
	setting, err := s.settingRepo.GetByUserID(userID)
	if err == nil {
		return setting, nil
	}
	if !errors.Is(err, repositories.ErrUserSettingNotFound) {
		return nil, err
	}

	setting = &models.UserSetting{UserID: userID}
	if err := s.settingRepo.Create(setting); err != nil {
		slog.Error("failed to create default settings", "user_id", userID, "error", err)
		return nil, err
	}
	return setting, nil
}

func (s *userSettingService) UpdateSettings(userID string, theme string) (*models.UserSetting, error) {
	setting, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	setting.Theme = theme
	if err := s.settingRepo.Update(setting); err != nil {
		return nil, err
	}

	slog.Info("settings updated", "user_id", userID, "theme", theme)
	return setting, nil
}
