package repositories

import (
	"errors"
	"fmt"

	"spendtrack/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserSettingNotFound = errors.New("user settings not found")
)

// userSettingRepository implements UserSettingRepositoryInterface
type userSettingRepository struct {
	db *gorm.DB
}

// NewUserSettingRepository creates a new user setting repository
func NewUserSettingRepository(db *gorm.DB) UserSettingRepositoryInterface {
	return &userSettingRepository{
		db: db,
	}
}

// GetByUserID retrieves the settings row for a user
func (r *userSettingRepository) GetByUserID(userID string) (*models.UserSetting, error) {
	var setting models.UserSetting
	if err := r.db.Where("user_id = ?", userID).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserSettingNotFound
		}
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return &setting, nil
}

// Create creates a settings row for a user
func (r *userSettingRepository) Create(setting *models.UserSetting) error {
	if err := r.db.Create(setting).Error; err != nil {
		return fmt.Errorf("failed to create user settings: %w", err)
	}
	return nil
}

// Update persists changes to an existing settings row
func (r *userSettingRepository) Update(setting *models.UserSetting) error {
	result := r.db.Model(&models.UserSetting{}).
		Where("user_id = ?", setting.UserID).
		Updates(map[string]interface{}{
			"theme": setting.Theme,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update user settings: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserSettingNotFound
	}
	return nil
}
