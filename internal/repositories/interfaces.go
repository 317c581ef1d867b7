package repositories

import (
	"spendtrack/internal/models"

	"github.com/google/uuid"
)

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(userID string, id uuid.UUID) (*models.Expense, error)
	GetWithFilters(filters models.ExpenseFilters) ([]models.Expense, error)
	Update(expense *models.Expense) error
	SetCategory(expenseID uuid.UUID, categoryID *uuid.UUID) error
	ReplaceTags(expense *models.Expense, tags []models.Tag) error
	Delete(userID string, id uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(userID string, id uuid.UUID) (*models.Category, error)
	GetByUserID(userID string) ([]models.Category, error)
	GetOrCreate(userID, name string) (*models.Category, error)
	Delete(userID string, id uuid.UUID) error
}

// TagRepositoryInterface defines the contract for tag repository operations
type TagRepositoryInterface interface {
	Create(tag *models.Tag) error
	GetByID(userID string, id uuid.UUID) (*models.Tag, error)
	GetByIDs(userID string, ids []uuid.UUID) ([]models.Tag, error)
	GetByUserID(userID string) ([]models.Tag, error)
	Delete(userID string, id uuid.UUID) error
}

// UserSettingRepositoryInterface defines the contract for user settings operations
type UserSettingRepositoryInterface interface {
	GetByUserID(userID string) (*models.UserSetting, error)
	Create(setting *models.UserSetting) error
	Update(setting *models.UserSetting) error
}
