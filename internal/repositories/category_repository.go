package repositories

import (
	"errors"
	"fmt"

	"spendtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	var existing models.Category
	err := r.db.Where("user_id = ? AND name = ?", category.UserID, category.Name).
		First(&existing).Error
	if err == nil {
		return ErrCategoryAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check category uniqueness: %w", err)
	}

	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category owned by the given user
func (r *categoryRepository) GetByID(userID string, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetByUserID retrieves all categories for a user, ordered by name
func (r *categoryRepository) GetByUserID(userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetOrCreate returns the user's category with the given name, creating
// it if it does not exist yet.
func (r *categoryRepository) GetOrCreate(userID string, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}

	category = models.Category{
		UserID: userID,
		Name:   name,
	}
	if err := r.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

// Delete removes a category owned by the given user. Expenses keep
// existing with a NULL category (ON DELETE SET NULL).
func (r *categoryRepository) Delete(userID string, id uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Category{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
