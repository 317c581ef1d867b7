package repositories

import (
	"errors"
	"fmt"

	"spendtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTagNotFound      = errors.New("tag not found")
	ErrTagAlreadyExists = errors.New("tag already exists")
)

// tagRepository implements TagRepositoryInterface
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) TagRepositoryInterface {
	return &tagRepository{
		db: db,
	}
}

// Create creates a new tag
func (r *tagRepository) Create(tag *models.Tag) error {
	var existing models.Tag
	err := r.db.Where("user_id = ? AND name = ?", tag.UserID, tag.Name).
		First(&existing).Error
	if err == nil {
		return ErrTagAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check tag uniqueness: %w", err)
	}

	if err := r.db.Create(tag).Error; err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

// GetByID retrieves a tag owned by the given user
func (r *tagRepository) GetByID(userID string, id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return &tag, nil
}

// GetByIDs retrieves the user's tags matching the given IDs. IDs that do
// not resolve to a tag owned by the user are silently skipped.
func (r *tagRepository) GetByIDs(userID string, ids []uuid.UUID) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}
	var tags []models.Tag
	if err := r.db.Where("user_id = ? AND id IN ?", userID, ids).
		Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	return tags, nil
}

// GetByUserID retrieves all tags for a user, ordered by name
func (r *tagRepository) GetByUserID(userID string) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	return tags, nil
}

// Delete removes a tag owned by the given user
func (r *tagRepository) Delete(userID string, id uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Tag{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete tag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTagNotFound
	}
	return nil
}
