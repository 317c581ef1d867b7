package services

import (
	"errors"
	"log/slog"

	"spendtrack/internal/models"
	"spendtrack/internal/repositories"

	"github.com/google/uuid"
)

var ErrCategoryExists = errors.New("category already exists")

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

func (s *categoryService) CreateCategory(userID string, name string) (*models.Category, error) {
	category := &models.Category{
		UserID: userID,
		Name:   name,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, ErrCategoryExists
		}
		slog.Error("failed to create category", "user_id", userID, "error", err)
		return nil, err
	}

	slog.Info("category created", "user_id", userID, "category_id", category.ID, "name", name)
	return category, nil
}

func (s *categoryService) GetCategories(userID string) ([]models.Category, error) {
	return s.categoryRepo.GetByUserID(userID)
}

func (s *categoryService) DeleteCategory(userID string, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(userID, id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	slog.Info("category deleted", "user_id", userID, "category_id", id)
	return nil
}
